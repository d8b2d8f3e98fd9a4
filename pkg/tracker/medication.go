package tracker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

// NextDose is the next daily dose of an active medication.
type NextDose struct {
	Medication models.Medication         `json:"medication"`
	Schedule   models.MedicationSchedule `json:"schedule"`
	At         time.Time                 `json:"at"`
	TakenToday bool                      `json:"taken_today"`
}

func validateMedication(m *models.Medication) error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Dosage) == "" {
		return common.NewError(common.ErrorTypeValidation, "INVALID_MEDICATION", "medication name and dosage are required")
	}
	return nil
}

func (t *Tracker) createMedication(ctx context.Context, input *models.Medication) (uint, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryMedication)

	if err := validateMedication(input); err != nil {
		return 0, err
	}

	med := models.Medication{
		Name:         strings.TrimSpace(input.Name),
		Dosage:       strings.TrimSpace(input.Dosage),
		Instructions: input.Instructions,
		IsActive:     input.IsActive,
	}

	logger.Info("Received medication", zap.Reflect("medication", med))

	if err := t.Db.Conn.WithContext(ctx).Create(&med).Error; err != nil {
		return 0, storageErr(err, "create medication")
	}

	logger.Info("Medication saved", zap.Uint("id", med.ID))

	input.ID = med.ID
	return med.ID, nil
}

// addMedication stores a medication together with one active, reminding
// schedule per time and arms the reminders.
func (t *Tracker) addMedication(ctx context.Context, input *models.Medication, times []TimeOfDay) (*models.Medication, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryMedication)

	if err := validateMedication(input); err != nil {
		return nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}

	med := models.Medication{
		Name:         strings.TrimSpace(input.Name),
		Dosage:       strings.TrimSpace(input.Dosage),
		Instructions: input.Instructions,
		IsActive:     true,
	}

	logger.Info("Received medication", zap.Reflect("medication", med), zap.Stringers("times", times))

	err := t.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Schedules", "Logs").Create(&med).Error; err != nil {
			return err
		}
		med.Schedules = make([]models.MedicationSchedule, len(times))
		for i, td := range times {
			med.Schedules[i] = models.MedicationSchedule{
				MedicationID:    med.ID,
				TimeHour:        td.Hour,
				TimeMinute:      td.Minute,
				IsActive:        true,
				ReminderEnabled: true,
			}
		}
		if len(med.Schedules) == 0 {
			return nil
		}
		return tx.Create(&med.Schedules).Error
	})
	if err != nil {
		return nil, storageErr(err, "add medication")
	}
	t.publish(tableMeds, tableSchedules)

	logger.Info("Medication saved with schedules", zap.Uint("id", med.ID), zap.Int("schedules", len(med.Schedules)))

	for _, s := range med.Schedules {
		t.syncReminder(med, s)
	}
	return &med, nil
}

func (t *Tracker) updateMedication(ctx context.Context, input *models.Medication) error {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryMedication)

	if input.ID == 0 {
		return common.ErrMedicationNotFound
	}
	if err := validateMedication(input); err != nil {
		return err
	}

	result := t.Db.Conn.WithContext(ctx).
		Model(&models.Medication{ID: input.ID}).
		Select("name", "dosage", "instructions", "is_active").
		Updates(models.Medication{
			Name:         strings.TrimSpace(input.Name),
			Dosage:       strings.TrimSpace(input.Dosage),
			Instructions: input.Instructions,
			IsActive:     input.IsActive,
		})
	if result.Error != nil {
		return storageErr(result.Error, "update medication")
	}
	if result.RowsAffected == 0 {
		return common.ErrMedicationNotFound
	}

	med, err := t.getMedication(ctx, input.ID)
	if err != nil {
		return err
	}

	logger.Info("Medication updated", zap.Reflect("medication", med))

	// deactivating a medication disarms all of its schedules
	for _, s := range med.Schedules {
		t.syncReminder(*med, s)
	}
	return nil
}

func (t *Tracker) deleteMedication(ctx context.Context, id uint) error {
	med, err := t.getMedication(ctx, id)
	if err != nil {
		return err
	}

	if err := t.Db.Conn.WithContext(ctx).Delete(&models.Medication{}, id).Error; err != nil {
		return storageErr(err, "delete medication")
	}
	t.cancelReminders(med.Schedules)

	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryMedication).
		Info("Medication deleted with its schedules and logs", zap.Uint("id", id), zap.Int("schedules", len(med.Schedules)))
	return nil
}

func withSchedules(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Schedules", func(db *gorm.DB) *gorm.DB {
		return byTimeOfDay(db)
	})
}

func (t *Tracker) getMedication(ctx context.Context, id uint) (*models.Medication, error) {
	var med models.Medication
	if err := withSchedules(t.Db.Conn.WithContext(ctx)).First(&med, id).Error; err != nil {
		return nil, findErr(err, common.ErrMedicationNotFound, "get medication")
	}
	return &med, nil
}

func activeMedicationsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_active = ?", true).Order("name")
}

func (t *Tracker) listActiveMedications(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := activeMedicationsQuery(withSchedules(t.Db.Conn.WithContext(ctx))).Find(&meds).Error
	return meds, storageErr(err, "list active medications")
}

func (t *Tracker) listMedications(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := t.Db.Conn.WithContext(ctx).Order("name").Find(&meds).Error
	return meds, storageErr(err, "list medications")
}

func (t *Tracker) medicationsWithSchedules(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := withSchedules(t.Db.Conn.WithContext(ctx)).Order("name").Find(&meds).Error
	return meds, storageErr(err, "list medications with schedules")
}

// reminderTargets returns active medications carrying only their active,
// reminder-enabled schedules.
func (t *Tracker) reminderTargets(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := t.Db.Conn.WithContext(ctx).
		Preload("Schedules", "is_active = ? AND reminder_enabled = ?", true, true).
		Where("is_active = ?", true).
		Order("name").
		Find(&meds).Error
	return meds, storageErr(err, "list reminder targets")
}

// nextDoses picks, per active medication, the first active schedule at or after
// now, falling back to the earliest schedule tomorrow.
func (t *Tracker) nextDoses(ctx context.Context, now time.Time) ([]NextDose, error) {
	var meds []models.Medication
	err := t.Db.Conn.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return byTimeOfDay(db.Where("is_active = ?", true))
		}).
		Where("is_active = ?", true).
		Find(&meds).Error
	if err != nil {
		return nil, storageErr(err, "list next doses")
	}

	dayStart := common.StartOfDay(now)
	var takenIDs []uint
	err = t.Db.Conn.WithContext(ctx).
		Model(&models.MedicationLog{}).
		Where("taken = ? AND scheduled_time >= ? AND scheduled_time < ?", true, dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC()).
		Distinct().
		Pluck("medication_id", &takenIDs).Error
	if err != nil {
		return nil, storageErr(err, "list taken today")
	}

	doses := make([]NextDose, 0, len(meds))
	for _, med := range meds {
		if len(med.Schedules) == 0 {
			continue
		}
		at := func(s models.MedicationSchedule) time.Time {
			return dayStart.Add(time.Duration(s.TimeHour)*time.Hour + time.Duration(s.TimeMinute)*time.Minute)
		}

		upcoming := lo.Filter(med.Schedules, func(s models.MedicationSchedule, _ int) bool {
			return !at(s).Before(now)
		})

		var next models.MedicationSchedule
		var nextAt time.Time
		if len(upcoming) > 0 {
			next = upcoming[0]
			nextAt = at(next)
		} else {
			next = med.Schedules[0]
			nextAt = time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day()+1, next.TimeHour, next.TimeMinute, 0, 0, now.Location())
		}

		med.Schedules = nil
		doses = append(doses, NextDose{
			Medication: med,
			Schedule:   next,
			At:         nextAt,
			TakenToday: lo.Contains(takenIDs, med.ID),
		})
	}

	sort.SliceStable(doses, func(i, j int) bool { return doses[i].At.Before(doses[j].At) })
	return doses, nil
}

func (t *Tracker) watchActiveMedications(ctx context.Context) <-chan Snapshot[models.Medication] {
	return watch(ctx, t, []string{tableMeds, tableSchedules}, func(tx *gorm.DB) ([]models.Medication, error) {
		var meds []models.Medication
		err := activeMedicationsQuery(withSchedules(tx)).Find(&meds).Error
		return meds, err
	})
}

func (t *Tracker) watchMedications(ctx context.Context) <-chan Snapshot[models.Medication] {
	return watch(ctx, t, []string{tableMeds}, func(tx *gorm.DB) ([]models.Medication, error) {
		var meds []models.Medication
		err := tx.Order("name").Find(&meds).Error
		return meds, err
	})
}

type IMedicationImpl struct {
	tracker *Tracker
}

func (im *IMedicationImpl) CreateMedication(ctx context.Context, input *models.Medication) (uint, error) {
	return im.tracker.createMedication(ctx, input)
}

func (im *IMedicationImpl) AddMedication(ctx context.Context, input *models.Medication, times []TimeOfDay) (*models.Medication, error) {
	return im.tracker.addMedication(ctx, input, times)
}

func (im *IMedicationImpl) UpdateMedication(ctx context.Context, input *models.Medication) error {
	return im.tracker.updateMedication(ctx, input)
}

func (im *IMedicationImpl) DeleteMedication(ctx context.Context, id uint) error {
	return im.tracker.deleteMedication(ctx, id)
}

func (im *IMedicationImpl) GetMedication(ctx context.Context, id uint) (*models.Medication, error) {
	return im.tracker.getMedication(ctx, id)
}

func (im *IMedicationImpl) ListActiveMedications(ctx context.Context) ([]models.Medication, error) {
	return im.tracker.listActiveMedications(ctx)
}

func (im *IMedicationImpl) ListMedications(ctx context.Context) ([]models.Medication, error) {
	return im.tracker.listMedications(ctx)
}

func (im *IMedicationImpl) MedicationsWithSchedules(ctx context.Context) ([]models.Medication, error) {
	return im.tracker.medicationsWithSchedules(ctx)
}

func (im *IMedicationImpl) ReminderTargets(ctx context.Context) ([]models.Medication, error) {
	return im.tracker.reminderTargets(ctx)
}

func (im *IMedicationImpl) NextDoses(ctx context.Context, now time.Time) ([]NextDose, error) {
	return im.tracker.nextDoses(ctx, now)
}

func (im *IMedicationImpl) WatchActiveMedications(ctx context.Context) <-chan Snapshot[models.Medication] {
	return im.tracker.watchActiveMedications(ctx)
}

func (im *IMedicationImpl) WatchMedications(ctx context.Context) <-chan Snapshot[models.Medication] {
	return im.tracker.watchMedications(ctx)
}

func (t *Tracker) GetIMedication() IMedication {
	return &IMedicationImpl{tracker: t}
}
