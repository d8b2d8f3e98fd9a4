package tracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

// TimeOfDay is a daily dosing time in local time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	h, m, err := common.ParseClock(s)
	return TimeOfDay{Hour: h, Minute: m}, err
}

func (td TimeOfDay) String() string {
	return common.FormatClock(td.Hour, td.Minute)
}

func (td TimeOfDay) validate() error {
	if td.Hour < 0 || td.Hour > 23 || td.Minute < 0 || td.Minute > 59 {
		return common.NewError(common.ErrorTypeValidation, "INVALID_TIME",
			fmt.Sprintf("time of day %02d:%02d is out of range", td.Hour, td.Minute))
	}
	return nil
}

// validateTimes rejects out-of-range and repeated times. The store itself
// accepts duplicates, so edit paths must call this.
func validateTimes(times []TimeOfDay) error {
	seen := make(map[TimeOfDay]struct{}, len(times))
	for _, td := range times {
		if err := td.validate(); err != nil {
			return err
		}
		if _, dup := seen[td]; dup {
			return common.WithMessage(common.ErrDuplicateTime, fmt.Sprintf("time %s is listed twice", td))
		}
		seen[td] = struct{}{}
	}
	return nil
}

// syncReminder keeps the reminder registry in line with a schedule row.
func (t *Tracker) syncReminder(med models.Medication, schedule models.MedicationSchedule) {
	if t.Reminder == nil {
		return
	}
	if schedule.Armable(med) {
		t.Reminder.ScheduleReminder(med, schedule)
	} else {
		t.Reminder.CancelReminder(schedule.ID)
	}
}

func (t *Tracker) cancelReminders(schedules []models.MedicationSchedule) {
	if t.Reminder == nil {
		return
	}
	for _, s := range schedules {
		t.Reminder.CancelReminder(s.ID)
	}
}

func (t *Tracker) createSchedule(ctx context.Context, input *models.MedicationSchedule) (uint, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategorySchedule)

	if err := (TimeOfDay{input.TimeHour, input.TimeMinute}).validate(); err != nil {
		return 0, err
	}

	var med models.Medication
	if err := t.Db.Conn.WithContext(ctx).First(&med, input.MedicationID).Error; err != nil {
		return 0, findErr(err, common.ErrMedicationNotFound, "find medication")
	}

	schedule := models.MedicationSchedule{
		MedicationID:    input.MedicationID,
		TimeHour:        input.TimeHour,
		TimeMinute:      input.TimeMinute,
		IsActive:        input.IsActive,
		ReminderEnabled: input.ReminderEnabled,
	}

	logger.Info("Received schedule", zap.Reflect("schedule", schedule))

	if err := t.Db.Conn.WithContext(ctx).Create(&schedule).Error; err != nil {
		return 0, storageErr(err, "create schedule")
	}

	logger.Info("Schedule saved", zap.Reflect("schedule", schedule))

	t.syncReminder(med, schedule)
	input.ID = schedule.ID
	return schedule.ID, nil
}

func (t *Tracker) updateSchedule(ctx context.Context, input *models.MedicationSchedule) error {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategorySchedule)

	if err := (TimeOfDay{input.TimeHour, input.TimeMinute}).validate(); err != nil {
		return err
	}

	existing, err := t.getSchedule(ctx, input.ID)
	if err != nil {
		return err
	}

	err = t.Db.Conn.WithContext(ctx).
		Model(existing).
		Select("time_hour", "time_minute", "is_active", "reminder_enabled").
		Updates(models.MedicationSchedule{
			TimeHour:        input.TimeHour,
			TimeMinute:      input.TimeMinute,
			IsActive:        input.IsActive,
			ReminderEnabled: input.ReminderEnabled,
		}).Error
	if err != nil {
		return storageErr(err, "update schedule")
	}
	existing.TimeHour = input.TimeHour
	existing.TimeMinute = input.TimeMinute
	existing.IsActive = input.IsActive
	existing.ReminderEnabled = input.ReminderEnabled

	var med models.Medication
	if err := t.Db.Conn.WithContext(ctx).First(&med, existing.MedicationID).Error; err != nil {
		return findErr(err, common.ErrMedicationNotFound, "find medication")
	}

	logger.Info("Schedule updated", zap.Reflect("schedule", existing))

	t.syncReminder(med, *existing)
	return nil
}

func (t *Tracker) deleteSchedule(ctx context.Context, id uint) error {
	existing, err := t.getSchedule(ctx, id)
	if err != nil {
		return err
	}

	if err := t.Db.Conn.WithContext(ctx).Delete(existing).Error; err != nil {
		return storageErr(err, "delete schedule")
	}
	t.cancelReminders([]models.MedicationSchedule{*existing})

	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategorySchedule).
		Info("Schedule deleted", zap.Uint("id", id))
	return nil
}

func (t *Tracker) getSchedule(ctx context.Context, id uint) (*models.MedicationSchedule, error) {
	var schedule models.MedicationSchedule
	if err := t.Db.Conn.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, findErr(err, common.ErrScheduleNotFound, "get schedule")
	}
	return &schedule, nil
}

func byTimeOfDay(tx *gorm.DB) *gorm.DB {
	return tx.Order("time_hour").Order("time_minute")
}

func (t *Tracker) schedulesForMedication(ctx context.Context, medicationID uint) ([]models.MedicationSchedule, error) {
	var schedules []models.MedicationSchedule
	err := byTimeOfDay(t.Db.Conn.WithContext(ctx)).
		Where("medication_id = ? AND is_active = ?", medicationID, true).
		Find(&schedules).Error
	return schedules, storageErr(err, "list schedules")
}

func (t *Tracker) activeReminderSchedules(ctx context.Context) ([]models.MedicationSchedule, error) {
	var schedules []models.MedicationSchedule
	err := byTimeOfDay(t.Db.Conn.WithContext(ctx)).
		Where("is_active = ? AND reminder_enabled = ?", true, true).
		Find(&schedules).Error
	return schedules, storageErr(err, "list reminder schedules")
}

// replaceSchedules swaps every schedule of a medication for one per time.
func (t *Tracker) replaceSchedules(ctx context.Context, medicationID uint, times []TimeOfDay) ([]models.MedicationSchedule, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategorySchedule)

	if err := validateTimes(times); err != nil {
		return nil, err
	}

	var med models.Medication
	if err := t.Db.Conn.WithContext(ctx).Preload("Schedules").First(&med, medicationID).Error; err != nil {
		return nil, findErr(err, common.ErrMedicationNotFound, "find medication")
	}

	schedules := make([]models.MedicationSchedule, len(times))
	for i, td := range times {
		schedules[i] = models.MedicationSchedule{
			MedicationID:    medicationID,
			TimeHour:        td.Hour,
			TimeMinute:      td.Minute,
			IsActive:        true,
			ReminderEnabled: true,
		}
	}

	err := t.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medication_id = ?", medicationID).Delete(&models.MedicationSchedule{}).Error; err != nil {
			return err
		}
		if len(schedules) == 0 {
			return nil
		}
		return tx.Create(&schedules).Error
	})
	if err != nil {
		// the old schedules are still stored and keep their timers
		return nil, storageErr(err, "replace schedules")
	}
	t.publish(tableSchedules)
	t.cancelReminders(med.Schedules)

	logger.Info("Schedules replaced",
		zap.Uint("medication_id", medicationID),
		zap.Int("previous", len(med.Schedules)),
		zap.Int("current", len(schedules)))

	for _, s := range schedules {
		t.syncReminder(med, s)
	}
	return schedules, nil
}

func (t *Tracker) watchSchedulesForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationSchedule] {
	return watch(ctx, t, []string{tableSchedules}, func(tx *gorm.DB) ([]models.MedicationSchedule, error) {
		var schedules []models.MedicationSchedule
		err := byTimeOfDay(tx).
			Where("medication_id = ? AND is_active = ?", medicationID, true).
			Find(&schedules).Error
		return schedules, err
	})
}

type IScheduleImpl struct {
	tracker *Tracker
}

func (is *IScheduleImpl) CreateSchedule(ctx context.Context, input *models.MedicationSchedule) (uint, error) {
	return is.tracker.createSchedule(ctx, input)
}

func (is *IScheduleImpl) UpdateSchedule(ctx context.Context, input *models.MedicationSchedule) error {
	return is.tracker.updateSchedule(ctx, input)
}

func (is *IScheduleImpl) DeleteSchedule(ctx context.Context, id uint) error {
	return is.tracker.deleteSchedule(ctx, id)
}

func (is *IScheduleImpl) GetSchedule(ctx context.Context, id uint) (*models.MedicationSchedule, error) {
	return is.tracker.getSchedule(ctx, id)
}

func (is *IScheduleImpl) SchedulesForMedication(ctx context.Context, medicationID uint) ([]models.MedicationSchedule, error) {
	return is.tracker.schedulesForMedication(ctx, medicationID)
}

func (is *IScheduleImpl) ActiveReminderSchedules(ctx context.Context) ([]models.MedicationSchedule, error) {
	return is.tracker.activeReminderSchedules(ctx)
}

func (is *IScheduleImpl) ReplaceSchedules(ctx context.Context, medicationID uint, times []TimeOfDay) ([]models.MedicationSchedule, error) {
	return is.tracker.replaceSchedules(ctx, medicationID, times)
}

func (is *IScheduleImpl) WatchSchedulesForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationSchedule] {
	return is.tracker.watchSchedulesForMedication(ctx, medicationID)
}

func (t *Tracker) GetISchedule() ISchedule {
	return &IScheduleImpl{tracker: t}
}
