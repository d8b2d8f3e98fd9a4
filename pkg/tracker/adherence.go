package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

func (t *Tracker) createLog(ctx context.Context, input *models.MedicationLog) (uint, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryLog)

	if err := t.Db.Conn.WithContext(ctx).First(&models.Medication{}, input.MedicationID).Error; err != nil {
		return 0, findErr(err, common.ErrMedicationNotFound, "find medication")
	}

	now := t.now()
	entry := models.MedicationLog{
		MedicationID:  input.MedicationID,
		ScheduledTime: orNow(input.ScheduledTime, now).UTC(),
		ActualTime:    orNow(input.ActualTime, now).UTC(),
		Taken:         input.Taken,
		Notes:         input.Notes,
	}

	logger.Info("Received medication log", zap.Reflect("log", entry))

	if err := t.Db.Conn.WithContext(ctx).Create(&entry).Error; err != nil {
		return 0, storageErr(err, "create log")
	}

	input.ID = entry.ID
	return entry.ID, nil
}

func orNow(ts, now time.Time) time.Time {
	if ts.IsZero() {
		return now
	}
	return ts
}

func (t *Tracker) updateLog(ctx context.Context, input *models.MedicationLog) error {
	if input.ID == 0 {
		return common.ErrLogNotFound
	}

	result := t.Db.Conn.WithContext(ctx).
		Model(&models.MedicationLog{ID: input.ID}).
		Select("scheduled_time", "actual_time", "taken", "notes").
		Updates(models.MedicationLog{
			ScheduledTime: input.ScheduledTime.UTC(),
			ActualTime:    input.ActualTime.UTC(),
			Taken:         input.Taken,
			Notes:         input.Notes,
		})
	if result.Error != nil {
		return storageErr(result.Error, "update log")
	}
	if result.RowsAffected == 0 {
		return common.ErrLogNotFound
	}

	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryLog).
		Info("Medication log updated", zap.Uint("id", input.ID), zap.Bool("taken", input.Taken))
	return nil
}

func (t *Tracker) deleteLog(ctx context.Context, id uint) error {
	result := t.Db.Conn.WithContext(ctx).Delete(&models.MedicationLog{}, id)
	if result.Error != nil {
		return storageErr(result.Error, "delete log")
	}
	if result.RowsAffected == 0 {
		return common.ErrLogNotFound
	}
	return nil
}

func (t *Tracker) getLog(ctx context.Context, id uint) (*models.MedicationLog, error) {
	var entry models.MedicationLog
	if err := t.Db.Conn.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, findErr(err, common.ErrLogNotFound, "get log")
	}
	return &entry, nil
}

// logTaken records a dose as taken right now. Repeated calls append repeated
// rows.
func (t *Tracker) logTaken(ctx context.Context, medicationID uint, notes string) (*models.MedicationLog, error) {
	now := t.now()
	entry := &models.MedicationLog{
		MedicationID:  medicationID,
		ScheduledTime: now,
		ActualTime:    now,
		Taken:         true,
		Notes:         notes,
	}
	if _, err := t.createLog(ctx, entry); err != nil {
		return nil, err
	}
	entry.ScheduledTime = entry.ScheduledTime.UTC()
	entry.ActualTime = entry.ActualTime.UTC()

	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryLog).
		Info("Dose marked as taken", zap.Uint("medication_id", medicationID), zap.Uint("log_id", entry.ID))
	return entry, nil
}

func logsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.MedicationLog{}).Order("scheduled_time desc")
}

func (t *Tracker) recentLogs(ctx context.Context, limit int) ([]models.MedicationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []models.MedicationLog
	err := logsQuery(t.Db.Conn.WithContext(ctx)).Limit(limit).Find(&logs).Error
	return logs, storageErr(err, "list recent logs")
}

func (t *Tracker) logsSince(ctx context.Context, since time.Time) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	err := logsQuery(t.Db.Conn.WithContext(ctx)).Where("scheduled_time >= ?", since.UTC()).Find(&logs).Error
	return logs, storageErr(err, "list logs")
}

func (t *Tracker) logsForMedicationOn(ctx context.Context, medicationID uint, day time.Time) ([]models.MedicationLog, error) {
	start := common.StartOfDay(day)
	var logs []models.MedicationLog
	err := logsQuery(t.Db.Conn.WithContext(ctx)).
		Where("medication_id = ? AND scheduled_time >= ? AND scheduled_time < ?", medicationID, start.UTC(), start.AddDate(0, 0, 1).UTC()).
		Find(&logs).Error
	return logs, storageErr(err, "list logs for day")
}

func (t *Tracker) watchRecentLogs(ctx context.Context, limit int) <-chan Snapshot[models.MedicationLog] {
	if limit <= 0 {
		limit = 20
	}
	return watch(ctx, t, []string{tableLogs}, func(tx *gorm.DB) ([]models.MedicationLog, error) {
		var logs []models.MedicationLog
		err := logsQuery(tx).Limit(limit).Find(&logs).Error
		return logs, err
	})
}

func (t *Tracker) watchLogsForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationLog] {
	return watch(ctx, t, []string{tableLogs}, func(tx *gorm.DB) ([]models.MedicationLog, error) {
		var logs []models.MedicationLog
		err := logsQuery(tx).Where("medication_id = ?", medicationID).Find(&logs).Error
		return logs, err
	})
}

type ILogImpl struct {
	tracker *Tracker
}

func (il *ILogImpl) CreateLog(ctx context.Context, input *models.MedicationLog) (uint, error) {
	return il.tracker.createLog(ctx, input)
}

func (il *ILogImpl) UpdateLog(ctx context.Context, input *models.MedicationLog) error {
	return il.tracker.updateLog(ctx, input)
}

func (il *ILogImpl) DeleteLog(ctx context.Context, id uint) error {
	return il.tracker.deleteLog(ctx, id)
}

func (il *ILogImpl) GetLog(ctx context.Context, id uint) (*models.MedicationLog, error) {
	return il.tracker.getLog(ctx, id)
}

func (il *ILogImpl) LogTaken(ctx context.Context, medicationID uint, notes string) (*models.MedicationLog, error) {
	return il.tracker.logTaken(ctx, medicationID, notes)
}

func (il *ILogImpl) RecentLogs(ctx context.Context, limit int) ([]models.MedicationLog, error) {
	return il.tracker.recentLogs(ctx, limit)
}

func (il *ILogImpl) LogsSince(ctx context.Context, since time.Time) ([]models.MedicationLog, error) {
	return il.tracker.logsSince(ctx, since)
}

func (il *ILogImpl) LogsForMedicationOn(ctx context.Context, medicationID uint, day time.Time) ([]models.MedicationLog, error) {
	return il.tracker.logsForMedicationOn(ctx, medicationID, day)
}

func (il *ILogImpl) WatchRecentLogs(ctx context.Context, limit int) <-chan Snapshot[models.MedicationLog] {
	return il.tracker.watchRecentLogs(ctx, limit)
}

func (il *ILogImpl) WatchLogsForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationLog] {
	return il.tracker.watchLogsForMedication(ctx, medicationID)
}

func (t *Tracker) GetILog() ILog {
	return &ILogImpl{tracker: t}
}
