package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

func (t *Tracker) createReading(ctx context.Context, input *models.GlucoseReading) (uint, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryReading)

	if input.GlucoseLevel <= 0 {
		return 0, common.WithMessage(common.ErrInvalidReading, fmt.Sprintf("glucose level must be positive, got %d", input.GlucoseLevel))
	}
	if input.ReadingType == "" {
		input.ReadingType = models.ReadingTypeRandom
	}
	if !input.ReadingType.Valid() {
		return 0, common.WithMessage(common.ErrInvalidReading, fmt.Sprintf("unknown reading type %q", input.ReadingType))
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = t.now()
	}

	reading := models.GlucoseReading{
		GlucoseLevel: input.GlucoseLevel,
		Timestamp:    timestamp.UTC(),
		Notes:        input.Notes,
		ReadingType:  input.ReadingType,
	}

	logger.Info("Received reading", zap.Reflect("reading", reading))

	if err := t.Db.Conn.WithContext(ctx).Create(&reading).Error; err != nil {
		return 0, storageErr(err, "create reading")
	}

	logger.Info("Reading saved", zap.Uint("id", reading.ID))

	input.ID = reading.ID
	input.Timestamp = reading.Timestamp
	return reading.ID, nil
}

func (t *Tracker) getReading(ctx context.Context, id uint) (*models.GlucoseReading, error) {
	var reading models.GlucoseReading
	if err := t.Db.Conn.WithContext(ctx).First(&reading, id).Error; err != nil {
		return nil, findErr(err, common.ErrReadingNotFound, "get reading")
	}
	return &reading, nil
}

func (t *Tracker) deleteReading(ctx context.Context, id uint) error {
	result := t.Db.Conn.WithContext(ctx).Delete(&models.GlucoseReading{}, id)
	if result.Error != nil {
		return storageErr(result.Error, "delete reading")
	}
	if result.RowsAffected == 0 {
		return common.ErrReadingNotFound
	}
	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryReading).
		Info("Reading deleted", zap.Uint("id", id))
	return nil
}

func readingsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.GlucoseReading{}).Order("timestamp desc")
}

func (t *Tracker) listReadings(ctx context.Context) ([]models.GlucoseReading, error) {
	var readings []models.GlucoseReading
	err := readingsQuery(t.Db.Conn.WithContext(ctx)).Find(&readings).Error
	return readings, storageErr(err, "list readings")
}

func (t *Tracker) readingsSince(ctx context.Context, since time.Time) ([]models.GlucoseReading, error) {
	var readings []models.GlucoseReading
	err := readingsQuery(t.Db.Conn.WithContext(ctx)).
		Where("timestamp >= ?", since.UTC()).
		Find(&readings).Error
	return readings, storageErr(err, "list readings")
}

func (t *Tracker) recentReadings(ctx context.Context, limit int) ([]models.GlucoseReading, error) {
	if limit <= 0 {
		limit = 10
	}
	var readings []models.GlucoseReading
	err := readingsQuery(t.Db.Conn.WithContext(ctx)).Limit(limit).Find(&readings).Error
	return readings, storageErr(err, "list recent readings")
}

func (t *Tracker) watchReadings(ctx context.Context) <-chan Snapshot[models.GlucoseReading] {
	return watch(ctx, t, []string{tableReadings}, func(tx *gorm.DB) ([]models.GlucoseReading, error) {
		var readings []models.GlucoseReading
		err := readingsQuery(tx).Find(&readings).Error
		return readings, err
	})
}

func (t *Tracker) watchReadingsSince(ctx context.Context, since time.Time) <-chan Snapshot[models.GlucoseReading] {
	return watch(ctx, t, []string{tableReadings}, func(tx *gorm.DB) ([]models.GlucoseReading, error) {
		var readings []models.GlucoseReading
		err := readingsQuery(tx).Where("timestamp >= ?", since.UTC()).Find(&readings).Error
		return readings, err
	})
}

type IReadingImpl struct {
	tracker *Tracker
}

func (ir *IReadingImpl) CreateReading(ctx context.Context, input *models.GlucoseReading) (uint, error) {
	return ir.tracker.createReading(ctx, input)
}

func (ir *IReadingImpl) GetReading(ctx context.Context, id uint) (*models.GlucoseReading, error) {
	return ir.tracker.getReading(ctx, id)
}

func (ir *IReadingImpl) DeleteReading(ctx context.Context, id uint) error {
	return ir.tracker.deleteReading(ctx, id)
}

func (ir *IReadingImpl) ListReadings(ctx context.Context) ([]models.GlucoseReading, error) {
	return ir.tracker.listReadings(ctx)
}

func (ir *IReadingImpl) ReadingsSince(ctx context.Context, since time.Time) ([]models.GlucoseReading, error) {
	return ir.tracker.readingsSince(ctx, since)
}

func (ir *IReadingImpl) RecentReadings(ctx context.Context, limit int) ([]models.GlucoseReading, error) {
	return ir.tracker.recentReadings(ctx, limit)
}

func (ir *IReadingImpl) WatchReadings(ctx context.Context) <-chan Snapshot[models.GlucoseReading] {
	return ir.tracker.watchReadings(ctx)
}

func (ir *IReadingImpl) WatchReadingsSince(ctx context.Context, since time.Time) <-chan Snapshot[models.GlucoseReading] {
	return ir.tracker.watchReadingsSince(ctx, since)
}

func (t *Tracker) GetIReading() IReading {
	return &IReadingImpl{tracker: t}
}
