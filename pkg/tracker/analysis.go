package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"liyu1981.xyz/glucose-tracker/pkg/analytics"
	"liyu1981.xyz/glucose-tracker/pkg/common"
)

const DefaultAnalysisWindow = 30 * 24 * time.Hour

// summarize evaluates the active profile's target range over the readings of
// the last window.
func (t *Tracker) summarize(ctx context.Context, window time.Duration) (*analytics.Summary, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryAnalysis)

	if window <= 0 {
		window = DefaultAnalysisWindow
	}

	profile, err := t.Profile.GetActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	readings, err := t.Reading.ReadingsSince(ctx, t.now().Add(-window))
	if err != nil {
		return nil, err
	}

	summary := analytics.ComputeSummary(*profile, readings)

	logger.Info("Summary computed",
		zap.String("username", profile.Username),
		zap.Duration("window", window),
		zap.Int("total", summary.Total),
		zap.Int("in_range_percentage", summary.InRangePercentage))
	return &summary, nil
}

type IAnalysisImpl struct {
	tracker *Tracker
}

func (ia *IAnalysisImpl) Summarize(ctx context.Context, window time.Duration) (*analytics.Summary, error) {
	return ia.tracker.summarize(ctx, window)
}

func (t *Tracker) GetIAnalysis() IAnalysis {
	return &IAnalysisImpl{tracker: t}
}
