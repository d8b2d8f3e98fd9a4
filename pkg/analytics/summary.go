// Package analytics derives target-range statistics and plain-language
// insights from a window of glucose readings.
package analytics

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"liyu1981.xyz/glucose-tracker/pkg/models"
)

const (
	InsightStartLogging  = "Start logging your glucose readings to see personalized insights!"
	InsightLogMore       = "Try to log more readings for better insights and tracking."
	InsightConsistent    = "Great job maintaining consistent glucose monitoring!"
	excellentInRangeFrom = 80
	goodInRangeFrom      = 60
	fewReadingsBelow     = 10
	manyReadingsFrom     = 30
)

type Summary struct {
	Total             int      `json:"total_readings"`
	Average           int      `json:"average_glucose"`
	TargetMin         int      `json:"target_glucose_min"`
	TargetMax         int      `json:"target_glucose_max"`
	BelowCount        int      `json:"below_target_count"`
	InRangeCount      int      `json:"in_target_count"`
	AboveCount        int      `json:"above_target_count"`
	BelowPercentage   int      `json:"below_target_percentage"`
	InRangePercentage int      `json:"in_target_percentage"`
	AbovePercentage   int      `json:"above_target_percentage"`
	Insights          []string `json:"insights"`
}

// Band places a level relative to an inclusive target range.
type Band int

const (
	Below Band = iota - 1
	InRange
	Above
)

func Classify(level, min, max int) Band {
	switch {
	case level < min:
		return Below
	case level > max:
		return Above
	default:
		return InRange
	}
}

func (b Band) String() string {
	switch b {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "within"
	}
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

// ComputeSummary partitions readings against the profile's target range.
// Percentages are rounded independently and need not sum to 100.
func ComputeSummary(profile models.UserProfile, readings []models.GlucoseReading) Summary {
	summary := Summary{
		Total:     len(readings),
		TargetMin: profile.TargetGlucoseMin,
		TargetMax: profile.TargetGlucoseMax,
	}
	if summary.Total == 0 {
		summary.Insights = []string{InsightStartLogging}
		return summary
	}

	levels := lo.Map(readings, func(r models.GlucoseReading, _ int) int { return r.GlucoseLevel })
	summary.Average = int(math.Round(float64(lo.Sum(levels)) / float64(summary.Total)))

	bands := lo.CountValuesBy(levels, func(level int) Band {
		return Classify(level, profile.TargetGlucoseMin, profile.TargetGlucoseMax)
	})
	summary.BelowCount = bands[Below]
	summary.InRangeCount = bands[InRange]
	summary.AboveCount = bands[Above]

	summary.BelowPercentage = percent(summary.BelowCount, summary.Total)
	summary.InRangePercentage = percent(summary.InRangeCount, summary.Total)
	summary.AbovePercentage = percent(summary.AboveCount, summary.Total)

	summary.Insights = insights(summary)
	return summary
}

func insights(s Summary) []string {
	var out []string

	switch {
	case s.InRangePercentage >= excellentInRangeFrom:
		out = append(out, fmt.Sprintf("Excellent! You stayed within your target range %d%% of the time.", s.InRangePercentage))
	case s.InRangePercentage >= goodInRangeFrom:
		out = append(out, fmt.Sprintf("Good progress! You stayed within your target range %d%% of the time.", s.InRangePercentage))
	default:
		out = append(out, fmt.Sprintf("You stayed within your target range %d%% of the time. Consider consulting with your healthcare provider.", s.InRangePercentage))
	}

	band := Classify(s.Average, s.TargetMin, s.TargetMax)
	out = append(out, fmt.Sprintf("Your average glucose level (%d mg/dL) is %s your target range.", s.Average, band))

	if s.Total < fewReadingsBelow {
		out = append(out, InsightLogMore)
	} else if s.Total >= manyReadingsFrom {
		out = append(out, InsightConsistent)
	}
	return out
}
