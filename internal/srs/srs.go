// Package srs maps recall-quality ratings to fixed review intervals. This is
// a deliberately simple fixed-interval scheduler, intended to be swapped for
// an adaptive SM-2-style engine later without changing the call surface.
package srs

import (
	"errors"
	"time"

	"github.com/mvieira/lexiflash/internal/models"
)

// ErrInvalidQuality is returned for quality values outside 0 (again) to 3 (easy).
var ErrInvalidQuality = errors.New("quality must be between 0 (again) and 3 (easy)")

// Review interval in days per quality rating.
var intervals = [...]int{
	models.QualityAgain: 1,
	models.QualityHard:  3,
	models.QualityGood:  7,
	models.QualityEasy:  30,
}

// Calculate maps a quality rating to the next review interval and date.
// currentInterval is accepted for forward compatibility with an adaptive
// scheduler and does not affect the result in this version. Out-of-range
// quality is rejected rather than defaulting to the shortest interval.
func Calculate(quality models.ReviewQuality, currentInterval int) (models.ScheduleResult, error) {
	return CalculateAt(quality, currentInterval, time.Now())
}

// CalculateAt is Calculate with an explicit clock. The next review date is
// now plus the interval in calendar days.
func CalculateAt(quality models.ReviewQuality, currentInterval int, now time.Time) (models.ScheduleResult, error) {
	if !quality.Valid() {
		return models.ScheduleResult{}, ErrInvalidQuality
	}
	days := intervals[quality]
	return models.ScheduleResult{
		IntervalDays:   days,
		NextReviewDate: now.AddDate(0, 0, days),
	}, nil
}
