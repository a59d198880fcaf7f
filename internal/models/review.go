package models

import "time"

// ReviewQuality is the learner's recall rating for one practice card.
type ReviewQuality int

const (
	QualityAgain ReviewQuality = iota
	QualityHard
	QualityGood
	QualityEasy
)

// Valid reports whether q is within the accepted 0-3 range.
func (q ReviewQuality) Valid() bool {
	return q >= QualityAgain && q <= QualityEasy
}

func (q ReviewQuality) String() string {
	switch q {
	case QualityAgain:
		return "again"
	case QualityHard:
		return "hard"
	case QualityGood:
		return "good"
	case QualityEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// ScheduleResult is the scheduler's output for one review submission.
type ScheduleResult struct {
	IntervalDays   int       `json:"interval_days"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// ReviewHistory records a single submitted review.
type ReviewHistory struct {
	ID          int64     `json:"id"`
	FlashcardID int64     `json:"flashcard_id"`
	CardIndex   int       `json:"card_index"`
	Quality     int       `json:"quality"`
	TimeSeconds float64   `json:"time_seconds"`
	ReviewedAt  time.Time `json:"reviewed_at"`
}
