package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mvieira/lexiflash/internal/cloze"
)

// CardType discriminates the flashcard union.
type CardType string

const (
	CardTypeBasic         CardType = "basic"
	CardTypeBasicReversed CardType = "basic_reversed"
	CardTypeBasicWithText CardType = "basic_with_text"
	CardTypeCloze         CardType = "cloze"
)

// Valid reports whether t is one of the recognized card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeBasic, CardTypeBasicReversed, CardTypeBasicWithText, CardTypeCloze:
		return true
	}
	return false
}

// IsBasic reports whether t is one of the front/back card types.
func (t CardType) IsBasic() bool {
	return t == CardTypeBasic || t == CardTypeBasicReversed || t == CardTypeBasicWithText
}

// ErrUnknownCardType is returned when a record carries a card_type outside the union.
var ErrUnknownCardType = errors.New("unknown card type")

// CardFields holds the columns shared by every card type, including the
// per-card review state owned by the store.
type CardFields struct {
	ID            int64
	DeckID        int64
	Extra         string
	Notes         string
	Source        string
	SourceID      string
	IntervalDays  int
	NextReviewAt  time.Time
	TimesReviewed int
	TimesCorrect  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Flashcard is the tagged union over basic and cloze cards. Type-specific
// fields are only reachable after narrowing to the concrete struct.
type Flashcard interface {
	Type() CardType
	Fields() CardFields
}

// BasicFlashcard is a front/back card. CardType is one of basic,
// basic_reversed, or basic_with_text.
type BasicFlashcard struct {
	CardFields
	CardType CardType
	Front    string
	Back     string
}

func (c BasicFlashcard) Type() CardType     { return c.CardType }
func (c BasicFlashcard) Fields() CardFields { return c.CardFields }

// ClozeFlashcard is a card whose text carries one or more deletion markers.
type ClozeFlashcard struct {
	CardFields
	ClozeText string
}

func (c ClozeFlashcard) Type() CardType     { return CardTypeCloze }
func (c ClozeFlashcard) Fields() CardFields { return c.CardFields }

// CardRecord is the flat encoding of a Flashcard used at the persistence and
// API boundaries. Everything past construction works with the union.
type CardRecord struct {
	ID            int64     `json:"id"`
	DeckID        int64     `json:"deck_id"`
	CardType      CardType  `json:"card_type"`
	Front         string    `json:"front,omitempty"`
	Back          string    `json:"back,omitempty"`
	ClozeText     string    `json:"cloze_text,omitempty"`
	Extra         string    `json:"extra,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Source        string    `json:"source,omitempty"`
	SourceID      string    `json:"source_id,omitempty"`
	IntervalDays  int       `json:"interval_days"`
	NextReviewAt  time.Time `json:"next_review_at"`
	TimesReviewed int       `json:"times_reviewed"`
	TimesCorrect  int       `json:"times_correct"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToFlashcard narrows the record into the union. An unrecognized card_type is
// rejected here, before the record can reach the practice generator.
func (r CardRecord) ToFlashcard() (Flashcard, error) {
	fields := CardFields{
		ID:            r.ID,
		DeckID:        r.DeckID,
		Extra:         r.Extra,
		Notes:         r.Notes,
		Source:        r.Source,
		SourceID:      r.SourceID,
		IntervalDays:  r.IntervalDays,
		NextReviewAt:  r.NextReviewAt,
		TimesReviewed: r.TimesReviewed,
		TimesCorrect:  r.TimesCorrect,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	switch r.CardType {
	case CardTypeBasic, CardTypeBasicReversed, CardTypeBasicWithText:
		return BasicFlashcard{CardFields: fields, CardType: r.CardType, Front: r.Front, Back: r.Back}, nil
	case CardTypeCloze:
		return ClozeFlashcard{CardFields: fields, ClozeText: r.ClozeText}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCardType, r.CardType)
	}
}

// RecordOf flattens a Flashcard back into its record encoding.
func RecordOf(card Flashcard) CardRecord {
	f := card.Fields()
	rec := CardRecord{
		ID:            f.ID,
		DeckID:        f.DeckID,
		CardType:      card.Type(),
		Extra:         f.Extra,
		Notes:         f.Notes,
		Source:        f.Source,
		SourceID:      f.SourceID,
		IntervalDays:  f.IntervalDays,
		NextReviewAt:  f.NextReviewAt,
		TimesReviewed: f.TimesReviewed,
		TimesCorrect:  f.TimesCorrect,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	switch c := card.(type) {
	case BasicFlashcard:
		rec.Front = c.Front
		rec.Back = c.Back
	case ClozeFlashcard:
		rec.ClozeText = c.ClozeText
	}
	return rec
}

// Validate enforces write-time content rules: basic cards need a non-empty
// front and back, cloze text must parse to at least one deletion, and
// duplicate deletion indices are rejected rather than guessed at.
func (r CardRecord) Validate() error {
	switch {
	case !r.CardType.Valid():
		return fmt.Errorf("%w: %q", ErrUnknownCardType, r.CardType)
	case r.CardType.IsBasic():
		if r.Front == "" {
			return errors.New("front must not be empty")
		}
		if r.Back == "" {
			return errors.New("back must not be empty")
		}
	default:
		matches := cloze.Parse(r.ClozeText)
		if len(matches) == 0 {
			return errors.New("cloze_text must contain at least one {{cN::word}} deletion")
		}
		if dups := cloze.DuplicateIndices(matches); len(dups) > 0 {
			return fmt.Errorf("cloze_text repeats deletion index %d", dups[0])
		}
	}
	return nil
}
