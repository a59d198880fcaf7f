package services

import (
	"context"
	stderrors "errors"

	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/practice"
	"github.com/mvieira/lexiflash/internal/repository"
	"github.com/mvieira/lexiflash/internal/srs"
)

// ReviewService applies one review submission: quality rating in, schedule
// result out, new review state persisted.
type ReviewService interface {
	SubmitReview(ctx context.Context, cardID int64, cardIndex int, userID int64, quality models.ReviewQuality, timeSeconds float64) (*models.ScheduleResult, error)
}

type reviewService struct {
	cards repository.FlashcardRepository
	decks repository.DeckRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(cards repository.FlashcardRepository, decks repository.DeckRepository) ReviewService {
	return &reviewService{cards: cards, decks: decks}
}

func (s *reviewService) SubmitReview(ctx context.Context, cardID int64, cardIndex int, userID int64, quality models.ReviewQuality, timeSeconds float64) (*models.ScheduleResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing card: card_id=%d, card_index=%d, quality=%d", cardID, cardIndex, quality)

	if !quality.Valid() {
		return nil, errors.NewInvalidQualityError(int(quality))
	}

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", cardID)
	}

	deck, err := s.decks.Get(ctx, card.Fields().DeckID)
	if err != nil {
		log.Error("failed to check deck ownership: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil || deck.UserID != userID {
		return nil, errors.NewNotFoundError("card", cardID)
	}

	// The index must name one of the card's actual variants.
	variants := practice.Cards(card, deck.Name)
	if !validCardIndex(variants, cardIndex) {
		return nil, errors.NewValidationError("card_index", "does not identify a variant of this card")
	}

	result, err := srs.Calculate(quality, card.Fields().IntervalDays)
	if err != nil {
		if stderrors.Is(err, srs.ErrInvalidQuality) {
			return nil, errors.NewInvalidQualityError(int(quality))
		}
		return nil, errors.NewInternalError(err)
	}

	log.Debug("scheduled next review: interval=%d days", result.IntervalDays)

	correct := quality >= models.QualityGood
	if err := s.cards.UpdateReviewState(ctx, cardID, result, correct); err != nil {
		log.Error("failed to update review state: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Store review history with timing data (non-blocking)
	if err := s.cards.InsertReviewHistory(ctx, cardID, cardIndex, int(quality), timeSeconds); err != nil {
		log.Warn("failed to store review history: %v", err)
		// Don't fail the review if history storage fails
	}

	return &result, nil
}

func validCardIndex(variants []models.PracticeCard, cardIndex int) bool {
	for _, v := range variants {
		if v.CardIndex == cardIndex {
			return true
		}
	}
	return false
}
