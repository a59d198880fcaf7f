package services

import (
	"context"

	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/practice"
	"github.com/mvieira/lexiflash/internal/repository"
)

// PracticeService assembles the practice cards for one review pass.
type PracticeService interface {
	DueCards(ctx context.Context, userID int64, limit int) ([]models.PracticeCard, error)
}

type practiceService struct {
	cards repository.FlashcardRepository
}

// NewPracticeService creates a new PracticeService
func NewPracticeService(cards repository.FlashcardRepository) PracticeService {
	return &practiceService{cards: cards}
}

func (s *practiceService) DueCards(ctx context.Context, userID int64, limit int) ([]models.PracticeCard, error) {
	log := logger.FromContext(ctx)
	log.Debug("assembling due practice cards: user_id=%d, limit=%d", userID, limit)

	if limit <= 0 {
		limit = 20
	}

	due, err := s.cards.DueFlashcards(ctx, userID, limit)
	if err != nil {
		log.Error("failed to load due flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	var out []models.PracticeCard
	for _, d := range due {
		expanded := practice.Cards(d.Card, d.DeckName)
		if len(expanded) == 0 {
			// A stored cloze card with no deletions is an authoring defect
			// that slipped past write-time validation; skip it rather than
			// surface an unanswerable card.
			log.Warn("flashcard %d expands to zero practice cards, skipping", d.Card.Fields().ID)
			continue
		}
		out = append(out, expanded...)
	}

	log.Debug("expanded %d stored cards into %d practice cards", len(due), len(out))
	return out, nil
}
