package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
	"github.com/mvieira/lexiflash/internal/worker"
)

// ImportService queues bulk card imports for background processing.
type ImportService interface {
	// QueueImport validates the batch shape and enqueues it. Returns the
	// batch ID and the number of records queued.
	QueueImport(ctx context.Context, userID int64, deckID int64, records []models.CardRecord) (string, int, error)
}

type importService struct {
	cards repository.FlashcardRepository
	decks repository.DeckRepository
	pool  *worker.Pool
}

// NewImportService creates a new ImportService
func NewImportService(cards repository.FlashcardRepository, decks repository.DeckRepository, pool *worker.Pool) ImportService {
	return &importService{cards: cards, decks: decks, pool: pool}
}

func (s *importService) QueueImport(ctx context.Context, userID int64, deckID int64, records []models.CardRecord) (string, int, error) {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return "", 0, errors.NewValidationError("cards", "batch must not be empty")
	}

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		log.Error("failed to load deck for import: %v", err)
		return "", 0, errors.NewInternalError(err)
	}
	if deck == nil || deck.UserID != userID {
		return "", 0, errors.NewNotFoundError("deck", deckID)
	}

	batchID := uuid.NewString()
	log.Info("queueing import of %d cards into deck %d (batch %s)", len(records), deckID, batchID)

	s.pool.Submit(&worker.ImportCardsJob{
		Cards:   s.cards,
		Deck:    *deck,
		Records: records,
		BatchID: batchID,
	})
	return batchID, len(records), nil
}
