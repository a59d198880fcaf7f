package repository

import (
	"context"

	"github.com/mvieira/lexiflash/internal/models"
)

// DeckRepository handles deck data access
type DeckRepository interface {
	Insert(ctx context.Context, deck models.Deck) (int64, error)
	Get(ctx context.Context, id int64) (*models.Deck, error)
	List(ctx context.Context, userID int64) ([]models.Deck, error)
	Update(ctx context.Context, deck models.Deck) error
	// Delete removes the deck and cascades to its cards.
	Delete(ctx context.Context, id int64) error
}

// FlashcardRepository handles flashcard data access and per-card review state
type FlashcardRepository interface {
	Insert(ctx context.Context, card models.Flashcard) (int64, error)
	InsertBatch(ctx context.Context, cards []models.Flashcard) ([]int64, error)
	Get(ctx context.Context, id int64) (models.Flashcard, error)
	List(ctx context.Context, filter models.CardFilter) ([]models.Flashcard, error)
	Update(ctx context.Context, card models.Flashcard) error
	Delete(ctx context.Context, id int64) error
	// DueFlashcards returns cards owned by the user whose next review date has
	// passed, paired with their deck names.
	DueFlashcards(ctx context.Context, userID int64, limit int) ([]models.DueCard, error)
	UpdateReviewState(ctx context.Context, id int64, result models.ScheduleResult, correct bool) error
	InsertReviewHistory(ctx context.Context, flashcardID int64, cardIndex int, quality int, timeSeconds float64) error
}
