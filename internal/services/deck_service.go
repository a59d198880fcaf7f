package services

import (
	"context"
	"strings"

	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
)

// DeckService handles deck-related business logic
type DeckService interface {
	CreateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error)
	GetDeck(ctx context.Context, id int64, userID int64) (*models.Deck, error)
	ListDecks(ctx context.Context, userID int64) ([]models.Deck, error)
	UpdateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id int64, userID int64) error
}

type deckService struct {
	decks repository.DeckRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository) DeckService {
	return &deckService{decks: decks}
}

func (s *deckService) CreateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating deck: user_id=%d, name=%s", deck.UserID, deck.Name)

	deck.Name = strings.TrimSpace(deck.Name)
	if deck.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	id, err := s.decks.Insert(ctx, deck)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.loadDeck(ctx, id)
}

func (s *deckService) GetDeck(ctx context.Context, id int64, userID int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil || deck.UserID != userID {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, userID int64) ([]models.Deck, error) {
	decks, err := s.decks.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) UpdateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating deck: id=%d", deck.ID)

	deck.Name = strings.TrimSpace(deck.Name)
	if deck.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	// Ownership check before writing.
	if _, err := s.GetDeck(ctx, deck.ID, deck.UserID); err != nil {
		return nil, err
	}

	if err := s.decks.Update(ctx, deck); err != nil {
		log.Error("failed to update deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.loadDeck(ctx, deck.ID)
}

func (s *deckService) DeleteDeck(ctx context.Context, id int64, userID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting deck: id=%d", id)

	if _, err := s.GetDeck(ctx, id, userID); err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, id); err != nil {
		log.Error("failed to delete deck: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("deck deleted: id=%d", id)
	return nil
}

func (s *deckService) loadDeck(ctx context.Context, id int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}
