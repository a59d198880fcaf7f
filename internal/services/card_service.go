package services

import (
	"context"
	stderrors "errors"

	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
)

// CardService handles flashcard authoring. Content rules are enforced here,
// at write time: a card that reaches the store always expands to at least one
// practice card.
type CardService interface {
	CreateCard(ctx context.Context, userID int64, rec models.CardRecord) (models.Flashcard, error)
	GetCard(ctx context.Context, id int64, userID int64) (models.Flashcard, error)
	ListCards(ctx context.Context, userID int64, filter models.CardFilter) ([]models.Flashcard, error)
	UpdateCard(ctx context.Context, userID int64, rec models.CardRecord) (models.Flashcard, error)
	DeleteCard(ctx context.Context, id int64, userID int64) error
}

type cardService struct {
	cards repository.FlashcardRepository
	decks repository.DeckRepository
}

// NewCardService creates a new CardService
func NewCardService(cards repository.FlashcardRepository, decks repository.DeckRepository) CardService {
	return &cardService{cards: cards, decks: decks}
}

func validateRecord(rec models.CardRecord) error {
	if err := rec.Validate(); err != nil {
		if stderrors.Is(err, models.ErrUnknownCardType) {
			return errors.NewInvalidCardTypeError(string(rec.CardType))
		}
		return errors.NewValidationError("card", err.Error())
	}
	return nil
}

func (s *cardService) CreateCard(ctx context.Context, userID int64, rec models.CardRecord) (models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating card: deck_id=%d, card_type=%s", rec.DeckID, rec.CardType)

	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	if err := s.checkDeck(ctx, rec.DeckID, userID); err != nil {
		return nil, err
	}

	card, err := rec.ToFlashcard()
	if err != nil {
		return nil, errors.NewInvalidCardTypeError(string(rec.CardType))
	}

	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.loadCard(ctx, id)
}

func (s *cardService) GetCard(ctx context.Context, id int64, userID int64) (models.Flashcard, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	if err := s.checkDeck(ctx, card.Fields().DeckID, userID); err != nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID int64, filter models.CardFilter) ([]models.Flashcard, error) {
	if filter.DeckID == 0 {
		return nil, errors.NewValidationError("deck_id", "must be provided")
	}
	if err := s.checkDeck(ctx, filter.DeckID, userID); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) UpdateCard(ctx context.Context, userID int64, rec models.CardRecord) (models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating card: id=%d", rec.ID)

	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	existing, err := s.GetCard(ctx, rec.ID, userID)
	if err != nil {
		return nil, err
	}
	// Cards stay in their deck; moving between decks is a delete+create.
	rec.DeckID = existing.Fields().DeckID

	card, err := rec.ToFlashcard()
	if err != nil {
		return nil, errors.NewInvalidCardTypeError(string(rec.CardType))
	}

	if err := s.cards.Update(ctx, card); err != nil {
		log.Error("failed to update card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.loadCard(ctx, rec.ID)
}

func (s *cardService) DeleteCard(ctx context.Context, id int64, userID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting card: id=%d", id)

	if _, err := s.GetCard(ctx, id, userID); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *cardService) checkDeck(ctx context.Context, deckID int64, userID int64) error {
	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to check deck ownership: %v", err)
		return errors.NewInternalError(err)
	}
	if deck == nil || deck.UserID != userID {
		return errors.NewNotFoundError("deck", deckID)
	}
	return nil
}

func (s *cardService) loadCard(ctx context.Context, id int64) (models.Flashcard, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}
