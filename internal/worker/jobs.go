package worker

import (
	"context"

	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
)

// ImportCardsJob validates and inserts a batch of authored cards into a deck.
// Records that fail content validation are skipped and logged; the rest are
// inserted in one transaction.
type ImportCardsJob struct {
	Cards   repository.FlashcardRepository
	Deck    models.Deck
	Records []models.CardRecord
	BatchID string
}

func (j *ImportCardsJob) Name() string { return "import_cards" }

func (j *ImportCardsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"batch_id": j.BatchID,
		"deck_id":  j.Deck.ID,
	})
	log.Info("starting card import: %d records", len(j.Records))

	var cards []models.Flashcard
	var skipped int
	for i, rec := range j.Records {
		rec.DeckID = j.Deck.ID
		if rec.Source == "" {
			rec.Source = "import"
		}
		if rec.SourceID == "" {
			rec.SourceID = j.BatchID
		}
		if err := rec.Validate(); err != nil {
			log.Warn("skipping record %d: %v", i, err)
			skipped++
			continue
		}
		card, err := rec.ToFlashcard()
		if err != nil {
			log.Warn("skipping record %d: %v", i, err)
			skipped++
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		log.Warn("no valid records in batch, nothing imported")
		return nil
	}

	ids, err := j.Cards.InsertBatch(ctx, cards)
	if err != nil {
		log.Error("failed to insert imported cards: %v", err)
		return err
	}

	log.Info("imported %d cards, skipped %d", len(ids), skipped)
	return nil
}
