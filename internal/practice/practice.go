// Package practice expands stored flashcards into the concrete prompt/answer
// cards a learner reviews in one pass.
package practice

import (
	"github.com/mvieira/lexiflash/internal/cloze"
	"github.com/mvieira/lexiflash/internal/models"
)

// Cards expands a flashcard into its reviewable variants. It is pure and
// total over well-formed cards; a cloze card whose text has no deletions
// yields an empty slice, which upstream treats as an authoring defect.
func Cards(card models.Flashcard, deckName string) []models.PracticeCard {
	switch c := card.(type) {
	case models.BasicFlashcard:
		return BasicCards(c, deckName)
	case models.ClozeFlashcard:
		return ClozeCards(c, deckName)
	default:
		return nil
	}
}

// BasicCards emits the forward card, plus a reverse card when the type is
// basic_reversed.
func BasicCards(card models.BasicFlashcard, deckName string) []models.PracticeCard {
	cards := []models.PracticeCard{{
		CardID:      card.ID,
		CardIndex:   0,
		DeckID:      card.DeckID,
		DeckName:    deckName,
		CardType:    card.CardType,
		Prompt:      card.Front,
		Answer:      card.Back,
		FullContent: card.Back,
		Extra:       card.Extra,
		Notes:       card.Notes,
	}}
	if card.CardType == models.CardTypeBasicReversed {
		cards = append(cards, models.PracticeCard{
			CardID:      card.ID,
			CardIndex:   1,
			DeckID:      card.DeckID,
			DeckName:    deckName,
			CardType:    card.CardType,
			Prompt:      card.Back,
			Answer:      card.Front,
			FullContent: card.Front,
			Extra:       card.Extra,
			Notes:       card.Notes,
		})
	}
	return cards
}

// ClozeCards emits one card per parsed deletion, ascending by index. The
// prompt hides that single deletion (with its hint when present); every card
// shares the fully de-clozed text as FullContent.
func ClozeCards(card models.ClozeFlashcard, deckName string) []models.PracticeCard {
	matches := cloze.Parse(card.ClozeText)
	if len(matches) == 0 {
		return nil
	}
	full := cloze.Render(card.ClozeText, nil, false)
	cards := make([]models.PracticeCard, 0, len(matches))
	for _, m := range matches {
		cards = append(cards, models.PracticeCard{
			CardID:      card.ID,
			CardIndex:   m.Index - 1,
			DeckID:      card.DeckID,
			DeckName:    deckName,
			CardType:    models.CardTypeCloze,
			Prompt:      cloze.Render(card.ClozeText, []int{m.Index}, true),
			Answer:      m.Word,
			FullContent: full,
			Extra:       card.Extra,
			Notes:       card.Notes,
		})
	}
	return cards
}
