package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/mvieira/lexiflash/internal/db"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
	"github.com/mvieira/lexiflash/internal/repository/sqlite"
	"github.com/mvieira/lexiflash/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type FlashcardRepositorySuite struct {
	suite.Suite
	db    *db.DB
	repo  repository.FlashcardRepository
	decks repository.DeckRepository
}

func (s *FlashcardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewFlashcardRepository(s.db.DB)
	s.decks = sqlite.NewDeckRepository(s.db.DB)
}

func (s *FlashcardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *FlashcardRepositorySuite) setupDeck(userID int64, name string) int64 {
	id, err := s.decks.Insert(context.Background(), models.Deck{UserID: userID, Name: name})
	s.Require().NoError(err)
	return id
}

func (s *FlashcardRepositorySuite) TestInsertAndGet_Basic() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Greetings")

	id, err := s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID, Extra: "informal", Source: "lesson-1"},
		CardType:   models.CardTypeBasicReversed,
		Front:      "hola",
		Back:       "hello",
	})
	s.Require().NoError(err)

	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(card)

	basic, ok := card.(models.BasicFlashcard)
	s.Require().True(ok)
	s.Equal(models.CardTypeBasicReversed, basic.Type())
	s.Equal("hola", basic.Front)
	s.Equal("hello", basic.Back)
	s.Equal("informal", basic.Fields().Extra)
	s.Equal("lesson-1", basic.Fields().Source)
	s.Equal(0, basic.Fields().IntervalDays)
}

func (s *FlashcardRepositorySuite) TestInsertAndGet_Cloze() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Sentences")

	id, err := s.repo.Insert(ctx, models.ClozeFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		ClozeText:  "El {{c1::perro}} corre.",
	})
	s.Require().NoError(err)

	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	clz, ok := card.(models.ClozeFlashcard)
	s.Require().True(ok)
	s.Equal("El {{c1::perro}} corre.", clz.ClozeText)
}

func (s *FlashcardRepositorySuite) TestGet_NotFound() {
	card, err := s.repo.Get(context.Background(), 12345)
	s.Require().NoError(err)
	s.Nil(card)
}

func (s *FlashcardRepositorySuite) TestInsertBatch() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Batch")

	cards := []models.Flashcard{
		models.BasicFlashcard{CardFields: models.CardFields{DeckID: deckID}, CardType: models.CardTypeBasic, Front: "uno", Back: "one"},
		models.BasicFlashcard{CardFields: models.CardFields{DeckID: deckID}, CardType: models.CardTypeBasic, Front: "dos", Back: "two"},
		models.ClozeFlashcard{CardFields: models.CardFields{DeckID: deckID}, ClozeText: "{{c1::tres}}"},
	}

	ids, err := s.repo.InsertBatch(ctx, cards)
	s.Require().NoError(err)
	s.Require().Len(ids, 3)

	listed, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID})
	s.Require().NoError(err)
	s.Len(listed, 3)
}

func (s *FlashcardRepositorySuite) TestList_Filters() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Mixed")
	otherDeckID := s.setupDeck(1, "Other")

	_, err := s.repo.Insert(ctx, models.BasicFlashcard{CardFields: models.CardFields{DeckID: deckID, Source: "import"}, CardType: models.CardTypeBasic, Front: "a", Back: "b"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.ClozeFlashcard{CardFields: models.CardFields{DeckID: deckID}, ClozeText: "{{c1::x}}"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.BasicFlashcard{CardFields: models.CardFields{DeckID: otherDeckID}, CardType: models.CardTypeBasic, Front: "c", Back: "d"})
	s.Require().NoError(err)

	byDeck, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID})
	s.Require().NoError(err)
	s.Len(byDeck, 2)

	byType, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, CardType: models.CardTypeCloze})
	s.Require().NoError(err)
	s.Require().Len(byType, 1)
	s.Equal(models.CardTypeCloze, byType[0].Type())

	bySource, err := s.repo.List(ctx, models.CardFilter{Source: "import"})
	s.Require().NoError(err)
	s.Len(bySource, 1)

	limited, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, Limit: 1})
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *FlashcardRepositorySuite) TestUpdate() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Edits")

	id, err := s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		CardType:   models.CardTypeBasic,
		Front:      "ola",
		Back:       "hello",
	})
	s.Require().NoError(err)

	err = s.repo.Update(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{ID: id, DeckID: deckID, Notes: "fixed typo"},
		CardType:   models.CardTypeBasic,
		Front:      "hola",
		Back:       "hello",
	})
	s.Require().NoError(err)

	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	basic := card.(models.BasicFlashcard)
	s.Equal("hola", basic.Front)
	s.Equal("fixed typo", basic.Fields().Notes)
}

func (s *FlashcardRepositorySuite) TestDueFlashcards() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Due deck")
	otherUserDeck := s.setupDeck(2, "Not mine")

	// New cards default to due immediately.
	dueID, err := s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		CardType:   models.CardTypeBasic,
		Front:      "hola", Back: "hello",
	})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: otherUserDeck},
		CardType:   models.CardTypeBasic,
		Front:      "x", Back: "y",
	})
	s.Require().NoError(err)

	due, err := s.repo.DueFlashcards(ctx, 1, 10)
	s.Require().NoError(err)
	s.Require().Len(due, 1)
	s.Equal(dueID, due[0].Card.Fields().ID)
	s.Equal("Due deck", due[0].DeckName)

	// Pushing the review date into the future removes the card from the queue.
	err = s.repo.UpdateReviewState(ctx, dueID, models.ScheduleResult{
		IntervalDays:   7,
		NextReviewDate: time.Now().UTC().AddDate(0, 0, 7),
	}, true)
	s.Require().NoError(err)

	due, err = s.repo.DueFlashcards(ctx, 1, 10)
	s.Require().NoError(err)
	s.Empty(due)
}

func (s *FlashcardRepositorySuite) TestUpdateReviewState_Counters() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "Counters")

	id, err := s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		CardType:   models.CardTypeBasic,
		Front:      "hola", Back: "hello",
	})
	s.Require().NoError(err)

	next := time.Now().UTC().AddDate(0, 0, 7)
	s.Require().NoError(s.repo.UpdateReviewState(ctx, id, models.ScheduleResult{IntervalDays: 7, NextReviewDate: next}, true))
	s.Require().NoError(s.repo.UpdateReviewState(ctx, id, models.ScheduleResult{IntervalDays: 7, NextReviewDate: next}, true))

	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(2, card.Fields().TimesReviewed)
	s.Equal(2, card.Fields().TimesCorrect)
	s.Equal(7, card.Fields().IntervalDays)

	// A failed review resets the correct streak.
	s.Require().NoError(s.repo.UpdateReviewState(ctx, id, models.ScheduleResult{IntervalDays: 1, NextReviewDate: next}, false))

	card, err = s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(3, card.Fields().TimesReviewed)
	s.Equal(0, card.Fields().TimesCorrect)
}

func (s *FlashcardRepositorySuite) TestInsertReviewHistory() {
	ctx := context.Background()
	deckID := s.setupDeck(1, "History")

	id, err := s.repo.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		CardType:   models.CardTypeBasic,
		Front:      "hola", Back: "hello",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.InsertReviewHistory(ctx, id, 0, 2, 3.5))

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_history WHERE flashcard_id = ?`, id).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func TestFlashcardRepositorySuite(t *testing.T) {
	suite.Run(t, new(FlashcardRepositorySuite))
}
