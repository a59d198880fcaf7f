package sqlite_test

import (
	"context"
	"testing"

	"github.com/mvieira/lexiflash/internal/db"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
	"github.com/mvieira/lexiflash/internal/repository/sqlite"
	"github.com/mvieira/lexiflash/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type DeckRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.DeckRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDeckRepository(s.db.DB)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Deck{
		UserID:      1,
		Name:        "Spanish 101",
		Description: "beginner vocabulary",
	})
	s.Require().NoError(err)
	s.Require().NotZero(id)

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(deck)
	s.Equal("Spanish 101", deck.Name)
	s.Equal("beginner vocabulary", deck.Description)
	s.Equal(int64(1), deck.UserID)
	s.Nil(deck.CourseID)
	s.False(deck.CreatedAt.IsZero())
}

func (s *DeckRepositorySuite) TestGet_NotFound() {
	deck, err := s.repo.Get(context.Background(), 999)
	s.Require().NoError(err)
	s.Nil(deck)
}

func (s *DeckRepositorySuite) TestList_FiltersByUser() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Deck{UserID: 1, Name: "Verbs"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Deck{UserID: 1, Name: "Animals"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Deck{UserID: 2, Name: "Other user"})
	s.Require().NoError(err)

	decks, err := s.repo.List(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(decks, 2)
	// Ordered by name.
	s.Equal("Animals", decks[0].Name)
	s.Equal("Verbs", decks[1].Name)
}

func (s *DeckRepositorySuite) TestUpdate() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Deck{UserID: 1, Name: "Old name"})
	s.Require().NoError(err)

	courseID := int64(42)
	err = s.repo.Update(ctx, models.Deck{
		ID:          id,
		Name:        "New name",
		Description: "updated",
		CourseID:    &courseID,
	})
	s.Require().NoError(err)

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("New name", deck.Name)
	s.Equal("updated", deck.Description)
	s.Require().NotNil(deck.CourseID)
	s.Equal(int64(42), *deck.CourseID)
}

func (s *DeckRepositorySuite) TestDelete_CascadesCards() {
	ctx := context.Background()

	deckID, err := s.repo.Insert(ctx, models.Deck{UserID: 1, Name: "Doomed"})
	s.Require().NoError(err)

	cards := sqlite.NewFlashcardRepository(s.db.DB)
	cardID, err := cards.Insert(ctx, models.BasicFlashcard{
		CardFields: models.CardFields{DeckID: deckID},
		CardType:   models.CardTypeBasic,
		Front:      "hola",
		Back:       "hello",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, deckID))

	deck, err := s.repo.Get(ctx, deckID)
	s.Require().NoError(err)
	s.Nil(deck)

	card, err := cards.Get(ctx, cardID)
	s.Require().NoError(err)
	s.Nil(card)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}
