package services_test

import (
	"context"
	"testing"

	"github.com/mvieira/lexiflash/internal/errors"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/services"
	"github.com/mvieira/lexiflash/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 1

func testDeck() *models.Deck {
	return &models.Deck{ID: 10, UserID: testUserID, Name: "Spanish"}
}

func basicRecord() models.CardRecord {
	return models.CardRecord{
		DeckID:   10,
		CardType: models.CardTypeBasic,
		Front:    "perro",
		Back:     "dog",
	}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *errors.AppError, got %T", err)
	return appErr.Code
}

func TestCreateCard_Basic(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	rec := basicRecord()
	stored, err := rec.ToFlashcard()
	require.NoError(t, err)

	decks.On("Get", mock.Anything, int64(10)).Return(testDeck(), nil)
	cards.On("Insert", mock.Anything, mock.Anything).Return(int64(5), nil)
	cards.On("Get", mock.Anything, int64(5)).Return(stored, nil)

	card, err := svc.CreateCard(context.Background(), testUserID, rec)

	require.NoError(t, err)
	assert.Equal(t, models.CardTypeBasic, card.Type())
	cards.AssertExpectations(t)
	decks.AssertExpectations(t)
}

func TestCreateCard_UnknownType(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	rec := basicRecord()
	rec.CardType = "matching"

	_, err := svc.CreateCard(context.Background(), testUserID, rec)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidCardType, appCode(t, err))
	cards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateCard_ClozeWithoutDeletions(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	rec := models.CardRecord{
		DeckID:    10,
		CardType:  models.CardTypeCloze,
		ClozeText: "no deletions here",
	}

	_, err := svc.CreateCard(context.Background(), testUserID, rec)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, appCode(t, err))
	cards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateCard_DuplicateClozeIndices(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	rec := models.CardRecord{
		DeckID:    10,
		CardType:  models.CardTypeCloze,
		ClozeText: "El {{c1::perro}} come {{c1::carne}}",
	}

	_, err := svc.CreateCard(context.Background(), testUserID, rec)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, appCode(t, err))
}

func TestCreateCard_DeckNotOwned(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	otherDeck := testDeck()
	otherDeck.UserID = 99
	decks.On("Get", mock.Anything, int64(10)).Return(otherDeck, nil)

	_, err := svc.CreateCard(context.Background(), testUserID, basicRecord())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, appCode(t, err))
	cards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGetCard_NotFound(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	cards.On("Get", mock.Anything, int64(42)).Return(nil, nil)

	_, err := svc.GetCard(context.Background(), 42, testUserID)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, appCode(t, err))
}

func TestListCards_RequiresDeck(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	_, err := svc.ListCards(context.Background(), testUserID, models.CardFilter{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, appCode(t, err))
}

func TestUpdateCard_KeepsDeck(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	existingRec := basicRecord()
	existingRec.ID = 5
	existing, err := existingRec.ToFlashcard()
	require.NoError(t, err)

	rec := basicRecord()
	rec.ID = 5
	rec.DeckID = 999 // callers cannot move a card between decks
	rec.Back = "hound"

	decks.On("Get", mock.Anything, int64(10)).Return(testDeck(), nil)
	cards.On("Get", mock.Anything, int64(5)).Return(existing, nil)
	cards.On("Update", mock.Anything, mock.MatchedBy(func(card models.Flashcard) bool {
		return card.Fields().DeckID == 10
	})).Return(nil)

	_, err = svc.UpdateCard(context.Background(), testUserID, rec)

	require.NoError(t, err)
	cards.AssertExpectations(t)
}

func TestDeleteCard_Owned(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	decks := new(mocks.MockDeckRepository)
	svc := services.NewCardService(cards, decks)

	existingRec := basicRecord()
	existingRec.ID = 5
	existing, err := existingRec.ToFlashcard()
	require.NoError(t, err)

	decks.On("Get", mock.Anything, int64(10)).Return(testDeck(), nil)
	cards.On("Get", mock.Anything, int64(5)).Return(existing, nil)
	cards.On("Delete", mock.Anything, int64(5)).Return(nil)

	err = svc.DeleteCard(context.Background(), 5, testUserID)

	require.NoError(t, err)
	cards.AssertExpectations(t)
}
