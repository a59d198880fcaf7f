package api

import (
	"net/http"

	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
)

type deckRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	CourseID    *int64 `json:"course_id"`
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	decks, err := s.DeckService.ListDecks(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if decks == nil {
		decks = []models.Deck{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"decks": decks})
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := userIDFromContext(r.Context())

	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.CreateDeck(r.Context(), models.Deck{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CourseID:    req.CourseID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("deck created: id=%d", deck.ID)
	respondJSON(w, http.StatusCreated, deck)
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.GetDeck(r.Context(), id, userIDFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, deck)
}

func (s *Server) handleUpdateDeck(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.UpdateDeck(r.Context(), models.Deck{
		ID:          id,
		UserID:      userIDFromContext(r.Context()),
		Name:        req.Name,
		Description: req.Description,
		CourseID:    req.CourseID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, deck)
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.DeckService.DeleteDeck(r.Context(), id, userIDFromContext(r.Context())); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("deck deleted: id=%d", id)
	respondJSON(w, http.StatusNoContent, nil)
}
