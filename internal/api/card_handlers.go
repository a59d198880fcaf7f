package api

import (
	"net/http"

	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
)

type cardRequest struct {
	CardType  string `json:"card_type" validate:"required"`
	Front     string `json:"front"`
	Back      string `json:"back"`
	ClozeText string `json:"cloze_text"`
	Extra     string `json:"extra" validate:"max=2000"`
	Notes     string `json:"notes" validate:"max=2000"`
	Source    string `json:"source" validate:"max=200"`
	SourceID  string `json:"source_id" validate:"max=200"`
}

func (req cardRequest) record(id, deckID int64) models.CardRecord {
	return models.CardRecord{
		ID:        id,
		DeckID:    deckID,
		CardType:  models.CardType(req.CardType),
		Front:     req.Front,
		Back:      req.Back,
		ClozeText: req.ClozeText,
		Extra:     req.Extra,
		Notes:     req.Notes,
		Source:    req.Source,
		SourceID:  req.SourceID,
	}
}

func cardResponse(card models.Flashcard) models.CardRecord {
	return models.RecordOf(card)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.CardFilter{
		DeckID:   deckID,
		CardType: models.CardType(r.URL.Query().Get("card_type")),
		Source:   r.URL.Query().Get("source"),
	}

	cards, err := s.CardService.ListCards(r.Context(), userIDFromContext(r.Context()), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	out := make([]models.CardRecord, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardResponse(card))
	}
	respondJSON(w, http.StatusOK, map[string]any{"cards": out})
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	deckID, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.CreateCard(r.Context(), userIDFromContext(r.Context()), req.record(0, deckID))
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("card created: id=%d, card_type=%s", card.Fields().ID, card.Type())
	respondJSON(w, http.StatusCreated, cardResponse(card))
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.GetCard(r.Context(), id, userIDFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cardResponse(card))
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.UpdateCard(r.Context(), userIDFromContext(r.Context()), req.record(id, 0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cardResponse(card))
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.CardService.DeleteCard(r.Context(), id, userIDFromContext(r.Context())); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
