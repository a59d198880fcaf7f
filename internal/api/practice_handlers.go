package api

import (
	"net/http"
	"strconv"

	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
)

func (s *Server) handlePractice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := userIDFromContext(r.Context())

	limit := s.PracticeLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	cards, err := s.PracticeService.DueCards(r.Context(), userID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.PracticeCard{}
	}

	log.Debug("serving %d practice cards", len(cards))
	respondJSON(w, http.StatusOK, map[string]any{"cards": cards})
}
