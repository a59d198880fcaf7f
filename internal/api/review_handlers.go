package api

import (
	"net/http"

	"github.com/mvieira/lexiflash/internal/models"
)

type reviewRequest struct {
	Quality     *int    `json:"quality" validate:"required"`
	CardIndex   int     `json:"card_index" validate:"min=0"`
	TimeSeconds float64 `json:"time_seconds" validate:"min=0"`
}

func (s *Server) handleReviewCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	userID := userIDFromContext(r.Context())
	result, err := s.ReviewService.SubmitReview(r.Context(), cardID, req.CardIndex, userID, models.ReviewQuality(*req.Quality), req.TimeSeconds)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
