package api

import (
	"net/http"

	"github.com/mvieira/lexiflash/internal/models"
)

type importRequest struct {
	Cards []cardRequest `json:"cards" validate:"required,min=1,dive"`
}

func (s *Server) handleImportCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	records := make([]models.CardRecord, 0, len(req.Cards))
	for _, c := range req.Cards {
		records = append(records, c.record(0, deckID))
	}

	userID := userIDFromContext(r.Context())
	batchID, queued, err := s.ImportService.QueueImport(r.Context(), userID, deckID, records)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]any{
		"batch_id": batchID,
		"queued":   queued,
	})
}
