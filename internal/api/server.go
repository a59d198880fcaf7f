package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/mvieira/lexiflash/internal/services"
	"github.com/mvieira/lexiflash/internal/worker"
)

type Server struct {
	DeckService     services.DeckService
	CardService     services.CardService
	PracticeService services.PracticeService
	ReviewService   services.ReviewService
	ImportService   services.ImportService
	ImportPool      *worker.Pool
	PracticeLimit   int
}

// Request payload validation shared by all handlers.
var validate = validator.New(validator.WithRequiredStructEnabled())
