package ai

import (
	"context"
	"errors"

	"medibook/models"
)

// ErrSymptomsTooShort is a validation failure; no upstream call is made.
var ErrSymptomsTooShort = errors.New("please describe your symptoms in at least 5 characters")

// ContentGenerator produces a text completion for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SuggestionService turns free-text symptoms into a doctor/specialty
// suggestion. Advisory only: it never feeds selections back into the booking
// flow.
type SuggestionService interface {
	Suggest(ctx context.Context, symptoms string) (*models.AiSuggestion, error)
}

// DefaultSuggestionService implements SuggestionService on a ContentGenerator.
type DefaultSuggestionService struct {
	Generator ContentGenerator
}
