// File: services/intelligence/suggest.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"medibook/models"
)

const minSymptomLen = 5

const promptTemplate = `You are a triage assistant for a doctor consultation platform.
A patient describes their symptoms below. Respond with a single JSON object,
no markdown, with exactly these fields:
{"urgencyLevel":"high|medium|low","suggestedSpecialties":["..."],"suggestedDoctors":["..."],"recommendations":"..."}

Symptoms: %s`

// Suggest validates the symptom text, queries the model and returns a
// normalized suggestion.
func (s *DefaultSuggestionService) Suggest(ctx context.Context, symptoms string) (*models.AiSuggestion, error) {
	text := strings.TrimSpace(symptoms)
	if utf8.RuneCountInString(text) < minSymptomLen {
		return nil, ErrSymptomsTooShort
	}

	raw, err := s.Generator.GenerateContent(ctx, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		return nil, fmt.Errorf("unexpected suggestion format: %w", err)
	}
	return suggestion, nil
}

// parseSuggestion decodes the model output tolerantly. Models sometimes wrap
// JSON in code fences or omit the optional arrays; the result always carries
// non-nil slices and an urgency level restricted to high, medium or low.
func parseSuggestion(raw string) (*models.AiSuggestion, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var payload struct {
		UrgencyLevel         string   `json:"urgencyLevel"`
		SuggestedSpecialties []string `json:"suggestedSpecialties"`
		SuggestedDoctors     []string `json:"suggestedDoctors"`
		Recommendations      string   `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}

	suggestion := &models.AiSuggestion{
		UrgencyLevel:         normalizeUrgency(payload.UrgencyLevel),
		SuggestedSpecialties: payload.SuggestedSpecialties,
		SuggestedDoctors:     payload.SuggestedDoctors,
		Recommendations:      strings.TrimSpace(payload.Recommendations),
	}
	if suggestion.SuggestedSpecialties == nil {
		suggestion.SuggestedSpecialties = []string{}
	}
	if suggestion.SuggestedDoctors == nil {
		suggestion.SuggestedDoctors = []string{}
	}
	return suggestion, nil
}

func normalizeUrgency(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return "high"
	case "medium":
		return "medium"
	case "low":
		return "low"
	default:
		return ""
	}
}
