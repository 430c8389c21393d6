package models

// SuggestionRequest carries the patient's free-text symptom description.
type SuggestionRequest struct {
	Symptoms string `json:"symptoms"`
}

// AiSuggestion is ephemeral; it exists only for the duration of one symptom
// query and is never persisted. Slices are normalized to non-nil at the
// boundary so render logic never branches on shape.
type AiSuggestion struct {
	UrgencyLevel         string   `json:"urgencyLevel,omitempty"`
	SuggestedSpecialties []string `json:"suggestedSpecialties"`
	SuggestedDoctors     []string `json:"suggestedDoctors"`
	Recommendations      string   `json:"recommendations"`
}
