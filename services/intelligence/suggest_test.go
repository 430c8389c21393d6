package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func TestSuggestRejectsShortSymptoms(t *testing.T) {
	gen := &fakeGenerator{}
	svc := &DefaultSuggestionService{Generator: gen}

	for _, symptoms := range []string{"", "achy", "  achy  "} {
		_, err := svc.Suggest(context.Background(), symptoms)
		assert.ErrorIs(t, err, ErrSymptomsTooShort, "symptoms %q", symptoms)
	}
	assert.Zero(t, gen.calls, "validation failures must not reach the model")
}

func TestSuggestMinimumLengthPasses(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"urgencyLevel":"low","suggestedSpecialties":["GP"],"suggestedDoctors":[],"recommendations":"Rest."}`,
	}
	svc := &DefaultSuggestionService{Generator: gen}

	got, err := svc.Suggest(context.Background(), "fever")
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "low", got.UrgencyLevel)
	assert.Equal(t, []string{"GP"}, got.SuggestedSpecialties)
}

func TestSuggestStripsCodeFences(t *testing.T) {
	gen := &fakeGenerator{
		response: "```json\n{\"urgencyLevel\":\"high\",\"recommendations\":\"See a doctor today.\"}\n```",
	}
	svc := &DefaultSuggestionService{Generator: gen}

	got, err := svc.Suggest(context.Background(), "chest pain and shortness of breath")
	require.NoError(t, err)
	assert.Equal(t, "high", got.UrgencyLevel)
	assert.Equal(t, "See a doctor today.", got.Recommendations)
}

func TestSuggestNormalizesMissingArrays(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"urgencyLevel":"medium","recommendations":"Hydrate."}`,
	}
	svc := &DefaultSuggestionService{Generator: gen}

	got, err := svc.Suggest(context.Background(), "headache since yesterday")
	require.NoError(t, err)
	require.NotNil(t, got.SuggestedSpecialties)
	require.NotNil(t, got.SuggestedDoctors)
	assert.Empty(t, got.SuggestedSpecialties)
	assert.Empty(t, got.SuggestedDoctors)
}

func TestSuggestRestrictsUrgencyLevels(t *testing.T) {
	cases := map[string]string{
		"HIGH":     "high",
		" Medium ": "medium",
		"low":      "low",
		"urgent":   "",
		"":         "",
	}
	for raw, want := range cases {
		got, err := parseSuggestion(`{"urgencyLevel":"` + raw + `"}`)
		require.NoError(t, err)
		assert.Equal(t, want, got.UrgencyLevel, "raw level %q", raw)
	}
}

func TestSuggestRejectsNonJSONOutput(t *testing.T) {
	gen := &fakeGenerator{response: "I recommend you see a cardiologist."}
	svc := &DefaultSuggestionService{Generator: gen}

	_, err := svc.Suggest(context.Background(), "chest pain and dizziness")
	assert.Error(t, err)
}
