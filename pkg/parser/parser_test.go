package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	bare := `{"screen_type": "login"}`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json untouched", bare, bare},
		{"json fence", "```json\n" + bare + "\n```", bare},
		{"plain fence", "```\n" + bare + "\n```", bare},
		{"leading fence only", "```json\n" + bare, bare},
		{"trailing fence only", bare + "\n```", bare},
		{"surrounding whitespace", "  \n```json\n" + bare + "\n```\n  ", bare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.input))
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	once := StripFences(input)
	assert.Equal(t, once, StripFences(once))
}

func TestStripFencesPreservesInteriorFences(t *testing.T) {
	// Fenced code examples inside JSON strings must survive the trim.
	input := "```json\n{\"code\": \"```kotlin\\nval x = 1\\n```\"}\n```"
	got := StripFences(input)
	assert.Contains(t, got, "```kotlin")
}

func TestParseUIDescription(t *testing.T) {
	raw := "```json\n{\"screen_type\": \"login\", \"components\": [{\"type\": \"button\", \"text\": \"Sign in\"}]}\n```"

	desc := ParseUIDescription(raw)
	require.True(t, desc.OK())
	assert.Equal(t, "login", desc.ScreenType)
	require.Len(t, desc.Components, 1)
	assert.Equal(t, "button", desc.Components[0].Type)
}

func TestParseUIDescriptionFallback(t *testing.T) {
	raw := "I could not analyze this screenshot, sorry."

	desc := ParseUIDescription(raw)
	assert.False(t, desc.OK())
	assert.True(t, desc.ParseFailed())
	assert.Equal(t, raw, desc.RawResponse)
	assert.NotEmpty(t, desc.ParseError)
	assert.Empty(t, desc.Components)
}

func TestParseEvaluation(t *testing.T) {
	raw := `{"violations": [{"heuristic_id": 1, "severity": "high", "issue": "no loading state"}], "strengths": []}`

	result := ParseEvaluation(raw)
	require.True(t, result.OK())
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "high", result.Violations[0].Severity)
}

func TestParseEvaluationFallbackKeepsEmptyViolations(t *testing.T) {
	result := ParseEvaluation("not json at all")
	assert.True(t, result.ParseFailed())
	assert.Empty(t, result.Violations)
	assert.Equal(t, "not json at all", result.RawResponse)
}

func TestParseFeedback(t *testing.T) {
	raw := "```json\n" + `{"feedback_items": [{"id": 1, "title": "Fix contrast", "priority": "high"}], "summary": {"total_issues": 1, "high": 1}}` + "\n```"

	result := ParseFeedback(raw)
	require.True(t, result.OK())
	require.Len(t, result.FeedbackItems, 1)
	assert.Equal(t, "Fix contrast", result.FeedbackItems[0].Title)
	assert.Equal(t, 1, result.Summary.High)
}

func TestParseFeedbackFallback(t *testing.T) {
	result := ParseFeedback("```json\n{broken\n```")
	assert.True(t, result.ParseFailed())
	assert.Empty(t, result.FeedbackItems)
	assert.Contains(t, result.RawResponse, "{broken")
}
