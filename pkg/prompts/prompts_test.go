package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/rubric"
)

func testRubric() *rubric.Rubric {
	return &rubric.Rubric{
		Heuristics: []rubric.Heuristic{
			{ID: 1, Name: "Visibility of system status", Description: "Keep users informed.", MobileConsiderations: []string{"Show loading indicators"}},
		},
		MobileSpecificGuidelines: []rubric.GuidelineCategory{
			{Category: "Touch Targets", Guidelines: []string{"At least 48x48dp"}},
		},
	}
}

func TestVisionPromptRequestsJSON(t *testing.T) {
	prompt := VisionPrompt()

	assert.Contains(t, prompt, "screen_type")
	assert.Contains(t, prompt, "accessibility_observations")
	assert.Contains(t, prompt, "Return ONLY the JSON")
}

func TestBuildEvaluationPrompt(t *testing.T) {
	desc := &model.UIDescription{
		ScreenType: "login",
		Components: []model.Component{{Type: "button", Text: "Sign in"}},
	}

	prompt, err := BuildEvaluationPrompt(desc, testRubric())

	require.NoError(t, err)
	assert.Contains(t, prompt, "**Screen Type:** login")
	assert.Contains(t, prompt, "Sign in")
	assert.Contains(t, prompt, "1. Visibility of system status")
	assert.Contains(t, prompt, "**Touch Targets:**")
}

func TestBuildEvaluationPromptDegradedInputs(t *testing.T) {
	// Call-failure and parse-failure perception results both embed as
	// empty data rather than panicking.
	for _, desc := range []*model.UIDescription{
		nil,
		{Fallback: model.Fallback{Error: "connection refused"}},
		{Fallback: model.Fallback{ParseError: "bad token", RawResponse: "junk"}},
	} {
		prompt, err := BuildEvaluationPrompt(desc, testRubric())
		require.NoError(t, err)
		assert.Contains(t, prompt, "**Screen Type:** unknown")
		assert.Contains(t, prompt, "**Components Detected:** 0")
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	eval := &model.EvaluationResult{
		Violations: []model.Violation{{HeuristicID: 1, Severity: "high", Issue: "no loading state"}},
	}

	prompt, err := BuildFeedbackPrompt(&model.UIDescription{ScreenType: "home"}, eval, "react-native")

	require.NoError(t, err)
	assert.Contains(t, prompt, "**Platform:** react-native")
	assert.Contains(t, prompt, "no loading state")
	assert.Contains(t, prompt, "feedback_items")
	assert.Contains(t, prompt, "quick_wins")
}

func TestBuildFeedbackPromptDegradedInputs(t *testing.T) {
	prompt, err := BuildFeedbackPrompt(nil, nil, "android")

	require.NoError(t, err)
	assert.Contains(t, prompt, "**Platform:** android")
}

func TestBuildWireframePromptTruncatesComponents(t *testing.T) {
	desc := &model.UIDescription{ScreenType: "list"}
	for i := 0; i < 15; i++ {
		desc.Components = append(desc.Components, model.Component{Type: "row", Text: componentName(i)})
	}

	prompt, err := BuildWireframePrompt(desc, &model.FeedbackResult{})

	require.NoError(t, err)
	assert.Contains(t, prompt, componentName(9))
	assert.NotContains(t, prompt, componentName(10))
	assert.Contains(t, prompt, "```html")
}

func componentName(i int) string {
	return "component-" + string(rune('a'+i))
}
