package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/uxlens/uxlens/pkg/model"
)

// BuildFeedbackPrompt combines the UI description with the evaluation
// result and requests the fixed multi-field feedback shape. Fallback
// results on either input degrade to empty lists.
func BuildFeedbackPrompt(desc *model.UIDescription, eval *model.EvaluationResult, platform string) (string, error) {
	if desc == nil {
		desc = &model.UIDescription{}
	}
	if eval == nil {
		eval = &model.EvaluationResult{}
	}

	violationsJSON, err := json.MarshalIndent(eval.Violations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal violations: %w", err)
	}
	mobileIssuesJSON, err := json.MarshalIndent(eval.MobileSpecificIssues, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal mobile issues: %w", err)
	}

	screenType := desc.ScreenType
	if screenType == "" {
		screenType = "unknown"
	}

	return fmt.Sprintf(`You are a senior UX developer and mentor. Your job is to help a developer improve their mobile UI by providing clear, actionable, and encouraging feedback.

## CONTEXT

**Platform:** %s
**Screen Type:** %s
**Components:** %d UI elements detected

## VIOLATIONS IDENTIFIED

%s

## MOBILE-SPECIFIC ISSUES

%s

## YOUR TASK

Transform these technical violations into helpful, actionable feedback that a developer can immediately implement. For EACH violation or issue:

1. **Title**: Short, action-oriented (e.g., "Add Loading Indicators", "Improve Color Contrast")
2. **Why it matters**: Explain the user impact in 1-2 sentences
3. **What to do**: Step-by-step actions (3-5 bullet points)
4. **Priority**: critical/high/medium/low based on severity and user impact
5. **Wireframe change**: Describe visual changes needed (for wireframe generator)

## OUTPUT FORMAT

Return ONLY valid JSON with this structure:

{
  "feedback_items": [
    {
      "id": 1,
      "title": "Add Loading State Indicators",
      "category": "Visibility of system status",
      "priority": "high",
      "why_it_matters": "Users need visual feedback when actions are processing.",
      "what_to_do": [
        "Add a progress indicator for long-running actions",
        "Disable buttons during loading to prevent double-taps",
        "Add success/error feedback after actions complete"
      ],
      "code_example": {
        "language": "kotlin",
        "description": "Add loading state with ProgressBar",
        "code": "progressBar.visibility = View.VISIBLE"
      },
      "wireframe_changes": "Describe the visual change for the wireframe generator",
      "affected_components": ["component name"],
      "estimated_effort": "30 minutes"
    }
  ],
  "wireframe_instructions": {
    "overall_changes": "Summary of all visual changes needed",
    "priority_fixes": [
      "Most important visual change #1",
      "Most important visual change #2"
    ],
    "layout_modifications": [
      "Specific layout adjustments needed"
    ],
    "color_adjustments": [
      "Color/contrast changes needed"
    ],
    "typography_changes": [
      "Font size/weight adjustments needed"
    ]
  },
  "quick_wins": [
    {
      "change": "Small concrete change",
      "impact": "What it improves",
      "effort": "5 minutes"
    }
  ],
  "summary": {
    "total_issues": 6,
    "critical": 0,
    "high": 2,
    "medium": 3,
    "low": 1,
    "estimated_total_time": "3-4 hours"
  }
}

Code examples must target the %s platform. Be specific, practical, and encouraging. Focus on actionable improvements that will have the biggest impact on user experience.`,
		platform,
		screenType,
		len(desc.Components),
		string(violationsJSON),
		string(mobileIssuesJSON),
		platform,
	), nil
}
