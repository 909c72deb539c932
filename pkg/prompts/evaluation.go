package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/rubric"
)

// BuildEvaluationPrompt combines a UI description with the heuristic
// catalog. A description carrying a failure shape is embedded as empty
// lists, so degraded perception output still produces a usable prompt.
func BuildEvaluationPrompt(desc *model.UIDescription, r *rubric.Rubric) (string, error) {
	if desc == nil {
		desc = &model.UIDescription{}
	}

	componentsJSON, err := json.MarshalIndent(desc.Components, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal components: %w", err)
	}
	colorsJSON, err := json.MarshalIndent(desc.ColorScheme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal color scheme: %w", err)
	}
	spacingJSON, err := json.MarshalIndent(desc.SpacingAndDensity, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal spacing: %w", err)
	}
	accessibilityJSON, err := json.MarshalIndent(desc.AccessibilityObservations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal accessibility observations: %w", err)
	}

	screenType := desc.ScreenType
	if screenType == "" {
		screenType = "unknown"
	}

	return fmt.Sprintf(`You are a UX evaluation expert. Evaluate this mobile UI design against Nielsen's 10 Usability Heuristics and mobile UX best practices.

## UI ANALYSIS DATA:

**Screen Type:** %s

**Components Detected:** %d
%s

**Color Scheme:**
%s

**Spacing & Density:**
%s

**Accessibility Observations:**
%s

## NIELSEN'S 10 HEURISTICS TO EVALUATE:

%s

## MOBILE-SPECIFIC GUIDELINES:

%s

## YOUR TASK:

Evaluate this UI against EACH heuristic and identify violations. For each violation found:

1. Specify which heuristic is violated
2. Assign severity: critical/high/medium/low
3. Describe the specific issue
4. List affected components
5. Suggest improvements

**IMPORTANT:** Return ONLY valid JSON with this structure:

{
  "violations": [
    {
      "heuristic_id": 1,
      "heuristic_name": "Visibility of system status",
      "severity": "high",
      "issue": "Detailed description of the problem",
      "affected_components": ["component type or name"],
      "evidence": "What you observed in the UI data",
      "improvement_suggestion": "Specific actionable advice"
    }
  ],
  "strengths": [
    {
      "heuristic_id": 4,
      "heuristic_name": "Consistency and standards",
      "observation": "What the UI does well"
    }
  ],
  "mobile_specific_issues": [
    {
      "category": "Touch Targets / Typography / Color / etc",
      "severity": "high/medium/low",
      "issue": "Description",
      "recommendation": "How to fix"
    }
  ]
}

Be thorough but fair. Only report actual violations you can identify from the data.
Return ONLY the JSON, no additional text.`,
		screenType,
		len(desc.Components),
		string(componentsJSON),
		string(colorsJSON),
		string(spacingJSON),
		string(accessibilityJSON),
		r.FormatHeuristics(),
		r.FormatMobileGuidelines(),
	), nil
}
