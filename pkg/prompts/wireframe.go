package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/uxlens/uxlens/pkg/model"
)

// maxWireframeComponents caps how many described components are embedded
// in the wireframe prompt; beyond this the extra detail only burns tokens.
const maxWireframeComponents = 10

// BuildWireframePrompt combines the UI description with the feedback
// result and asks for a single self-contained HTML document.
func BuildWireframePrompt(desc *model.UIDescription, feedback *model.FeedbackResult) (string, error) {
	if desc == nil {
		desc = &model.UIDescription{}
	}
	if feedback == nil {
		feedback = &model.FeedbackResult{}
	}

	components := desc.Components
	if len(components) > maxWireframeComponents {
		components = components[:maxWireframeComponents]
	}

	componentsJSON, err := json.MarshalIndent(components, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal components: %w", err)
	}
	colorsJSON, err := json.MarshalIndent(desc.ColorScheme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal color scheme: %w", err)
	}
	feedbackJSON, err := json.MarshalIndent(feedback.FeedbackItems, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal feedback items: %w", err)
	}
	instructionsJSON, err := json.MarshalIndent(feedback.WireframeInstructions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal wireframe instructions: %w", err)
	}

	screenType := desc.ScreenType
	if screenType == "" {
		screenType = "mobile app"
	}

	return fmt.Sprintf(`You are an expert UI/UX designer. Create an IMPROVED mobile UI wireframe in HTML/CSS based on the original design analysis and feedback.

## ORIGINAL DESIGN ANALYSIS

**Screen Type:** %s

**Components:**
%s

**Color Scheme:**
%s

## FEEDBACK TO IMPLEMENT

**Feedback Items:**
%s

**Wireframe Instructions:**
%s

## YOUR TASK

Create a COMPLETE, IMPROVED mobile UI wireframe as a single HTML file with embedded CSS.

**Requirements:**

1. **Mobile-first design** (max-width: 375px, scale up for display)
2. **Implement ALL feedback suggestions:**
   - Fix color contrast issues
   - Adjust typography sizes
   - Improve spacing and layout
   - Add missing UI elements (loading indicators, labels, etc.)
   - Fix inconsistencies

3. **Use modern CSS:**
   - Flexbox/Grid for layout
   - Proper spacing (padding, margins)
   - Mobile-friendly touch targets (min 44px)
   - Smooth transitions and hover states

4. **Include annotations:**
   - Add small labels showing what was improved
   - Use a subtle annotation style (small text, muted color)

5. **Make it realistic but clean:**
   - Use actual UI components (buttons, cards, inputs)
   - Include icons (use emoji or Unicode symbols)
   - Proper visual hierarchy

## OUTPUT FORMAT

Return ONLY the HTML code inside a single code block, like this:
`+"```html"+`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Improved Mobile UI Wireframe</title>
    <style>
        /* Your CSS here */
    </style>
</head>
<body>
    <!-- Your improved UI here -->
</body>
</html>
`+"```"+`

Create a complete, functional wireframe that clearly shows the improvements.
Make it look professional and polished.`,
		screenType,
		string(componentsJSON),
		string(colorsJSON),
		string(feedbackJSON),
		string(instructionsJSON),
	), nil
}
