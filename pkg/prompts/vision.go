// Package prompts builds the stage prompts sent to the model. Each
// builder embeds its structured inputs as indented JSON and spells out
// the exact response shape the next stage's parser expects.
package prompts

// VisionPrompt is the fixed analysis prompt for the perception stage.
// The response schema here is the contract the evaluation stage consumes.
func VisionPrompt() string {
	return `You are a UI/UX analysis expert. Analyze this mobile app screenshot and extract detailed information.

Provide your response ONLY as valid JSON with this exact structure:

{
  "screen_type": "login/home/profile/list/etc",
  "components": [
    {
      "type": "button/text_input/image/label/icon/etc",
      "text": "visible text if any",
      "position": "top/middle/bottom/top-left/etc",
      "color": "describe color",
      "size": "small/medium/large",
      "style": "primary/secondary/text/outlined/etc"
    }
  ],
  "layout_structure": "describe overall layout",
  "color_scheme": {
    "primary_colors": ["list of main colors"],
    "background": "background color",
    "text_colors": ["list of text colors"]
  },
  "typography": {
    "heading_sizes": "describe heading sizes",
    "body_text_size": "describe body text size",
    "font_weights": "describe font weights used"
  },
  "spacing_and_density": {
    "overall_density": "tight/comfortable/spacious",
    "padding": "describe padding",
    "element_spacing": "describe spacing between elements"
  },
  "interactive_elements": [
    {
      "element": "describe element",
      "action": "what it likely does",
      "visibility": "how easy to find/use"
    }
  ],
  "visual_hierarchy": "describe how eye flows through the screen",
  "accessibility_observations": ["list any obvious accessibility issues"],
  "notable_patterns": ["list UI patterns used"]
}

Be specific and detailed. Return ONLY the JSON, no additional text.`
}
