// Package parser turns untrusted model output into typed stage results.
// Every parse routine has a three-way outcome: a structured result, a
// call-failure shape, or a parse-failure shape that preserves the raw
// response for offline inspection. Parsing never fails the pipeline.
package parser

import (
	"encoding/json"
	"strings"

	"github.com/uxlens/uxlens/pkg/model"
)

// StripFences removes a single leading and trailing markdown code fence
// (``` or ```json) wrapping the response. The trim is purely textual,
// prefix and suffix only, so fenced content inside the payload (code
// examples embedded in JSON strings) is left untouched. Applying it to
// already-bare text is a no-op.
func StripFences(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}

	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	return strings.TrimSpace(cleaned)
}

// ParseUIDescription decodes a perception stage response. On undecodable
// text it returns the parse-failure shape instead of an error.
func ParseUIDescription(raw string) *model.UIDescription {
	cleaned := StripFences(raw)

	var desc model.UIDescription
	if err := json.Unmarshal([]byte(cleaned), &desc); err != nil {
		return &model.UIDescription{
			Fallback: model.Fallback{
				RawResponse: raw,
				ParseError:  err.Error(),
			},
		}
	}
	return &desc
}

// ParseEvaluation decodes an evaluation stage response. On undecodable
// text it returns the parse-failure shape with an empty violation list so
// scoring still executes deterministically.
func ParseEvaluation(raw string) *model.EvaluationResult {
	cleaned := StripFences(raw)

	var result model.EvaluationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return &model.EvaluationResult{
			Fallback: model.Fallback{
				RawResponse: raw,
				ParseError:  err.Error(),
			},
		}
	}
	return &result
}

// ParseFeedback decodes a feedback stage response, degrading to the
// parse-failure shape with no feedback items when the text is not valid
// JSON.
func ParseFeedback(raw string) *model.FeedbackResult {
	cleaned := StripFences(raw)

	var result model.FeedbackResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return &model.FeedbackResult{
			Fallback: model.Fallback{
				RawResponse: raw,
				ParseError:  err.Error(),
			},
		}
	}
	return &result
}
