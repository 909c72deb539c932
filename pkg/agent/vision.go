// Package agent implements the four pipeline stages. Each agent wraps an
// llm.LLM, builds its stage prompt, parses the response, and derives any
// computed fields. Agents hold no cross-call state; every invocation is a
// pure function of its inputs plus one external call.
package agent

import (
	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/parser"
	"github.com/uxlens/uxlens/pkg/prompts"
)

// VisionAgent is the perception stage: screenshot bytes in, structured
// UI description out.
type VisionAgent struct {
	llm llm.LLM
}

func NewVisionAgent(client llm.LLM) *VisionAgent {
	return &VisionAgent{llm: client}
}

// Analyze sends the screenshot with the fixed analysis prompt. It always
// returns a result: a call failure yields the error shape, undecodable
// response text yields the parse-error shape with the raw text preserved.
func (a *VisionAgent) Analyze(image []byte, mimeType string) *model.UIDescription {
	raw, err := a.llm.ChatVision(prompts.VisionPrompt(), image, mimeType)
	if err != nil {
		return &model.UIDescription{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}
	return parser.ParseUIDescription(raw)
}
