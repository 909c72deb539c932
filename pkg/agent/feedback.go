package agent

import (
	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/parser"
	"github.com/uxlens/uxlens/pkg/prompts"
)

// FeedbackAgent is the feedback stage: UI description plus evaluation in,
// prioritized developer-actionable feedback out.
type FeedbackAgent struct {
	llm llm.LLM
}

func NewFeedbackAgent(client llm.LLM) *FeedbackAgent {
	return &FeedbackAgent{llm: client}
}

// Generate runs one feedback call for the given platform. The platform
// label is free text stamped into the result, and TotalFeedbackItems is
// recomputed from the parsed item list, discarding whatever count the
// model claimed.
func (a *FeedbackAgent) Generate(desc *model.UIDescription, eval *model.EvaluationResult, platform string) *model.FeedbackResult {
	prompt, err := prompts.BuildFeedbackPrompt(desc, eval, platform)
	if err != nil {
		return &model.FeedbackResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	raw, err := a.llm.Chat(prompt)
	if err != nil {
		return &model.FeedbackResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	result := parser.ParseFeedback(raw)
	result.Platform = platform
	result.TotalFeedbackItems = len(result.FeedbackItems)
	return result
}
