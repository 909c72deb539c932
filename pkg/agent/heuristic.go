package agent

import (
	"math"

	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/parser"
	"github.com/uxlens/uxlens/pkg/prompts"
	"github.com/uxlens/uxlens/pkg/rubric"
)

// severityImpact maps a violation severity to its score deduction. An
// unrecognized or missing severity deducts nothing.
var severityImpact = map[string]float64{
	"critical": 10,
	"high":     3,
	"medium":   1,
	"low":      0.3,
}

// HeuristicAgent is the evaluation stage: UI description plus the static
// rubric in, violations and a derived score out.
type HeuristicAgent struct {
	llm    llm.LLM
	rubric *rubric.Rubric
}

func NewHeuristicAgent(client llm.LLM, r *rubric.Rubric) *HeuristicAgent {
	return &HeuristicAgent{llm: client, rubric: r}
}

// Evaluate runs one evaluation call and computes the overall score. A
// parse failure substitutes an empty violation list so the score is still
// derived (yielding 10.0) rather than left undefined.
func (a *HeuristicAgent) Evaluate(desc *model.UIDescription) *model.EvaluationResult {
	prompt, err := prompts.BuildEvaluationPrompt(desc, a.rubric)
	if err != nil {
		return &model.EvaluationResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	raw, err := a.llm.Chat(prompt)
	if err != nil {
		return &model.EvaluationResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	result := parser.ParseEvaluation(raw)
	result.OverallScore = Score(result.Violations)
	return result
}

// Score derives the overall UX score (0-10) from a violation list.
// The deduction sum, not the final score, is clamped at 10: any single
// critical violation or any combination summing past 10 saturates the
// score at 0.0.
func Score(violations []model.Violation) float64 {
	if len(violations) == 0 {
		return 10.0
	}

	var deduction float64
	for _, v := range violations {
		deduction += severityImpact[v.Severity]
	}
	if deduction > 10 {
		deduction = 10
	}

	score := 10.0 - deduction
	if score < 0 {
		return 0
	}
	return math.Round(score*10) / 10
}
