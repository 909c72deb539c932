package agent

import (
	"time"

	"github.com/uxlens/uxlens/pkg/artifacts"
	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/parser"
	"github.com/uxlens/uxlens/pkg/prompts"
	"github.com/uxlens/uxlens/pkg/report"
)

// WireframeAgent is the regeneration stage: UI description plus feedback
// in, an improved wireframe document persisted to disk out.
type WireframeAgent struct {
	llm llm.LLM
}

func NewWireframeAgent(client llm.LLM) *WireframeAgent {
	return &WireframeAgent{llm: client}
}

// Generate asks the model for an improved wireframe, repairs the
// extracted markup into a standalone document, embeds it in the viewer
// page, and writes the viewer to a timestamped file under outputDir.
// Outputs are namespaced by timestamp, so repeated runs never collide; a
// failed write is surfaced as the error shape without cleanup.
func (a *WireframeAgent) Generate(desc *model.UIDescription, feedback *model.FeedbackResult, outputDir string) *model.WireframeResult {
	prompt, err := prompts.BuildWireframePrompt(desc, feedback)
	if err != nil {
		return &model.WireframeResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	raw, err := a.llm.Chat(prompt)
	if err != nil {
		return &model.WireframeResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	wireframeHTML := parser.ExtractHTML(raw)
	completeHTML := report.ViewerHTML(wireframeHTML, feedback)

	now := time.Now()
	outputPath, err := artifacts.WriteWireframe(outputDir, completeHTML, now)
	if err != nil {
		return &model.WireframeResult{
			Fallback: model.Fallback{Error: err.Error()},
		}
	}

	return &model.WireframeResult{
		WireframeHTML: wireframeHTML,
		CompleteHTML:  completeHTML,
		OutputPath:    outputPath,
		Timestamp:     now.Format(time.RFC3339),
	}
}
