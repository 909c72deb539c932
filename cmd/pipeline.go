package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/uxlens/uxlens/pkg/agent"
	"github.com/uxlens/uxlens/pkg/artifacts"
	"github.com/uxlens/uxlens/pkg/formatter"
	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/model"
	"github.com/uxlens/uxlens/pkg/report"
	"github.com/uxlens/uxlens/pkg/rubric"
)

var (
	pipelineOutputDir    string
	pipelineOutputFormat string
	pipelineProvider     string
	pipelineModel        string
	pipelineMaxSize      int
	pipelineHeuristics   string
	pipelinePlatform     string
)

func NewPipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline IMAGE",
		Short: "Run the complete four-stage UX audit pipeline",
		Long: `Run all four stages on a screenshot: vision analysis, heuristic
evaluation, developer feedback, and regeneration of an improved wireframe.
All artifacts are written to the output directory; the wireframe viewer
gets a timestamped filename so repeated runs never collide.

Examples:
  # Full audit with defaults
  uxlens pipeline screenshot.png

  # Full audit for iOS with a custom output directory
  uxlens pipeline screenshot.png -p ios --output-dir audits/checkout`,
		Args: cobra.ExactArgs(1),
		RunE: runPipeline,
	}

	cmd.Flags().StringVar(&pipelineOutputDir, "output-dir", "data/outputs", "Directory for output artifacts")
	cmd.Flags().StringVarP(&pipelineOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&pipelineProvider, "provider", "", "LLM provider (gemini, openai, claude). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&pipelineModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().IntVar(&pipelineMaxSize, "max-size", 2048, "Maximum image dimension before downscaling")
	cmd.Flags().StringVar(&pipelineHeuristics, "heuristics", "config/nielsen_heuristics.json", "Path to the heuristics catalog")
	cmd.Flags().StringVarP(&pipelinePlatform, "platform", "p", "android", "Target platform for code examples (android, ios, react-native)")

	return cmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	printHeader("🚀 UX Lens - Complete Audit Pipeline", imagePath)
	fmt.Printf("📦 Platform: %s\n\n", pipelinePlatform)

	catalog, err := rubric.Load(pipelineHeuristics)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Loaded %d heuristics", len(catalog.Heuristics)))

	llmClient, err := llm.CreateFromEnv(pipelineProvider, pipelineModel)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	printSuccess("AI client initialized")

	s := newSpinner()
	s.Suffix = " Loading screenshot..."
	s.Start()

	image, mimeType, err := prepareImage(imagePath, pipelineMaxSize)
	if err != nil {
		s.Stop()
		return fmt.Errorf("failed to load screenshot: %w", err)
	}
	s.Stop()
	printSuccess(fmt.Sprintf("Loaded screenshot (%s, %d bytes)", mimeType, len(image)))

	// Stage 1: vision analysis
	s.Suffix = " [1/4] Analyzing UI with vision model..."
	s.Start()
	visionAgent := agent.NewVisionAgent(llmClient)
	description := visionAgent.Analyze(image, mimeType)
	s.Stop()
	printStage(1, "Vision analysis", description.Fallback)

	// Stage 2: heuristic evaluation
	s.Suffix = " [2/4] Evaluating against heuristics..."
	s.Start()
	heuristicAgent := agent.NewHeuristicAgent(llmClient, catalog)
	evaluation := heuristicAgent.Evaluate(description)
	s.Stop()
	printStage(2, fmt.Sprintf("Heuristic evaluation (score %.1f/10)", evaluation.OverallScore), evaluation.Fallback)

	// Stage 3: developer feedback
	s.Suffix = fmt.Sprintf(" [3/4] Generating %s feedback...", pipelinePlatform)
	s.Start()
	feedbackAgent := agent.NewFeedbackAgent(llmClient)
	feedback := feedbackAgent.Generate(description, evaluation, pipelinePlatform)
	s.Stop()
	printStage(3, fmt.Sprintf("Developer feedback (%d items)", feedback.TotalFeedbackItems), feedback.Fallback)

	// Stage 4: wireframe regeneration
	s.Suffix = " [4/4] Generating improved wireframe..."
	s.Start()
	wireframeAgent := agent.NewWireframeAgent(llmClient)
	wireframe := wireframeAgent.Generate(description, feedback, pipelineOutputDir)
	s.Stop()
	printStage(4, "Wireframe regeneration", wireframe.Fallback)

	// Persist stage artifacts. The wireframe viewer itself was written by
	// the wireframe agent; only its metadata is saved here.
	if _, err := artifacts.WriteJSON(pipelineOutputDir, uiDescriptionFile, description); err != nil {
		return err
	}
	if _, err := artifacts.WriteJSON(pipelineOutputDir, evaluationFile, evaluation); err != nil {
		return err
	}
	if _, err := artifacts.WriteJSON(pipelineOutputDir, feedbackFile, feedback); err != nil {
		return err
	}
	if _, err := artifacts.WriteJSON(pipelineOutputDir, wireframeMetadataFile, map[string]string{
		"output_path": wireframe.OutputPath,
		"timestamp":   wireframe.Timestamp,
	}); err != nil {
		return err
	}
	if _, err := artifacts.WriteText(pipelineOutputDir, evaluationReportFile, report.EvaluationReport(evaluation)); err != nil {
		return err
	}
	if _, err := artifacts.WriteText(pipelineOutputDir, developerReportFile, report.DeveloperReport(feedback)); err != nil {
		return err
	}

	fmt.Println()
	printSuccess("Pipeline finished")
	fmt.Printf("\n📁 All outputs saved to %s/:\n", pipelineOutputDir)
	fmt.Printf("   ├── %s\n", uiDescriptionFile)
	fmt.Printf("   ├── %s\n", evaluationFile)
	fmt.Printf("   ├── %s\n", feedbackFile)
	fmt.Printf("   ├── %s\n", wireframeMetadataFile)
	fmt.Printf("   ├── %s\n", evaluationReportFile)
	fmt.Printf("   ├── %s\n", developerReportFile)
	if wireframe.OutputPath != "" {
		fmt.Printf("   └── %s\n", filepath.Base(wireframe.OutputPath))
	}

	return formatter.DisplayFeedback(feedback, pipelineOutputFormat)
}

// printStage reports one pipeline stage outcome: success, degraded (the
// stage produced a fallback shape and the pipeline continues), never
// fatal.
func printStage(n int, label string, f model.Fallback) {
	switch {
	case f.Failed():
		color.New(color.FgYellow).Printf("⚠ [%d/4] %s: call failed: %s\n", n, label, f.Error)
	case f.ParseFailed():
		color.New(color.FgYellow).Printf("⚠ [%d/4] %s: response not parseable (raw preserved)\n", n, label)
	default:
		printSuccess(fmt.Sprintf("[%d/4] %s", n, label))
	}
}
