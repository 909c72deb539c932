package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uxlens/uxlens/pkg/agent"
	"github.com/uxlens/uxlens/pkg/artifacts"
	"github.com/uxlens/uxlens/pkg/formatter"
	"github.com/uxlens/uxlens/pkg/llm"
	"github.com/uxlens/uxlens/pkg/report"
	"github.com/uxlens/uxlens/pkg/rubric"
)

var (
	evaluateOutputDir    string
	evaluateOutputFormat string
	evaluateProvider     string
	evaluateModel        string
	evaluateMaxSize      int
	evaluateHeuristics   string
)

func NewEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate IMAGE",
		Short: "Evaluate a screenshot against Nielsen's usability heuristics",
		Long: `Analyze a mobile UI screenshot and evaluate the result against Nielsen's
10 usability heuristics plus mobile-specific guidelines, producing a list
of violations with severities and an overall UX score (0-10).

Examples:
  # Evaluate a screenshot
  uxlens evaluate screenshot.png

  # Use a custom heuristics catalog
  uxlens evaluate screenshot.png --heuristics my_rubric.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runEvaluate,
	}

	cmd.Flags().StringVar(&evaluateOutputDir, "output-dir", "data/outputs", "Directory for output artifacts")
	cmd.Flags().StringVarP(&evaluateOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&evaluateProvider, "provider", "", "LLM provider (gemini, openai, claude). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&evaluateModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().IntVar(&evaluateMaxSize, "max-size", 2048, "Maximum image dimension before downscaling")
	cmd.Flags().StringVar(&evaluateHeuristics, "heuristics", "config/nielsen_heuristics.json", "Path to the heuristics catalog")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	printHeader("🔍 UX Lens - Heuristic Evaluation", imagePath)

	// Startup-time configuration problems are fatal, unlike stage failures.
	catalog, err := rubric.Load(evaluateHeuristics)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Loaded %d heuristics", len(catalog.Heuristics)))

	llmClient, err := llm.CreateFromEnv(evaluateProvider, evaluateModel)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	printSuccess("AI client initialized")

	s := newSpinner()
	s.Suffix = " Loading screenshot..."
	s.Start()

	image, mimeType, err := prepareImage(imagePath, evaluateMaxSize)
	if err != nil {
		s.Stop()
		return fmt.Errorf("failed to load screenshot: %w", err)
	}

	s.Suffix = " Analyzing UI with vision model..."
	visionAgent := agent.NewVisionAgent(llmClient)
	description := visionAgent.Analyze(image, mimeType)

	s.Suffix = " Evaluating against heuristics..."
	heuristicAgent := agent.NewHeuristicAgent(llmClient, catalog)
	evaluation := heuristicAgent.Evaluate(description)

	s.Stop()
	if evaluation.OK() {
		printSuccess(fmt.Sprintf("Evaluation complete! Score: %.1f/10", evaluation.OverallScore))
	} else {
		printWarning("Evaluation degraded (see result below)")
	}

	path, err := artifacts.WriteJSON(evaluateOutputDir, uiDescriptionFile, description)
	if err != nil {
		return err
	}
	printSaved(path)

	path, err = artifacts.WriteJSON(evaluateOutputDir, evaluationFile, evaluation)
	if err != nil {
		return err
	}
	printSaved(path)

	path, err = artifacts.WriteText(evaluateOutputDir, evaluationReportFile, report.EvaluationReport(evaluation))
	if err != nil {
		return err
	}
	printSaved(path)

	return formatter.DisplayEvaluation(evaluation, evaluateOutputFormat)
}
