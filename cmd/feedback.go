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
	feedbackOutputDir    string
	feedbackOutputFormat string
	feedbackProvider     string
	feedbackModel        string
	feedbackMaxSize      int
	feedbackHeuristics   string
	feedbackPlatform     string
)

func NewFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback IMAGE",
		Short: "Generate developer-actionable UX feedback for a screenshot",
		Long: `Run vision analysis and heuristic evaluation on a screenshot, then turn
the violations into prioritized, developer-actionable feedback with code
examples for the target platform, plus a markdown report.

Examples:
  # Feedback with Android code examples (default)
  uxlens feedback screenshot.png

  # Feedback for iOS
  uxlens feedback screenshot.png -p ios

  # Feedback for React Native, JSON output
  uxlens feedback screenshot.png -p react-native -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runFeedback,
	}

	cmd.Flags().StringVar(&feedbackOutputDir, "output-dir", "data/outputs", "Directory for output artifacts")
	cmd.Flags().StringVarP(&feedbackOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&feedbackProvider, "provider", "", "LLM provider (gemini, openai, claude). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&feedbackModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().IntVar(&feedbackMaxSize, "max-size", 2048, "Maximum image dimension before downscaling")
	cmd.Flags().StringVar(&feedbackHeuristics, "heuristics", "config/nielsen_heuristics.json", "Path to the heuristics catalog")
	cmd.Flags().StringVarP(&feedbackPlatform, "platform", "p", "android", "Target platform for code examples (android, ios, react-native)")

	return cmd
}

func runFeedback(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	printHeader("💡 UX Lens - Developer Feedback", imagePath)
	fmt.Printf("📦 Platform: %s\n\n", feedbackPlatform)

	catalog, err := rubric.Load(feedbackHeuristics)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Loaded %d heuristics", len(catalog.Heuristics)))

	llmClient, err := llm.CreateFromEnv(feedbackProvider, feedbackModel)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	printSuccess("AI client initialized")

	s := newSpinner()
	s.Suffix = " Loading screenshot..."
	s.Start()

	image, mimeType, err := prepareImage(imagePath, feedbackMaxSize)
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

	s.Suffix = fmt.Sprintf(" Generating %s feedback...", feedbackPlatform)
	feedbackAgent := agent.NewFeedbackAgent(llmClient)
	feedback := feedbackAgent.Generate(description, evaluation, feedbackPlatform)

	s.Stop()
	if feedback.OK() {
		printSuccess(fmt.Sprintf("Generated %d feedback items", feedback.TotalFeedbackItems))
	} else {
		printWarning("Feedback generation degraded (see result below)")
	}

	path, err := artifacts.WriteJSON(feedbackOutputDir, uiDescriptionFile, description)
	if err != nil {
		return err
	}
	printSaved(path)

	path, err = artifacts.WriteJSON(feedbackOutputDir, evaluationFile, evaluation)
	if err != nil {
		return err
	}
	printSaved(path)

	path, err = artifacts.WriteJSON(feedbackOutputDir, feedbackFile, feedback)
	if err != nil {
		return err
	}
	printSaved(path)

	path, err = artifacts.WriteText(feedbackOutputDir, developerReportFile, report.DeveloperReport(feedback))
	if err != nil {
		return err
	}
	printSaved(path)

	return formatter.DisplayFeedback(feedback, feedbackOutputFormat)
}
