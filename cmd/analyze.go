package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uxlens/uxlens/pkg/agent"
	"github.com/uxlens/uxlens/pkg/artifacts"
	"github.com/uxlens/uxlens/pkg/formatter"
	"github.com/uxlens/uxlens/pkg/llm"
)

var (
	analyzeOutputDir    string
	analyzeOutputFormat string
	analyzeProvider     string
	analyzeModel        string
	analyzeMaxSize      int
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze IMAGE",
		Short: "Analyze a mobile UI screenshot with a vision model",
		Long: `Send a mobile UI screenshot to a multimodal model and extract a structured
description: screen type, components, color scheme, typography, spacing,
interactive elements, and accessibility observations.

Examples:
  # Analyze a screenshot with the default provider (Gemini)
  uxlens analyze screenshot.png

  # Use OpenAI and print the raw JSON
  uxlens analyze screenshot.png --provider openai -o json

  # Keep outputs in a custom directory
  uxlens analyze screenshot.png --output-dir audits/login`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeOutputDir, "output-dir", "data/outputs", "Directory for output artifacts")
	cmd.Flags().StringVarP(&analyzeOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&analyzeProvider, "provider", "", "LLM provider (gemini, openai, claude). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&analyzeModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().IntVar(&analyzeMaxSize, "max-size", 2048, "Maximum image dimension before downscaling")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	printHeader("🔍 UX Lens - Vision Analysis", imagePath)

	s := newSpinner()
	s.Suffix = " Loading screenshot..."
	s.Start()

	image, mimeType, err := prepareImage(imagePath, analyzeMaxSize)
	if err != nil {
		s.Stop()
		return fmt.Errorf("failed to load screenshot: %w", err)
	}
	s.Stop()
	printSuccess(fmt.Sprintf("Loaded screenshot (%s, %d bytes)", mimeType, len(image)))

	llmClient, err := llm.CreateFromEnv(analyzeProvider, analyzeModel)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	printSuccess("AI client initialized")

	s.Suffix = " Analyzing UI with vision model..."
	s.Start()

	visionAgent := agent.NewVisionAgent(llmClient)
	description := visionAgent.Analyze(image, mimeType)

	s.Stop()
	if description.OK() {
		printSuccess("Analysis complete")
	} else {
		printWarning("Analysis degraded (see result below)")
	}

	path, err := artifacts.WriteJSON(analyzeOutputDir, uiDescriptionFile, description)
	if err != nil {
		return err
	}
	printSaved(path)

	return formatter.DisplayUIDescription(description, analyzeOutputFormat)
}
