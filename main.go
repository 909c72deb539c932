package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/uxlens/uxlens/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uxlens",
		Short: "AI-powered UX audits for mobile screenshots",
		Long: `uxlens sends a mobile UI screenshot through a four-stage AI pipeline:
vision analysis, heuristic evaluation against Nielsen's usability rubric,
developer-actionable feedback, and regeneration of an improved wireframe.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env file, same variables as the environment.
			_ = godotenv.Load()
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		cmd.NewEvaluateCmd(),
		cmd.NewFeedbackCmd(),
		cmd.NewPipelineCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("uxlens version %s\n", version)
		},
	}
}
