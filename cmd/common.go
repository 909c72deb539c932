package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/uxlens/uxlens/pkg/imageutil"
)

// Artifact filenames, numbered by pipeline stage. Only the wireframe
// viewer gets a timestamp suffix (written by the wireframe agent).
const (
	uiDescriptionFile     = "1_ui_description.json"
	evaluationFile        = "2_evaluation.json"
	feedbackFile          = "3_feedback.json"
	wireframeMetadataFile = "4_wireframe_metadata.json"
	evaluationReportFile  = "evaluation_report.txt"
	developerReportFile   = "DEVELOPER_FEEDBACK.md"
)

func newSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[11], 100*time.Millisecond)
}

// prepareImage loads the screenshot and downscales it so the largest
// dimension stays within maxSize.
func prepareImage(path string, maxSize int) ([]byte, string, error) {
	data, mimeType, err := imageutil.Load(path)
	if err != nil {
		return nil, "", err
	}
	return imageutil.Downscale(data, mimeType, maxSize)
}

func printHeader(title, imagePath string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println(title)
	fmt.Printf("📸 Screenshot: %s\n", imagePath)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printWarning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("⚠ %s\n", msg)
}

func printSaved(path string) {
	fmt.Printf("💾 Saved: %s\n", path)
}
