package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/uxlens/uxlens/pkg/model"
)

// DisplayUIDescription formats and displays a perception stage result
func DisplayUIDescription(desc *model.UIDescription, format string) error {
	switch format {
	case "json":
		return displayJSON(desc)
	case "yaml":
		return displayYAML(desc)
	case "human":
		fallthrough
	default:
		displayUIDescriptionHuman(desc)
	}
	return nil
}

// DisplayEvaluation formats and displays an evaluation stage result
func DisplayEvaluation(eval *model.EvaluationResult, format string) error {
	switch format {
	case "json":
		return displayJSON(eval)
	case "yaml":
		return displayYAML(eval)
	case "human":
		fallthrough
	default:
		displayEvaluationHuman(eval)
	}
	return nil
}

// DisplayFeedback formats and displays a feedback stage result
func DisplayFeedback(feedback *model.FeedbackResult, format string) error {
	switch format {
	case "json":
		return displayJSON(feedback)
	case "yaml":
		return displayYAML(feedback)
	case "human":
		fallthrough
	default:
		displayFeedbackHuman(feedback)
	}
	return nil
}

func displayJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayUIDescriptionHuman(desc *model.UIDescription) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	if displayFallback(desc.Fallback) {
		return
	}

	cyan.Println("📱 UI ANALYSIS:")
	fmt.Printf("   Screen Type: %s\n", orNA(desc.ScreenType))
	fmt.Printf("   Components Found: %d\n", len(desc.Components))
	fmt.Printf("   Layout: %s\n", orNA(desc.LayoutStructure))

	fmt.Println("\n   Color Scheme:")
	fmt.Printf("     Primary: %s\n", orNA(strings.Join(desc.ColorScheme.PrimaryColors, ", ")))
	fmt.Printf("     Background: %s\n", orNA(desc.ColorScheme.Background))

	if len(desc.Components) > 0 {
		fmt.Println("\n   First Components:")
		for i, comp := range desc.Components {
			if i == 3 {
				break
			}
			text := comp.Text
			if text == "" {
				text = "no text"
			}
			fmt.Printf("     %d. %s - %s\n", i+1, orNA(comp.Type), text)
		}
	}

	if len(desc.AccessibilityObservations) > 0 {
		fmt.Println("\n   Accessibility Observations:")
		for _, obs := range desc.AccessibilityObservations {
			fmt.Printf("     - %s\n", obs)
		}
	}
	fmt.Println()
}

func displayEvaluationHuman(eval *model.EvaluationResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	if displayFallback(eval.Fallback) {
		return
	}

	scoreColor := scoreToColor(eval.OverallScore)
	scoreColor.Printf("📊 OVERALL UX SCORE: %.1f/10\n\n", eval.OverallScore)

	if len(eval.Violations) > 0 {
		yellow.Printf("⚠️  VIOLATIONS FOUND (%d):\n", len(eval.Violations))
		for i, v := range eval.Violations {
			fmt.Printf("   %d. %s %s\n", i+1, severityIcon(v.Severity), orUnknown(v.HeuristicName))
			fmt.Printf("      %s\n", orNA(v.Issue))
			if v.Evidence != "" {
				fmt.Printf("      Evidence: %s\n", color.YellowString(v.Evidence))
			}
			fmt.Println()
		}
	}

	if len(eval.Strengths) > 0 {
		green.Printf("💪 STRENGTHS (%d):\n", len(eval.Strengths))
		for i, s := range eval.Strengths {
			fmt.Printf("   %d. %s\n", i+1, orUnknown(s.HeuristicName))
			fmt.Printf("      %s\n", orNA(s.Observation))
		}
		fmt.Println()
	}

	if len(eval.MobileSpecificIssues) > 0 {
		cyan.Printf("📱 MOBILE-SPECIFIC ISSUES (%d):\n", len(eval.MobileSpecificIssues))
		for i, issue := range eval.MobileSpecificIssues {
			fmt.Printf("   %d. %s %s\n", i+1, severityIcon(issue.Severity), orUnknown(issue.Category))
			fmt.Printf("      %s\n", orNA(issue.Issue))
			if issue.Recommendation != "" {
				fmt.Printf("      Fix: %s\n", issue.Recommendation)
			}
			fmt.Println()
		}
	}
}

func displayFeedbackHuman(feedback *model.FeedbackResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	if displayFallback(feedback.Fallback) {
		return
	}

	cyan.Printf("💡 DEVELOPER FEEDBACK (%s):\n", orUnknown(feedback.Platform))
	fmt.Printf("   Feedback Items: %d\n", feedback.TotalFeedbackItems)
	fmt.Printf("   Critical: %d  High: %d  Medium: %d  Low: %d\n",
		feedback.Summary.Critical, feedback.Summary.High,
		feedback.Summary.Medium, feedback.Summary.Low)
	fmt.Printf("   Estimated Time: %s\n\n", orUnknown(feedback.Summary.EstimatedTotalTime))

	for _, priority := range model.Priorities {
		for _, item := range feedback.FeedbackItems {
			if item.Priority != priority {
				continue
			}
			fmt.Printf("   %s %s\n", priorityIcon(item.Priority), orUnknown(item.Title))
			fmt.Printf("      %s\n\n", orNA(item.WhyItMatters))
		}
	}

	if len(feedback.QuickWins) > 0 {
		green.Printf("⚡ QUICK WINS (%d):\n", len(feedback.QuickWins))
		for i, win := range feedback.QuickWins {
			fmt.Printf("   %d. %s (%s)\n", i+1, orNA(win.Change), orNA(win.Effort))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// displayFallback prints the failure shape, if any, and reports whether
// the result was a failure.
func displayFallback(f model.Fallback) bool {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	if f.Failed() {
		red.Printf("❌ Error: %s\n", f.Error)
		return true
	}
	if f.ParseFailed() {
		yellow.Printf("⚠️  Parse error: %s\n", f.ParseError)
		fmt.Println("\nRaw response:")
		fmt.Println(truncate(f.RawResponse, 500))
		return true
	}
	return false
}

func scoreToColor(score float64) *color.Color {
	switch {
	case score >= 8:
		return color.New(color.FgGreen, color.Bold)
	case score >= 5:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func severityIcon(severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return "🔴"
	case "high":
		return "🟠"
	case "medium":
		return "🟡"
	case "low":
		return "🟢"
	default:
		return "⚪"
	}
}

func priorityIcon(priority string) string {
	switch strings.ToLower(priority) {
	case "critical":
		return "🔴"
	case "high":
		return "⚡"
	case "medium":
		return "🔹"
	case "low":
		return "▫️"
	default:
		return "•"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
