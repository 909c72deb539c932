// Package report renders human-readable documents from stage results.
// Every renderer is total: missing fields become placeholders and a fully
// empty result still produces a well-formed document.
package report

import (
	"fmt"
	"strings"

	"github.com/uxlens/uxlens/pkg/model"
)

const rule = "======================================================================"

// EvaluationReport renders the plain-text heuristic evaluation report:
// score, severity-grouped violations, strengths, and mobile-specific
// issues. Severity groups follow the fixed critical→low order and empty
// groups are omitted.
func EvaluationReport(eval *model.EvaluationResult) string {
	if eval == nil {
		eval = &model.EvaluationResult{}
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("UX HEURISTIC EVALUATION REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "\n**Overall UX Score: %.1f/10**\n", eval.OverallScore)

	if len(eval.Violations) > 0 {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "VIOLATIONS FOUND (%d)\n", len(eval.Violations))
		fmt.Fprintf(&b, "%s\n", rule)

		for _, severity := range model.Priorities {
			var group []model.Violation
			for _, v := range eval.Violations {
				if v.Severity == severity {
					group = append(group, v)
				}
			}
			if len(group) == 0 {
				continue
			}

			fmt.Fprintf(&b, "\n%s Severity (%d):\n", strings.ToUpper(severity), len(group))
			b.WriteString(strings.Repeat("-", 70) + "\n")

			for i, v := range group {
				fmt.Fprintf(&b, "\n%d. %s\n", i+1, orUnknown(v.HeuristicName))
				fmt.Fprintf(&b, "   Issue: %s\n", orNA(v.Issue))
				fmt.Fprintf(&b, "   Affected: %s\n", strings.Join(v.AffectedComponents, ", "))
				fmt.Fprintf(&b, "   Suggestion: %s\n", orNA(v.ImprovementSuggestion))
			}
		}
	}

	if len(eval.Strengths) > 0 {
		fmt.Fprintf(&b, "\n\n%s\n", rule)
		fmt.Fprintf(&b, "STRENGTHS (%d)\n", len(eval.Strengths))
		fmt.Fprintf(&b, "%s\n\n", rule)

		for i, s := range eval.Strengths {
			fmt.Fprintf(&b, "%d. %s\n", i+1, orUnknown(s.HeuristicName))
			fmt.Fprintf(&b, "   %s\n\n", orNA(s.Observation))
		}
	}

	if len(eval.MobileSpecificIssues) > 0 {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "MOBILE-SPECIFIC ISSUES (%d)\n", len(eval.MobileSpecificIssues))
		fmt.Fprintf(&b, "%s\n\n", rule)

		for i, issue := range eval.MobileSpecificIssues {
			fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, orUnknown(issue.Category), orUnknownLower(issue.Severity))
			fmt.Fprintf(&b, "   Issue: %s\n", orNA(issue.Issue))
			fmt.Fprintf(&b, "   Fix: %s\n\n", orNA(issue.Recommendation))
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
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

func orUnknownLower(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
