package report

import (
	"fmt"
	"strings"

	"github.com/uxlens/uxlens/pkg/model"
)

// DeveloperReport renders the markdown developer report. Section order is
// fixed: title, summary counts, quick wins (only when non-empty),
// detailed feedback grouped by priority bucket (critical→high→medium→low,
// empty buckets omitted, in-bucket order preserved), then visual design
// changes from the wireframe instructions (each sub-list omitted when
// empty). Missing fields render as placeholders; the function never
// panics.
func DeveloperReport(feedback *model.FeedbackResult) string {
	if feedback == nil {
		feedback = &model.FeedbackResult{}
	}

	var b strings.Builder
	b.WriteString("# 🎯 UX Feedback Report for Developers\n\n")

	summary := feedback.Summary
	b.WriteString("## 📊 Summary\n\n")
	fmt.Fprintf(&b, "- **Total Issues Found:** %d\n", summary.TotalIssues)
	fmt.Fprintf(&b, "- **Critical:** %d\n", summary.Critical)
	fmt.Fprintf(&b, "- **High Priority:** %d\n", summary.High)
	fmt.Fprintf(&b, "- **Medium Priority:** %d\n", summary.Medium)
	fmt.Fprintf(&b, "- **Low Priority:** %d\n", summary.Low)
	fmt.Fprintf(&b, "- **Estimated Time to Fix:** %s\n\n", orUnknown(summary.EstimatedTotalTime))

	if len(feedback.QuickWins) > 0 {
		b.WriteString("## ⚡ Quick Wins (Do These First!)\n\n")
		b.WriteString("These changes take minimal time but provide maximum impact:\n\n")
		for i, win := range feedback.QuickWins {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, orNA(win.Change))
			fmt.Fprintf(&b, "   - Impact: %s\n", orNA(win.Impact))
			fmt.Fprintf(&b, "   - Effort: %s\n\n", orNA(win.Effort))
		}
	}

	if len(feedback.FeedbackItems) > 0 {
		b.WriteString("## 🔧 Detailed Feedback\n\n")

		for _, priority := range model.Priorities {
			var items []model.FeedbackItem
			for _, item := range feedback.FeedbackItems {
				if item.Priority == priority {
					items = append(items, item)
				}
			}
			if len(items) == 0 {
				continue
			}

			fmt.Fprintf(&b, "### %s Priority (%d items)\n\n", strings.ToUpper(priority), len(items))

			for _, item := range items {
				fmt.Fprintf(&b, "#### %d. %s\n\n", item.ID, orUnknown(item.Title))
				fmt.Fprintf(&b, "**Category:** %s  \n", orNA(item.Category))
				fmt.Fprintf(&b, "**Estimated Effort:** %s\n\n", orUnknown(item.EstimatedEffort))

				fmt.Fprintf(&b, "**Why it matters:**  \n%s\n\n", orNA(item.WhyItMatters))

				b.WriteString("**What to do:**\n")
				for _, step := range item.WhatToDo {
					fmt.Fprintf(&b, "- %s\n", step)
				}
				b.WriteString("\n")

				if item.CodeExample != nil {
					language := item.CodeExample.Language
					if language == "" {
						language = "code"
					}
					fmt.Fprintf(&b, "**Code Example (%s):**\n", language)
					fmt.Fprintf(&b, "```%s\n%s\n```\n\n", language, item.CodeExample.Code)
				}

				fmt.Fprintf(&b, "**Visual changes needed:**  \n%s\n\n", orNA(item.WireframeChanges))
				b.WriteString("---\n\n")
			}
		}
	}

	wi := feedback.WireframeInstructions
	if wi.OverallChanges != "" || len(wi.PriorityFixes) > 0 || len(wi.LayoutModifications) > 0 ||
		len(wi.ColorAdjustments) > 0 || len(wi.TypographyChanges) > 0 {
		b.WriteString("## 🎨 Visual Design Changes\n\n")

		if wi.OverallChanges != "" {
			fmt.Fprintf(&b, "**Overall:** %s\n\n", wi.OverallChanges)
		}
		writeBulletSection(&b, "Priority Visual Fixes", wi.PriorityFixes)
		writeBulletSection(&b, "Layout Modifications", wi.LayoutModifications)
		writeBulletSection(&b, "Color Adjustments", wi.ColorAdjustments)
		writeBulletSection(&b, "Typography Changes", wi.TypographyChanges)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeBulletSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
