package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxlens/uxlens/pkg/model"
)

func TestDeveloperReportEmptyResult(t *testing.T) {
	// An entirely empty result still renders a well-formed document.
	got := DeveloperReport(&model.FeedbackResult{})

	assert.Contains(t, got, "# 🎯 UX Feedback Report for Developers")
	assert.Contains(t, got, "- **Total Issues Found:** 0")
	assert.Contains(t, got, "- **Critical:** 0")
	assert.Contains(t, got, "- **Estimated Time to Fix:** Unknown")
	assert.NotContains(t, got, "## ⚡ Quick Wins")
	assert.NotContains(t, got, "## 🔧 Detailed Feedback")
	assert.NotContains(t, got, "## 🎨 Visual Design Changes")
}

func TestDeveloperReportNilResult(t *testing.T) {
	assert.NotPanics(t, func() { DeveloperReport(nil) })
}

func TestDeveloperReportPriorityOrder(t *testing.T) {
	feedback := &model.FeedbackResult{
		FeedbackItems: []model.FeedbackItem{
			{ID: 1, Title: "Low thing", Priority: "low"},
			{ID: 2, Title: "Critical thing", Priority: "critical"},
			{ID: 3, Title: "Second low thing", Priority: "low"},
		},
	}

	got := DeveloperReport(feedback)

	criticalIdx := strings.Index(got, "### CRITICAL Priority (1 items)")
	lowIdx := strings.Index(got, "### LOW Priority (2 items)")
	require.GreaterOrEqual(t, criticalIdx, 0)
	require.GreaterOrEqual(t, lowIdx, 0)
	assert.Less(t, criticalIdx, lowIdx)

	// Empty buckets are omitted entirely.
	assert.NotContains(t, got, "### HIGH Priority")
	assert.NotContains(t, got, "### MEDIUM Priority")

	// In-bucket order is preserved.
	first := strings.Index(got, "Low thing")
	second := strings.Index(got, "Second low thing")
	assert.Less(t, first, second)
}

func TestDeveloperReportSections(t *testing.T) {
	feedback := &model.FeedbackResult{
		FeedbackItems: []model.FeedbackItem{{
			ID:           1,
			Title:        "Add Loading State Indicators",
			Category:     "Visibility of system status",
			Priority:     "high",
			WhyItMatters: "Users need feedback while waiting.",
			WhatToDo:     []string{"Add a spinner", "Disable the button"},
			CodeExample: &model.CodeExample{
				Language: "kotlin",
				Code:     "progressBar.visibility = View.VISIBLE",
			},
			WireframeChanges: "Add spinner overlay",
			EstimatedEffort:  "30 minutes",
		}},
		QuickWins: []model.QuickWin{
			{Change: "Bump body text to 16sp", Impact: "Readability", Effort: "5 minutes"},
		},
		WireframeInstructions: model.WireframeInstructions{
			OverallChanges:    "Lighten the palette",
			ColorAdjustments:  []string{"Raise contrast on primary button"},
			TypographyChanges: []string{"16sp minimum body text"},
		},
		Summary: model.FeedbackSummary{TotalIssues: 1, High: 1, EstimatedTotalTime: "1 hour"},
	}

	got := DeveloperReport(feedback)

	// Sections appear in their fixed order.
	summaryIdx := strings.Index(got, "## 📊 Summary")
	quickIdx := strings.Index(got, "## ⚡ Quick Wins")
	detailIdx := strings.Index(got, "## 🔧 Detailed Feedback")
	visualIdx := strings.Index(got, "## 🎨 Visual Design Changes")
	assert.True(t, summaryIdx < quickIdx && quickIdx < detailIdx && detailIdx < visualIdx)

	assert.Contains(t, got, "```kotlin\nprogressBar.visibility = View.VISIBLE\n```")
	assert.Contains(t, got, "**Color Adjustments:**")
	assert.Contains(t, got, "**Typography Changes:**")
	// Empty sub-lists are omitted.
	assert.NotContains(t, got, "**Priority Visual Fixes:**")
	assert.NotContains(t, got, "**Layout Modifications:**")
}

func TestDeveloperReportPlaceholders(t *testing.T) {
	feedback := &model.FeedbackResult{
		FeedbackItems: []model.FeedbackItem{{Priority: "medium"}},
	}

	got := DeveloperReport(feedback)

	assert.Contains(t, got, "#### 0. Unknown")
	assert.Contains(t, got, "**Category:** N/A")
	assert.Contains(t, got, "**Estimated Effort:** Unknown")
	assert.Contains(t, got, "**Why it matters:**  \nN/A")
	assert.Contains(t, got, "**Visual changes needed:**  \nN/A")
}

func TestEvaluationReportGroupsBySeverity(t *testing.T) {
	eval := &model.EvaluationResult{
		OverallScore: 6.0,
		Violations: []model.Violation{
			{HeuristicName: "Error prevention", Severity: "medium", Issue: "no inline validation"},
			{HeuristicName: "Visibility of system status", Severity: "high", Issue: "no loading state"},
		},
		Strengths: []model.Strength{
			{HeuristicName: "Consistency and standards", Observation: "uniform buttons"},
		},
		MobileSpecificIssues: []model.MobileIssue{
			{Category: "Touch Targets", Severity: "high", Issue: "buttons too small", Recommendation: "48dp minimum"},
		},
	}

	got := EvaluationReport(eval)

	assert.Contains(t, got, "**Overall UX Score: 6.0/10**")
	assert.Contains(t, got, "VIOLATIONS FOUND (2)")
	highIdx := strings.Index(got, "HIGH Severity (1):")
	mediumIdx := strings.Index(got, "MEDIUM Severity (1):")
	require.GreaterOrEqual(t, highIdx, 0)
	require.GreaterOrEqual(t, mediumIdx, 0)
	assert.Less(t, highIdx, mediumIdx)
	assert.NotContains(t, got, "CRITICAL Severity")
	assert.Contains(t, got, "STRENGTHS (1)")
	assert.Contains(t, got, "MOBILE-SPECIFIC ISSUES (1)")
}

func TestEvaluationReportEmpty(t *testing.T) {
	got := EvaluationReport(&model.EvaluationResult{OverallScore: 10.0})

	assert.Contains(t, got, "**Overall UX Score: 10.0/10**")
	assert.NotContains(t, got, "VIOLATIONS FOUND")
	assert.NotContains(t, got, "STRENGTHS")
}

func TestViewerHTMLEmbedsWireframe(t *testing.T) {
	feedback := &model.FeedbackResult{
		Summary: model.FeedbackSummary{TotalIssues: 4, High: 2, Medium: 1, Low: 1},
	}
	wireframe := `<!DOCTYPE html><html><body><p class='note'>hi</p></body></html>`

	got := ViewerHTML(wireframe, feedback)

	// Single quotes are escaped so the srcdoc attribute survives.
	assert.Contains(t, got, "&#39;note&#39;")
	assert.NotContains(t, got, "class='note'")
	assert.Contains(t, got, `<span class="stat-value">4</span>`)
	assert.Contains(t, got, "html2canvas")
	assert.Contains(t, got, "downloadHTML()")
}

func TestViewerHTMLNilFeedback(t *testing.T) {
	assert.NotPanics(t, func() { ViewerHTML("<html></html>", nil) })
}
