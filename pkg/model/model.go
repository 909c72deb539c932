package model

// Fallback is the failure shape shared by every stage result. A result
// carries either its substantive fields or a populated Fallback, never a
// partial mix. Error is set when the model call itself failed; ParseError
// plus RawResponse are set when the response text could not be decoded.
type Fallback struct {
	Error       string `json:"error,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
	ParseError  string `json:"parse_error,omitempty"`
}

// Failed reports whether the model call itself failed.
func (f Fallback) Failed() bool {
	return f.Error != ""
}

// ParseFailed reports whether the response text could not be decoded.
func (f Fallback) ParseFailed() bool {
	return f.ParseError != ""
}

// OK reports whether the result carries substantive fields.
func (f Fallback) OK() bool {
	return f.Error == "" && f.ParseError == ""
}

// UIDescription is the perception stage output: a structured description
// of a single mobile screenshot.
type UIDescription struct {
	Fallback

	ScreenType                string               `json:"screen_type,omitempty"`
	Components                []Component          `json:"components,omitempty"`
	LayoutStructure           string               `json:"layout_structure,omitempty"`
	ColorScheme               ColorScheme          `json:"color_scheme,omitempty"`
	Typography                Typography           `json:"typography,omitempty"`
	SpacingAndDensity         SpacingAndDensity    `json:"spacing_and_density,omitempty"`
	InteractiveElements       []InteractiveElement `json:"interactive_elements,omitempty"`
	VisualHierarchy           string               `json:"visual_hierarchy,omitempty"`
	AccessibilityObservations []string             `json:"accessibility_observations,omitempty"`
	NotablePatterns           []string             `json:"notable_patterns,omitempty"`
}

// Component describes one UI element. All fields are free text: the model
// may emit values outside the example vocabulary and downstream code must
// not assume a closed set.
type Component struct {
	Type     string `json:"type,omitempty"`
	Text     string `json:"text,omitempty"`
	Position string `json:"position,omitempty"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Style    string `json:"style,omitempty"`
}

type ColorScheme struct {
	PrimaryColors []string `json:"primary_colors,omitempty"`
	Background    string   `json:"background,omitempty"`
	TextColors    []string `json:"text_colors,omitempty"`
}

type Typography struct {
	HeadingSizes string `json:"heading_sizes,omitempty"`
	BodyTextSize string `json:"body_text_size,omitempty"`
	FontWeights  string `json:"font_weights,omitempty"`
}

type SpacingAndDensity struct {
	OverallDensity string `json:"overall_density,omitempty"`
	Padding        string `json:"padding,omitempty"`
	ElementSpacing string `json:"element_spacing,omitempty"`
}

type InteractiveElement struct {
	Element    string `json:"element,omitempty"`
	Action     string `json:"action,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

// EvaluationResult is the heuristic evaluation stage output. OverallScore
// is derived from Violations and never taken from the model response.
type EvaluationResult struct {
	Fallback

	Violations           []Violation   `json:"violations,omitempty"`
	Strengths            []Strength    `json:"strengths,omitempty"`
	MobileSpecificIssues []MobileIssue `json:"mobile_specific_issues,omitempty"`
	OverallScore         float64       `json:"overall_score"`
}

// Violation is a breach of one of the ten rubric heuristics.
type Violation struct {
	HeuristicID           int      `json:"heuristic_id,omitempty"`
	HeuristicName         string   `json:"heuristic_name,omitempty"`
	Severity              string   `json:"severity,omitempty"`
	Issue                 string   `json:"issue,omitempty"`
	AffectedComponents    []string `json:"affected_components,omitempty"`
	Evidence              string   `json:"evidence,omitempty"`
	ImprovementSuggestion string   `json:"improvement_suggestion,omitempty"`
}

type Strength struct {
	HeuristicID   int    `json:"heuristic_id,omitempty"`
	HeuristicName string `json:"heuristic_name,omitempty"`
	Observation   string `json:"observation,omitempty"`
}

type MobileIssue struct {
	Category       string `json:"category,omitempty"`
	Severity       string `json:"severity,omitempty"`
	Issue          string `json:"issue,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// FeedbackResult is the feedback stage output. TotalFeedbackItems is
// always recomputed as len(FeedbackItems); the value the model claims is
// discarded.
type FeedbackResult struct {
	Fallback

	FeedbackItems         []FeedbackItem        `json:"feedback_items,omitempty"`
	WireframeInstructions WireframeInstructions `json:"wireframe_instructions,omitempty"`
	QuickWins             []QuickWin            `json:"quick_wins,omitempty"`
	Summary               FeedbackSummary       `json:"summary"`
	Platform              string                `json:"platform,omitempty"`
	TotalFeedbackItems    int                   `json:"total_feedback_items"`
}

type FeedbackItem struct {
	ID                 int          `json:"id,omitempty"`
	Title              string       `json:"title,omitempty"`
	Category           string       `json:"category,omitempty"`
	Priority           string       `json:"priority,omitempty"`
	WhyItMatters       string       `json:"why_it_matters,omitempty"`
	WhatToDo           []string     `json:"what_to_do,omitempty"`
	CodeExample        *CodeExample `json:"code_example,omitempty"`
	WireframeChanges   string       `json:"wireframe_changes,omitempty"`
	AffectedComponents []string     `json:"affected_components,omitempty"`
	EstimatedEffort    string       `json:"estimated_effort,omitempty"`
}

type CodeExample struct {
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
}

type WireframeInstructions struct {
	OverallChanges      string   `json:"overall_changes,omitempty"`
	PriorityFixes       []string `json:"priority_fixes,omitempty"`
	LayoutModifications []string `json:"layout_modifications,omitempty"`
	ColorAdjustments    []string `json:"color_adjustments,omitempty"`
	TypographyChanges   []string `json:"typography_changes,omitempty"`
}

type QuickWin struct {
	Change string `json:"change,omitempty"`
	Impact string `json:"impact,omitempty"`
	Effort string `json:"effort,omitempty"`
}

type FeedbackSummary struct {
	TotalIssues        int    `json:"total_issues"`
	Critical           int    `json:"critical"`
	High               int    `json:"high"`
	Medium             int    `json:"medium"`
	Low                int    `json:"low"`
	EstimatedTotalTime string `json:"estimated_total_time,omitempty"`
}

// WireframeResult is the regeneration stage output: the bare wireframe
// markup, the complete viewer document, and where the viewer was written.
type WireframeResult struct {
	Fallback

	WireframeHTML string `json:"wireframe_html,omitempty"`
	CompleteHTML  string `json:"complete_html,omitempty"`
	OutputPath    string `json:"output_path,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// Priorities is the fixed bucket order used by reports: highest impact
// first. Buckets with no items are omitted from rendered output.
var Priorities = []string{"critical", "high", "medium", "low"}
