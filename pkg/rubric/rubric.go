// Package rubric loads the static heuristic catalog the evaluation stage
// judges against: Nielsen's ten usability heuristics plus a set of
// mobile-specific guideline categories. The catalog is loaded once at
// startup and passed explicitly to the evaluation stage; it is never
// mutated afterwards.
package rubric

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rubric is the full evaluation catalog.
type Rubric struct {
	Heuristics               []Heuristic         `json:"heuristics" yaml:"heuristics"`
	MobileSpecificGuidelines []GuidelineCategory `json:"mobile_specific_guidelines" yaml:"mobile_specific_guidelines"`
}

// Heuristic is one of the ten usability principles, referenced by
// violations through its ID (1-10).
type Heuristic struct {
	ID                   int      `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Description          string   `json:"description" yaml:"description"`
	MobileConsiderations []string `json:"mobile_considerations" yaml:"mobile_considerations"`
}

// GuidelineCategory groups mobile-specific guidelines under a category
// label (touch targets, typography, ...).
type GuidelineCategory struct {
	Category   string   `json:"category" yaml:"category"`
	Guidelines []string `json:"guidelines" yaml:"guidelines"`
}

// Load reads the rubric from path. JSON is the primary format; .yaml/.yml
// files are accepted too. A missing or malformed file is a fatal startup
// condition for the caller, so Load returns an error rather than a
// degraded rubric.
func Load(path string) (*Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heuristics file: %w", err)
	}

	var r Rubric
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse heuristics file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse heuristics file: %w", err)
		}
	}

	if len(r.Heuristics) == 0 {
		return nil, fmt.Errorf("heuristics file %s contains no heuristics", path)
	}
	return &r, nil
}

// FormatHeuristics renders the heuristics as readable prompt text. Only
// the first three mobile considerations per heuristic are included to
// keep the prompt compact.
func (r *Rubric) FormatHeuristics() string {
	var b strings.Builder
	for _, h := range r.Heuristics {
		fmt.Fprintf(&b, "%d. %s\n", h.ID, h.Name)
		fmt.Fprintf(&b, "   Description: %s\n", h.Description)
		considerations := h.MobileConsiderations
		if len(considerations) > 3 {
			considerations = considerations[:3]
		}
		fmt.Fprintf(&b, "   Mobile considerations: %s\n\n", strings.Join(considerations, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatMobileGuidelines renders the guideline catalog as readable prompt
// text, one bulleted block per category.
func (r *Rubric) FormatMobileGuidelines() string {
	var b strings.Builder
	for _, cat := range r.MobileSpecificGuidelines {
		fmt.Fprintf(&b, "**%s:**\n", cat.Category)
		for _, g := range cat.Guidelines {
			fmt.Fprintf(&b, "  - %s\n", g)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
