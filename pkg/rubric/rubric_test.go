package rubric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rubricJSON = `{
  "heuristics": [
    {
      "id": 1,
      "name": "Visibility of system status",
      "description": "Keep users informed.",
      "mobile_considerations": ["Show loading indicators", "Give tap feedback", "Show progress", "Surface sync state"]
    }
  ],
  "mobile_specific_guidelines": [
    {"category": "Touch Targets", "guidelines": ["At least 48x48dp", "8dp spacing"]}
  ]
}`

const rubricYAML = `heuristics:
  - id: 1
    name: Visibility of system status
    description: Keep users informed.
    mobile_considerations:
      - Show loading indicators
mobile_specific_guidelines:
  - category: Typography
    guidelines:
      - 16sp minimum body text
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	r, err := Load(writeFile(t, "heuristics.json", rubricJSON))

	require.NoError(t, err)
	require.Len(t, r.Heuristics, 1)
	assert.Equal(t, 1, r.Heuristics[0].ID)
	assert.Equal(t, "Visibility of system status", r.Heuristics[0].Name)
	require.Len(t, r.MobileSpecificGuidelines, 1)
	assert.Equal(t, "Touch Targets", r.MobileSpecificGuidelines[0].Category)
}

func TestLoadYAML(t *testing.T) {
	r, err := Load(writeFile(t, "heuristics.yaml", rubricYAML))

	require.NoError(t, err)
	require.Len(t, r.Heuristics, 1)
	assert.Equal(t, "Typography", r.MobileSpecificGuidelines[0].Category)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEmptyCatalog(t *testing.T) {
	_, err := Load(writeFile(t, "empty.json", `{"heuristics": []}`))
	assert.ErrorContains(t, err, "no heuristics")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "bad.json", `{not json`))
	assert.Error(t, err)
}

func TestFormatHeuristicsTruncatesConsiderations(t *testing.T) {
	r, err := Load(writeFile(t, "heuristics.json", rubricJSON))
	require.NoError(t, err)

	got := r.FormatHeuristics()

	assert.Contains(t, got, "1. Visibility of system status")
	assert.Contains(t, got, "Description: Keep users informed.")
	assert.Contains(t, got, "Show progress")
	// Only the first three considerations make it into the prompt.
	assert.NotContains(t, got, "Surface sync state")
}

func TestFormatMobileGuidelines(t *testing.T) {
	r, err := Load(writeFile(t, "heuristics.json", rubricJSON))
	require.NoError(t, err)

	got := r.FormatMobileGuidelines()

	assert.Contains(t, got, "**Touch Targets:**")
	assert.Contains(t, got, "  - At least 48x48dp")
	assert.Contains(t, got, "  - 8dp spacing")
}
