// Package artifacts writes the pipeline's output files. Every artifact
// is self-contained and deterministically named except the wireframe,
// whose timestamp suffix keeps repeated runs from colliding.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteJSON marshals v with indentation and writes it to dir/name,
// creating dir if needed. Returns the full path written.
func WriteJSON(dir, name string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", name, err)
	}
	return WriteText(dir, name, string(data))
}

// WriteText writes content to dir/name, creating dir if needed.
func WriteText(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// WriteWireframe persists a complete viewer document under a timestamped
// filename and returns the path.
func WriteWireframe(dir, html string, t time.Time) (string, error) {
	name := fmt.Sprintf("wireframe_%s.html", t.Format("20060102_150405"))
	return WriteText(dir, name, html)
}
