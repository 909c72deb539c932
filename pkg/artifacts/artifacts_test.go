package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")

	path, err := WriteJSON(dir, "result.json", map[string]int{"answer": 42})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer": 42}`, string(data))
}

func TestWriteText(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteText(dir, "report.txt", "hello")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteWireframeTimestampedName(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)

	path, err := WriteWireframe(dir, "<html></html>", ts)

	require.NoError(t, err)
	assert.Equal(t, "wireframe_20260825_143005.html", filepath.Base(path))
}

func TestWriteTextDirIsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	_, err := WriteText(dir, "report.txt", "hello")
	assert.Error(t, err)
}
