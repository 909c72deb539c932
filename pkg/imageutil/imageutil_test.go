package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 8, 8), 0o644))

	data, mimeType, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.NotEmpty(t, data)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, _, err := Load(path)
	assert.ErrorContains(t, err, "empty")
}

func TestDownscaleWithinBounds(t *testing.T) {
	data := encodePNG(t, 100, 50)

	got, mimeType, err := Downscale(data, "image/png", 2048)

	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", mimeType)
}

func TestDownscaleOversized(t *testing.T) {
	data := encodePNG(t, 400, 200)

	got, mimeType, err := Downscale(data, "image/png", 100)

	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)

	img, _, err := image.Decode(bytes.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestDownscaleUndecodable(t *testing.T) {
	_, _, err := Downscale([]byte("not an image"), "image/png", 100)
	assert.Error(t, err)
}
