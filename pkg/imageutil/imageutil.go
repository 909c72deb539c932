// Package imageutil loads screenshots and keeps them within the size the
// model providers accept.
package imageutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"

	"golang.org/x/image/draw"
)

// Load reads the image file and sniffs its MIME type from the leading
// bytes. Decodability is not verified here; an unsupported payload
// surfaces when the provider rejects it or when Downscale decodes it.
func Load(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("image file %s is empty", path)
	}
	return data, http.DetectContentType(data), nil
}

// Downscale resizes the image so its largest dimension does not exceed
// maxSize, preserving aspect ratio. Images already within bounds are
// returned unchanged. Resized output is re-encoded in the source format
// (JPEG at quality 90, everything else as PNG) and the matching MIME type
// is returned.
func Downscale(data []byte, mimeType string, maxSize int) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	largest := width
	if height > largest {
		largest = height
	}
	if largest <= maxSize {
		return data, mimeType, nil
	}

	ratio := float64(maxSize) / float64(largest)
	newWidth := int(float64(width) * ratio)
	newHeight := int(float64(height) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if mimeType == "image/jpeg" {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
			return nil, "", fmt.Errorf("encode resized image: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
