package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes a menu image.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The EXIF
// orientation tag of JPEG and TIFF files is applied so photographed menus are
// upright.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not in one of the supported formats
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG encodes img as PNG.
//
// Tesseract reads images through Leptonica, whose format support depends on
// how it was built. PNG is always available, so every image is handed over in
// that format.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Format returns the image format implied by the file extension of path:
// "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown".
//
// Detection is based on the extension only, not the file contents.
func Format(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return "webp"
	}

	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "unknown"
	}
	switch f {
	case imaging.PNG:
		return "png"
	case imaging.JPEG:
		return "jpeg"
	case imaging.GIF:
		return "gif"
	case imaging.BMP:
		return "bmp"
	case imaging.TIFF:
		return "tiff"
	}
	return "unknown"
}
