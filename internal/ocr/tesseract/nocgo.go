//go:build !cgo

package tesseract

import "context"

// Extract always fails with ErrNotEnabled.
func (e *Extractor) Extract(ctx context.Context, imagePath string) (string, error) {
	return "", ErrNotEnabled
}

// Version returns "" because no Tesseract library is linked.
func Version() string {
	return ""
}
