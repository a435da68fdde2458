//go:build cgo

package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/menu-ocr/internal/imaging"
)

// Extract performs OCR on the menu image at imagePath and returns its text.
//
// The image is decoded first; a blank image returns "" without running
// Tesseract. Otherwise the decoded pixels are submitted as PNG to a fresh
// gosseract client configured with the extractor's language, tessdata
// prefix and page segmentation mode.
//
// Tesseract cannot be interrupted once started, so ctx is only checked
// before the engine runs. Wrap the extractor with ocr.WithTimeout to bound
// the wait.
func (e *Extractor) Extract(ctx context.Context, imagePath string) (string, error) {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return "", err
	}

	if imaging.IsBlank(img) {
		return "", nil
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(e.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(e.language()); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PageSegMode(e.pageSegMode())); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed for %s: %w", imagePath, err)
	}
	return text, nil
}

// Version returns the version of the linked Tesseract library.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
