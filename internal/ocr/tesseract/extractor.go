// Package tesseract implements ocr.Extractor with the Tesseract engine.
//
// With cgo enabled the gosseract/v2 bindings are used and Tesseract plus the
// language data must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng libtesseract-dev
//   - macOS: brew install tesseract
//
// Without cgo the package still builds, but every extraction fails with
// ErrNotEnabled.
package tesseract

import "errors"

// ErrNotEnabled is returned by Extract when the binary was built without cgo.
var ErrNotEnabled = errors.New("tesseract OCR not enabled; rebuild with CGO_ENABLED=1")

// DefaultLanguage is used when an Extractor has no language set.
const DefaultLanguage = "eng"

// PSMAuto is Tesseract's fully automatic page segmentation (no OSD), which
// suits multi-column menus.
const PSMAuto = 3

// Extractor runs Tesseract on menu images.
//
// The zero value is usable and recognizes English with automatic page
// segmentation. An Extractor holds no engine state between calls and is safe
// for concurrent use.
type Extractor struct {
	// Language is the Tesseract language code, e.g. "eng" or "eng+hin".
	Language string

	// TessdataPrefix overrides the directory holding *.traineddata files.
	// Empty means Tesseract's compiled-in default or TESSDATA_PREFIX.
	TessdataPrefix string

	// PageSegMode is the Tesseract page segmentation mode (1-13).
	// Zero selects PSMAuto; OSD-only mode 0 yields no text.
	PageSegMode int
}

// New creates an Extractor for the given language.
func New(language string) *Extractor {
	return &Extractor{
		Language:    language,
		PageSegMode: PSMAuto,
	}
}

func (e *Extractor) language() string {
	if e.Language == "" {
		return DefaultLanguage
	}
	return e.Language
}

func (e *Extractor) pageSegMode() int {
	if e.PageSegMode == 0 {
		return PSMAuto
	}
	return e.PageSegMode
}
