// Package ocr defines the boundary between the menu batch and whatever
// performs Optical Character Recognition.
//
// The batch only needs one capability: given the path of a menu image, return
// the raw text found in it. That capability is the Extractor interface. The
// production implementation lives in the tesseract subpackage; tests and
// tools can substitute an ExtractorFunc returning canned text.
//
// # Bounded Waits
//
// OCR is slow and may hang on pathological input. WithTimeout wraps any
// Extractor so that each call gives up after a fixed duration with an error
// wrapping ErrTimeout:
//
//	ex := ocr.WithTimeout(tesseract.New("eng"), 60*time.Second)
//	text, err := ex.Extract(ctx, "/data/menu_images/cafe1/menu_0.jpg")
//	if errors.Is(err, ocr.ErrTimeout) {
//	    // skip this image
//	}
//
// # Error Handling
//
// An error or an empty string both mean "this image produced no text". The
// caller decides what to do; the menu batch skips the image and carries on.
// No Extractor in this package retries.
package ocr
