package ocr

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when an extraction does not finish within its bound.
var ErrTimeout = errors.New("ocr timed out")

// Extractor extracts raw text from a menu image.
type Extractor interface {
	// Extract returns the text recognized in the image at imagePath.
	// An empty string with a nil error means the image holds no text.
	Extract(ctx context.Context, imagePath string) (string, error)
}

// ExtractorFunc adapts an ordinary function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, imagePath string) (string, error)

// Extract calls f(ctx, imagePath).
func (f ExtractorFunc) Extract(ctx context.Context, imagePath string) (string, error) {
	return f(ctx, imagePath)
}

// WithTimeout bounds every call to e by d.
//
// If d elapses first, Extract returns an error wrapping ErrTimeout. The
// context passed to e is cancelled at that point, but an extractor that
// ignores its context keeps running in the background until it returns;
// its result is discarded. A d of zero or less returns e unchanged.
func WithTimeout(e Extractor, d time.Duration) Extractor {
	if d <= 0 {
		return e
	}
	return &timeoutExtractor{next: e, timeout: d}
}

type timeoutExtractor struct {
	next    Extractor
	timeout time.Duration
}

type extractResult struct {
	text string
	err  error
}

func (t *timeoutExtractor) Extract(ctx context.Context, imagePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	// Buffered so the goroutine can always deliver and exit.
	done := make(chan extractResult, 1)
	go func() {
		text, err := t.next.Extract(ctx, imagePath)
		done <- extractResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %s", ErrTimeout, t.timeout, imagePath)
		}
		return "", ctx.Err()
	}
}
