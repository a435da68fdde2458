// Package batch walks a tree of restaurant menu images and writes one menu
// record per restaurant.
//
// The images directory holds one subdirectory per restaurant:
//
//	menu_images/
//	    3-kings-kafe/
//	        menu_0.jpg
//	        menu_1.jpg
//	    cafe1/
//	        a.png
//
// Each restaurant becomes menu_text/<restaurant>.txt. A restaurant whose
// record already exists is skipped, so an interrupted run can simply be
// started again and continues with the restaurants that have no record yet.
// Restaurants and images are processed one at a time.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/menu-ocr/internal/config"
	"github.com/ironsheep/menu-ocr/internal/menu"
	"github.com/ironsheep/menu-ocr/internal/ocr"
)

// Runner processes every restaurant under ImagesDir.
type Runner struct {
	// ImagesDir contains one subdirectory of images per restaurant.
	ImagesDir string

	// OutputDir receives the <restaurant>.txt records. It is created if missing.
	OutputDir string

	// Extractor performs OCR on a single image.
	Extractor ocr.Extractor

	// Logger receives progress messages. Nil uses the standard logger.
	Logger *log.Logger

	// Verbose enables a log line per image.
	Verbose bool
}

// Summary counts what a run did.
type Summary struct {
	Restaurants  int `json:"restaurants"`   // restaurant directories found
	Processed    int `json:"processed"`     // records written
	Skipped      int `json:"skipped"`       // restaurants that already had a record
	Images       int `json:"images"`        // images submitted to OCR
	FailedImages int `json:"failed_images"` // images whose OCR returned an error
	Lines        int `json:"lines"`         // menu lines written across all records
}

// New creates a Runner from cfg. The extractor is bounded by cfg.OCRTimeout.
func New(cfg config.Config, ex ocr.Extractor) *Runner {
	return &Runner{
		ImagesDir: cfg.ImagesDir,
		OutputDir: cfg.OutputDir,
		Extractor: ocr.WithTimeout(ex, cfg.OCRTimeout),
		Verbose:   cfg.Debug,
	}
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.Verbose {
		r.logf(format, args...)
	}
}

// Run processes every restaurant that has no record yet.
//
// Filesystem errors abort the run and are returned together with the summary
// of the work completed so far. OCR failures only drop the affected image.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	entries, err := os.ReadDir(r.ImagesDir)
	if err != nil {
		return summary, fmt.Errorf("failed to read images directory: %w", err)
	}

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := r.sweepTempFiles(); err != nil {
		return summary, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		id := entry.Name()
		summary.Restaurants++

		outPath := menu.OutputPath(r.OutputDir, id)
		exists, err := fileExists(outPath)
		if err != nil {
			return summary, err
		}
		if exists {
			summary.Skipped++
			r.debugf("Skipping %s: %s already exists", id, outPath)
			continue
		}

		rec, stats, err := r.processRestaurant(ctx, id)
		summary.Images += stats.images
		summary.FailedImages += stats.failed
		if err != nil {
			return summary, err
		}

		if err := menu.WriteRecord(outPath, rec); err != nil {
			return summary, fmt.Errorf("failed to write record for %s: %w", id, err)
		}
		summary.Processed++
		summary.Lines += len(rec.MenuItems)
		r.logf("Wrote %s: %d menu lines from %d images", outPath, len(rec.MenuItems), stats.images)
	}

	return summary, nil
}

// ProcessRestaurant runs OCR over every image of restaurant id and returns
// its record without writing it.
func (r *Runner) ProcessRestaurant(ctx context.Context, id string) (*menu.Record, error) {
	rec, _, err := r.processRestaurant(ctx, id)
	return rec, err
}

type imageStats struct {
	images int
	failed int
}

func (r *Runner) processRestaurant(ctx context.Context, id string) (*menu.Record, imageStats, error) {
	var stats imageStats

	filenames, err := r.imageNames(id)
	if err != nil {
		return nil, stats, err
	}

	lines := make([]string, 0)
	for _, path := range menu.ListImages(r.ImagesDir, id, filenames) {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		stats.images++
		text, err := r.Extractor.Extract(ctx, path)
		if err != nil {
			// A cancelled run must not write a record missing this image.
			if ctx.Err() != nil {
				return nil, stats, ctx.Err()
			}
			stats.failed++
			r.logf("OCR failed for %s: %v", path, err)
			continue
		}
		if text == "" {
			r.debugf("No text in %s", path)
			continue
		}

		cleaned := menu.Clean(text)
		r.debugf("Extracted %d lines from %s", len(cleaned), path)
		lines = append(lines, cleaned...)
	}

	return menu.NewRecord(id, lines), stats, nil
}

// imageNames lists the regular, non-hidden files of restaurant id in
// directory order.
func (r *Runner) imageNames(id string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.ImagesDir, id))
	if err != nil {
		return nil, fmt.Errorf("failed to read images of %s: %w", id, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// sweepTempFiles removes in-progress records left by an interrupted run.
func (r *Runner) sweepTempFiles() error {
	entries, err := os.ReadDir(r.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !menu.IsTempFile(entry.Name()) {
			continue
		}
		path := filepath.Join(r.OutputDir, entry.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove stale temp file: %w", err)
		}
		r.debugf("Removed stale temp file %s", path)
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}
