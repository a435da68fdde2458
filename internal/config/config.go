// Package config loads the menu batch settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvImagesDir      = "MENU_OCR_IMAGES_DIR"
	EnvOutputDir      = "MENU_OCR_OUTPUT_DIR"
	EnvLanguage       = "MENU_OCR_LANGUAGE"
	EnvTessdataPrefix = "MENU_OCR_TESSDATA_PREFIX"
	EnvTimeout        = "MENU_OCR_TIMEOUT"
	EnvLogLevel       = "MENU_OCR_LOG_LEVEL"
)

// Defaults used when the corresponding variable is unset.
const (
	DefaultImagesDir  = "menu_images"
	DefaultOutputDir  = "menu_text"
	DefaultLanguage   = "eng"
	DefaultOCRTimeout = 60 * time.Second
)

// Config holds everything the batch needs to run.
type Config struct {
	// ImagesDir contains one subdirectory of menu images per restaurant.
	ImagesDir string

	// OutputDir receives one <restaurant>.txt record per restaurant.
	OutputDir string

	// Language is the Tesseract language code.
	Language string

	// TessdataPrefix overrides where Tesseract looks for language data.
	TessdataPrefix string

	// OCRTimeout bounds each image's OCR call. Zero disables the bound.
	OCRTimeout time.Duration

	// Debug enables per-image log output.
	Debug bool
}

// Default returns the configuration used when no variables are set, with
// directories relative to the working directory.
func Default() Config {
	return Config{
		ImagesDir:  DefaultImagesDir,
		OutputDir:  DefaultOutputDir,
		Language:   DefaultLanguage,
		OCRTimeout: DefaultOCRTimeout,
	}
}

// Load reads an optional .env file from the working directory, then builds a
// Config from the environment. Variables already set in the environment win
// over the .env file. Directories are returned as absolute paths.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvImagesDir); v != "" {
		cfg.ImagesDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
	cfg.TessdataPrefix = os.Getenv(EnvTessdataPrefix)

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must not be negative", EnvTimeout, v)
		}
		cfg.OCRTimeout = d
	}

	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"

	var err error
	if cfg.ImagesDir, err = filepath.Abs(cfg.ImagesDir); err != nil {
		return Config{}, fmt.Errorf("failed to resolve images directory: %w", err)
	}
	if cfg.OutputDir, err = filepath.Abs(cfg.OutputDir); err != nil {
		return Config{}, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	return cfg, nil
}
