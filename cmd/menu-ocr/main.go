package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/menu-ocr/internal/batch"
	"github.com/ironsheep/menu-ocr/internal/config"
	"github.com/ironsheep/menu-ocr/internal/menu"
	"github.com/ironsheep/menu-ocr/internal/ocr/tesseract"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// demoMenuName names the record printed by the clean command.
const demoMenuName = "test_menu"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("menu-ocr %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			if v := tesseract.Version(); v != "" {
				fmt.Printf("  Tesseract:  %s\n", v)
			}
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "clean":
			if err := runClean(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "clean: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		log.Printf("Menu OCR v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Images: %s, output: %s, language: %s, OCR timeout: %s",
			cfg.ImagesDir, cfg.OutputDir, cfg.Language, cfg.OCRTimeout)
	}

	extractor := tesseract.New(cfg.Language)
	extractor.TessdataPrefix = cfg.TessdataPrefix

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := batch.New(cfg, extractor).Run(ctx)
	log.Printf("Restaurants: %d, processed: %d, skipped: %d, images: %d (%d failed), menu lines: %d",
		summary.Restaurants, summary.Processed, summary.Skipped,
		summary.Images, summary.FailedImages, summary.Lines)
	if err != nil {
		log.Fatalf("Batch error: %v", err)
	}
}

// runClean reads raw OCR text from r and writes the cleaned record to w.
func runClean(r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	data, err := menu.NewRecord(demoMenuName, menu.Clean(string(raw))).Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func printHelp() {
	fmt.Println("menu-ocr - extract restaurant menus from images with OCR")
	fmt.Println()
	fmt.Println("Usage: menu-ocr [command]")
	fmt.Println()
	fmt.Println("Without a command, every restaurant directory under the images")
	fmt.Println("directory is processed and <restaurant>.txt is written to the output")
	fmt.Println("directory. Restaurants that already have a record are skipped.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  clean            Clean raw OCR text from stdin and print the record")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Println("  MENU_OCR_IMAGES_DIR=menu_images     Restaurant image directories")
	fmt.Println("  MENU_OCR_OUTPUT_DIR=menu_text       Where records are written")
	fmt.Println("  MENU_OCR_LANGUAGE=eng               Tesseract language code")
	fmt.Println("  MENU_OCR_TESSDATA_PREFIX=           Tesseract language data directory")
	fmt.Println("  MENU_OCR_TIMEOUT=60s                Per-image OCR timeout (0 disables)")
	fmt.Println("  MENU_OCR_LOG_LEVEL=debug            Enable debug logging")
}
