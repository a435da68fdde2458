package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var allEnv = []string{EnvImagesDir, EnvOutputDir, EnvLanguage, EnvTessdataPrefix, EnvTimeout, EnvLogLevel}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	wd, _ := os.Getwd()
	if cfg.ImagesDir != filepath.Join(wd, DefaultImagesDir) {
		t.Errorf("ImagesDir: got %s, want %s", cfg.ImagesDir, filepath.Join(wd, DefaultImagesDir))
	}
	if cfg.OutputDir != filepath.Join(wd, DefaultOutputDir) {
		t.Errorf("OutputDir: got %s, want %s", cfg.OutputDir, filepath.Join(wd, DefaultOutputDir))
	}
	if cfg.Language != "eng" {
		t.Errorf("Language: got %s, want eng", cfg.Language)
	}
	if cfg.TessdataPrefix != "" {
		t.Errorf("TessdataPrefix: got %s, want empty", cfg.TessdataPrefix)
	}
	if cfg.OCRTimeout != DefaultOCRTimeout {
		t.Errorf("OCRTimeout: got %s, want %s", cfg.OCRTimeout, DefaultOCRTimeout)
	}
	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvImagesDir, "/data/menus")
	t.Setenv(EnvOutputDir, "/data/out")
	t.Setenv(EnvLanguage, "eng+hin")
	t.Setenv(EnvTessdataPrefix, "/usr/share/tessdata")
	t.Setenv(EnvTimeout, "90s")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	want := Config{
		ImagesDir:      "/data/menus",
		OutputDir:      "/data/out",
		Language:       "eng+hin",
		TessdataPrefix: "/usr/share/tessdata",
		OCRTimeout:     90 * time.Second,
		Debug:          true,
	}
	if cfg != want {
		t.Errorf("FromEnv:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestFromEnv_Timeout(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"0", 0, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"sixty", 0, true},
		{"60", 0, true},
		{"-5s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvTimeout, tt.value)

			cfg, err := FromEnv()
			if tt.wantErr {
				if err == nil {
					t.Errorf("FromEnv should fail for %s=%q", EnvTimeout, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv failed: %v", err)
			}
			if cfg.OCRTimeout != tt.want {
				t.Errorf("OCRTimeout: got %s, want %s", cfg.OCRTimeout, tt.want)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	env := EnvImagesDir + "=scans\n" + EnvLanguage + "=deu\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// Set in the real environment; must win over .env.
	t.Setenv(EnvLanguage, "fra")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wd, _ := os.Getwd()
	if cfg.ImagesDir != filepath.Join(wd, "scans") {
		t.Errorf("ImagesDir: got %s, want %s", cfg.ImagesDir, filepath.Join(wd, "scans"))
	}
	if cfg.Language != "fra" {
		t.Errorf("Language: got %s, want fra", cfg.Language)
	}
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	if _, err := Load(); err != nil {
		t.Errorf("Load without .env should succeed, got %v", err)
	}
}
