package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is the persisted menu of one restaurant.
//
// Fields are declared in key order so the encoded JSON has sorted keys.
type Record struct {
	// MenuItems holds the cleaned lines of every menu image, in processing order.
	MenuItems []string `json:"menu_items"`

	// RestaurantName is the restaurant identifier (its image directory name).
	RestaurantName string `json:"restaurant_name"`
}

// NewRecord creates a record for name with the given lines.
// A nil lines slice is stored as an empty list.
func NewRecord(name string, lines []string) *Record {
	if lines == nil {
		lines = []string{}
	}
	return &Record{
		MenuItems:      lines,
		RestaurantName: name,
	}
}

// Marshal encodes the record as four-space indented JSON.
//
// HTML characters and non-ASCII text are written as-is and the output has no
// trailing newline.
func (r *Record) Marshal() ([]byte, error) {
	rec := *r
	if rec.MenuItems == nil {
		rec.MenuItems = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&rec); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// tempPattern names in-progress record files. The leading dot keeps them
// from ever matching OutputPath.
const tempPattern = ".%s.tmp-*"

// IsTempFile reports whether name is an in-progress record file left behind
// by WriteRecord.
func IsTempFile(name string) bool {
	return strings.HasPrefix(name, ".") && strings.Contains(name, RecordExt+".tmp-")
}

// WriteRecord stores rec at path.
//
// The record is written to a temporary file in the same directory and then
// renamed over path, so path either does not exist or holds a complete record.
func WriteRecord(path string, rec *Record) error {
	data, err := rec.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, fmt.Sprintf(tempPattern, filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync record: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close record: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set record permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move record into place: %w", err)
	}
	return nil
}

// ReadRecord loads a record written by WriteRecord.
func ReadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", path, err)
	}
	return &rec, nil
}
