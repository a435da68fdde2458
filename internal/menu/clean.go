package menu

import (
	"strings"
	"unicode"
)

// Clean splits raw OCR text into menu lines.
//
// Empty lines and lines consisting only of decimal digits are removed. The
// surviving lines keep their relative order and are not trimmed, so a line
// such as "300g" or " 300" is retained. The result is never nil.
func Clean(raw string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if line == "" || isNumeric(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// isNumeric reports whether s is non-empty and made only of digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
