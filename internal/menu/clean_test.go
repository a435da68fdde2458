package menu

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty input", "", []string{}},
		{"only separators", "\n\n\n", []string{}},
		{"blank and numeric lines", "A\n\n300\nB\n42x\n\n", []string{"A", "B", "42x"}},
		{"mixed digits kept", "300g\n250\nRs 90", []string{"300g", "Rs 90"}},
		{"no trimming", " 300\nSOUPS \n", []string{" 300", "SOUPS "}},
		{"whitespace only line kept", "A\n \nB", []string{"A", " ", "B"}},
		{"duplicates kept", "Tea\nTea\n", []string{"Tea", "Tea"}},
		{"case preserved", "soups\nSOUPS", []string{"soups", "SOUPS"}},
		{"non-ascii digits dropped", "٣٠٠\nचाय", []string{"चाय"}},
		{"non-ascii text kept", "Yoppings non veg: chickenf‘prawn", []string{"Yoppings non veg: chickenf‘prawn"}},
		{"decimal price kept", "3.50", []string{"3.50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.raw)
			if got == nil {
				t.Fatal("Clean returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClean_MenuSample(t *testing.T) {
	raw := "SALADS\n\nClassical caesar salad with parmesan shaving: and garlic bread\n\n" +
		"Candied walnuts, orange segments and mixed greens tossed in\norange sesame dressing\n\n" +
		"SOUPS\n\nWild mushroom creamy soup\n\n300\n\n300\n\n350\n\n90\n\n200\n200\n\n250\n350\n\n350"

	want := []string{
		"SALADS",
		"Classical caesar salad with parmesan shaving: and garlic bread",
		"Candied walnuts, orange segments and mixed greens tossed in",
		"orange sesame dressing",
		"SOUPS",
		"Wild mushroom creamy soup",
	}

	if got := Clean(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("Clean menu sample:\n got %q\nwant %q", got, want)
	}
}

func TestClean_Invariants(t *testing.T) {
	inputs := []string{
		"",
		"1\n2\n3",
		"A\n\n\nB\n1\n\nC2\n",
		"\n\n  \n12 \n12\nx",
		strings.Repeat("Menu\n100\n\n", 50),
	}
	numeric := regexp.MustCompile(`^[0-9]+$`)

	for _, raw := range inputs {
		got := Clean(raw)

		// Expected order: every kept line must appear in the same relative
		// order as in the input.
		var expected []string
		for _, line := range strings.Split(raw, "\n") {
			if line != "" && !numeric.MatchString(line) {
				expected = append(expected, line)
			}
		}
		if len(got) != len(expected) {
			t.Fatalf("Clean(%q): got %d lines, want %d", raw, len(got), len(expected))
		}

		for i, line := range got {
			if line == "" {
				t.Errorf("Clean(%q) returned an empty line", raw)
			}
			if numeric.MatchString(line) {
				t.Errorf("Clean(%q) returned numeric line %q", raw, line)
			}
			if line != expected[i] {
				t.Errorf("Clean(%q)[%d] = %q, want %q", raw, i, line, expected[i])
			}
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"350", true},
		{"42x", false},
		{"3.50", false},
		{" 1", false},
		{"-1", false},
	}

	for _, tt := range tests {
		if got := isNumeric(tt.in); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
