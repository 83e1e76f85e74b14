package util

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Red", "red"},
		{"Light Blue", "light-blue"},

		// Special characters
		{"Urgent!", "urgent"},
		{"Work (old)", "work-old"},
		{"#ff0000", "ff0000"},

		// Multiple spaces/hyphens
		{"Multiple   spaces", "multiple-spaces"},
		{"Already--hyphenated", "already-hyphenated"},
		{"  Leading spaces", "leading-spaces"},

		// Unicode and accents
		{"Café Rouge", "cafe-rouge"},
		{"Vert pâle", "vert-pale"},

		// Nothing usable
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugWords(t *testing.T) {
	got := SlugWords("Dark  Sea Green")
	want := []string{"dark", "sea", "green"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SlugWords = %v, want %v", got, want)
	}
	if SlugWords("   ") != nil {
		t.Error("Expected nil for blank input")
	}
}
