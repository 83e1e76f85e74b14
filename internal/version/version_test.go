package version

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatGlobalSchema(t *testing.T) {
	tests := []struct {
		version  int
		expected string
	}{
		{1, "global/1"},
		{2, "global/2"},
		{10, "global/10"},
	}
	for _, tt := range tests {
		got := FormatGlobalSchema(tt.version)
		if got != tt.expected {
			t.Errorf("FormatGlobalSchema(%d) = %q, want %q", tt.version, got, tt.expected)
		}
	}
}

func TestParseGlobalVersion(t *testing.T) {
	tests := []struct {
		schema    string
		expected  int
		expectErr bool
	}{
		{"global/1", 1, false},
		{"global/10", 10, false},
		{"settings/1", 0, true}, // Wrong prefix
		{"global/", 0, true},    // Missing version
		{"global/x", 0, true},   // Invalid version
		{"global/0", 0, true},   // Version must be >= 1
		{"global/-1", 0, true},  // Negative version
		{"", 0, true},           // Empty
	}
	for _, tt := range tests {
		got, err := ParseGlobalVersion(tt.schema)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseGlobalVersion(%q) expected error, got %d", tt.schema, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGlobalVersion(%q) unexpected error: %v", tt.schema, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseGlobalVersion(%q) = %d, want %d", tt.schema, got, tt.expected)
		}
	}
}

func TestMinVersionCompleteness(t *testing.T) {
	for v := 1; v <= CurrentGlobalVersion; v++ {
		key := fmt.Sprintf("global/%d", v)
		if _, ok := MinFilecolorVersion[key]; !ok {
			t.Errorf("MinFilecolorVersion missing entry for %s", key)
		}
	}
}

func TestInvalidGlobalSchema_FutureVersion(t *testing.T) {
	err := InvalidGlobalSchema("/tmp/config.toml", "global/99")
	sve, ok := err.(*SchemaVersionError)
	if !ok {
		t.Fatalf("Expected *SchemaVersionError, got %T", err)
	}
	if sve.MinRequired != "a newer version" {
		t.Errorf("Expected MinRequired 'a newer version', got %q", sve.MinRequired)
	}
	if !strings.Contains(err.Error(), "requires filecolor >=") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestMissingGlobalSchema_Message(t *testing.T) {
	err := MissingGlobalSchema("/tmp/config.toml")
	if !strings.Contains(err.Error(), "no schema version") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
