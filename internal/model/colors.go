package model

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultColorValue is the value given to newly added palette colors.
const DefaultColorValue = "#ffffff"

var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SuggestedColors is a palette offered when prompting for a new color.
var SuggestedColors = []string{
	"#ef4444", // red
	"#f59e0b", // amber
	"#10b981", // green
	"#3b82f6", // blue
	"#9333ea", // purple
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#6b7280", // gray
}

// SuggestColor returns a suggestion for the next color,
// cycling through the list based on the current palette size.
func SuggestColor(paletteSize int) string {
	return SuggestedColors[paletteSize%len(SuggestedColors)]
}

// IsHexColor returns true if s is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	return strings.HasPrefix(s, "#") && hexColorRegex.MatchString(s)
}

// NormalizeColor converts #rgb, rrggbb and friends to lowercase #rrggbb.
func NormalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexColorRegex.MatchString(s) {
		return "", fmt.Errorf("%q is not a hex color (expected #rrggbb)", s)
	}

	hex := strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex, nil
}
