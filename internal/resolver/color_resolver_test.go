package resolver

import (
	"testing"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
)

func testPalette() []model.PaletteColor {
	return []model.PaletteColor{
		{ID: "k1abc", Name: "Red", Value: "#ff0000"},
		{ID: "k2def", Name: "Blue", Value: "#0000ff"},
		{ID: "k3ghi", Name: "blue", Value: "#000088"},
		{ID: "Green", Name: "Lime", Value: "#00ff00"},
	}
}

func TestResolveColor_ByID(t *testing.T) {
	c, err := ResolveColor(testPalette(), "k1abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Red" {
		t.Errorf("expected Red, got %q", c.Name)
	}
}

func TestResolveColor_ByNameCaseInsensitive(t *testing.T) {
	c, err := ResolveColor(testPalette(), "RED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "k1abc" {
		t.Errorf("expected k1abc, got %q", c.ID)
	}
}

func TestResolveColor_IDBeatsName(t *testing.T) {
	c, err := ResolveColor(testPalette(), "Green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Lime" {
		t.Errorf("expected ID match to win, got %+v", c)
	}
}

func TestResolveColor_Ambiguous(t *testing.T) {
	_, err := ResolveColor(testPalette(), "blue")
	if !fcerr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestResolveColor_NotFound(t *testing.T) {
	_, err := ResolveColor(testPalette(), "purple")
	if !fcerr.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestResolveColor_ReturnsPointerIntoPalette(t *testing.T) {
	palette := testPalette()
	c, _ := ResolveColor(palette, "k2def")
	c.Value = "#111111"
	if palette[1].Value != "#111111" {
		t.Error("expected resolved color to alias the palette entry")
	}
}
