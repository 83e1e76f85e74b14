package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPaletteChanged_Identical(t *testing.T) {
	a := []PaletteColor{{ID: "a", Name: "Red", Value: "#ff0000"}, {ID: "b", Name: "", Value: "#00ff00"}}
	if PaletteChanged(a, ClonePalette(a)) {
		t.Error("Expected identical palettes to be unchanged")
	}
}

func TestPaletteChanged_BothEmpty(t *testing.T) {
	if PaletteChanged(nil, []PaletteColor{}) {
		t.Error("Expected nil and empty palettes to compare equal")
	}
}

func TestPaletteChanged_LengthDiffers(t *testing.T) {
	persisted := []PaletteColor{{ID: "a", Value: "#ff0000"}}
	draft := append(ClonePalette(persisted), PaletteColor{ID: "b", Value: "#ffffff"})
	if !PaletteChanged(draft, persisted) {
		t.Error("Expected added color to count as a change")
	}
	if !PaletteChanged(persisted, draft) {
		t.Error("Expected removed color to count as a change")
	}
}

func TestPaletteChanged_IDMissing(t *testing.T) {
	persisted := []PaletteColor{{ID: "a", Name: "Red", Value: "#ff0000"}}
	draft := []PaletteColor{{ID: "z", Name: "Red", Value: "#ff0000"}}
	if !PaletteChanged(draft, persisted) {
		t.Error("Expected replaced ID to count as a change")
	}
}

func TestPaletteChanged_NameOrValue(t *testing.T) {
	persisted := []PaletteColor{{ID: "a", Name: "Red", Value: "#ff0000"}}

	renamed := []PaletteColor{{ID: "a", Name: "Crimson", Value: "#ff0000"}}
	if !PaletteChanged(renamed, persisted) {
		t.Error("Expected name change to count as a change")
	}

	recolored := []PaletteColor{{ID: "a", Name: "Red", Value: "#00ff00"}}
	if !PaletteChanged(recolored, persisted) {
		t.Error("Expected value change to count as a change")
	}
}

func TestPaletteChanged_OrderIgnored(t *testing.T) {
	persisted := []PaletteColor{{ID: "a", Value: "#ff0000"}, {ID: "b", Value: "#00ff00"}}
	draft := []PaletteColor{persisted[1], persisted[0]}
	if PaletteChanged(draft, persisted) {
		t.Error("Expected reordering alone not to count as a change")
	}
}

func TestPruneFileColors(t *testing.T) {
	palette := []PaletteColor{{ID: "b", Value: "#0000ff"}}
	fileColors := []FileColorAssignment{
		{Path: "/x", Color: "a"},
		{Path: "notes/y.md", Color: "b"},
	}

	got := PruneFileColors(fileColors, palette)
	if len(got) != 1 || got[0].Path != "notes/y.md" {
		t.Errorf("Expected only notes/y.md to survive, got %+v", got)
	}
}

func TestPruneFileColors_AllOrphanedReturnsEmpty(t *testing.T) {
	got := PruneFileColors([]FileColorAssignment{{Path: "/x", Color: "a"}}, nil)
	if got == nil {
		t.Fatal("Expected non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("Expected empty slice, got %+v", got)
	}
}

func TestClonePalette_DoesNotAlias(t *testing.T) {
	orig := []PaletteColor{{ID: "a", Name: "Red"}}
	cloned := ClonePalette(orig)
	cloned[0].Name = "Blue"
	if orig[0].Name != "Red" {
		t.Error("Clone shares backing array with original")
	}
}

func TestPluginSettings_Clone(t *testing.T) {
	s := &PluginSettings{
		CascadeColors: true,
		Palette:       []PaletteColor{{ID: "a"}},
		FileColors:    []FileColorAssignment{{Path: "p", Color: "a"}},
	}
	c := s.Clone()
	c.Palette[0].ID = "changed"
	c.FileColors[0].Path = "changed"
	if s.Palette[0].ID != "a" || s.FileColors[0].Path != "p" {
		t.Error("Clone shares slices with original")
	}
	if !c.CascadeColors {
		t.Error("Clone lost option value")
	}
}

func TestDefaultSettings_EncodesEmptyArrays(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"palette":[]`) || !strings.Contains(s, `"fileColors":[]`) {
		t.Errorf("Expected empty arrays, got %s", s)
	}
	if !strings.Contains(s, `"cascadeColors":false`) {
		t.Errorf("Expected camelCase option keys, got %s", s)
	}
}

func TestPluginSettings_Assignments(t *testing.T) {
	s := DefaultSettings()
	s.SetAssignment("a.md", "c1")
	s.SetAssignment("b.md", "c1")
	s.SetAssignment("a.md", "c2")

	if len(s.FileColors) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(s.FileColors))
	}
	if got := s.GetAssignment("a.md"); got == nil || got.Color != "c2" {
		t.Errorf("Expected a.md reassigned to c2, got %+v", got)
	}
	if paths := s.AssignmentsForColor("c1"); len(paths) != 1 || paths[0] != "b.md" {
		t.Errorf("Expected [b.md] for c1, got %v", paths)
	}
	if !s.RemoveAssignment("b.md") {
		t.Error("Expected RemoveAssignment to report removal")
	}
	if s.RemoveAssignment("b.md") {
		t.Error("Expected second RemoveAssignment to report nothing removed")
	}
}
