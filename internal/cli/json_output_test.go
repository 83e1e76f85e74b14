package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/amterp/filecolor/internal/model"
)

func TestNewPaletteOutput_EmptyIsArray(t *testing.T) {
	data, err := json.Marshal(NewPaletteOutput(model.DefaultSettings()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"palette":[]}` {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestNewPaletteOutput_CountsAssignments(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Palette = []model.PaletteColor{
		{ID: "r", Name: "Red", Value: "#ff0000"},
		{ID: "b", Name: "Blue", Value: "#0000ff"},
	}
	settings.FileColors = []model.FileColorAssignment{
		{Path: "a.md", Color: "r"},
		{Path: "b.md", Color: "r"},
	}

	out := NewPaletteOutput(settings)
	if len(out.Palette) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(out.Palette))
	}
	if out.Palette[0].Assignments != 2 || out.Palette[1].Assignments != 0 {
		t.Errorf("unexpected counts: %+v", out.Palette)
	}
}

func TestNewOptionsOutput(t *testing.T) {
	out := NewOptionsOutput(model.Options{ColorBackgroundFolder: true})
	if len(out.Options) != len(model.OptionKeys) {
		t.Fatalf("expected %d options, got %d", len(model.OptionKeys), len(out.Options))
	}
	for _, o := range out.Options {
		want := o.Key == model.OptionColorBackgroundFolder
		if o.Enabled != want {
			t.Errorf("%s enabled = %v, want %v", o.Key, o.Enabled, want)
		}
		if o.Name == "" || o.Alias == "" {
			t.Errorf("%s missing display info", o.Key)
		}
	}

	data, _ := json.Marshal(out)
	if !strings.Contains(string(data), `"key":"colorBackgroundFolder"`) {
		t.Errorf("expected camelCase key in JSON: %s", data)
	}
}

func TestNewAssignmentsOutput(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Palette = []model.PaletteColor{{ID: "r", Name: "Red", Value: "#ff0000"}}

	out := NewAssignmentsOutput([]model.FileColorAssignment{
		{Path: "a.md", Color: "r"},
		{Path: "b.md", Color: "gone"},
	}, settings)

	if out.Assignments[0].ColorName != "Red" || out.Assignments[0].Value != "#ff0000" {
		t.Errorf("expected joined color, got %+v", out.Assignments[0])
	}
	if out.Assignments[1].ColorName != "" || out.Assignments[1].ColorID != "gone" {
		t.Errorf("expected bare orphan entry, got %+v", out.Assignments[1])
	}

	data, _ := json.Marshal(NewAssignmentsOutput(nil, settings))
	if string(data) != `{"assignments":[]}` {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "file", "files"); got != "1 file" {
		t.Errorf("got %q", got)
	}
	if got := pluralize(0, "file", "files"); got != "0 files" {
		t.Errorf("got %q", got)
	}
}
