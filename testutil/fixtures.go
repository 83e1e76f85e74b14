package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/store"
)

// TestPalette returns a two-color palette: r=Red, b=Blue.
func TestPalette() []model.PaletteColor {
	return []model.PaletteColor{
		{ID: "r", Name: "Red", Value: "#ff0000"},
		{ID: "b", Name: "Blue", Value: "#0000ff"},
	}
}

// TestSettings returns settings with TestPalette and one assignment per color.
func TestSettings() *model.PluginSettings {
	s := model.DefaultSettings()
	s.Palette = TestPalette()
	s.FileColors = []model.FileColorAssignment{
		{Path: "notes", Color: "b"},
		{Path: "notes/today.md", Color: "r"},
	}
	return s
}

// TempVault creates a vault with a .obsidian directory in t.TempDir.
// When settings is non-nil it is written to the plugin's data.json.
func TempVault(t *testing.T, settings *model.PluginSettings) *config.Paths {
	t.Helper()

	paths := config.NewPaths(t.TempDir())
	if err := os.MkdirAll(paths.VaultConfigRoot(), 0755); err != nil {
		t.Fatalf("failed to create vault config dir: %v", err)
	}

	if settings != nil {
		if err := store.NewSettingsStore(paths.SettingsPath()).Save(settings); err != nil {
			t.Fatalf("failed to write settings: %v", err)
		}
	}
	return paths
}

// TouchFiles creates empty files (or directories, for paths ending in "/")
// under the vault root.
func TouchFiles(t *testing.T, paths *config.Paths, rels ...string) {
	t.Helper()

	for _, rel := range rels {
		full := paths.VaultPath(rel)
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}
