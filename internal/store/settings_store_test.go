package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
)

func setupTestSettingsStore(t *testing.T) (*FileSettingsStore, *config.Paths) {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".obsidian"), 0755); err != nil {
		t.Fatalf("failed to create .obsidian dir: %v", err)
	}

	paths := config.NewPaths(dir)
	return NewSettingsStore(paths.SettingsPath()), paths
}

func sampleSettings() *model.PluginSettings {
	return &model.PluginSettings{
		CascadeColors:       true,
		ColorBackgroundFile: true,
		Palette: []model.PaletteColor{
			{ID: "a", Name: "Red", Value: "#ff0000"},
			{ID: "b", Name: "", Value: "#00ff00"},
		},
		FileColors: []model.FileColorAssignment{
			{Path: "notes/todo.md", Color: "a"},
		},
	}
}

func TestFileSettingsStore_LoadMissingReturnsDefaults(t *testing.T) {
	store, _ := setupTestSettingsStore(t)

	if store.Exists() {
		t.Fatal("Expected settings file not to exist yet")
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(settings, model.DefaultSettings()) {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestFileSettingsStore_SaveAndLoad(t *testing.T) {
	store, paths := setupTestSettingsStore(t)

	want := sampleSettings()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if store.Path() != paths.SettingsPath() {
		t.Errorf("Path mismatch: got %q, want %q", store.Path(), paths.SettingsPath())
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}
}

func TestFileSettingsStore_WritesPluginCompatibleJSON(t *testing.T) {
	store, _ := setupTestSettingsStore(t)

	if err := store.Save(&model.PluginSettings{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	for _, key := range []string{`"cascadeColors"`, `"colorBackgroundFile"`, `"colorBackgroundFolder"`, `"palette": []`, `"fileColors": []`} {
		if !strings.Contains(content, key) {
			t.Errorf("Expected %s in output:\n%s", key, content)
		}
	}
}

func TestFileSettingsStore_LoadsPluginWrittenFile(t *testing.T) {
	store, _ := setupTestSettingsStore(t)

	// Shape written by the plugin itself; missing keys fall back to defaults
	raw := `{"cascadeColors":true,"palette":[{"id":"x1","name":"Blue","value":"#0000ff"}]}`
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !settings.CascadeColors || settings.ColorBackgroundFile {
		t.Errorf("Unexpected options: %+v", settings.Options())
	}
	if len(settings.Palette) != 1 || settings.Palette[0].Name != "Blue" {
		t.Errorf("Unexpected palette: %+v", settings.Palette)
	}
	if settings.FileColors == nil {
		t.Error("Expected missing fileColors to load as empty slice")
	}
}

func TestFileSettingsStore_EmptyFileLoadsDefaults(t *testing.T) {
	store, _ := setupTestSettingsStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(settings.Palette) != 0 {
		t.Errorf("Expected empty palette, got %+v", settings.Palette)
	}
}

func TestFileSettingsStore_MalformedJSON(t *testing.T) {
	store, _ := setupTestSettingsStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(); err == nil {
		t.Fatal("Expected error for malformed settings")
	}
}

func TestFileSettingsStore_TOMLRoundTrip(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.toml"))

	want := sampleSettings()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[[palette]]") {
		t.Errorf("Expected TOML array of tables, got:\n%s", data)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestIsTOMLPath(t *testing.T) {
	if !IsTOMLPath("a/b.TOML") {
		t.Error("Expected .TOML to be detected")
	}
	if IsTOMLPath("data.json") {
		t.Error("Expected .json not to be TOML")
	}
}
