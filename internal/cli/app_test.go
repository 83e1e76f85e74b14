package cli

import (
	"errors"
	"path/filepath"
	"testing"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/logging"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/prompt"
	"github.com/amterp/filecolor/testutil"
)

func newTestApp(t *testing.T, settings *model.PluginSettings) *App {
	t.Helper()
	paths := testutil.TempVault(t, settings)

	app := &App{
		Logger:   logging.Discard(),
		Prompter: &prompt.NoopPrompter{},
	}
	if err := app.openVault(paths.VaultRoot(), ""); err != nil {
		t.Fatalf("openVault failed: %v", err)
	}
	return app
}

func TestRequireVault_NoVault(t *testing.T) {
	app := &App{}
	if err := app.RequireVault(); !fcerr.IsNotInitialized(err) {
		t.Errorf("expected not initialized, got %v", err)
	}
}

func TestRequireVault_NoSettings(t *testing.T) {
	app := newTestApp(t, nil)
	err := app.RequireVault()
	if !fcerr.IsNotInitialized(err) {
		t.Fatalf("expected not initialized, got %v", err)
	}
	var notInit *fcerr.NotInitializedError
	if !errors.As(err, &notInit) || notInit.Path != app.VaultRoot {
		t.Errorf("expected error to name the vault, got %v", err)
	}
}

func TestOpenVault_WiresServices(t *testing.T) {
	app := newTestApp(t, testutil.TestSettings())

	if err := app.RequireVault(); err != nil {
		t.Fatalf("RequireVault failed: %v", err)
	}
	if got := len(app.Controller.Palette()); got != 2 {
		t.Errorf("expected draft seeded with 2 colors, got %d", got)
	}
	if got := len(app.Assignments.List()); got != 2 {
		t.Errorf("expected 2 assignments, got %d", got)
	}

	// Removing a color through the controller prunes its assignment
	app.Controller.RemoveColor("r")
	if err := app.Controller.SavePalette(); err != nil {
		t.Fatal(err)
	}
	if got := app.Plugin.Settings().FileColors; len(got) != 1 || got[0].Color != "b" {
		t.Errorf("expected only the blue assignment left, got %+v", got)
	}
}

func TestVaultName(t *testing.T) {
	app := newTestApp(t, nil)
	if got := app.VaultName(); got != filepath.Base(app.VaultRoot) {
		t.Errorf("expected directory name, got %q", got)
	}

	app.GlobalConfig = &model.GlobalConfig{}
	app.GlobalConfig.RegisterVault("notes", app.VaultRoot)
	if got := app.VaultName(); got != "notes" {
		t.Errorf("expected registered name, got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(model.PaletteColor{ID: "x1"}); got != "(unnamed x1)" {
		t.Errorf("got %q", got)
	}
	if got := displayName(model.PaletteColor{ID: "x1", Name: "Sky"}); got != "Sky" {
		t.Errorf("got %q", got)
	}
}

func TestValidateColor(t *testing.T) {
	if err := validateColor("#abc"); err != nil {
		t.Errorf("expected #abc valid, got %v", err)
	}
	if err := validateColor("red"); err == nil {
		t.Error("expected 'red' rejected")
	}
}

func TestOpenVault_DoctorSeesVaultFiles(t *testing.T) {
	app := newTestApp(t, testutil.TestSettings())

	report := app.Doctor.Diagnose()
	if len(report.Issues) != 2 {
		t.Fatalf("expected both assigned paths reported missing, got %+v", report.Issues)
	}

	testutil.TouchFiles(t, app.Paths, "notes/", "notes/today.md")
	if report := app.Doctor.Diagnose(); len(report.Issues) != 0 {
		t.Errorf("expected no issues once files exist, got %+v", report.Issues)
	}
}
