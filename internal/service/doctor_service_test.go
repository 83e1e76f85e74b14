package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
)

func setupDoctorTest(t *testing.T, settings *model.PluginSettings) (*DoctorService, *fakeHost, string) {
	t.Helper()
	root := t.TempDir()
	host := newFakeHost(settings)
	return NewDoctorService(host, config.NewPaths(root), ""), host, root
}

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func issueCodes(report *DiagnosticReport) map[string]int {
	codes := make(map[string]int)
	for _, issue := range report.Issues {
		codes[issue.Code]++
	}
	return codes
}

func TestDoctorService_Healthy(t *testing.T) {
	settings := twoColorSettings()
	settings.FileColors = []model.FileColorAssignment{{Path: "notes/a.md", Color: "a"}}
	svc, _, root := setupDoctorTest(t, settings)
	touch(t, root, "notes/a.md")

	report := svc.Diagnose()
	if len(report.Issues) != 0 {
		t.Errorf("expected no issues, got %+v", report.Issues)
	}
	if report.Settings.Colors != 2 || report.Settings.Assignments != 1 {
		t.Errorf("unexpected stats: %+v", report.Settings)
	}
	if report.HasErrors() {
		t.Error("expected HasErrors false")
	}
}

func TestDoctorService_PaletteErrors(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Palette = []model.PaletteColor{
		{ID: "a", Value: "#ff0000"},
		{ID: "a", Value: "#00ff00"},
		{ID: "", Name: "Blank", Value: "#0000ff"},
		{ID: "c", Value: "tomato"},
	}
	svc, _, _ := setupDoctorTest(t, settings)

	report := svc.Diagnose()
	codes := issueCodes(report)
	if codes[CodeDuplicatePaletteID] != 1 {
		t.Errorf("expected one duplicate id issue, got %v", codes)
	}
	if codes[CodeEmptyPaletteID] != 1 {
		t.Errorf("expected one empty id issue, got %v", codes)
	}
	if codes[CodeInvalidColorValue] != 1 {
		t.Errorf("expected one invalid value issue, got %v", codes)
	}
	if report.Summary.Errors != 2 || report.Summary.Warnings != 1 {
		t.Errorf("unexpected summary: %+v", report.Summary)
	}
	if !report.HasErrors() {
		t.Error("expected HasErrors true")
	}
}

func TestDoctorService_AssignmentIssues(t *testing.T) {
	settings := twoColorSettings()
	settings.FileColors = []model.FileColorAssignment{
		{Path: "kept.md", Color: "a"},
		{Path: "kept.md", Color: "b"},
		{Path: "orphan.md", Color: "gone"},
		{Path: "missing.md", Color: "b"},
	}
	svc, _, root := setupDoctorTest(t, settings)
	touch(t, root, "kept.md")
	touch(t, root, "orphan.md")

	codes := issueCodes(svc.Diagnose())
	if codes[CodeDuplicateAssignment] != 1 || codes[CodeOrphanedAssignment] != 1 || codes[CodeMissingAssignedPath] != 1 {
		t.Errorf("unexpected issue codes: %v", codes)
	}
}

func TestDoctorService_Fix(t *testing.T) {
	settings := twoColorSettings()
	settings.Palette = append(settings.Palette, model.PaletteColor{ID: "c", Value: "bad"})
	settings.FileColors = []model.FileColorAssignment{
		{Path: "kept.md", Color: "a"},
		{Path: "kept.md", Color: "b"},
		{Path: "orphan.md", Color: "gone"},
		{Path: "missing.md", Color: "b"},
	}
	svc, host, root := setupDoctorTest(t, settings)
	touch(t, root, "kept.md")
	touch(t, root, "orphan.md")

	fixed, err := svc.Fix(svc.Diagnose())
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	if fixed.Summary.Fixed != 3 {
		t.Errorf("expected 3 fixes, got %+v", fixed.Summary)
	}
	if len(fixed.Issues) != 1 || fixed.Issues[0].Code != CodeInvalidColorValue {
		t.Errorf("expected only the unfixable value issue to remain, got %+v", fixed.Issues)
	}
	if len(settings.FileColors) != 1 || settings.FileColors[0] != (model.FileColorAssignment{Path: "kept.md", Color: "a"}) {
		t.Errorf("unexpected assignments after fix: %+v", settings.FileColors)
	}
	if host.saves != 1 || host.applies != 1 {
		t.Errorf("expected a single save and apply, got %d/%d", host.saves, host.applies)
	}

	if again := svc.Diagnose(); issueCodes(again)[CodeOrphanedAssignment] != 0 {
		t.Error("expected orphan gone after fix")
	}
}

func TestDoctorService_FixNothingDoesNotSave(t *testing.T) {
	svc, host, _ := setupDoctorTest(t, twoColorSettings())
	if _, err := svc.Fix(svc.Diagnose()); err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	if host.saves != 0 {
		t.Error("expected no save when nothing was fixed")
	}
}

func TestDoctorService_FixSaveFailure(t *testing.T) {
	settings := twoColorSettings()
	settings.FileColors = []model.FileColorAssignment{{Path: "orphan.md", Color: "gone"}}
	svc, host, _ := setupDoctorTest(t, settings)
	host.saveErr = errors.New("read-only")

	report, err := svc.Fix(svc.Diagnose())
	if err == nil {
		t.Fatal("expected save error")
	}
	if report.Summary.FixFailed != 1 || report.Summary.Fixed != 0 {
		t.Errorf("unexpected summary: %+v", report.Summary)
	}
}

func TestDoctorService_GlobalConfig(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"valid", "filecolor_schema = \"global/1\"\n", 0},
		{"bad toml", "filecolor_schema = \n", 1},
		{"missing schema", "editor = \"vim\"\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			svc := NewDoctorService(newFakeHost(model.DefaultSettings()), config.NewPaths(dir), path)
			if got := issueCodes(svc.Diagnose())[CodeMalformedGlobalConfig]; got != tt.want {
				t.Errorf("expected %d global config issues, got %d", tt.want, got)
			}
		})
	}
}
