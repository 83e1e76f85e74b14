package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Palette integrity (errors)
	CodeDuplicatePaletteID = "DUPLICATE_PALETTE_ID"
	CodeEmptyPaletteID     = "EMPTY_PALETTE_ID"

	// Palette values (warnings)
	CodeInvalidColorValue = "INVALID_COLOR_VALUE"

	// Assignments (warnings)
	CodeOrphanedAssignment  = "ORPHANED_ASSIGNMENT"
	CodeMissingAssignedPath = "MISSING_ASSIGNED_PATH"
	CodeDuplicateAssignment = "DUPLICATE_ASSIGNMENT"

	// Global config (warnings)
	CodeMalformedGlobalConfig = "MALFORMED_GLOBAL_CONFIG"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity  IssueSeverity `json:"severity"`
	Code      string        `json:"code"`
	ColorID   string        `json:"color_id,omitempty"`
	Path      string        `json:"path,omitempty"`
	Message   string        `json:"message"`
	Fixable   bool          `json:"fixable"`
	FixAction string        `json:"fix_action,omitempty"`
	FixError  string        `json:"fix_error,omitempty"` // Populated if fix was attempted but failed
}

// SettingsDiagnostic contains stats for the plugin settings.
type SettingsDiagnostic struct {
	Path        string `json:"path"`
	Colors      int    `json:"colors"`
	Assignments int    `json:"assignments"`
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Fixed     int `json:"fixed"`
	FixFailed int `json:"fix_failed,omitempty"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	Settings SettingsDiagnostic `json:"settings"`
	Issues   []Issue            `json:"issues"`
	Summary  ReportSummary      `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

func (r *DiagnosticReport) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *DiagnosticReport) tally() {
	r.Summary.Errors = 0
	r.Summary.Warnings = 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.Summary.Errors++
		} else {
			r.Summary.Warnings++
		}
	}
}

// DoctorService validates plugin settings for consistency issues.
type DoctorService struct {
	host             Host
	paths            *config.Paths
	globalConfigPath string
}

// NewDoctorService creates a new diagnostic service.
// globalConfigPath may be empty to skip the global config check.
func NewDoctorService(host Host, paths *config.Paths, globalConfigPath string) *DoctorService {
	return &DoctorService{host: host, paths: paths, globalConfigPath: globalConfigPath}
}

// Diagnose analyzes the vault's settings for issues.
func (s *DoctorService) Diagnose() *DiagnosticReport {
	settings := s.host.Settings()
	report := &DiagnosticReport{
		Settings: SettingsDiagnostic{
			Path:        s.paths.SettingsPath(),
			Colors:      len(settings.Palette),
			Assignments: len(settings.FileColors),
		},
		Issues: []Issue{},
	}

	s.checkGlobalConfig(report)
	s.checkPalette(report, settings)
	s.checkAssignments(report, settings)

	report.tally()
	return report
}

// Fix applies automatic fixes for issues that have deterministic solutions,
// persisting once. Returns a new report showing remaining issues and what was
// fixed.
func (s *DoctorService) Fix(report *DiagnosticReport) (*DiagnosticReport, error) {
	settings := s.host.Settings()
	fixed := 0
	remaining := []Issue{}

	for _, issue := range report.Issues {
		if !issue.Fixable {
			remaining = append(remaining, issue)
			continue
		}

		switch issue.Code {
		case CodeOrphanedAssignment, CodeMissingAssignedPath:
			settings.RemoveAssignment(issue.Path)
		case CodeDuplicateAssignment:
			dedupeAssignment(settings, issue.Path)
		default:
			remaining = append(remaining, issue)
			continue
		}
		fixed++
	}

	newReport := &DiagnosticReport{
		Settings: report.Settings,
		Issues:   remaining,
		Summary:  ReportSummary{Fixed: fixed},
	}
	newReport.Settings.Assignments = len(settings.FileColors)

	if fixed > 0 {
		err := errors.Join(s.host.SaveSettings(), s.host.ApplyColorStyles())
		if err != nil {
			// Nothing reached disk, so every attempted fix failed
			newReport.Summary.FixFailed = fixed
			newReport.Summary.Fixed = 0
			newReport.tally()
			return newReport, err
		}
	}

	newReport.tally()
	return newReport, nil
}

func (s *DoctorService) checkGlobalConfig(report *DiagnosticReport) {
	if s.globalConfigPath == "" {
		return
	}

	data, err := os.ReadFile(s.globalConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return // No global config is fine
		}
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Cannot read global config: %v", err),
		})
		return
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Invalid TOML in global config: %v", err),
		})
		return
	}

	schema, _ := raw["filecolor_schema"].(string)
	if schema != version.CurrentGlobalSchema() {
		report.add(Issue{
			Severity:  SeverityWarning,
			Code:      CodeMalformedGlobalConfig,
			Message:   fmt.Sprintf("Global config has schema %q, expected %s", schema, version.CurrentGlobalSchema()),
			FixAction: "Remove " + s.globalConfigPath + " and run 'filecolor init' again",
		})
	}
}

func (s *DoctorService) checkPalette(report *DiagnosticReport, settings *model.PluginSettings) {
	seen := make(map[string]bool)
	for _, c := range settings.Palette {
		if c.ID == "" {
			report.add(Issue{
				Severity:  SeverityError,
				Code:      CodeEmptyPaletteID,
				Message:   fmt.Sprintf("Palette color %q has no id", c.Name),
				FixAction: "Remove the color and add it again",
			})
		} else if seen[c.ID] {
			report.add(Issue{
				Severity:  SeverityError,
				Code:      CodeDuplicatePaletteID,
				ColorID:   c.ID,
				Message:   fmt.Sprintf("Palette id %s is used by more than one color", c.ID),
				FixAction: "Remove one of the duplicates",
			})
		}
		seen[c.ID] = true

		if !model.IsHexColor(c.Value) {
			report.add(Issue{
				Severity: SeverityWarning,
				Code:     CodeInvalidColorValue,
				ColorID:  c.ID,
				Message:  fmt.Sprintf("Color %s has value %q, expected #rrggbb", c.ID, c.Value),
			})
		}
	}
}

func (s *DoctorService) checkAssignments(report *DiagnosticReport, settings *model.PluginSettings) {
	seen := make(map[string]bool)
	for _, a := range settings.FileColors {
		if seen[a.Path] {
			report.add(Issue{
				Severity:  SeverityWarning,
				Code:      CodeDuplicateAssignment,
				Path:      a.Path,
				Message:   fmt.Sprintf("%s has more than one color assignment", a.Path),
				Fixable:   true,
				FixAction: "Keep the first assignment",
			})
			continue
		}
		seen[a.Path] = true

		if settings.GetColor(a.Color) == nil {
			report.add(Issue{
				Severity:  SeverityWarning,
				Code:      CodeOrphanedAssignment,
				ColorID:   a.Color,
				Path:      a.Path,
				Message:   fmt.Sprintf("%s points at color %s which is not in the palette", a.Path, a.Color),
				Fixable:   true,
				FixAction: "Remove the assignment",
			})
			continue
		}

		if _, err := os.Stat(s.paths.VaultPath(a.Path)); os.IsNotExist(err) {
			report.add(Issue{
				Severity:  SeverityWarning,
				Code:      CodeMissingAssignedPath,
				ColorID:   a.Color,
				Path:      a.Path,
				Message:   fmt.Sprintf("%s does not exist in the vault", a.Path),
				Fixable:   true,
				FixAction: "Remove the assignment",
			})
		}
	}
}

// dedupeAssignment keeps the first assignment for path and drops the rest.
func dedupeAssignment(settings *model.PluginSettings, path string) {
	kept := make([]model.FileColorAssignment, 0, len(settings.FileColors))
	found := false
	for _, a := range settings.FileColors {
		if a.Path == path {
			if found {
				continue
			}
			found = true
		}
		kept = append(kept, a)
	}
	settings.FileColors = kept
}
