package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/filecolor/internal/model"
)

// paletteColorJson is a palette color with its assignment count.
type paletteColorJson struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Assignments int    `json:"assignments"`
}

// PaletteOutput wraps the palette for JSON output.
type PaletteOutput struct {
	Palette []paletteColorJson `json:"palette"`
}

// NewPaletteOutput creates a PaletteOutput from the settings.
// Always returns an empty array (not null) when the palette is empty.
func NewPaletteOutput(settings *model.PluginSettings) PaletteOutput {
	result := make([]paletteColorJson, 0, len(settings.Palette))
	for _, c := range settings.Palette {
		result = append(result, paletteColorJson{
			ID:          c.ID,
			Name:        c.Name,
			Value:       c.Value,
			Assignments: len(settings.AssignmentsForColor(c.ID)),
		})
	}
	return PaletteOutput{Palette: result}
}

// optionJson describes one option and its value.
type optionJson struct {
	Key         model.OptionKey `json:"key"`
	Alias       string          `json:"alias"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
}

// OptionsOutput wraps the options for JSON output.
type OptionsOutput struct {
	Options []optionJson `json:"options"`
}

// NewOptionsOutput lists every option in display order.
func NewOptionsOutput(opts model.Options) OptionsOutput {
	result := make([]optionJson, 0, len(model.OptionKeys))
	for _, key := range model.OptionKeys {
		info := key.Info()
		result = append(result, optionJson{
			Key:         key,
			Alias:       info.Alias,
			Name:        info.Name,
			Description: info.Description,
			Enabled:     opts.Get(key),
		})
	}
	return OptionsOutput{Options: result}
}

// assignmentJson is an assignment joined with its palette color.
// ColorName and Value are empty when the color is missing from the palette.
type assignmentJson struct {
	Path      string `json:"path"`
	ColorID   string `json:"color_id"`
	ColorName string `json:"color_name,omitempty"`
	Value     string `json:"value,omitempty"`
}

// AssignmentsOutput wraps the assignments for JSON output.
type AssignmentsOutput struct {
	Assignments []assignmentJson `json:"assignments"`
}

// NewAssignmentsOutput joins assignments with the palette.
// Always returns an empty array (not null) when there are no assignments.
func NewAssignmentsOutput(assignments []model.FileColorAssignment, settings *model.PluginSettings) AssignmentsOutput {
	result := make([]assignmentJson, 0, len(assignments))
	for _, a := range assignments {
		entry := assignmentJson{Path: a.Path, ColorID: a.Color}
		if c := settings.GetColor(a.Color); c != nil {
			entry.ColorName = c.Name
			entry.Value = c.Value
		}
		result = append(result, entry)
	}
	return AssignmentsOutput{Assignments: result}
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
