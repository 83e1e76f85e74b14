package service

import (
	"errors"

	"github.com/amterp/filecolor/internal/model"
)

// Host is the plugin runtime the settings are edited against.
// Settings returns the live persisted settings object; the controller mutates
// it in place on save and toggle, then asks the host to persist and restyle.
type Host interface {
	Settings() *model.PluginSettings
	SaveSettings() error
	GenerateColorStyles()
	ApplyColorStyles() error
}

// DraftController holds an editable copy of the palette and options.
//
// Palette edits are batched: they only reach the host on SavePalette and can
// be discarded with RevertPalette. Option toggles are applied to the host
// immediately. Not safe for concurrent use.
type DraftController struct {
	host    Host
	newID   func() string
	palette []model.PaletteColor
	options model.Options
	dirty   bool
}

// NewDraftController seeds a draft from the host's current settings.
func NewDraftController(host Host, newID func() string) *DraftController {
	settings := host.Settings()
	return &DraftController{
		host:    host,
		newID:   newID,
		palette: model.ClonePalette(settings.Palette),
		options: settings.Options(),
	}
}

// Palette returns a copy of the draft palette.
func (c *DraftController) Palette() []model.PaletteColor {
	return model.ClonePalette(c.palette)
}

// Options returns the draft options.
func (c *DraftController) Options() model.Options {
	return c.options
}

// Dirty reports whether the draft palette differs from the persisted one.
func (c *DraftController) Dirty() bool {
	return c.dirty
}

// Color returns the draft entry with the given ID.
func (c *DraftController) Color(id string) (model.PaletteColor, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.palette[i], true
	}
	return model.PaletteColor{}, false
}

// AddColor appends a new unnamed white color and returns it.
func (c *DraftController) AddColor() model.PaletteColor {
	color := model.PaletteColor{
		ID:    c.newID(),
		Name:  "",
		Value: model.DefaultColorValue,
	}
	c.palette = append(c.palette, color)
	c.recomputeDirty()
	return color
}

// RemoveColor drops the entry with the given ID. Unknown IDs are ignored.
func (c *DraftController) RemoveColor(id string) {
	kept := make([]model.PaletteColor, 0, len(c.palette))
	for _, color := range c.palette {
		if color.ID != id {
			kept = append(kept, color)
		}
	}
	c.palette = kept
	c.recomputeDirty()
}

// SetColorValue replaces the value of an entry. Unknown IDs are ignored.
func (c *DraftController) SetColorValue(id, value string) {
	if i := c.indexOf(id); i >= 0 {
		c.palette[i].Value = value
	}
	c.recomputeDirty()
}

// SetColorName replaces the name of an entry. Unknown IDs are ignored.
func (c *DraftController) SetColorName(id, name string) {
	if i := c.indexOf(id); i >= 0 {
		c.palette[i].Name = name
	}
	c.recomputeDirty()
}

// SavePalette commits the draft palette to the host settings, drops file
// assignments that point at removed colors, then persists and restyles.
//
// The in-memory commit always happens and the draft is clean afterwards; the
// returned error only reports persistence or styling failures.
func (c *DraftController) SavePalette() error {
	settings := c.host.Settings()
	settings.Palette = model.ClonePalette(c.palette)
	settings.FileColors = model.PruneFileColors(settings.FileColors, settings.Palette)
	c.dirty = false

	saveErr := c.host.SaveSettings()
	c.host.GenerateColorStyles()
	applyErr := c.host.ApplyColorStyles()
	return errors.Join(saveErr, applyErr)
}

// RevertPalette discards the draft palette in favor of the persisted one.
func (c *DraftController) RevertPalette() {
	c.palette = model.ClonePalette(c.host.Settings().Palette)
	c.dirty = false
}

// ToggleOption flips an option in the host settings and the draft at once,
// then persists and re-applies styles. Unknown keys are ignored.
// Returns the new value.
func (c *DraftController) ToggleOption(key model.OptionKey) (bool, error) {
	if !key.Valid() {
		return false, nil
	}

	settings := c.host.Settings()
	value := !settings.Option(key)
	settings.SetOption(key, value)
	c.options.Set(key, value)

	saveErr := c.host.SaveSettings()
	applyErr := c.host.ApplyColorStyles()
	return value, errors.Join(saveErr, applyErr)
}

// Resync reconciles the draft after the host settings changed underneath it.
// Options always follow the host. A clean palette draft is replaced; a dirty
// one is kept and its dirty flag recomputed against the new persisted palette.
func (c *DraftController) Resync() {
	settings := c.host.Settings()
	c.options = settings.Options()
	if !c.dirty {
		c.palette = model.ClonePalette(settings.Palette)
	}
	c.recomputeDirty()
}

func (c *DraftController) recomputeDirty() {
	c.dirty = model.PaletteChanged(c.palette, c.host.Settings().Palette)
}

func (c *DraftController) indexOf(id string) int {
	for i, color := range c.palette {
		if color.ID == id {
			return i
		}
	}
	return -1
}
