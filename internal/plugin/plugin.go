// Package plugin is the File Color plugin runtime for a single vault. It owns
// the persisted settings and keeps the generated CSS snippet in step with them.
package plugin

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/store"
	"github.com/amterp/filecolor/internal/styles"
	"github.com/charmbracelet/log"
)

// Plugin holds the live settings for one vault.
type Plugin struct {
	paths      *config.Paths
	store      store.SettingsStore
	logger     *log.Logger
	settings   *model.PluginSettings
	paletteCSS string
}

// New loads the vault's settings and renders the palette styles.
func New(paths *config.Paths, settingsStore store.SettingsStore, logger *log.Logger) (*Plugin, error) {
	settings, err := settingsStore.Load()
	if err != nil {
		return nil, err
	}

	p := &Plugin{
		paths:    paths,
		store:    settingsStore,
		logger:   logger,
		settings: settings,
	}
	p.GenerateColorStyles()
	logger.Debug("loaded settings", "path", settingsStore.Path(),
		"colors", len(settings.Palette), "assignments", len(settings.FileColors))
	return p, nil
}

// Open builds a plugin for the vault at root using the default settings file.
func Open(vaultRoot string, logger *log.Logger) (*Plugin, error) {
	paths := config.NewPaths(vaultRoot)
	return New(paths, store.NewSettingsStore(paths.SettingsPath()), logger)
}

// Paths returns the vault path resolver.
func (p *Plugin) Paths() *config.Paths {
	return p.paths
}

// Settings returns the live settings object. Callers may mutate it and then
// call SaveSettings.
func (p *Plugin) Settings() *model.PluginSettings {
	return p.settings
}

// SaveSettings persists the live settings.
func (p *Plugin) SaveSettings() error {
	if err := p.store.Save(p.settings); err != nil {
		return err
	}
	p.logger.Debug("saved settings", "path", p.store.Path())
	return nil
}

// GenerateColorStyles re-renders the palette CSS from the live palette.
func (p *Plugin) GenerateColorStyles() {
	p.paletteCSS = styles.Palette(p.settings.Palette)
	p.logger.Debug("generated palette styles", "colors", len(p.settings.Palette))
}

// Stylesheet returns the full snippet for the current settings.
func (p *Plugin) Stylesheet() string {
	return styles.Stylesheet(p.paletteCSS, p.settings)
}

// ApplyColorStyles writes the snippet into the vault's snippets directory.
// The file is left alone when its content is already current.
func (p *Plugin) ApplyColorStyles() error {
	css := []byte(p.Stylesheet())
	path := p.paths.SnippetPath()

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, css) {
		p.logger.Debug("styles unchanged", "path", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snippets directory: %w", err)
	}
	if err := os.WriteFile(path, css, 0644); err != nil {
		return fmt.Errorf("failed to write styles: %w", err)
	}
	p.logger.Debug("applied styles", "path", path, "bytes", len(css))
	return nil
}

// Reload replaces the live settings with what is on disk and regenerates styles.
// Reports whether anything differed from the live settings.
func (p *Plugin) Reload() (bool, error) {
	settings, err := p.store.Load()
	if err != nil {
		return false, err
	}
	if sameSettings(p.settings, settings) {
		p.logger.Debug("settings unchanged on disk", "path", p.store.Path())
		return false, nil
	}

	p.settings = settings
	p.GenerateColorStyles()
	p.logger.Debug("reloaded settings", "path", p.store.Path())
	return true, nil
}

func sameSettings(a, b *model.PluginSettings) bool {
	if a.Options() != b.Options() {
		return false
	}
	if len(a.Palette) != len(b.Palette) || len(a.FileColors) != len(b.FileColors) {
		return false
	}
	for i := range a.Palette {
		if a.Palette[i] != b.Palette[i] {
			return false
		}
	}
	for i := range a.FileColors {
		if a.FileColors[i] != b.FileColors[i] {
			return false
		}
	}
	return true
}
