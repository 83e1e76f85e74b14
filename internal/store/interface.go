package store

import "github.com/amterp/filecolor/internal/model"

// SettingsStore handles plugin settings persistence.
type SettingsStore interface {
	Load() (*model.PluginSettings, error)
	Save(settings *model.PluginSettings) error
	Exists() bool
	Path() string
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
