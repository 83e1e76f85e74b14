package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amterp/filecolor/internal/model"
)

// FileSettingsStore implements SettingsStore using a single file.
// The encoding follows the file extension: .toml is TOML, anything else JSON.
type FileSettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store backed by the given file.
func NewSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{path: path}
}

// Path returns the backing file.
func (s *FileSettingsStore) Path() string {
	return s.path
}

// Exists returns true if the settings file exists.
func (s *FileSettingsStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the settings from disk.
// Returns default settings if the file doesn't exist.
func (s *FileSettingsStore) Load() (*model.PluginSettings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings, err := DecodeSettings(data, s.isTOML())
	if err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", s.path, err)
	}
	return settings, nil
}

// Save writes the settings to disk.
func (s *FileSettingsStore) Save(settings *model.PluginSettings) error {
	settings.Normalize()

	data, err := EncodeSettings(settings, s.isTOML())
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	// Write to a sibling temp file then rename so the plugin never reads a partial file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *FileSettingsStore) isTOML() bool {
	return IsTOMLPath(s.path)
}

// IsTOMLPath returns true if the path has a .toml extension.
func IsTOMLPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// DecodeSettings parses settings in JSON or TOML.
func DecodeSettings(data []byte, asTOML bool) (*model.PluginSettings, error) {
	settings := model.DefaultSettings()
	if asTOML {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, err
		}
	} else if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, err
		}
	}
	settings.Normalize()
	return settings, nil
}

// EncodeSettings renders settings as tab-indented JSON or as TOML.
func EncodeSettings(settings *model.PluginSettings, asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return json.MarshalIndent(settings, "", "\t")
}
