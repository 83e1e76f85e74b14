package config

import (
	"os"
	"path/filepath"
)

const (
	VaultConfigDir   = ".obsidian"
	PluginsDir       = "plugins"
	PluginID         = "obsidian-file-color"
	SettingsFileName = "data.json"
	SnippetsDir      = "snippets"
	SnippetFileName  = "file-color.css"
	ConfigFileName   = "config.toml"
	GlobalConfigDir  = ".config/filecolor"
)

// Paths provides path resolution for the plugin files inside a vault.
type Paths struct {
	vaultRoot string
}

// NewPaths creates a new Paths resolver for the given vault.
func NewPaths(vaultRoot string) *Paths {
	return &Paths{vaultRoot: vaultRoot}
}

// VaultRoot returns the vault directory.
func (p *Paths) VaultRoot() string {
	return p.vaultRoot
}

// VaultConfigRoot returns the .obsidian directory of the vault.
func (p *Paths) VaultConfigRoot() string {
	return filepath.Join(p.vaultRoot, VaultConfigDir)
}

// PluginDir returns the directory holding the plugin's files.
func (p *Paths) PluginDir() string {
	return filepath.Join(p.VaultConfigRoot(), PluginsDir, PluginID)
}

// SettingsPath returns the path of the plugin settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.PluginDir(), SettingsFileName)
}

// SnippetsDir returns the CSS snippets directory of the vault.
func (p *Paths) SnippetsDir() string {
	return filepath.Join(p.VaultConfigRoot(), SnippetsDir)
}

// SnippetPath returns the path the generated stylesheet is written to.
func (p *Paths) SnippetPath() string {
	return filepath.Join(p.SnippetsDir(), SnippetFileName)
}

// VaultPath joins a vault-relative slash path onto the vault root.
func (p *Paths) VaultPath(rel string) string {
	return filepath.Join(p.vaultRoot, filepath.FromSlash(rel))
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}

// GlobalConfigDirPath returns the directory for global config.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}
