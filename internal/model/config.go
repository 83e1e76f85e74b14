package model

// GlobalConfig represents the user's global filecolor configuration.
// Stored at ~/.config/filecolor/config.toml
// Schema changes require a version bump; see internal/version/version.go.
type GlobalConfig struct {
	FilecolorSchema string            `toml:"filecolor_schema"`
	Editor          string            `toml:"editor,omitempty"`
	DefaultVault    string            `toml:"default_vault,omitempty"` // vault name
	Vaults          map[string]string `toml:"vaults,omitempty"`        // name -> path
}

// RegisterVault adds a vault to the registry.
func (g *GlobalConfig) RegisterVault(name, path string) {
	if g.Vaults == nil {
		g.Vaults = make(map[string]string)
	}
	g.Vaults[name] = path
}

// IsRegistered returns true if the given path is a registered vault.
func (g *GlobalConfig) IsRegistered(path string) bool {
	for _, p := range g.Vaults {
		if p == path {
			return true
		}
	}
	return false
}

// VaultPath returns the path registered under name, or "" if none.
func (g *GlobalConfig) VaultPath(name string) string {
	if g.Vaults == nil {
		return ""
	}
	return g.Vaults[name]
}
