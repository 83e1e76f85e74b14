package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/model"
)

// ErrStaleGlobalConfig indicates the global config registers a vault path
// whose .obsidian/ directory no longer exists.
var ErrStaleGlobalConfig = errors.New("stale global config entry")

// Result contains the discovered vault root.
type Result struct {
	VaultRoot     string // Absolute path to the vault
	WasRegistered bool   // Whether this vault was found in global config
}

// DiscoverVault finds the vault root by walking up from cwd.
// Priority:
// 1. Directory registered in global config
// 2. Directory containing .obsidian/
//
// Returns nil if no vault is found.
// Returns error if global config registers a path but .obsidian/ is missing.
func DiscoverVault(globalCfg *model.GlobalConfig) (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverVaultFrom(cwd, globalCfg)
}

// DiscoverVaultFrom finds the vault root starting from a given directory.
func DiscoverVaultFrom(startDir string, globalCfg *model.GlobalConfig) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		vaultConfig := filepath.Join(dir, config.VaultConfigDir)
		_, statErr := os.Stat(vaultConfig)

		if globalCfg != nil && globalCfg.IsRegistered(dir) {
			if statErr == nil {
				return &Result{VaultRoot: dir, WasRegistered: true}, nil
			}
			return nil, fmt.Errorf("%w: global config references %s but %s not found",
				ErrStaleGlobalConfig, dir, vaultConfig)
		}

		if statErr == nil {
			return &Result{VaultRoot: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ResolveVault picks the vault for a command. An explicit value may be a
// registered vault name or a directory; otherwise the default vault from
// global config is tried after walking up from cwd.
func ResolveVault(explicit string, globalCfg *model.GlobalConfig) (*Result, error) {
	if explicit != "" {
		if globalCfg != nil {
			if path := globalCfg.VaultPath(explicit); path != "" {
				return DiscoverVaultFrom(path, globalCfg)
			}
		}
		return DiscoverVaultFrom(explicit, globalCfg)
	}

	result, err := DiscoverVault(globalCfg)
	if err != nil || result != nil {
		return result, err
	}

	if globalCfg != nil && globalCfg.DefaultVault != "" {
		if path := globalCfg.VaultPath(globalCfg.DefaultVault); path != "" {
			return DiscoverVaultFrom(path, globalCfg)
		}
	}
	return nil, nil
}
