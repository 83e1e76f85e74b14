package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/filecolor/internal/config"
	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/store"
)

// InitService handles vault initialization.
type InitService struct {
	globalStore store.GlobalStore
}

// NewInitService creates a new init service.
func NewInitService(globalStore store.GlobalStore) *InitService {
	return &InitService{globalStore: globalStore}
}

// Initialize writes default plugin settings into the vault and registers it
// in the global config. An existing settings file is only overwritten when
// force is set.
func (s *InitService) Initialize(vaultRoot string, force bool) (*config.Paths, error) {
	absRoot, err := filepath.Abs(vaultRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fcerr.InvalidField("vault", "not a directory: "+absRoot)
	}

	paths := config.NewPaths(absRoot)
	settingsStore := store.NewSettingsStore(paths.SettingsPath())

	if settingsStore.Exists() && !force {
		return nil, fcerr.SettingsAlreadyExist(paths.SettingsPath())
	}

	if err := settingsStore.Save(model.DefaultSettings()); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}

	if err := s.registerVault(absRoot); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *InitService) registerVault(vaultRoot string) error {
	globalCfg, err := s.globalStore.Load()
	if err != nil {
		return err
	}

	if globalCfg.IsRegistered(vaultRoot) {
		return nil
	}

	name := filepath.Base(vaultRoot)
	// Keep existing names pointing where they were
	for i := 2; globalCfg.VaultPath(name) != ""; i++ {
		name = fmt.Sprintf("%s-%d", filepath.Base(vaultRoot), i)
	}
	globalCfg.RegisterVault(name, vaultRoot)
	if globalCfg.DefaultVault == "" {
		globalCfg.DefaultVault = name
	}

	return s.globalStore.Save(globalCfg)
}
