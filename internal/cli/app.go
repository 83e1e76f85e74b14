package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/discovery"
	"github.com/amterp/filecolor/internal/editor"
	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/id"
	"github.com/amterp/filecolor/internal/logging"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/plugin"
	"github.com/amterp/filecolor/internal/prompt"
	"github.com/amterp/filecolor/internal/service"
	"github.com/amterp/filecolor/internal/store"
)

// AppOptions carries the global flags into NewApp.
type AppOptions struct {
	Interactive bool
	Vault       string
	Verbose     bool
}

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	Logger        *log.Logger
	GlobalStore   store.GlobalStore
	GlobalConfig  *model.GlobalConfig
	SettingsStore store.SettingsStore
	Paths         *config.Paths
	Plugin        *plugin.Plugin
	Prompter      prompt.Prompter
	Editor        *editor.Editor
	InitService   *service.InitService
	Controller    *service.DraftController
	Assignments   *service.AssignmentService
	Doctor        *service.DoctorService
	Transfer      *service.TransferService
	VaultRoot     string
}

// NewApp creates a new App with all dependencies wired up.
// If opts.Interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(opts AppOptions) (*App, error) {
	logger := logging.New(os.Stderr, logging.Options{Verbose: opts.Verbose})
	globalStore := store.NewGlobalStore()

	// Load global config with warnings (don't silently ignore errors)
	globalCfg, err := globalStore.Load()
	if err != nil {
		logger.Warn("failed to load global config", "err", err)
		globalCfg = nil
	}

	result, err := discovery.ResolveVault(opts.Vault, globalCfg)
	if err != nil {
		// This is a real error (e.g., global config says path exists but it doesn't)
		return nil, err
	}
	if result == nil && opts.Vault != "" {
		return nil, fcerr.VaultNotFound(opts.Vault)
	}

	app := &App{
		Logger:       logger,
		GlobalStore:  globalStore,
		GlobalConfig: globalCfg,
		Prompter:     newPrompter(opts.Interactive),
		Editor:       editor.NewEditor(globalCfg),
		InitService:  service.NewInitService(globalStore),
	}
	if result == nil {
		// RequireVault() reports this to commands that need a vault
		return app, nil
	}

	if err := app.openVault(result.VaultRoot, config.GlobalConfigPath()); err != nil {
		return nil, err
	}

	// Auto-register vaults that were set up before a global config existed
	if !result.WasRegistered && globalCfg != nil && app.SettingsStore.Exists() {
		registerVault(globalStore, globalCfg, result.VaultRoot, logger)
	}

	return app, nil
}

// NewAppWithoutDiscovery creates a minimal App without running vault discovery.
// Used by init command when discovery fails due to stale global config.
func NewAppWithoutDiscovery(opts AppOptions) *App {
	globalStore := store.NewGlobalStore()
	return &App{
		Logger:      logging.New(os.Stderr, logging.Options{Verbose: opts.Verbose}),
		GlobalStore: globalStore,
		InitService: service.NewInitService(globalStore),
	}
}

// openVault loads the vault's settings and wires the per-vault services.
func (a *App) openVault(vaultRoot, globalConfigPath string) error {
	a.VaultRoot = vaultRoot
	a.Paths = config.NewPaths(vaultRoot)
	a.SettingsStore = store.NewSettingsStore(a.Paths.SettingsPath())

	p, err := plugin.New(a.Paths, a.SettingsStore, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.Plugin = p
	a.Controller = service.NewDraftController(p, id.Generate)
	a.Assignments = service.NewAssignmentService(p, vaultRoot)
	a.Doctor = service.NewDoctorService(p, a.Paths, globalConfigPath)
	a.Transfer = service.NewTransferService(p)
	return nil
}

func newPrompter(interactive bool) prompt.Prompter {
	if interactive {
		return prompt.NewHuhPrompter()
	}
	return &prompt.NoopPrompter{}
}

// registerVault auto-registers a discovered but unregistered vault in global config.
func registerVault(globalStore store.GlobalStore, globalCfg *model.GlobalConfig, vaultRoot string, logger *log.Logger) {
	name := filepath.Base(vaultRoot)
	if globalCfg.VaultPath(name) != "" {
		return
	}
	globalCfg.RegisterVault(name, vaultRoot)

	// Best effort - don't fail if we can't save
	if err := globalStore.Save(globalCfg); err != nil {
		logger.Debug("failed to register vault", "vault", vaultRoot, "err", err)
		return
	}
	logger.Debug("registered vault", "name", name, "path", vaultRoot)
}

// RequireVault ensures a vault with File Color settings was found.
func (a *App) RequireVault() error {
	if a.VaultRoot == "" {
		return &fcerr.NotInitializedError{}
	}
	if !a.SettingsStore.Exists() {
		return &fcerr.NotInitializedError{Path: a.VaultRoot}
	}
	return nil
}

// VaultName returns the registered name of the vault, or its directory name.
func (a *App) VaultName() string {
	if a.GlobalConfig != nil {
		for name, path := range a.GlobalConfig.Vaults {
			if path == a.VaultRoot {
				return name
			}
		}
	}
	return filepath.Base(a.VaultRoot)
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("%v", err)
	os.Exit(1)
}

// mustApp builds an App for a command that operates on an initialized vault.
func mustApp(g globalFlags) *App {
	app, err := NewApp(g.appOptions())
	if err != nil {
		Fatal(err)
	}
	if err := app.RequireVault(); err != nil {
		Fatal(err)
	}
	return app
}
