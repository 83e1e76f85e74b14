package cli

import (
	"errors"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/discovery"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create File Color settings in a vault")

	ctx.InitPath, _ = ra.NewString("path").
		SetOptional(true).
		SetDefault("").
		SetUsage("Vault directory (default: the enclosing vault, or the current directory)").
		Register(cmd)

	ctx.InitForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite existing settings with defaults").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(g globalFlags, path string, force bool) {
	target := path
	if target == "" {
		target = g.Vault
	}

	var app *App
	if target != "" {
		// An explicit directory need not be a vault yet
		app = NewAppWithoutDiscovery(g.appOptions())
		if path == "" {
			if cfg, err := app.GlobalStore.Load(); err == nil && cfg.VaultPath(target) != "" {
				target = cfg.VaultPath(target)
			}
		}
	} else {
		var err error
		app, err = NewApp(g.appOptions())
		if err != nil {
			// If discovery failed due to stale global config, proceed with init anyway.
			// This handles the case where the user deleted .obsidian/ and wants to re-init.
			if !errors.Is(err, discovery.ErrStaleGlobalConfig) {
				Fatal(err)
			}
			app = NewAppWithoutDiscovery(g.appOptions())
		}
		target = app.VaultRoot
	}

	if target == "" {
		target = "."
	}

	paths, err := app.InitService.Initialize(target, force)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Initialized File Color in %s", paths.VaultRoot())
	PrintInfo("Settings: %s", RenderMuted(paths.SettingsPath()))
}
