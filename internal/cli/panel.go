package cli

import (
	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/tui"
	"github.com/amterp/filecolor/internal/watcher"
)

func registerPanel(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("panel")
	cmd.SetDescription("Open the settings panel in the terminal")

	ctx.PanelUsed, _ = parent.RegisterCmd(cmd)
}

func runPanel(g globalFlags) {
	app := mustApp(g)

	fw, err := watcher.New(app.Paths, app.Logger)
	if err != nil {
		PrintWarning("Live reload disabled: %v", err)
		fw = nil
	}

	model := tui.New(app.Controller, tui.Options{
		Title:  app.VaultName(),
		Reload: app.Plugin.Reload,
	})
	if err := tui.Run(model, fw); err != nil {
		Fatal(err)
	}

	if app.Controller.Dirty() {
		PrintWarning("Unsaved palette changes were discarded")
	}
}
