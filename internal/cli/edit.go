package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Open the settings file in your editor, then apply it")

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(g globalFlags) {
	if g.NonInteractive {
		Fatal(fmt.Errorf("edit needs an interactive terminal"))
	}

	app := mustApp(g)
	path := app.Paths.SettingsPath()

	if err := app.Editor.Open(path); err != nil {
		Fatal(err)
	}

	changed, err := app.Plugin.Reload()
	if err != nil {
		Fatal(fmt.Errorf("settings were not applied: %w", err))
	}
	if !changed {
		PrintInfo("No changes")
		return
	}

	if err := app.Plugin.ApplyColorStyles(); err != nil {
		Fatal(err)
	}
	PrintSuccess("Applied %s", RenderMuted(path))

	if report := app.Doctor.Diagnose(); len(report.Issues) > 0 {
		PrintWarning("%d issue(s) found; run 'filecolor doctor' for details", len(report.Issues))
	}
}
