package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerStyles(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("styles")
	cmd.SetDescription("Print the generated CSS snippet")

	ctx.StylesApply, _ = ra.NewBool("apply").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write the snippet into the vault instead of printing it").
		Register(cmd)

	ctx.StylesUsed, _ = parent.RegisterCmd(cmd)
}

func runStyles(g globalFlags, apply bool) {
	app := mustApp(g)

	if !apply {
		fmt.Print(app.Plugin.Stylesheet())
		return
	}

	if err := app.Plugin.ApplyColorStyles(); err != nil {
		Fatal(err)
	}
	PrintSuccess("Wrote %s", RenderMuted(app.Paths.SnippetPath()))
}
