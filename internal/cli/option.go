package cli

import (
	"fmt"

	"github.com/amterp/ra"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
)

func registerOption(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("option")
	cmd.SetDescription("Show or toggle display options")

	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List options and their values")

	ctx.OptionListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(listCmd)

	ctx.OptionListUsed, _ = cmd.RegisterCmd(listCmd)

	toggleCmd := ra.NewCmd("toggle")
	toggleCmd.SetDescription("Flip an option and save immediately")

	ctx.OptionToggleKey, _ = ra.NewString("option").
		SetUsage("Option key (e.g., cascade-colors)").
		SetCompletionFunc(completeOptions).
		Register(toggleCmd)

	ctx.OptionToggleUsed, _ = cmd.RegisterCmd(toggleCmd)

	parent.RegisterCmd(cmd)
}

func runOptionList(g globalFlags, jsonOutput bool) {
	app := mustApp(g)
	opts := app.Controller.Options()

	if jsonOutput {
		if err := printJson(NewOptionsOutput(opts)); err != nil {
			Fatal(err)
		}
		return
	}

	for _, key := range model.OptionKeys {
		info := key.Info()
		box := RenderMuted("[ ]")
		if opts.Get(key) {
			box = StyleSuccess.Render("[x]")
		}
		fmt.Printf("%s %s %s\n", box, RenderBold(info.Name), RenderMuted("("+info.Alias+")"))
		fmt.Printf("    %s\n", RenderMuted(info.Description))
	}
}

func runOptionToggle(g globalFlags, raw string) {
	key, ok := model.ParseOptionKey(raw)
	if !ok {
		Fatal(fcerr.InvalidField("option", fmt.Sprintf("unknown option %q (expected one of %s)", raw, optionAliases())))
	}

	app := mustApp(g)
	value, err := app.Controller.ToggleOption(key)
	if err != nil {
		Fatal(err)
	}

	state := "off"
	if value {
		state = "on"
	}
	PrintSuccess("%s turned %s", RenderBold(key.Info().Name), state)
}

func optionAliases() string {
	s := ""
	for i, key := range model.OptionKeys {
		if i > 0 {
			s += ", "
		}
		s += key.Info().Alias
	}
	return s
}
