package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/resolver"
)

func registerPalette(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("palette")
	cmd.SetDescription("Manage palette colors")

	// palette list
	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List palette colors")

	ctx.PaletteListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(listCmd)

	ctx.PaletteListUsed, _ = cmd.RegisterCmd(listCmd)

	// palette add
	addCmd := ra.NewCmd("add")
	addCmd.SetDescription("Add a color to the palette")

	ctx.PaletteAddName, _ = ra.NewString("name").
		SetOptional(true).
		SetDefault("").
		SetUsage("Color name (prompted if omitted)").
		Register(addCmd)

	ctx.PaletteAddColor, _ = ra.NewString("color").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("").
		SetUsage("Hex color (e.g., '#9333ea'). Suggested if not specified.").
		Register(addCmd)

	ctx.PaletteAddUsed, _ = cmd.RegisterCmd(addCmd)

	// palette remove
	removeCmd := ra.NewCmd("remove")
	removeCmd.SetDescription("Remove a color and its file assignments")

	ctx.PaletteRemoveColor, _ = ra.NewString("color").
		SetUsage("Color id or name").
		SetCompletionFunc(completeColors).
		Register(removeCmd)

	ctx.PaletteRemoveForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation when the color is assigned to files").
		Register(removeCmd)

	ctx.PaletteRemoveUsed, _ = cmd.RegisterCmd(removeCmd)

	// palette edit
	editCmd := ra.NewCmd("edit")
	editCmd.SetDescription("Rename or recolor a palette color")

	ctx.PaletteEditColor, _ = ra.NewString("color").
		SetUsage("Color id or name").
		SetCompletionFunc(completeColors).
		Register(editCmd)

	ctx.PaletteEditName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("").
		SetUsage("New name").
		Register(editCmd)

	ctx.PaletteEditValue, _ = ra.NewString("value").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("").
		SetUsage("New hex color").
		Register(editCmd)

	ctx.PaletteEditUsed, _ = cmd.RegisterCmd(editCmd)

	parent.RegisterCmd(cmd)
}

func runPaletteList(g globalFlags, jsonOutput bool) {
	app := mustApp(g)
	settings := app.Plugin.Settings()

	if jsonOutput {
		if err := printJson(NewPaletteOutput(settings)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(settings.Palette) == 0 {
		PrintInfo("No colors in the palette")
		return
	}

	nameWidth := 0
	for _, c := range settings.Palette {
		nameWidth = max(nameWidth, len(displayName(c)))
	}

	for _, c := range settings.Palette {
		count := len(settings.AssignmentsForColor(c.ID))
		fmt.Printf("%s %-*s %s %s %s\n",
			ColorSwatch(c.Value),
			nameWidth, displayName(c),
			c.Value,
			RenderID(c.ID),
			RenderMuted(pluralize(count, "file", "files")),
		)
	}
}

func runPaletteAdd(g globalFlags, name, value string) {
	app := mustApp(g)
	palette := app.Controller.Palette()

	if name == "" && !g.NonInteractive {
		var err error
		name, err = app.Prompter.Input("Color name", "", nil)
		if err != nil {
			Fatal(err)
		}
		if value == "" {
			value, err = app.Prompter.Input("Color value", model.SuggestColor(len(palette)), validateColor)
			if err != nil {
				Fatal(err)
			}
		}
	}
	if value == "" {
		value = model.SuggestColor(len(palette))
	}

	value, err := model.NormalizeColor(value)
	if err != nil {
		Fatal(err)
	}

	color := app.Controller.AddColor()
	app.Controller.SetColorName(color.ID, strings.TrimSpace(name))
	app.Controller.SetColorValue(color.ID, value)
	if err := app.Controller.SavePalette(); err != nil {
		Fatal(err)
	}

	added, _ := app.Controller.Color(color.ID)
	PrintSuccess("Added %s %s %s", ColorSwatch(added.Value), RenderBold(displayName(added)), RenderID(added.ID))
}

func runPaletteRemove(g globalFlags, ref string, force bool) {
	app := mustApp(g)
	settings := app.Plugin.Settings()

	color, err := resolver.ResolveColor(settings.Palette, ref)
	if err != nil {
		Fatal(err)
	}
	c := *color
	assigned := len(settings.AssignmentsForColor(c.ID))

	// Confirm if files use the color and no --force flag
	if assigned > 0 && !force {
		if g.NonInteractive {
			Fatal(fmt.Errorf("color %q is assigned to %s; use --force to confirm removal",
				displayName(c), pluralize(assigned, "file", "files")))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Color %q is assigned to %s. Remove the color and clear them?",
				displayName(c), pluralize(assigned, "file", "files")),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	app.Controller.RemoveColor(c.ID)
	if err := app.Controller.SavePalette(); err != nil {
		Fatal(err)
	}

	if assigned > 0 {
		PrintSuccess("Removed %s and cleared %s", RenderBold(displayName(c)), pluralize(assigned, "assignment", "assignments"))
	} else {
		PrintSuccess("Removed %s", RenderBold(displayName(c)))
	}
}

func runPaletteEdit(g globalFlags, ref, name, value string) {
	if name == "" && value == "" {
		Fatal(fmt.Errorf("no changes specified; use --name or --value"))
	}

	app := mustApp(g)
	color, err := resolver.ResolveColor(app.Plugin.Settings().Palette, ref)
	if err != nil {
		Fatal(err)
	}
	colorID := color.ID

	if value != "" {
		normalized, err := model.NormalizeColor(value)
		if err != nil {
			Fatal(err)
		}
		app.Controller.SetColorValue(colorID, normalized)
	}
	if name != "" {
		app.Controller.SetColorName(colorID, strings.TrimSpace(name))
	}

	if err := app.Controller.SavePalette(); err != nil {
		Fatal(err)
	}

	edited, _ := app.Controller.Color(colorID)
	PrintSuccess("Updated %s %s", ColorSwatch(edited.Value), RenderBold(displayName(edited)))
}

func validateColor(s string) error {
	_, err := model.NormalizeColor(s)
	return err
}

// displayName falls back to the id for unnamed colors.
func displayName(c model.PaletteColor) string {
	if c.Name == "" {
		return "(unnamed " + c.ID + ")"
	}
	return c.Name
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
