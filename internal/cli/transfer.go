package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/service"
)

func registerTransfer(parent *ra.Cmd, ctx *CommandContext) {
	exportCmd := ra.NewCmd("export")
	exportCmd.SetDescription("Write the settings as JSON or TOML")

	ctx.ExportFormat, _ = ra.NewString("format").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(service.FormatJSON).
		SetEnumConstraint(service.ExportFormats).
		SetUsage("Output format").
		Register(exportCmd)

	ctx.ExportOutput, _ = ra.NewString("output").
		SetShort("o").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("").
		SetUsage("Write to a file instead of stdout").
		Register(exportCmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(exportCmd)

	importCmd := ra.NewCmd("import")
	importCmd.SetDescription("Replace the settings with an exported file")

	ctx.ImportFile, _ = ra.NewString("file").
		SetUsage("JSON or TOML settings file").
		Register(importCmd)

	ctx.ImportForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation when the vault already has colors").
		Register(importCmd)

	ctx.ImportUsed, _ = parent.RegisterCmd(importCmd)
}

func runExport(g globalFlags, format, output string) {
	app := mustApp(g)

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			Fatal(fmt.Errorf("failed to create %s: %w", output, err))
		}
		defer f.Close()
		w = f
	}

	if err := app.Transfer.Export(w, format); err != nil {
		Fatal(err)
	}
	if output != "" {
		PrintSuccess("Exported settings to %s", output)
	}
}

func runImport(g globalFlags, file string, force bool) {
	app := mustApp(g)
	settings := app.Plugin.Settings()

	if len(settings.Palette) > 0 && !force {
		if g.NonInteractive {
			Fatal(fmt.Errorf("vault already has %s; use --force to replace them",
				pluralize(len(settings.Palette), "color", "colors")))
		}
		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Replace %s and %s?",
				pluralize(len(settings.Palette), "color", "colors"),
				pluralize(len(settings.FileColors), "assignment", "assignments")),
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

	result, err := app.Transfer.Import(file)
	if result == nil {
		Fatal(err)
	}

	PrintSuccess("Imported %s and %s",
		pluralize(result.Colors, "color", "colors"),
		pluralize(result.Assignments, "assignment", "assignments"))
	if result.Pruned > 0 {
		PrintWarning("Dropped %s to colors missing from the palette", pluralize(result.Pruned, "assignment", "assignments"))
	}
	if err != nil {
		Fatal(err)
	}
}
