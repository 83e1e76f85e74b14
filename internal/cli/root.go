package cli

import (
	"fmt"
	"os"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/version"
)

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	NonInteractive bool
	Vault          string
	Verbose        bool
}

func (g globalFlags) appOptions() AppOptions {
	return AppOptions{
		Interactive: !g.NonInteractive,
		Vault:       g.Vault,
		Verbose:     g.Verbose,
	}
}

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Vault          *string
	Verbose        *bool

	// init command
	InitUsed  *bool
	InitPath  *string
	InitForce *bool

	// palette list
	PaletteListUsed *bool
	PaletteListJson *bool

	// palette add
	PaletteAddUsed  *bool
	PaletteAddName  *string
	PaletteAddColor *string

	// palette remove
	PaletteRemoveUsed  *bool
	PaletteRemoveColor *string
	PaletteRemoveForce *bool

	// palette edit
	PaletteEditUsed  *bool
	PaletteEditColor *string
	PaletteEditName  *string
	PaletteEditValue *string

	// option list
	OptionListUsed *bool
	OptionListJson *bool

	// option toggle
	OptionToggleUsed *bool
	OptionToggleKey  *string

	// assign command
	AssignUsed  *bool
	AssignPath  *string
	AssignColor *string

	// unassign command
	UnassignUsed *bool
	UnassignPath *string

	// assignments command
	AssignmentsUsed *bool
	AssignmentsJson *bool

	// panel command
	PanelUsed *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// doctor command
	DoctorUsed *bool
	DoctorFix  *bool
	DoctorJson *bool

	// export command
	ExportUsed   *bool
	ExportFormat *string
	ExportOutput *string

	// import command
	ImportUsed  *bool
	ImportFile  *string
	ImportForce *bool

	// styles command
	StylesUsed  *bool
	StylesApply *bool

	// edit command
	EditUsed *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string

	// version command
	VersionUsed *bool
}

func (ctx *CommandContext) globals() globalFlags {
	return globalFlags{
		NonInteractive: *ctx.NonInteractive,
		Vault:          *ctx.Vault,
		Verbose:        *ctx.Verbose,
	}
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("filecolor")
	cmd.SetDescription("Color files and folders in an Obsidian vault")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Vault, _ = ra.NewString("vault").
		SetShort("V").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("").
		SetUsage("Vault name from the global config, or a path inside a vault").
		SetCompletionFunc(completeVaults).
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Log debug output to stderr").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerPalette(cmd, ctx)
	registerOption(cmd, ctx)
	registerAssign(cmd, ctx)
	registerPanel(cmd, ctx)
	registerServe(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerTransfer(cmd, ctx)
	registerStyles(cmd, ctx)
	registerEdit(cmd, ctx)
	registerCompletion(cmd, ctx)

	versionCmd := ra.NewCmd("version")
	versionCmd.SetDescription("Print the filecolor version")
	ctx.VersionUsed, _ = cmd.RegisterCmd(versionCmd)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	g := ctx.globals()

	switch {
	case *ctx.InitUsed:
		runInit(g, *ctx.InitPath, *ctx.InitForce)

	case *ctx.PaletteListUsed:
		runPaletteList(g, *ctx.PaletteListJson)

	case *ctx.PaletteAddUsed:
		runPaletteAdd(g, *ctx.PaletteAddName, *ctx.PaletteAddColor)

	case *ctx.PaletteRemoveUsed:
		runPaletteRemove(g, *ctx.PaletteRemoveColor, *ctx.PaletteRemoveForce)

	case *ctx.PaletteEditUsed:
		runPaletteEdit(g, *ctx.PaletteEditColor, *ctx.PaletteEditName, *ctx.PaletteEditValue)

	case *ctx.OptionListUsed:
		runOptionList(g, *ctx.OptionListJson)

	case *ctx.OptionToggleUsed:
		runOptionToggle(g, *ctx.OptionToggleKey)

	case *ctx.AssignUsed:
		runAssign(g, *ctx.AssignPath, *ctx.AssignColor)

	case *ctx.UnassignUsed:
		runUnassign(g, *ctx.UnassignPath)

	case *ctx.AssignmentsUsed:
		runAssignments(g, *ctx.AssignmentsJson)

	case *ctx.PanelUsed:
		runPanel(g)

	case *ctx.ServeUsed:
		runServe(g, *ctx.ServePort, *ctx.ServeNoOpen)

	case *ctx.DoctorUsed:
		runDoctor(g, *ctx.DoctorFix, *ctx.DoctorJson)

	case *ctx.ExportUsed:
		runExport(g, *ctx.ExportFormat, *ctx.ExportOutput)

	case *ctx.ImportUsed:
		runImport(g, *ctx.ImportFile, *ctx.ImportForce)

	case *ctx.StylesUsed:
		runStyles(g, *ctx.StylesApply)

	case *ctx.EditUsed:
		runEdit(g)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)

	case *ctx.VersionUsed:
		fmt.Printf("filecolor %s\n", version.Version)
	}
}
