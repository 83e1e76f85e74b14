package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerAssign(parent *ra.Cmd, ctx *CommandContext) {
	assignCmd := ra.NewCmd("assign")
	assignCmd.SetDescription("Color a file or folder")

	ctx.AssignPath, _ = ra.NewString("path").
		SetUsage("File or folder, relative to the vault root or absolute").
		Register(assignCmd)

	ctx.AssignColor, _ = ra.NewString("color").
		SetUsage("Palette color id or name").
		SetCompletionFunc(completeColors).
		Register(assignCmd)

	ctx.AssignUsed, _ = parent.RegisterCmd(assignCmd)

	unassignCmd := ra.NewCmd("unassign")
	unassignCmd.SetDescription("Remove the color from a file or folder")

	ctx.UnassignPath, _ = ra.NewString("path").
		SetUsage("File or folder, relative to the vault root or absolute").
		SetCompletionFunc(completeAssignedPaths).
		Register(unassignCmd)

	ctx.UnassignUsed, _ = parent.RegisterCmd(unassignCmd)

	listCmd := ra.NewCmd("assignments")
	listCmd.SetDescription("List colored files and folders")

	ctx.AssignmentsJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(listCmd)

	ctx.AssignmentsUsed, _ = parent.RegisterCmd(listCmd)
}

func runAssign(g globalFlags, path, colorRef string) {
	app := mustApp(g)

	assignment, err := app.Assignments.Assign(path, colorRef)
	if err != nil {
		Fatal(err)
	}

	color := app.Plugin.Settings().GetColor(assignment.Color)
	PrintSuccess("Colored %s %s %s", assignment.Path, ColorSwatch(color.Value), RenderBold(displayName(*color)))
}

func runUnassign(g globalFlags, path string) {
	app := mustApp(g)

	if err := app.Assignments.Unassign(path); err != nil {
		Fatal(err)
	}
	PrintSuccess("Cleared color from %s", path)
}

func runAssignments(g globalFlags, jsonOutput bool) {
	app := mustApp(g)
	settings := app.Plugin.Settings()
	assignments := app.Assignments.List()

	if jsonOutput {
		if err := printJson(NewAssignmentsOutput(assignments, settings)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(assignments) == 0 {
		PrintInfo("No files are colored")
		return
	}

	for _, a := range assignments {
		color := settings.GetColor(a.Color)
		if color == nil {
			fmt.Printf("%s %s %s\n", ColorSwatch(""), a.Path, StyleWarning.Render("(missing color "+a.Color+")"))
			continue
		}
		fmt.Printf("%s %s %s\n", ColorSwatch(color.Value), a.Path, RenderMuted(displayName(*color)))
	}
}
