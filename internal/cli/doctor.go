package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/service"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check settings for consistency issues. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Apply automatic fixes for issues with deterministic solutions").
		Register(cmd)

	ctx.DoctorJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output the report as JSON").
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(g globalFlags, fix bool, jsonOutput bool) {
	app := mustApp(g)

	report := app.Doctor.Diagnose()

	// Apply fixes if requested
	var fixErr error
	if fix && len(report.Issues) > 0 {
		report, fixErr = app.Doctor.Fix(report)
	}

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		printDoctorReport(report, fix)
	}

	if fixErr != nil {
		Fatal(fixErr)
	}

	// Exit with status 1 if there are errors
	if report.HasErrors() {
		os.Exit(1)
	}
}

func printDoctorReport(report *service.DiagnosticReport, didFix bool) {
	fmt.Printf("Checking %s...\n", RenderBold(report.Settings.Path))
	fmt.Printf("  Colors: %d\n", report.Settings.Colors)
	fmt.Printf("  Assignments: %d\n", report.Settings.Assignments)
	fmt.Println()

	fixedCount := 0
	if didFix {
		fixedCount = report.Summary.Fixed
	}

	if fixedCount > 0 {
		PrintSuccess("Fixed %d issue(s)", fixedCount)
		fmt.Println()
	}

	if len(report.Issues) == 0 {
		if fixedCount == 0 {
			PrintSuccess("No issues found")
		} else {
			PrintSuccess("All issues resolved")
		}
		return
	}

	// Errors first, then warnings
	var errs, warnings []service.Issue
	for _, issue := range report.Issues {
		if issue.Severity == service.SeverityError {
			errs = append(errs, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}
	for _, issue := range errs {
		printIssue(issue)
	}
	for _, issue := range warnings {
		printIssue(issue)
	}

	fmt.Println()
	var summaryParts []string
	if report.Summary.Errors > 0 {
		summaryParts = append(summaryParts, StyleError.Render(fmt.Sprintf("%d error(s)", report.Summary.Errors)))
	}
	if report.Summary.Warnings > 0 {
		summaryParts = append(summaryParts, StyleWarning.Render(fmt.Sprintf("%d warning(s)", report.Summary.Warnings)))
	}
	if fixedCount > 0 {
		summaryParts = append(summaryParts, StyleSuccess.Render(fmt.Sprintf("%d fixed", fixedCount)))
	}
	if report.Summary.FixFailed > 0 {
		summaryParts = append(summaryParts, StyleError.Render(fmt.Sprintf("%d fix failed", report.Summary.FixFailed)))
	}
	fmt.Printf("Summary: %s\n", strings.Join(summaryParts, ", "))

	if !didFix && hasFixable(report.Issues) {
		fmt.Println()
		PrintInfo("Run 'filecolor doctor --fix' to apply automatic fixes")
	}
}

func hasFixable(issues []service.Issue) bool {
	for _, issue := range issues {
		if issue.Fixable {
			return true
		}
	}
	return false
}

func printIssue(issue service.Issue) {
	var icon, code string
	if issue.Severity == service.SeverityError {
		icon = StyleError.Render(IconError)
		code = StyleError.Render(fmt.Sprintf("[%s]", issue.Code))
	} else {
		icon = StyleWarning.Render(IconWarning)
		code = StyleWarning.Render(fmt.Sprintf("[%s]", issue.Code))
	}

	location := ""
	if issue.Path != "" {
		location = " " + RenderMuted(issue.Path)
	} else if issue.ColorID != "" {
		location = " " + RenderID(issue.ColorID)
	}

	fmt.Printf("%s %s%s %s\n", icon, code, location, issue.Message)

	if issue.FixError != "" {
		fmt.Printf("  %s Fix failed: %s\n", StyleError.Render(IconInfo), issue.FixError)
	} else if issue.FixAction != "" {
		if issue.Fixable {
			fmt.Printf("  %s Fix: %s\n", RenderMuted(IconInfo), issue.FixAction)
		} else {
			fmt.Printf("  %s %s\n", RenderMuted(IconInfo), issue.FixAction)
		}
	}
}
