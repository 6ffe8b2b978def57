package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/skaff/pkg/commands/create"
)

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// confirmEditing gates the interactive editor pass for one project root.
// Non-terminal sessions never prompt and never edit.
func confirmEditing(root string) bool {
	if !isTerminal() {
		return false
	}
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show(fmt.Sprintf("Edit the generated configuration for %s now?", pterm.Bold.Sprint(root)))
	if err != nil {
		return false
	}
	return ok
}

func printCreateResult(result *create.Result) {
	for _, project := range result.Projects {
		pterm.Success.Printfln("%s (%s, %d entries)",
			project.Skeleton.Root,
			project.Skeleton.Language,
			len(project.Skeleton.CreatedPaths))

		for _, conflict := range project.Conflicts {
			pterm.Warning.Printfln("  exists, left untouched: %s (%s)", conflict.Path, conflict.Kind)
		}
		for _, artifact := range project.Artifacts {
			pterm.Info.Printfln("  %s via %s: %s", artifact.Kind, artifact.Tool, artifact.Path)
		}
		for _, warning := range project.Warnings {
			pterm.Warning.Printfln("  %s", warning)
		}
	}
	if result.Message != "" {
		pterm.DefaultBasicText.Println(result.Message)
	}
}

func printError(err error) {
	pterm.Error.Println(err)
}
