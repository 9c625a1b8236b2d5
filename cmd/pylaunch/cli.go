// Where: cmd/pylaunch/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/tahanili/pylaunch/internal/app"
	"github.com/tahanili/pylaunch/internal/interaction"
	"github.com/tahanili/pylaunch/internal/python"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
// The project directory is the current working directory, matching the
// original shell wrappers which resolved paths relative to themselves.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	var prompter interaction.Prompter
	if interaction.IsTerminal(os.Stdin) {
		prompter = interaction.HuhPrompter{}
	}

	return app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     python.ExecRunner{},
		Prompter:   prompter,
		Confirm:    interaction.PromptYesNo,
	}, nil
}
