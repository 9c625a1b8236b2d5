// Where: internal/interaction/selector.go
// What: Interactive input helpers using the huh library.
// Why: Provide keyboard-based prompts for env and clean commands.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		EchoMode(huh.EchoModePassword).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
