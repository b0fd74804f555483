package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thesavant42/rickdex/internal/api"
)

// ErrCancelled is returned when the user aborts a prompt (Esc, Ctrl+C)
var ErrCancelled = errors.New("cancelled by user")

// promptError separates a user abort from any other prompt failure
func promptError(what string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, huh.ErrTimeout) {
		return fmt.Errorf("%s: %w", what, ErrCancelled)
	}
	return fmt.Errorf("%s failed: %w", what, err)
}

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t') {
			return -1
		}
		return r
	}, s)
}

// actionOptions builds the menu entries in fixed order
func actionOptions() []huh.Option[api.Action] {
	opts := make([]huh.Option[api.Action], len(api.Actions))
	for i, a := range api.Actions {
		opts[i] = huh.NewOption(a.Label(), a)
	}
	return opts
}

// SelectAction shows the four-entry menu and returns the chosen action.
// The first entry is preselected.
func SelectAction() (api.Action, error) {
	action := api.ActionCharacters

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[api.Action]().
				Title("Choose your option:").
				Options(actionOptions()...).
				Value(&action),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return 0, promptError("menu", err)
	}
	return action, nil
}

// PromptForName asks for the character name to search.
// The value is not validated: an empty name is sent as-is.
func PromptForName() (string, error) {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Type the character name:").
				Placeholder("Rick Sanchez").
				Value(&name),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", promptError("name prompt", err)
	}
	return sanitizeInput(name), nil
}
