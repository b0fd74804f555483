package ui

// spinner.go provides a blocking spinner for the one in-flight request.

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// actionDoneMsg signals the action completed
type actionDoneMsg struct{}

// blockingSpinnerModel runs a spinner while an action executes
type blockingSpinnerModel struct {
	spinner   spinner.Model
	title     string
	action    func()
	done      bool
	cancelled bool
}

// NewAppSpinner returns the portal-green dot spinner used across the app
func NewAppSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPortal)),
	)
}

// RunWithSpinner executes action while displaying a spinner on stderr.
// When stderr is not a terminal the action just runs. Ctrl+C returns ErrCancelled;
// callers should cancel the context the action uses so the request is abandoned.
//
// Example:
//
//	var res *api.Result
//	var fetchErr error
//	err := RunWithSpinner(ctx, "Fetching characters...", func() {
//	    res, fetchErr = client.Run(ctx, action, name)
//	})
//	if err != nil { return err }
//	if fetchErr != nil { return fetchErr }
func RunWithSpinner(ctx context.Context, title string, action func()) error {
	if !IsTerminal(os.Stderr) {
		action()
		return nil
	}

	m := blockingSpinnerModel{
		spinner: NewAppSpinner(),
		title:   title,
		action:  action,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return ErrCancelled
		}
		return fmt.Errorf("spinner program error: %w", err)
	}

	if finalModel.(blockingSpinnerModel).cancelled {
		return ErrCancelled
	}
	return nil
}

func (m blockingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(),
	)
}

func (m blockingSpinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		m.action()
		return actionDoneMsg{}
	}
}

func (m blockingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m blockingSpinnerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), HintStyle.Render(m.title))
}
