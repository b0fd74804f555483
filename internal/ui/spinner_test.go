package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestBlockingSpinnerModel(t *testing.T) {
	m := blockingSpinnerModel{spinner: NewAppSpinner(), title: "Fetching characters..."}
	assert.Contains(t, m.View(), "Fetching characters...")

	t.Run("done quits and clears", func(t *testing.T) {
		next, cmd := m.Update(actionDoneMsg{})
		assert.NotNil(t, cmd)
		assert.True(t, next.(blockingSpinnerModel).done)
		assert.Empty(t, next.View())
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd)
		assert.True(t, next.(blockingSpinnerModel).cancelled)
	})

	t.Run("other keys ignored", func(t *testing.T) {
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		assert.Nil(t, cmd)
		assert.False(t, next.(blockingSpinnerModel).cancelled)
	})
}
