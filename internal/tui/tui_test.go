package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerouts/internal/render"
	"github.com/lox/pokerouts/outs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(allIn bool) *Model {
	return newTestModelWith(render.Options{Threshold: 10}, allIn)
}

func newTestModelWith(opts render.Options, allIn bool) *Model {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(logger, opts, allIn)
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTypingCardsUpdatesEstimates(t *testing.T) {
	m := newTestModel(false)

	assert.Nil(t, m.Analysis())
	assert.Contains(t, m.View(), "Enter your hole cards")

	typeText(m, "AdKh")
	require.NoError(t, m.Err())
	require.NotNil(t, m.Analysis())
	assert.Equal(t, outs.Preflop, m.Analysis().Street)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, boardInput, m.Focused())

	typeText(m, "Jd8c3d")
	require.NoError(t, m.Err())
	require.NotNil(t, m.Analysis())
	assert.Equal(t, outs.Flop, m.Analysis().Street)

	view := m.View()
	assert.Contains(t, view, "Flush has the probability of 20%")
	assert.Contains(t, view, "not all-in")
}

func TestToggleAllIn(t *testing.T) {
	m := newTestModel(false)
	m.SetInputs("AdKh", "Jd8d3d4s")

	e, ok := m.Analysis().Estimate(outs.Flush)
	require.True(t, ok)
	assert.Equal(t, 18, e.Percent)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.True(t, m.AllIn())

	e, ok = m.Analysis().Estimate(outs.Flush)
	require.True(t, ok)
	assert.Equal(t, 36, e.Percent)
}

func TestInvalidInputShowsError(t *testing.T) {
	m := newTestModel(false)

	m.SetInputs("AdK", "")
	assert.Error(t, m.Err())
	assert.Nil(t, m.Analysis())

	m.SetInputs("AdKh", "Ad8c3d")
	assert.ErrorIs(t, m.Err(), outs.ErrDuplicateCard)
	assert.Contains(t, m.View(), "duplicate card")
}

func TestFocusCyclesAndQuits(t *testing.T) {
	m := newTestModel(true)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, boardInput, m.Focused())
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, holeInput, m.Focused())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestColourFollowsOptions(t *testing.T) {
	coloured := newTestModelWith(render.Options{Threshold: 10, Color: true, ForceColor: true}, false)
	coloured.SetInputs("AdKh", "Jd8c3d")
	assert.Contains(t, coloured.View(), "\x1b[")

	// ForceColor must not win over a disabled colour setting
	plain := newTestModelWith(render.Options{Threshold: 10, Color: false, ForceColor: true}, false)
	plain.SetInputs("AdKh", "Jd8c3d")
	view := plain.View()
	assert.NotContains(t, view, "\x1b[")
	assert.Contains(t, view, "Flush has the probability of 20%")
}
