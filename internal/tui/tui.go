// Package tui is an interactive outs calculator: type hole and board cards
// and the estimates update as you go.
package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerouts/internal/render"
	"github.com/lox/pokerouts/outs"
	"github.com/lox/pokerouts/poker"
)

const (
	holeInput = iota
	boardInput
	numInputs
)

// Model is the Bubble Tea model for the interactive calculator
type Model struct {
	logger  *log.Logger
	printer *render.Printer
	styles  styles

	inputs []textinput.Model
	focus  int
	allIn  bool

	analysis *outs.Analysis
	err      error
	quitting bool
}

// New creates the model. opts sets the colour threshold and whether the
// UI is coloured at all.
func New(logger *log.Logger, opts render.Options, allIn bool) *Model {
	r := render.NewRenderer(os.Stdout, opts)
	st := newStyles(r)

	inputs := make([]textinput.Model, numInputs)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 20
		ti.Width = 20
		ti.PromptStyle = st.label
		ti.TextStyle = st.plain
		ti.PlaceholderStyle = st.info
		ti.Cursor.Style = st.plain
		ti.Cursor.TextStyle = st.plain
		inputs[i] = ti
	}
	inputs[holeInput].Prompt = "hand  > "
	inputs[holeInput].Placeholder = "AdKh"
	inputs[boardInput].Prompt = "board > "
	inputs[boardInput].Placeholder = "Jd8c3d"
	inputs[holeInput].Focus()

	return &Model{
		logger:  logger.WithPrefix("tui"),
		printer: render.NewWithRenderer(nil, r, opts.Threshold),
		styles:  st,
		inputs:  inputs,
		allIn:   allIn,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.setFocus((m.focus + 1) % numInputs)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + numInputs - 1) % numInputs)
		case "ctrl+a":
			m.allIn = !m.allIn
			m.logger.Debug("Toggled all-in", "allIn", m.allIn)
			m.recalculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.recalculate()
	}
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// SetInputs replaces both inputs and recalculates.
func (m *Model) SetInputs(hole, board string) {
	m.inputs[holeInput].SetValue(hole)
	m.inputs[boardInput].SetValue(board)
	m.recalculate()
}

func (m *Model) recalculate() {
	m.analysis, m.err = nil, nil

	holeText := strings.TrimSpace(m.inputs[holeInput].Value())
	if holeText == "" {
		return
	}
	hole, err := poker.ParseHandString(holeText)
	if err != nil {
		m.err = err
		return
	}
	board, err := poker.ParseHandString(m.inputs[boardInput].Value())
	if err != nil {
		m.err = err
		return
	}

	m.analysis, m.err = outs.Analyze(context.Background(), hole, board, m.allIn)
	if m.err != nil {
		m.logger.Debug("Analysis rejected", "error", m.err)
	}
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("poker outs"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.allIn {
		b.WriteString(m.styles.allIn.Render("all-in"))
	} else {
		b.WriteString(m.styles.info.Render("not all-in"))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.err.Render(m.err.Error()))
		b.WriteString("\n")
	case m.analysis != nil:
		b.WriteString(m.styles.info.Render(m.analysis.Street.String()))
		b.WriteString("  ")
		b.WriteString(m.printer.Cards(m.analysis.Hole))
		b.WriteString(" | ")
		b.WriteString(m.printer.Cards(m.analysis.Community))
		b.WriteString("\n")
		for _, e := range m.analysis.Estimates {
			b.WriteString(m.printer.Line(e))
			b.WriteString("\n")
		}
	default:
		b.WriteString(m.styles.info.Render("Enter your hole cards to see estimates."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.info.Render("tab: next field  ctrl+a: toggle all-in  esc: quit"))
	return b.String()
}

// Analysis returns the current analysis, or nil.
func (m *Model) Analysis() *outs.Analysis { return m.analysis }

// Err returns the current input error, or nil.
func (m *Model) Err() error { return m.err }

// AllIn reports whether estimates assume an all-in showdown.
func (m *Model) AllIn() bool { return m.allIn }

// Focused returns the index of the focused input, 0 for hand and 1 for board.
func (m *Model) Focused() int { return m.focus }
