package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/pokerouts/internal/render"
	"github.com/lox/pokerouts/internal/tui"
)

// InteractiveCmd runs the terminal UI.
type InteractiveCmd struct {
	AllIn bool `short:"a" help:"Start with all-in estimates"`
}

func (c *InteractiveCmd) Run(app *App) error {
	opts := render.Options{
		Threshold: app.Config.ThresholdPercent(),
		Color:     app.Color,
	}
	model := tui.New(app.Logger, opts, c.AllIn || app.Config.Defaults.AllIn)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
