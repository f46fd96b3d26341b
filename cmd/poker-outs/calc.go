package main

import (
	"context"
	"fmt"

	"github.com/lox/pokerouts/outs"
	"github.com/lox/pokerouts/poker"
)

// CalcCmd estimates outs for a given hand and board.
type CalcCmd struct {
	Hand   string          `short:"H" aliases:"mh" required:"" help:"Hole cards, e.g. AdKh"`
	Board  string          `short:"b" aliases:"ch" help:"Community cards, e.g. Jd8c3d (empty before the flop)"`
	AllIn  bool            `short:"a" help:"Estimate for an all-in showdown"`
	Rank   []outs.HandRank `short:"r" help:"Only estimate these ranks (one-pair, two-pair, three-of-a-kind, straight, flush, full-house)"`
	Format string          `short:"f" help:"Output format, text|table|json (overrides config)"`
}

func (c *CalcCmd) Run(ctx context.Context, app *App) error {
	hole, err := poker.ParseHandString(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand %q: %w", c.Hand, err)
	}
	board, err := poker.ParseHandString(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board %q: %w", c.Board, err)
	}

	allIn := c.AllIn || app.Config.Defaults.AllIn
	return app.calculate(ctx, hole, board, allIn, c.Rank, app.Format(c.Format))
}

func (a *App) calculate(ctx context.Context, hole, board poker.Hand, allIn bool, ranks []outs.HandRank, format string) error {
	start := a.Clock.Now()
	analysis, err := outs.Analyze(ctx, hole, board, allIn, ranks...)
	if err != nil {
		return err
	}

	a.Logger.Debug("Analysis complete",
		"hand", hole,
		"board", board,
		"street", analysis.Street,
		"unseen", analysis.DeckSize,
		"allIn", allIn,
		"elapsed", a.Clock.Since(start))

	return a.Printer().Write(format, analysis)
}
