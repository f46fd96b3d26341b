package main

import (
	"context"
	"fmt"

	"github.com/lox/pokerouts/internal/config"
	"github.com/lox/pokerouts/internal/randutil"
	"github.com/lox/pokerouts/outs"
	"github.com/lox/pokerouts/poker"
)

var streetCards = map[string]int{
	"preflop": 0,
	"flop":    3,
	"turn":    4,
	"river":   5,
}

// DealCmd deals a random situation for practice.
type DealCmd struct {
	Seed   int64  `help:"Random seed for reproducible deals (0 picks one from the clock)"`
	Street string `short:"s" default:"flop" enum:"preflop,flop,turn,river" help:"Street to deal to (preflop|flop|turn|river)"`
	AllIn  bool   `short:"a" help:"Estimate for an all-in showdown"`
	Format string `short:"f" help:"Output format, text|table|json (overrides config)"`
}

func (c *DealCmd) Run(ctx context.Context, app *App) error {
	seed := c.Seed
	if seed == 0 {
		seed = randutil.SeedFrom(app.Clock.Now())
	}

	hole, board, err := dealSituation(poker.NewShuffledDeck(randutil.New(seed)), streetCards[c.Street])
	if err != nil {
		return err
	}

	app.Logger.Info("Dealt hand", "seed", seed, "hand", hole, "board", board)

	format := app.Format(c.Format)
	if format != config.FormatJSON {
		p := app.Printer()
		fmt.Fprintf(app.Out, "%s | %s\n", p.Cards(hole), p.Cards(board))
	}

	allIn := c.AllIn || app.Config.Defaults.AllIn
	return app.calculate(ctx, hole, board, allIn, outs.Ranks(), format)
}

// dealSituation deals two hole cards then boardCards community cards.
func dealSituation(deck *poker.Deck, boardCards int) (poker.Hand, poker.Hand, error) {
	hole, ok := deck.DealHand(2)
	if !ok {
		return 0, 0, fmt.Errorf("dealing hole cards: only %d cards left", deck.Len())
	}
	board, ok := deck.DealHand(boardCards)
	if !ok {
		return 0, 0, fmt.Errorf("dealing %d board cards: only %d cards left", boardCards, deck.Len())
	}
	return hole, board, nil
}
