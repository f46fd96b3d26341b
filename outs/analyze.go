// Package outs estimates how likely a hold'em hand is to complete each of
// the common made hands, from the hole cards and the community cards seen
// so far.
//
// Each HandRank has its own outs policy. Results are reported as an
// Outcome (unreachable, complete, or a number of outs) and converted to a
// percentage with the rule of 4 and 2.
package outs

import (
	"context"
	"fmt"

	"github.com/lox/pokerouts/poker"
	"golang.org/x/sync/errgroup"
)

const (
	maxHoleCards      = 2
	maxCommunityCards = 5
)

// Street names the betting round implied by the number of community cards.
type Street uint8

const (
	StreetUnknown Street = iota
	Preflop
	Flop
	Turn
	River
)

// StreetOf returns the street for a community card count.
func StreetOf(communitySize int) Street {
	switch communitySize {
	case 0:
		return Preflop
	case 3:
		return Flop
	case 4:
		return Turn
	case 5:
		return River
	default:
		return StreetUnknown
	}
}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// MarshalText encodes the street by name.
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Estimate is the outs and completion percentage for one rank.
type Estimate struct {
	Rank    HandRank `json:"rank"`
	Outcome Outcome  `json:"outcome"`
	Outs    int      `json:"outs"`
	Percent int      `json:"percent"`
}

// Analysis is a full table read: every requested rank for one situation.
type Analysis struct {
	Hole      poker.Hand `json:"-"`
	Community poker.Hand `json:"-"`
	AllIn     bool       `json:"all_in"`
	Street    Street     `json:"street"`
	DeckSize  int        `json:"deck_size"`
	Estimates []Estimate `json:"estimates"`
}

// Validate checks hole and community cards before analysis.
func Validate(hole, community poker.Hand) error {
	switch n := hole.CountCards(); {
	case n == 0:
		return ErrNoHoleCards
	case n > maxHoleCards:
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyHoleCards, n, maxHoleCards)
	}
	if n := community.CountCards(); n > maxCommunityCards {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyCommunityCards, n, maxCommunityCards)
	}
	if overlap := hole & community; overlap != 0 {
		return fmt.Errorf("%w: %s is both a hole and a community card", ErrDuplicateCard, overlap.Cards()[0])
	}
	return nil
}

// Analyze validates the input and estimates each requested rank, or every
// rank when none are given. Ranks are evaluated concurrently; the result
// keeps the requested order.
func Analyze(ctx context.Context, hole, community poker.Hand, allIn bool, ranks ...HandRank) (*Analysis, error) {
	if err := Validate(hole, community); err != nil {
		return nil, err
	}
	if len(ranks) == 0 {
		ranks = Ranks()
	}
	for _, r := range ranks {
		if int(r) >= len(allRanks) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownHandRank, r)
		}
	}

	deck := UnknownDeck(hole, community)
	communitySize := community.CountCards()
	estimates := make([]Estimate, len(ranks))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range ranks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := r.CalcOuts(deck, hole, community)
			estimates[i] = Estimate{
				Rank:    r,
				Outcome: o,
				Outs:    o.Int(),
				Percent: CompletionProbability(allIn, communitySize, o),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Analysis{
		Hole:      hole,
		Community: community,
		AllIn:     allIn,
		Street:    StreetOf(communitySize),
		DeckSize:  deck.Len(),
		Estimates: estimates,
	}, nil
}

// Estimate returns the estimate for r, if it was requested.
func (a *Analysis) Estimate(r HandRank) (Estimate, bool) {
	for _, e := range a.Estimates {
		if e.Rank == r {
			return e, true
		}
	}
	return Estimate{}, false
}
