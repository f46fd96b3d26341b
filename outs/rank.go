package outs

import (
	"fmt"
	"strings"

	"github.com/lox/pokerouts/poker"
)

// HandRank enumerates the hand ranks the outs engine can estimate,
// ordered from weakest to strongest.
type HandRank uint8

const (
	OnePair HandRank = iota
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
)

var allRanks = [...]HandRank{OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse}

// Ranks returns every HandRank in display order.
func Ranks() []HandRank {
	out := make([]HandRank, len(allRanks))
	copy(out, allRanks[:])
	return out
}

// String returns a human-readable rank name.
func (r HandRank) String() string {
	switch r {
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three Of A Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the rank by name.
func (r HandRank) MarshalText() ([]byte, error) {
	if int(r) >= len(allRanks) {
		return nil, fmt.Errorf("unknown hand rank %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText accepts anything ParseHandRank does.
func (r *HandRank) UnmarshalText(text []byte) error {
	parsed, err := ParseHandRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseHandRank parses a rank name such as "flush", "Full House",
// "three-of-a-kind" or "two_pair". Case, spaces, dashes and underscores
// are ignored.
func ParseHandRank(s string) (HandRank, error) {
	key := normalizeRankName(s)
	for _, r := range allRanks {
		if normalizeRankName(r.String()) == key {
			return r, nil
		}
	}
	switch key {
	case "pair":
		return OnePair, nil
	case "trips", "set":
		return ThreeOfAKind, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHandRank, s)
}

func normalizeRankName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// CalcOuts returns how close hole+community is to making r. Only Flush
// reads deck; the other ranks work from the census alone.
func (r HandRank) CalcOuts(deck *poker.Deck, hole, community poker.Hand) Outcome {
	suits, values := TakeCensus(hole, community)
	switch r {
	case OnePair:
		return onePairOuts(values)
	case TwoPair:
		return twoPairOuts(values, hole.CountCards())
	case ThreeOfAKind:
		return threeOfAKindOuts(values)
	case Straight:
		return straightOuts(values, community.CountCards())
	case Flush:
		return flushOuts(suits, deck, community.CountCards())
	case FullHouse:
		return fullHouseOuts(values)
	default:
		return UnreachableOutcome()
	}
}
