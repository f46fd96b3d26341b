package outs

import "github.com/lox/pokerouts/poker"

// Every rank has four copies, one per suit, so a value seen once leaves
// three outs to pair it and a value seen twice leaves two to trip it.
const (
	pairOuts = 3
	tripOuts = 2
)

func onePairOuts(values ValueCounts) Outcome {
	for _, n := range values {
		if n >= 2 {
			return CompleteOutcome()
		}
	}
	return Needs(pairOuts)
}

func twoPairOuts(values ValueCounts, holeSize int) Outcome {
	pairs := 0
	for _, n := range values {
		if n == 4 {
			return CompleteOutcome()
		}
		if n == 2 {
			pairs++
		}
	}

	switch {
	case pairs >= 2:
		return CompleteOutcome()
	case pairs == 1:
		return Needs(pairOuts)
	default:
		// Flat charge per hole card rather than an exact count.
		return Needs(holeSize * pairOuts)
	}
}

func threeOfAKindOuts(values ValueCounts) Outcome {
	paired := false
	for _, n := range values {
		if n >= 3 {
			return CompleteOutcome()
		}
		if n == 2 {
			paired = true
		}
	}
	if paired {
		return Needs(tripOuts)
	}
	return Needs(3)
}

// straightOuts measures the run of consecutive ranks over the sorted
// distinct ranks. The counter grows on every adjacent step and is never
// reset on a gap, so 2,3,7,8,9 counts as 4.
func straightOuts(values ValueCounts, communitySize int) Outcome {
	run := 1
	prev := -1
	for rank, n := range values {
		if n == 0 {
			continue
		}
		if prev >= 0 && rank-1 == prev {
			run++
		}
		prev = rank
	}

	if communitySize == 3 && run < 3 {
		return UnreachableOutcome()
	}
	if communitySize == 4 && run < 4 {
		return UnreachableOutcome()
	}
	// A run of five or more is a made straight. (5-run)*4 goes to zero or
	// below there and Needs reports it as Complete, so Int() gives 0, not a
	// negative count that would read as unreachable.
	return Needs((5 - run) * 4)
}

// flushOuts returns the remaining deck cards of the best viable suit. On
// the turn a suit needs four cards to stay viable, before that three.
func flushOuts(suits SuitCounts, deck *poker.Deck, communitySize int) Outcome {
	best := -1
	for suit, n := range suits {
		if n == 0 {
			continue
		}
		if communitySize >= 4 && n < 4 {
			continue
		}
		if communitySize <= 3 && n < 3 {
			continue
		}
		if left := deck.CountSuit(uint8(suit)); left > best {
			best = left
		}
	}
	return FromInt(best)
}

// fullHouseOuts scans ranks low to high. The early returns inside the
// loop win over the summary after it.
func fullHouseOuts(values ValueCounts) Outcome {
	var onePair, secondPair, set bool
	for _, n := range values {
		switch n {
		case 4:
			return Needs(2 * 2)
		case 2:
			if set {
				return CompleteOutcome()
			}
			if !onePair {
				onePair = true
			} else {
				secondPair = true
			}
		case 3:
			if onePair {
				return CompleteOutcome()
			}
			set = true
		}
	}

	switch {
	case onePair && secondPair:
		return Needs(2 * 2)
	case onePair:
		// Trip the pair (2) or pair a kicker (3), summed as an upper bound.
		return Needs(tripOuts + pairOuts)
	default:
		return Needs(pairOuts + pairOuts)
	}
}
