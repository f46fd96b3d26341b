package outs

import "github.com/lox/pokerouts/poker"

// SuitCounts holds how many known cards share each suit, indexed by poker suit.
type SuitCounts [4]int

// ValueCounts holds how many known cards share each rank, indexed Two..Ace.
type ValueCounts [13]int

// Total returns the number of cards counted.
func (s SuitCounts) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Total returns the number of cards counted.
func (v ValueCounts) Total() int {
	n := 0
	for _, c := range v {
		n += c
	}
	return n
}

// TakeCensus counts the suits and ranks of every hole and community card.
func TakeCensus(hole, community poker.Hand) (SuitCounts, ValueCounts) {
	var suits SuitCounts
	var values ValueCounts
	for _, h := range [...]poker.Hand{hole, community} {
		for _, c := range h.Cards() {
			suits[c.Suit()]++
			values[c.Rank()]++
		}
	}
	return suits, values
}

// UnknownDeck returns the full deck minus the hole and community cards.
func UnknownDeck(hole, community poker.Hand) *poker.Deck {
	deck := poker.NewDeck()
	deck.RemoveHand(hole)
	deck.RemoveHand(community)
	return deck
}
