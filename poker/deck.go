package poker

import (
	rand "math/rand/v2"
)

// Deck is the standard 52-card deck minus any cards removed or dealt.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a full, ordered 52-card deck
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, numCards)}
	for suit := range uint8(numSuits) {
		for rank := range uint8(numRanks) {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewShuffledDeck creates a full deck shuffled with explicit RNG
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck()
	d.rng = rng
	d.Shuffle()
	return d
}

// Remove takes the given cards out of the deck. Cards not in the deck are ignored.
func (d *Deck) Remove(cards ...Card) {
	gone := NewHand(cards...)
	kept := d.cards[:0]
	for _, c := range d.cards {
		if !gone.HasCard(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// RemoveHand takes every card of h out of the deck.
func (d *Deck) RemoveHand(h Hand) {
	d.Remove(h.Cards()...)
}

// Contains reports whether c is still in the deck.
func (d *Deck) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// CountSuit returns how many remaining cards belong to suit.
func (d *Deck) CountSuit(suit uint8) int {
	n := 0
	for _, c := range d.cards {
		if c.Suit() == suit {
			n++
		}
	}
	return n
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the top of the deck, or nil if fewer remain
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// DealHand deals n cards as a Hand.
func (d *Deck) DealHand(n int) (Hand, bool) {
	cards := d.Deal(n)
	if cards == nil && n > 0 {
		return 0, false
	}
	return NewHand(cards...), true
}
