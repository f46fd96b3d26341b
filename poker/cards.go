package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single playing card stored as one set bit of a 64-bit mask.
// The bit index is suit*13 + rank. The zero Card is not a valid card.
type Card uint64

// Hand is a set of cards stored as a bitmask. Union is a | b.
type Hand uint64

// Suits
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Ranks, ordered low to high
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars   = "23456789TJQKA"
	suitChars   = "cdhs"
	suitMask    = 0x1FFF
	numRanks    = 13
	numSuits    = 4
	numCards    = numRanks * numSuits
	allCardMask = Hand(1)<<numCards - 1
)

var suitSymbols = [numSuits]string{"♣", "♦", "♥", "♠"}

// NewCard creates a card from a rank (Two..Ace) and a suit (Clubs..Spades).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*numRanks + uint(rank))
}

func (c Card) index() int {
	return bits.TrailingZeros64(uint64(c))
}

// Rank returns the card rank, 0 (Two) to 12 (Ace).
func (c Card) Rank() uint8 {
	return uint8(c.index() % numRanks)
}

// Suit returns the card suit, 0 (Clubs) to 3 (Spades).
func (c Card) Suit() uint8 {
	return uint8(c.index() / numRanks)
}

// Valid reports whether c encodes exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && bits.OnesCount64(uint64(c)) == 1 && Hand(c)&allCardMask != 0
}

// String returns the two character notation, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// Pretty returns the card with a suit symbol, e.g. "A♠".
func (c Card) Pretty() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + suitSymbols[c.Suit()]
}

// IsRed returns true for diamonds and hearts.
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == Diamonds || s == Hearts
}

// SuitSymbol returns the symbol for a suit, or "?".
func SuitSymbol(suit uint8) string {
	if int(suit) >= numSuits {
		return "?"
	}
	return suitSymbols[suit]
}

// ParseCard parses a card in [Rank][suit] notation. Ranks are 2-9, T, J, Q, K, A
// and suits are c, d, h, s (either case).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: want 2 characters, got %d", s, len(s))
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards such as "AdKh" or "Jd 8c 3d".
// Whitespace is ignored. An empty string yields no cards.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		cards = append(cards, NewCard(rank, suit))
	}
	return cards, nil
}

// ParseHand builds a hand from individual card strings.
func ParseHand(cards ...string) (Hand, error) {
	var h Hand
	for _, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			return 0, err
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("duplicate card %s", c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// ParseHandString builds a hand from concatenated notation ("AdKh").
func ParseHandString(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	var h Hand
	for _, c := range cards {
		if h.HasCard(c) {
			return 0, fmt.Errorf("duplicate card %s", c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// MustParseHand is ParseHandString for tests and literals; it panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHandString(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return h
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case 'a', 'k', 'q', 'j', 't':
		c -= 'a' - 'A'
	}
	if i := strings.IndexByte(rankChars, c); i >= 0 {
		return uint8(i), nil
	}
	return 0, fmt.Errorf("unknown rank '%c'", c)
}

func parseSuit(c byte) (uint8, error) {
	switch c {
	case 'C', 'D', 'H', 'S':
		c += 'a' - 'A'
	}
	if i := strings.IndexByte(suitChars, c); i >= 0 {
		return uint8(i), nil
	}
	return 0, fmt.Errorf("unknown suit '%c'", c)
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// RemoveCard removes a card from the hand. Removing an absent card is a no-op.
func (h *Hand) RemoveCard(c Card) {
	*h &^= Hand(c)
}

// HasCard reports whether the hand holds c.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h & allCardMask))
}

// GetSuitMask returns a 13-bit rank mask of the cards held in one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(h>>(uint(suit)*numRanks)) & suitMask
}

// GetRankMask returns a 13-bit mask of the ranks present in any suit.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := range uint8(numSuits) {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards returns the cards in the hand, clubs first, low rank first within a suit.
func (h Hand) Cards() []Card {
	h &= allCardMask
	cards := make([]Card, 0, h.CountCards())
	for h != 0 {
		low := h & -h
		cards = append(cards, Card(low))
		h &^= low
	}
	return cards
}

// String returns the cards separated by spaces, e.g. "Kh Ad".
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
