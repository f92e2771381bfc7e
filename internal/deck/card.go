// Package deck provides playing cards and a seeded 52-card deck.
package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Spades, Clubs, Hearts, Diamonds}

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The numeric value is the card's power, so an
// Ace is always 14 and never plays low.
type Rank int

const (
	Two Rank = iota + 2
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

// String returns the rank as printed on the card face
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Power is the comparison value of the card, 2 through 14.
func (c Card) Power() int {
	return int(c.Rank)
}

// String returns the string representation of a card (e.g., "A♠", "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Spades && c.Suit <= Diamonds
}

// ParseCard parses a code such as "As", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var rank Rank
	switch strings.ToUpper(rankPart) {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(rankPart[0] - '0')
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card %q", rankPart, s)
	}

	var suit Suit
	switch suitPart {
	case 's', 'S':
		suit = Spades
	case 'c', 'C':
		suit = Clubs
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", suitPart, s)
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a run of card codes, either concatenated ("AsKs10h") or
// separated by spaces ("As Ks 10h").
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	cards := []Card{}
	for len(s) > 0 {
		n := 2
		if strings.HasPrefix(s, "10") {
			n = 3
		}
		if len(s) < n {
			return nil, fmt.Errorf("truncated card %q", s)
		}
		c, err := ParseCard(s[:n])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
		s = s[n:]
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on malformed input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
