package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck is an ordered run of the 52 cards. It is shuffled once at construction
// and only ever shrinks as cards are drawn from the top.
type Deck struct {
	cards []Card
}

// New creates a full deck permuted by rng.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, Size)}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	// Fisher-Yates
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewStacked returns a deck whose draw order is exactly cards, top first.
// It is used to replay hands and to script tests.
func NewStacked(cards []Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DrawN draws up to n cards from the top of the deck
func (d *Deck) DrawN(n int) []Card {
	n = min(n, len(d.cards))
	cards := make([]Card, 0, n)
	for range n {
		card, _ := d.Draw()
		cards = append(cards, card)
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
