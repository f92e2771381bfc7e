// Package evaluator ranks a set of two to seven cards into a comparable Score.
//
// Categories are tried strongest first and the first one that matches wins.
// Aces are always high; A-2-3-4-5 is not a straight.
package evaluator

import (
	"slices"

	"github.com/lox/holdem-console/internal/deck"
)

// matcher recognises one category and returns its tie-breakers.
type matcher struct {
	category Category
	minCards int
	match    func(h *hand) ([]int, bool)
}

// matchers is ordered by descending precedence.
var matchers = [...]matcher{
	{RoyalFlush, 5, matchRoyalFlush},
	{StraightFlush, 5, matchStraightFlush},
	{FourOfAKind, 5, matchFourOfAKind},
	{FullHouse, 5, matchFullHouse},
	{Flush, 5, matchFlush},
	{Straight, 5, matchStraight},
	{ThreeOfAKind, 0, matchThreeOfAKind},
	{TwoPair, 0, matchTwoPair},
	{OnePair, 0, matchOnePair},
	{HighCard, 0, matchHighCard},
}

// hand is the pre-sorted view of the cards shared by every matcher.
type hand struct {
	powers []int // every card power, highest first
	counts [int(deck.Ace) + 1]int
	suited [len(deck.Suits)][]int // powers per suit, highest first
}

func newHand(cards []deck.Card) *hand {
	h := &hand{powers: make([]int, 0, len(cards))}
	for _, c := range cards {
		h.powers = append(h.powers, c.Power())
		h.counts[c.Power()]++
		h.suited[c.Suit] = append(h.suited[c.Suit], c.Power())
	}
	slices.SortFunc(h.powers, descending)
	for s := range h.suited {
		slices.SortFunc(h.suited[s], descending)
	}
	return h
}

func descending(a, b int) int { return b - a }

// Evaluate scores the hole cards together with the community cards.
func Evaluate(hole, community []deck.Card) Score {
	cards := make([]deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return EvaluateCards(cards)
}

// EvaluateCards scores an arbitrary card set. Below five cards only the
// categories that fit in fewer cards can match.
func EvaluateCards(cards []deck.Card) Score {
	h := newHand(cards)
	for _, m := range matchers {
		if len(cards) < m.minCards {
			continue
		}
		if ties, ok := m.match(h); ok {
			return newScore(m.category, ties...)
		}
	}
	return newScore(HighCard)
}

// Categorize returns only the category of the cards.
func Categorize(hole, community []deck.Card) Category {
	return Evaluate(hole, community).Category()
}

func matchRoyalFlush(h *hand) ([]int, bool) {
	ties, ok := matchStraightFlush(h)
	if !ok || ties[0] != int(deck.Ace) {
		return nil, false
	}
	return nil, true
}

func matchStraightFlush(h *hand) ([]int, bool) {
	suited := h.flushPowers()
	if suited == nil {
		return nil, false
	}
	top, ok := straightTop(suited)
	if !ok {
		return nil, false
	}
	return []int{top}, true
}

func matchFourOfAKind(h *hand) ([]int, bool) {
	quad, ok := h.highestSet(4)
	if !ok {
		return nil, false
	}
	return append([]int{quad}, h.kickers(1, quad)...), true
}

func matchFullHouse(h *hand) ([]int, bool) {
	trips, ok := h.highestSet(3)
	if !ok {
		return nil, false
	}
	pair, ok := h.highestSet(2, trips)
	if !ok {
		return nil, false
	}
	return []int{trips, pair}, true
}

func matchFlush(h *hand) ([]int, bool) {
	suited := h.flushPowers()
	if suited == nil {
		return nil, false
	}
	return []int{suited[0]}, true
}

func matchStraight(h *hand) ([]int, bool) {
	top, ok := straightTop(h.powers)
	if !ok {
		return nil, false
	}
	return []int{top}, true
}

func matchThreeOfAKind(h *hand) ([]int, bool) {
	trips, ok := h.highestSet(3)
	if !ok {
		return nil, false
	}
	return append([]int{trips}, h.kickers(2, trips)...), true
}

func matchTwoPair(h *hand) ([]int, bool) {
	high, ok := h.highestSet(2)
	if !ok {
		return nil, false
	}
	low, ok := h.highestSet(2, high)
	if !ok {
		return nil, false
	}
	return append([]int{high, low}, h.kickers(1, high, low)...), true
}

func matchOnePair(h *hand) ([]int, bool) {
	pair, ok := h.highestSet(2)
	if !ok {
		return nil, false
	}
	return append([]int{pair}, h.kickers(3, pair)...), true
}

func matchHighCard(h *hand) ([]int, bool) {
	return h.kickers(MaxTieBreakers), true
}

// highestSet returns the highest power held at least n times, skipping the
// excluded powers.
func (h *hand) highestSet(n int, exclude ...int) (int, bool) {
	for p := int(deck.Ace); p >= int(deck.Two); p-- {
		if h.counts[p] >= n && !slices.Contains(exclude, p) {
			return p, true
		}
	}
	return 0, false
}

// kickers returns up to n card powers, highest first, skipping excluded powers.
func (h *hand) kickers(n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for _, p := range h.powers {
		if len(out) == n {
			break
		}
		if !slices.Contains(exclude, p) {
			out = append(out, p)
		}
	}
	return out
}

// flushPowers returns the powers of the suit holding five or more cards.
func (h *hand) flushPowers() []int {
	for _, powers := range h.suited {
		if len(powers) >= 5 {
			return powers
		}
	}
	return nil
}

// straightTop finds the highest run of five consecutive distinct powers in a
// descending list and returns its top power.
func straightTop(powers []int) (int, bool) {
	distinct := slices.Compact(slices.Clone(powers))
	for i := 0; i+4 < len(distinct); i++ {
		if distinct[i]-distinct[i+4] == 4 {
			return distinct[i], true
		}
	}
	return 0, false
}
