package evaluator

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/lox/holdem-console/internal/deck"
)

// Category is the kind of hand, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// MaxTieBreakers is the number of tie-break slots after the category.
const MaxTieBreakers = 5

// Score is the strength of a hand: the category followed by tie-break card
// powers, most significant first, zero padded. Scores are ordered
// lexicographically and equal scores are ties.
type Score [1 + MaxTieBreakers]int

func newScore(c Category, tieBreakers ...int) Score {
	var s Score
	s[0] = int(c)
	copy(s[1:], tieBreakers)
	return s
}

// Category returns the hand category encoded in the score.
func (s Score) Category() Category {
	return Category(s[0])
}

// TieBreakers returns the non-zero tie-break powers.
func (s Score) TieBreakers() []int {
	var out []int
	for _, v := range s[1:] {
		if v == 0 {
			break
		}
		out = append(out, v)
	}
	return out
}

// Compare returns 1 if s beats other, -1 if other beats s and 0 for a tie.
func (s Score) Compare(other Score) int {
	for i := range s {
		if c := cmp.Compare(s[i], other[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Beats reports whether s is strictly stronger than other.
func (s Score) Beats(other Score) bool {
	return s.Compare(other) > 0
}

// String renders the score as e.g. "Full House (K, 9)".
func (s Score) String() string {
	ties := s.TieBreakers()
	if len(ties) == 0 {
		return s.Category().String()
	}
	names := make([]string, len(ties))
	for i, p := range ties {
		names[i] = deck.Rank(p).String()
	}
	return fmt.Sprintf("%s (%s)", s.Category(), strings.Join(names, ", "))
}

// Best returns the strongest score and the indexes of every score equal to it.
func Best(scores []Score) (Score, []int) {
	var best Score
	var idx []int
	for i, s := range scores {
		switch c := s.Compare(best); {
		case i == 0 || c > 0:
			best = s
			idx = []int{i}
		case c == 0:
			idx = append(idx, i)
		}
	}
	return best, idx
}
