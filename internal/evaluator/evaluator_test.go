package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-console/internal/deck"
)

func eval(t *testing.T, hole, board string) Score {
	t.Helper()
	h, err := deck.ParseCards(hole)
	require.NoError(t, err)
	b, err := deck.ParseCards(board)
	require.NoError(t, err)
	return Evaluate(h, b)
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hole  string
		board string
		want  Score
	}{
		{"royal flush", "AsKs", "QsJsTs", Score{int(RoyalFlush)}},
		{"royal flush with extras", "AsKs", "QsJsTs2h3d", Score{int(RoyalFlush)}},
		{"straight flush", "9h8h", "7h6h5hKcKd", Score{int(StraightFlush), 9}},
		{"highest straight flush in a long suit", "9h8h", "7h6h5h4h3h", Score{int(StraightFlush), 9}},
		{"four of a kind", "KsKh", "KdKcAs2h3h", Score{int(FourOfAKind), 13, 14}},
		{"four of a kind kicker from board pair", "7s7h", "7d7c9s9h2c", Score{int(FourOfAKind), 7, 9}},
		{"full house", "AsAh", "AdKsKh2h3c", Score{int(FullHouse), 14, 13}},
		{"full house from two trips", "9s9h", "9d5s5h5c2d", Score{int(FullHouse), 9, 5}},
		{"full house picks highest pair", "QsQh", "Qd4s4h8c8d", Score{int(FullHouse), 12, 8}},
		{"flush", "AsKs", "Qs8s6s4h3h", Score{int(Flush), 14}},
		{"flush uses suit top card", "2d3d", "9d7dJdAsKc", Score{int(Flush), 11}},
		{"straight", "9s8h", "7d6c5s2h2d", Score{int(Straight), 9}},
		{"highest straight wins", "9s8h", "7d6c5s4h3d", Score{int(Straight), 9}},
		{"broadway", "AsKd", "QcJhTs2c3c", Score{int(Straight), 14}},
		{"three of a kind", "7s7h", "7dAsKc2h3d", Score{int(ThreeOfAKind), 7, 14, 13}},
		{"two pair", "AsAh", "KdKc9s2h3d", Score{int(TwoPair), 14, 13, 9}},
		{"two pair from three pairs", "2s2h", "9d9cQsQh5d", Score{int(TwoPair), 12, 9, 5}},
		{"third pair plays as kicker", "3s3h", "9d9cQsQh2d", Score{int(TwoPair), 12, 9, 3}},
		{"one pair", "AsAh", "Kd9c7s4h2d", Score{int(OnePair), 14, 13, 9, 7}},
		{"high card", "AsJh", "9d7c5s3h2d", Score{int(HighCard), 14, 11, 9, 7, 5}},
		{"ace is never low", "As2h", "3d4c5s9hKd", Score{int(HighCard), 14, 13, 9, 5, 4}},
		{"pre-flop pair", "8s8d", "", Score{int(OnePair), 8}},
		{"pre-flop high card", "Qs4d", "", Score{int(HighCard), 12, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, eval(t, tt.hole, tt.board), "got %v", eval(t, tt.hole, tt.board))
		})
	}
}

func TestFewerThanFiveCardsSkipsMadeHands(t *testing.T) {
	t.Parallel()

	// Four suited connectors cannot be a flush or straight without a fifth card.
	s := EvaluateCards(deck.MustParseCards("9s8s7s6s"))
	assert.Equal(t, HighCard, s.Category())

	// Trips and two pair still register in short sets.
	assert.Equal(t, ThreeOfAKind, EvaluateCards(deck.MustParseCards("9s9h9d")).Category())
	assert.Equal(t, TwoPair, EvaluateCards(deck.MustParseCards("9s9hKdKc")).Category())

	// Four of a kind needs five cards, so four alone degrades to three of a kind.
	assert.Equal(t, ThreeOfAKind, EvaluateCards(deck.MustParseCards("9s9h9d9c")).Category())
}

func TestRoyalFlushBeatsEverything(t *testing.T) {
	t.Parallel()

	royal := eval(t, "AsKs", "QsJsTs")
	for _, other := range []Score{
		eval(t, "KhQh", "JhTh9h"),
		eval(t, "9c8c", "7c6c5c"),
		eval(t, "KsKh", "KdKcAs"),
		eval(t, "AhAd", "AcKdKh"),
	} {
		assert.True(t, royal.Beats(other), "royal flush should beat %v", other)
	}
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()

	quads := eval(t, "2s2h", "2d2c3s")
	fullHouse := eval(t, "AsAh", "AdKsKh")
	assert.True(t, quads.Beats(fullHouse), "lowest quads beat the best full house")

	straightFlush := eval(t, "6h5h", "4h3h2h")
	assert.True(t, straightFlush.Beats(quads))

	flush := eval(t, "2s4s", "6s8s9s")
	straight := eval(t, "AsKd", "QcJhTs")
	assert.True(t, flush.Beats(straight))
}

func TestSuitsDoNotBreakTies(t *testing.T) {
	t.Parallel()

	a := eval(t, "AsKh", "9d9c4s2h7d")
	b := eval(t, "AdKc", "9d9c4s2h7d")
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, a, b)
}

func TestScoreCompareIsLexicographic(t *testing.T) {
	t.Parallel()

	a := Score{int(OnePair), 10, 14, 3}
	b := Score{int(OnePair), 10, 13, 12}
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.False(t, b.Beats(a))
}

func TestScoreString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Royal Flush", eval(t, "AsKs", "QsJsTs").String())
	assert.Equal(t, "Full House (K, 10)", Score{int(FullHouse), 13, 10}.String())
	assert.Equal(t, []int{13, 10}, Score{int(FullHouse), 13, 10}.TieBreakers())
}

func TestBest(t *testing.T) {
	t.Parallel()

	scores := []Score{
		{int(OnePair), 9, 14, 13, 2},
		{int(Straight), 10},
		{int(Straight), 10},
		{int(HighCard), 14, 13, 12, 11, 9},
	}
	best, idx := Best(scores)
	assert.Equal(t, Score{int(Straight), 10}, best)
	assert.Equal(t, []int{1, 2}, idx)

	_, idx = Best(nil)
	assert.Empty(t, idx)
}
