package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "numeric ten",
			input: "10hJd",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Jack},
			},
		},
		{
			name:  "space separated",
			input: "5h 4d 3c 2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardPowerAndString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card  Card
		power int
		str   string
	}{
		{NewCard(Spades, Two), 2, "2♠"},
		{NewCard(Hearts, Ten), 10, "10♥"},
		{NewCard(Clubs, Jack), 11, "J♣"},
		{NewCard(Diamonds, Queen), 12, "Q♦"},
		{NewCard(Spades, King), 13, "K♠"},
		{NewCard(Hearts, Ace), 14, "A♥"},
	}

	for _, tt := range tests {
		if got := tt.card.Power(); got != tt.power {
			t.Errorf("%v.Power() = %d, want %d", tt.card, got, tt.power)
		}
		if got := tt.card.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}

	if !NewCard(Diamonds, Two).IsRed() || NewCard(Clubs, Two).IsRed() {
		t.Error("IsRed() mismatch")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
