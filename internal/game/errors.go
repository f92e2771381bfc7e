package game

import "errors"

var (
	// ErrInvalidWager marks human input that is malformed or outside the allowed
	// bounds. It is recovered by asking again and never escapes a HumanAgent.
	ErrInvalidWager = errors.New("invalid wager")

	// ErrInvariant reports a broken table invariant (more than five community
	// cards, chips created or destroyed). It indicates a bug, not bad input.
	ErrInvariant = errors.New("table invariant violated")

	// ErrNotEnoughPlayers is returned when fewer than two players can be seated.
	ErrNotEnoughPlayers = errors.New("at least 2 players with chips are required")

	// ErrDuplicatePlayer is returned when two seated players share a name.
	ErrDuplicatePlayer = errors.New("duplicate player name")
)
