// Package game implements the hold'em table logic: players and their agents,
// the betting-round state machine, the single hand (Round) and the session of
// hands played until one player holds every chip (Match).
//
// # Basic Usage
//
// Build a roster and run a match to completion:
//
//	rng := randutil.New(42)
//	players := []*game.Player{
//	    game.NewHuman("Alice", 1000, prompter),
//	    game.NewAutomated("Computer 1", 1000, rng),
//	}
//	m, err := game.NewMatch(players, rng, game.MatchConfig{SmallBlind: 25, BigBlind: 50})
//	if err != nil {
//	    return err
//	}
//	winner, err := m.Run(ctx)
//
// # Deterministic Testing
//
// Every source of randomness is an injected *rand.Rand: the deck shuffle, the
// automated wager sizing and the seat shuffle. Tests can also stack the deck:
//
//	d := deck.NewStacked(deck.MustParseCards("AsKs QhQd ..."))
//	r, err := game.NewRound(players, d, game.RoundConfig{SmallBlind: 25, BigBlind: 50})
//
// # Architecture
//
// Round delegates responsibilities to specialized components:
//   - BettingRound: rotation, blinds, folds and all-ins for one street
//   - Pot: the single pool every contribution merges into (no side pots)
//   - Agent: the Human or Automated decision protocol bound to each Player
//   - evaluator.Evaluate: the showdown score
package game
