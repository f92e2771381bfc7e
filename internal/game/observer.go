package game

import "github.com/lox/holdem-console/internal/deck"

// Observer is notified as a match progresses. Implementations render; the
// table never reads anything back from them.
type Observer interface {
	RoundStarted(number int, players []PlayerView)
	StreetDealt(phase Phase, community []deck.Card, highestBet Chips)
	PlayerActed(player PlayerView, action Action, amount Chips, pot Chips)
	RoundSettled(result *Result)
	MatchWon(winner PlayerView)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) RoundStarted(int, []PlayerView) {}
func (NopObserver) StreetDealt(Phase, []deck.Card, Chips) {}
func (NopObserver) PlayerActed(PlayerView, Action, Chips, Chips) {}
func (NopObserver) RoundSettled(*Result) {}
func (NopObserver) MatchWon(PlayerView) {}
