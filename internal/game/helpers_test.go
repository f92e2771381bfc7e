package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-console/internal/deck"
)

// scriptedAgent answers with the queued amounts in order and calls once the
// script runs out.
type scriptedAgent struct {
	amounts []Chips
	asked   []Situation
}

func (a *scriptedAgent) Wager(s Situation) (Chips, error) {
	a.asked = append(a.asked, s)
	if len(a.asked) <= len(a.amounts) {
		return a.amounts[len(a.asked)-1], nil
	}
	return min(s.Owed, s.Player.Stack), nil
}

// newScriptedPlayer seats an automated-kind player driven by a script.
func newScriptedPlayer(name string, stack Chips, amounts ...Chips) (*Player, *scriptedAgent) {
	agent := &scriptedAgent{amounts: amounts}
	return NewPlayer(name, Automated, stack, agent), agent
}

// callers returns players who always call, named in order.
func callers(names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i], _ = newScriptedPlayer(name, DefaultStartingStack)
	}
	return players
}

// folders returns players who never put a chip in voluntarily.
func folders(names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, Automated, DefaultStartingStack, AgentFunc(func(Situation) (Chips, error) {
			return 0, nil
		}))
	}
	return players
}

// stackedDeck builds a deck that deals the given card codes in order.
func stackedDeck(t *testing.T, codes string) *deck.Deck {
	t.Helper()
	cards, err := deck.ParseCards(codes)
	require.NoError(t, err)
	return deck.NewStacked(cards)
}

type actionRecord struct {
	Player string
	Action Action
	Amount Chips
}

// recordingObserver keeps every notification for assertions.
type recordingObserver struct {
	NopObserver
	actions     []actionRecord
	streets     []Phase
	highestBets []Chips
	potBefore   []Chips // pot when each street was announced
	pot         Chips
	results     []*Result
	winner      *PlayerView
}

func (o *recordingObserver) PlayerActed(p PlayerView, action Action, amount, pot Chips) {
	o.actions = append(o.actions, actionRecord{Player: p.Name, Action: action, Amount: amount})
	o.pot = pot
}

func (o *recordingObserver) StreetDealt(phase Phase, _ []deck.Card, highestBet Chips) {
	o.streets = append(o.streets, phase)
	o.highestBets = append(o.highestBets, highestBet)
	o.potBefore = append(o.potBefore, o.pot)
}

func (o *recordingObserver) RoundSettled(r *Result) {
	o.results = append(o.results, r)
}

func (o *recordingObserver) MatchWon(p PlayerView) {
	o.winner = &p
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func stacks(players []*Player) map[string]Chips {
	out := make(map[string]Chips, len(players))
	for _, p := range players {
		out[p.Name] = p.Stack
	}
	return out
}
