package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/holdem-console/internal/deck"
)

// DefaultStartingStack is the stack every player sits down with.
const DefaultStartingStack Chips = 1000

// Kind distinguishes players decided by a person from those decided by the
// built-in heuristic. It is fixed when the player is created.
type Kind int

const (
	Automated Kind = iota
	Human
)

func (k Kind) String() string {
	if k == Human {
		return "human"
	}
	return "automated"
}

// Player represents a seated player. A Match owns its players across rounds;
// Hand, Bet and Folded only describe the current round.
type Player struct {
	Name   string
	Kind   Kind
	Seat   int
	Stack  Chips
	Hand   []deck.Card
	Bet    Chips // put in during the current betting round
	Folded bool

	agent Agent
}

// NewPlayer seats a player whose wagers are decided by agent.
func NewPlayer(name string, kind Kind, stack Chips, agent Agent) *Player {
	return &Player{
		Name:  name,
		Kind:  kind,
		Stack: stack,
		agent: agent,
	}
}

// NewHuman seats a player who is asked for every wager through prompter.
func NewHuman(name string, stack Chips, prompter WagerPrompter) *Player {
	return NewPlayer(name, Human, stack, NewHumanAgent(prompter))
}

// NewAutomated seats a player that wagers from its own hand strength.
func NewAutomated(name string, stack Chips, rng *rand.Rand) *Player {
	return NewPlayer(name, Automated, stack, NewAutomatedAgent(rng))
}

// AutomatedName is the seat name of the n-th automated player, counting from 1.
func AutomatedName(n int) string {
	return fmt.Sprintf("Computer Player %d", n)
}

// IsAllIn reports whether the player has no chips left but is still in the hand.
func (p *Player) IsAllIn() bool {
	return p.Stack == 0 && !p.Folded
}

// Deal adds a hole card to the player's hand.
func (p *Player) Deal(c deck.Card) {
	p.Hand = append(p.Hand, c)
}

// wager applies an agent's decision against the current amount to call and
// returns what actually moved from the stack. Paying less than is owed folds
// the player; whatever was paid stays in the pot.
func (p *Player) wager(amount, toCall Chips) Chips {
	amount = max(0, min(amount, p.Stack))
	if p.Bet+amount < toCall {
		p.Folded = true
	}
	p.Stack -= amount
	p.Bet += amount
	return amount
}

// postBlind forces a blind out of the stack, capped at what the player has.
func (p *Player) postBlind(blind Chips) Chips {
	paid := min(blind, p.Stack)
	p.Stack -= paid
	p.Bet = paid
	return paid
}

// resetForRound clears everything that only lives for one round.
func (p *Player) resetForRound() {
	p.Hand = nil
	p.Bet = 0
	p.Folded = false
}

// PlayerView is a read-only snapshot of a player handed to agents and observers.
type PlayerView struct {
	Name   string
	Kind   Kind
	Seat   int
	Stack  Chips
	Bet    Chips
	Hand   []deck.Card
	Folded bool
	AllIn  bool
}

// View returns a snapshot of the player.
func (p *Player) View() PlayerView {
	return PlayerView{
		Name:   p.Name,
		Kind:   p.Kind,
		Seat:   p.Seat,
		Stack:  p.Stack,
		Bet:    p.Bet,
		Hand:   slices.Clone(p.Hand),
		Folded: p.Folded,
		AllIn:  p.IsAllIn(),
	}
}

func views(players []*Player) []PlayerView {
	out := make([]PlayerView, len(players))
	for i, p := range players {
		out[i] = p.View()
	}
	return out
}
