package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-console/internal/deck"
)

// Action describes what a player's wager amounted to
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
	Blind
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin", "blind"}[a]
}

// BettingState is the state of a BettingRound
type BettingState int

const (
	AwaitingAction BettingState = iota
	Closed
)

func (s BettingState) String() string {
	if s == Closed {
		return "closed"
	}
	return "awaiting action"
}

// BettingRound runs one wagering pass. Players wait in a rotation queue; a
// player who folds leaves it for the rest of the hand and a player whose stack
// reaches zero moves to the all-in set, still eligible for the showdown.
type BettingRound struct {
	rotation  []*Player
	allIns    []*Player
	pot       *Pot
	toCall    Chips
	acted     map[*Player]bool
	state     BettingState
	community []deck.Card
	observer  Observer
	logger    *log.Logger
}

// BettingOption configures a BettingRound during creation.
type BettingOption func(*BettingRound)

// WithCommunity exposes the revealed community cards to the players' agents.
func WithCommunity(cards []deck.Card) BettingOption {
	return func(br *BettingRound) { br.community = cards }
}

// WithObserver reports every action to o.
func WithObserver(o Observer) BettingOption {
	return func(br *BettingRound) { br.observer = o }
}

// WithLogger sets the logger used for action traces.
func WithLogger(l *log.Logger) BettingOption {
	return func(br *BettingRound) { br.logger = l }
}

// NewBettingRound creates a betting round over the players in rotation order.
// allIns holds players already all-in from earlier streets; contributions are
// added to pot.
func NewBettingRound(rotation, allIns []*Player, pot *Pot, opts ...BettingOption) *BettingRound {
	br := &BettingRound{
		rotation: slices.Clone(rotation),
		allIns:   slices.Clone(allIns),
		pot:      pot,
		acted:    make(map[*Player]bool),
		observer: NopObserver{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(br)
	}
	return br
}

// PostBlinds forces the small and big blind from the two players acting last.
// A poster who cannot cover the blind puts in what they have and is all-in.
// The amount to call starts at the big blind.
func (br *BettingRound) PostBlinds(small, big Chips) {
	n := len(br.rotation)
	if n < 2 {
		return
	}
	sb, bb := br.rotation[n-2], br.rotation[n-1]
	br.post(sb, small)
	br.post(bb, big)
	br.toCall = big
}

func (br *BettingRound) post(p *Player, blind Chips) {
	paid := p.postBlind(blind)
	br.pot.Add(p, paid)
	br.logger.Debug("Posted blind", "player", p.Name, "amount", paid)
	br.observer.PlayerActed(p.View(), Blind, paid, br.pot.Total())

	if p.Stack == 0 {
		br.rotation = slices.DeleteFunc(br.rotation, func(q *Player) bool { return q == p })
		br.allIns = append(br.allIns, p)
	}
}

// State returns the current state of the round.
func (br *BettingRound) State() BettingState {
	return br.state
}

// ToCall returns the highest bet any player has to match.
func (br *BettingRound) ToCall() Chips {
	return br.toCall
}

// Rotation returns the players still able to act, next to act first.
func (br *BettingRound) Rotation() []*Player {
	return slices.Clone(br.rotation)
}

// AllIns returns every all-in player still contesting the pot.
func (br *BettingRound) AllIns() []*Player {
	return slices.Clone(br.allIns)
}

// Next returns the player the round is waiting on, or nil once closed.
func (br *BettingRound) Next() *Player {
	if br.state == Closed || len(br.rotation) == 0 {
		return nil
	}
	return br.rotation[0]
}

// Run steps the round until it closes.
func (br *BettingRound) Run() error {
	for br.state == AwaitingAction {
		if err := br.Step(); err != nil {
			return err
		}
	}
	return nil
}

// open reports whether anyone is left to bet against.
func (br *BettingRound) open() bool {
	return len(br.rotation) > 1 || (len(br.rotation) > 0 && len(br.allIns) > 0)
}

// Step gives the next player in rotation their turn. The round closes instead
// when that player has already acted and nothing new has been bet since, which
// is how the action returning to the last raiser (or, pre-flop, to the big
// blind after their option) ends a street.
func (br *BettingRound) Step() error {
	if br.state == Closed {
		return nil
	}
	if !br.open() {
		br.state = Closed
		return nil
	}

	p := br.rotation[0]
	br.rotation = br.rotation[1:]

	if p.Bet == br.toCall && br.acted[p] {
		br.rotation = slices.Insert(br.rotation, 0, p)
		br.state = Closed
		return nil
	}

	situation := Situation{
		Player:     p.View(),
		Owed:       br.toCall - p.Bet,
		HighestBet: br.toCall,
		Pot:        br.pot.Total(),
		Community:  slices.Clone(br.community),
	}
	amount, err := p.agent.Wager(situation)
	if err != nil {
		br.rotation = slices.Insert(br.rotation, 0, p)
		return fmt.Errorf("wager from %s: %w", p.Name, err)
	}

	previous := br.toCall
	paid := p.wager(amount, br.toCall)
	br.pot.Add(p, paid)
	br.acted[p] = true
	br.toCall = max(br.toCall, p.Bet)

	action := classify(p, paid, previous)
	br.logger.Debug("Player acted",
		"player", p.Name,
		"action", action,
		"amount", paid,
		"toCall", br.toCall,
		"pot", br.pot.Total())
	br.observer.PlayerActed(p.View(), action, paid, br.pot.Total())

	switch {
	case p.Folded:
	case p.Stack == 0:
		br.allIns = append(br.allIns, p)
	default:
		br.rotation = append(br.rotation, p)
	}
	return nil
}

func classify(p *Player, paid, previousToCall Chips) Action {
	switch {
	case p.Folded:
		return Fold
	case p.Stack == 0:
		return AllIn
	case paid == 0:
		return Check
	case p.Bet == previousToCall:
		return Call
	default:
		return Raise
	}
}
