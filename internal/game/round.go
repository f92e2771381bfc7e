package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-console/internal/deck"
	"github.com/lox/holdem-console/internal/evaluator"
)

// Phase is the stage a Round has reached.
type Phase int

const (
	Dealt Phase = iota
	PreflopBetting
	Flop
	FlopBetting
	Turn
	TurnBetting
	River
	RiverBetting
	Showdown
	Settled
)

func (p Phase) String() string {
	return [...]string{
		"dealt", "preflop betting",
		"flop", "flop betting",
		"turn", "turn betting",
		"river", "river betting",
		"showdown", "settled",
	}[p]
}

// MaxCommunityCards is the size of a complete board.
const MaxCommunityCards = 5

// street is one community-card reveal and the betting that follows it.
type street struct {
	reveal  Phase
	betting Phase
	cards   int
}

var streets = [...]street{
	{Flop, FlopBetting, 3},
	{Turn, TurnBetting, 1},
	{River, RiverBetting, 1},
}

// RoundConfig holds the stakes and collaborators of a Round.
type RoundConfig struct {
	Number     int
	SmallBlind Chips
	BigBlind   Chips
	Observer   Observer
	Logger     *log.Logger
}

// Round plays a single hand from the deal to the distribution of the pot.
type Round struct {
	number     int
	players    []*Player // rotation order, big blind last
	active     []*Player // players still able to bet, next to act first
	allIns     []*Player
	community  []deck.Card
	pot        *Pot
	deck       *deck.Deck
	phase      Phase
	smallBlind Chips
	bigBlind   Chips
	observer   Observer
	logger     *log.Logger
}

// NewRound creates a round over players in rotation order: the last player
// posts the big blind and the one before them the small blind.
func NewRound(players []*Player, d *deck.Deck, cfg RoundConfig) (*Round, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Round{
		number:     cfg.Number,
		players:    slices.Clone(players),
		active:     slices.Clone(players),
		pot:        NewPot(),
		deck:       d,
		phase:      Dealt,
		smallBlind: cfg.SmallBlind,
		bigBlind:   cfg.BigBlind,
		observer:   cfg.Observer,
		logger:     cfg.Logger.With("round", cfg.Number),
	}, nil
}

// Phase returns the stage the round has reached.
func (r *Round) Phase() Phase {
	return r.phase
}

// Community returns the revealed community cards.
func (r *Round) Community() []deck.Card {
	return slices.Clone(r.community)
}

// Pot returns the chips currently in the pot.
func (r *Round) Pot() Chips {
	return r.pot.Total()
}

// ShownHand is a player's score revealed at showdown.
type ShownHand struct {
	Player PlayerView
	Score  evaluator.Score
}

// Result describes how a round ended.
type Result struct {
	Number    int
	Pot       Chips
	Community []deck.Card
	Showdown  bool // false when everyone else folded
	Hands     []ShownHand
	Payouts   []Payout
}

// Play deals the hand, runs every street and settles the pot.
func (r *Round) Play() (*Result, error) {
	before := totalChips(r.players)

	r.logger.Debug("Starting round", "players", len(r.players), "chips", before)
	r.observer.RoundStarted(r.number, views(r.players))

	if err := r.dealHoleCards(); err != nil {
		return nil, err
	}

	r.phase = PreflopBetting
	if err := r.bet(PreflopBetting); err != nil {
		return nil, err
	}

	for _, st := range streets {
		if r.contenders() < 2 {
			break
		}
		if err := r.reveal(st); err != nil {
			return nil, err
		}
		if len(r.active) < 2 {
			// Nobody left to bet against; keep dealing to the river.
			r.observer.StreetDealt(st.reveal, r.Community(), 0)
			continue
		}
		r.phase = st.betting
		if err := r.bet(st.reveal); err != nil {
			return nil, err
		}
	}

	if got := totalChips(r.players) + r.pot.Total(); !sameChips(got, before) {
		return nil, fmt.Errorf("%w: %v chips before the round, %v after betting", ErrInvariant, before, got)
	}

	r.phase = Showdown
	result, err := r.settle()
	if err != nil {
		return nil, err
	}
	r.phase = Settled

	if after := totalChips(r.players); !sameChips(after, before) {
		return nil, fmt.Errorf("%w: %v chips before the round, %v after settlement", ErrInvariant, before, after)
	}

	r.observer.RoundSettled(result)
	return result, nil
}

func (r *Round) dealHoleCards() error {
	for _, p := range r.players {
		cards := r.deck.DrawN(2)
		if len(cards) != 2 {
			return fmt.Errorf("%w: deck ran out dealing to %s", ErrInvariant, p.Name)
		}
		p.Hand = cards
	}
	return nil
}

func (r *Round) reveal(st street) error {
	cards := r.deck.DrawN(st.cards)
	if len(cards) != st.cards {
		return fmt.Errorf("%w: deck ran out on the %v", ErrInvariant, st.reveal)
	}
	r.community = append(r.community, cards...)
	r.phase = st.reveal

	r.logger.Debug("Dealt community cards", "phase", st.reveal, "board", r.community)
	return nil
}

// bet runs the betting for one street and carries its rotation into the
// next. Every street opens with the two players acting last posting the
// blinds, so there is always an amount to call.
func (r *Round) bet(street Phase) error {
	br := NewBettingRound(r.active, r.allIns, r.pot,
		WithCommunity(r.Community()),
		WithObserver(r.observer),
		WithLogger(r.logger),
	)
	r.observer.StreetDealt(street, r.Community(), r.bigBlind)
	br.PostBlinds(r.smallBlind, r.bigBlind)

	err := br.Run()
	r.active, r.allIns = br.Rotation(), br.AllIns()
	for _, p := range r.players {
		p.Bet = 0
	}
	return err
}

func (r *Round) contenders() int {
	return len(r.active) + len(r.allIns)
}

// settle merges the all-in players back in and pays the pot to the lone
// survivor or to every player tied for the best score.
func (r *Round) settle() (*Result, error) {
	if len(r.community) > MaxCommunityCards {
		return nil, fmt.Errorf("%w: %d community cards at showdown", ErrInvariant, len(r.community))
	}

	contenders := slices.Concat(r.active, r.allIns)
	result := &Result{
		Number:    r.number,
		Pot:       r.pot.Total(),
		Community: r.Community(),
	}

	switch len(contenders) {
	case 0:
		return nil, fmt.Errorf("%w: nobody left to award %v chips to", ErrInvariant, r.pot.Total())
	case 1:
		result.Payouts = r.pot.Award(contenders)
		r.logger.Debug("Pot taken uncontested", "player", contenders[0].Name, "pot", result.Pot)
		return result, nil
	}

	result.Showdown = true
	scores := make([]evaluator.Score, len(contenders))
	for i, p := range contenders {
		scores[i] = evaluator.Evaluate(p.Hand, r.community)
		result.Hands = append(result.Hands, ShownHand{Player: p.View(), Score: scores[i]})
	}

	best, idx := evaluator.Best(scores)
	winners := make([]*Player, len(idx))
	for i, j := range idx {
		winners[i] = contenders[j]
	}
	result.Payouts = r.pot.Award(winners)

	r.logger.Debug("Showdown settled", "best", best, "winners", len(winners), "pot", result.Pot)
	return result, nil
}

func totalChips(players []*Player) Chips {
	var total Chips
	for _, p := range players {
		total += p.Stack
	}
	return total
}
