package game

import (
	"cmp"
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/holdem-console/internal/deck"
)

// Default blinds.
const (
	DefaultSmallBlind Chips = 25
	DefaultBigBlind   Chips = 50
)

// MatchConfig holds the settings of a Match.
type MatchConfig struct {
	SmallBlind   Chips
	BigBlind     Chips
	ShuffleSeats bool
	MaxRounds    int // 0 plays until one player holds every chip
	Observer     Observer
	Logger       *log.Logger
}

// Match plays rounds until a single player is left with chips. The roster is
// kept in seat order and the big blind moves one surviving seat per round.
type Match struct {
	id       string
	roster   []*Player
	bigBlind int // index into roster
	rounds   int
	capped   bool
	rng      *rand.Rand
	cfg      MatchConfig
	logger   *log.Logger
}

// NewMatch seats players for a new match. Players without chips are not
// seated; at least two must remain and every name must be unique.
func NewMatch(players []*Player, rng *rand.Rand, cfg MatchConfig) (*Match, error) {
	if cfg.SmallBlind == 0 && cfg.BigBlind == 0 {
		cfg.SmallBlind, cfg.BigBlind = DefaultSmallBlind, DefaultBigBlind
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	roster := make([]*Player, 0, len(players))
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = true
		if p.Stack > 0 {
			roster = append(roster, p)
		}
	}
	if len(roster) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if cfg.ShuffleSeats {
		rng.Shuffle(len(roster), func(i, j int) {
			roster[i], roster[j] = roster[j], roster[i]
		})
	}
	for i, p := range roster {
		p.Seat = i + 1
		p.resetForRound()
	}

	id := uuid.NewString()
	return &Match{
		id:     id,
		roster: roster,
		rng:    rng,
		cfg:    cfg,
		logger: cfg.Logger.WithPrefix("match").With("match", id),
	}, nil
}

// ID returns the unique identifier of the match.
func (m *Match) ID() string {
	return m.id
}

// Roster returns the players still holding chips, in seat order.
func (m *Match) Roster() []*Player {
	return slices.Clone(m.roster)
}

// BigBlind returns the player due to post the big blind next round.
func (m *Match) BigBlind() *Player {
	return m.roster[m.bigBlind]
}

// Rounds returns how many rounds have been played.
func (m *Match) Rounds() int {
	return m.rounds
}

// Capped reports whether the match was ended by MaxRounds rather than by a
// single player taking every chip.
func (m *Match) Capped() bool {
	return m.capped
}

// Done reports whether the match has a winner.
func (m *Match) Done() bool {
	return len(m.roster) < 2 || m.capped
}

// Run plays rounds until one player remains and returns them. ctx is only
// checked between rounds so a hand is never abandoned halfway.
func (m *Match) Run(ctx context.Context) (*Player, error) {
	m.logger.Info("Match started", "players", len(m.roster), "bigBlind", m.cfg.BigBlind)

	for !m.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := m.PlayRound(); err != nil {
			m.logger.Error("Round failed", "round", m.rounds, "error", err)
			return nil, err
		}
		if m.cfg.MaxRounds > 0 && m.rounds >= m.cfg.MaxRounds && len(m.roster) > 1 {
			m.capped = true
		}
	}

	winner := m.leader()
	m.logger.Info("Match won", "winner", winner.Name, "rounds", m.rounds, "capped", m.capped)
	m.cfg.Observer.MatchWon(winner.View())
	return winner, nil
}

// PlayRound plays one round with a freshly shuffled deck, then moves the big
// blind on and removes busted players.
func (m *Match) PlayRound() (*Result, error) {
	if len(m.roster) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	m.rounds++
	round, err := NewRound(m.rotation(), deck.New(m.rng), RoundConfig{
		Number:     m.rounds,
		SmallBlind: m.cfg.SmallBlind,
		BigBlind:   m.cfg.BigBlind,
		Observer:   m.cfg.Observer,
		Logger:     m.logger.WithPrefix("round"),
	})
	if err != nil {
		return nil, err
	}

	result, err := round.Play()
	if err != nil {
		return nil, err
	}
	m.advance()
	return result, nil
}

// rotation orders the roster so the player after the big blind acts first and
// the big blind acts last.
func (m *Match) rotation() []*Player {
	start := (m.bigBlind + 1) % len(m.roster)
	return slices.Concat(m.roster[start:], m.roster[:start])
}

// advance moves the big blind to the next seat with chips, then drops busted
// players and resets the survivors.
func (m *Match) advance() {
	next := m.roster[m.bigBlind]
	for i := 1; i <= len(m.roster); i++ {
		p := m.roster[(m.bigBlind+i)%len(m.roster)]
		if p.Stack > 0 {
			next = p
			break
		}
	}

	m.roster = slices.DeleteFunc(m.roster, func(p *Player) bool {
		if p.Stack <= 0 {
			m.logger.Info("Player eliminated", "player", p.Name, "round", m.rounds)
			return true
		}
		return false
	})
	for i, p := range m.roster {
		p.resetForRound()
		if p == next {
			m.bigBlind = i
		}
	}
}

// leader returns the player holding the most chips, earliest seat first.
func (m *Match) leader() *Player {
	return slices.MaxFunc(m.roster, func(a, b *Player) int {
		return cmp.Compare(a.Stack, b.Stack)
	})
}
