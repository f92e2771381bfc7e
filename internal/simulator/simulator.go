// Package simulator plays automated-only matches concurrently and summarises
// who won them.
package simulator

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-console/internal/game"
	"github.com/lox/holdem-console/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Matches       int
	Players       int
	Seed          int64
	Workers       int // 0 uses one worker per CPU
	MaxRounds     int // per match, 0 for no limit
	StartingStack game.Chips
	SmallBlind    game.Chips
	BigBlind      game.Chips
	Logger        *log.Logger
}

// MatchResult is the outcome of one simulated match.
type MatchResult struct {
	Index  int
	Seed   int64
	ID     string
	Winner string
	Rounds int
	Capped bool
}

// Standing is one bot's tally across all matches.
type Standing struct {
	Name string
	Wins int
}

// Report summarises a simulation run.
type Report struct {
	Results   []MatchResult // in match order
	Wins      map[string]int
	Rounds    int
	MinRounds int
	MaxRounds int
	Capped    int
}

// MeanRounds returns the average match length in rounds.
func (r *Report) MeanRounds() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Rounds) / float64(len(r.Results))
}

// Standings returns every bot ordered by wins, most first, then by name.
func (r *Report) Standings() []Standing {
	standings := make([]Standing, 0, len(r.Wins))
	for name, wins := range r.Wins {
		standings = append(standings, Standing{Name: name, Wins: wins})
	}
	slices.SortFunc(standings, func(a, b Standing) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return standings
}

func (cfg *Config) validate() error {
	if cfg.Matches < 1 {
		return fmt.Errorf("at least one match is required")
	}
	if cfg.Players < 2 {
		return fmt.Errorf("at least 2 players are required, got %d", cfg.Players)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// Run plays cfg.Matches matches on up to cfg.Workers goroutines. Match i is
// seeded from randutil.Derive(cfg.Seed, i), so the report only depends on the
// configuration, never on scheduling.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = game.DefaultStartingStack
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger.WithPrefix("simulator")

	results := make([]MatchResult, cfg.Matches)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Matches {
		g.Go(func() error {
			result, err := playMatch(ctx, cfg, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			results[i] = result
			logger.Debug("Match finished", "match", result.ID, "winner", result.Winner, "rounds", result.Rounds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarise(results), nil
}

func playMatch(ctx context.Context, cfg Config, i int) (MatchResult, error) {
	seed := randutil.Derive(cfg.Seed, i)
	rng := randutil.New(seed)

	players := make([]*game.Player, cfg.Players)
	for n := range players {
		players[n] = game.NewAutomated(game.AutomatedName(n+1), cfg.StartingStack, rng)
	}

	m, err := game.NewMatch(players, rng, game.MatchConfig{
		SmallBlind:   cfg.SmallBlind,
		BigBlind:     cfg.BigBlind,
		ShuffleSeats: true,
		MaxRounds:    cfg.MaxRounds,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return MatchResult{}, err
	}

	winner, err := m.Run(ctx)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchResult{
		Index:  i,
		Seed:   seed,
		ID:     m.ID(),
		Winner: winner.Name,
		Rounds: m.Rounds(),
		Capped: m.Capped(),
	}, nil
}

func summarise(results []MatchResult) *Report {
	report := &Report{
		Results: results,
		Wins:    make(map[string]int),
	}
	for i, r := range results {
		report.Wins[r.Winner]++
		report.Rounds += r.Rounds
		if r.Capped {
			report.Capped++
		}
		if i == 0 || r.Rounds < report.MinRounds {
			report.MinRounds = r.Rounds
		}
		report.MaxRounds = max(report.MaxRounds, r.Rounds)
	}
	return report
}
