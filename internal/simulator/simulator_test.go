package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-console/internal/game"
)

func outcomes(r *Report) []MatchResult {
	out := make([]MatchResult, len(r.Results))
	for i, result := range r.Results {
		result.ID = ""
		out[i] = result
	}
	return out
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	cfg := Config{Matches: 12, Players: 4, Seed: 42, MaxRounds: 300}

	cfg.Workers = 1
	sequential, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 6
	parallel, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, outcomes(sequential), outcomes(parallel))
	assert.Equal(t, sequential.Wins, parallel.Wins)
}

func TestRunReport(t *testing.T) {
	t.Parallel()

	report, err := Run(context.Background(), Config{Matches: 8, Players: 3, Seed: 7, Workers: 4, MaxRounds: 200})
	require.NoError(t, err)

	require.Len(t, report.Results, 8)
	total, wins, capped := 0, 0, 0
	for i, result := range report.Results {
		assert.Equal(t, i, result.Index)
		assert.NotEmpty(t, result.ID)
		assert.Contains(t, []string{game.AutomatedName(1), game.AutomatedName(2), game.AutomatedName(3)}, result.Winner)
		assert.LessOrEqual(t, result.Rounds, 200)
		assert.GreaterOrEqual(t, result.Rounds, report.MinRounds)
		assert.LessOrEqual(t, result.Rounds, report.MaxRounds)
		total += result.Rounds
		if result.Capped {
			capped++
		}
	}
	for _, n := range report.Wins {
		wins += n
	}

	assert.Equal(t, 8, wins)
	assert.Equal(t, total, report.Rounds)
	assert.Equal(t, capped, report.Capped)
	assert.InDelta(t, float64(total)/8, report.MeanRounds(), 1e-9)
}

func TestRunValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no matches", Config{Matches: 0, Players: 4}},
		{"one player", Config{Matches: 1, Players: 1}},
		{"negative workers", Config{Matches: 1, Players: 2, Workers: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Run(context.Background(), tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Matches: 4, Players: 2, Seed: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStandings(t *testing.T) {
	t.Parallel()

	report := summarise([]MatchResult{
		{Winner: "B", Rounds: 10},
		{Winner: "A", Rounds: 30, Capped: true},
		{Winner: "C", Rounds: 20},
		{Winner: "B", Rounds: 40},
	})

	assert.Equal(t, []Standing{{"B", 2}, {"A", 1}, {"C", 1}}, report.Standings())
	assert.Equal(t, 10, report.MinRounds)
	assert.Equal(t, 40, report.MaxRounds)
	assert.Equal(t, 1, report.Capped)
	assert.InDelta(t, 25, report.MeanRounds(), 1e-9)
}

func TestEmptyReport(t *testing.T) {
	t.Parallel()

	var report Report
	assert.Zero(t, report.MeanRounds())
	assert.Empty(t, report.Standings())
}
