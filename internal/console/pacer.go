package console

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem-console/internal/game"
)

// Pacer slows automated players down so a person can follow the table.
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer waiting delay on clock before each automated wager.
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	return &Pacer{clock: clock, delay: delay}
}

// Wait blocks for the configured delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	elapsed := make(chan struct{})
	timer := p.clock.AfterFunc(p.delay, func() {
		close(elapsed)
	}, "pacer")
	defer timer.Stop()

	select {
	case <-elapsed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pace wraps agent so every wager is preceded by a pause. ctx bounds the
// pauses because game.Agent carries no context of its own.
func (p *Pacer) Pace(ctx context.Context, agent game.Agent) game.Agent {
	return game.AgentFunc(func(s game.Situation) (game.Chips, error) {
		if err := p.Wait(ctx); err != nil {
			return 0, err
		}
		return agent.Wager(s)
	})
}
