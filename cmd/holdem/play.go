package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-console/internal/config"
	"github.com/lox/holdem-console/internal/console"
	"github.com/lox/holdem-console/internal/game"
	"github.com/lox/holdem-console/internal/randutil"
)

const replayQuestion = "If you would like to play again enter 'y'. Press any other key to quit."

// PlayCmd runs an interactive match
type PlayCmd struct {
	Config   string   `short:"c" default:"holdem.hcl" help:"Path to HCL configuration file"`
	Human    []string `short:"H" help:"Human player names (overrides config)"`
	Bots     *int     `short:"b" help:"Number of automated players (overrides config)"`
	Seed     *int64   `help:"Deterministic RNG seed (overrides config)"`
	BotDelay string   `help:"Pause before each automated action, e.g. 250ms (overrides config)"`
	NoColor  bool     `help:"Disable colour output"`
	LogLevel string   `short:"l" help:"Log level (overrides config)"`
	LogFile  string   `help:"Write logs to this file instead of stderr (overrides config)"`
}

// load reads the config file and applies the command line overrides.
func (c *PlayCmd) load() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if len(c.Human) > 0 {
		cfg.Players.Humans = c.Human
	}
	if c.Bots != nil {
		cfg.Players.Automated = *c.Bots
	}
	if c.Seed != nil {
		cfg.Match.Seed = *c.Seed
	}
	if c.BotDelay != "" {
		cfg.Display.BotDelay = c.BotDelay
	}
	if c.NoColor {
		no := false
		cfg.Display.Color = &no
	}
	if c.LogLevel != "" {
		cfg.Display.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Display.LogFile = c.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *PlayCmd) Run(ctx context.Context) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Display.LogLevel, cfg.Display.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	delay, err := cfg.BotDelay()
	if err != nil {
		return err
	}

	renderer := console.NewRenderer(os.Stdout, cfg.Color())
	session := &session{
		cfg:      cfg,
		renderer: renderer,
		prompter: console.NewPrompter(renderer, os.Stdin, os.Stdout, logger),
		pacer:    console.NewPacer(quartz.NewReal(), delay),
		logger:   logger,
	}

	title := renderer.Styles().Header.Padding(0, 1).Render(" ♠ ♥ Texas Hold'em ♦ ♣ ")
	fmt.Println(title)

	seed := randutil.Seed(cfg.Match.Seed)
	logger.Info("Session started", "seed", seed)
	for n := 0; ; n++ {
		err := session.playMatch(ctx, randutil.Derive(seed, n))
		switch {
		case errors.Is(err, console.ErrQuit), errors.Is(err, context.Canceled):
			logger.Info("Player quit")
			return nil
		case err != nil:
			logger.Error("Match aborted", "error", err)
			return err
		}

		again, err := session.prompter.Confirm(replayQuestion)
		if errors.Is(err, console.ErrQuit) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// session holds what stays the same across replays.
type session struct {
	cfg      *config.Config
	renderer *console.Renderer
	prompter *console.Prompter
	pacer    *console.Pacer
	logger   *log.Logger
}

func (s *session) playMatch(ctx context.Context, seed int64) error {
	rng := randutil.New(seed)
	stack := game.Chips(s.cfg.Match.StartingStack)

	var players []*game.Player
	for _, name := range s.cfg.Players.Humans {
		players = append(players, game.NewHuman(name, stack, s.prompter))
	}
	for i := range s.cfg.Players.Automated {
		agent := s.pacer.Pace(ctx, game.NewAutomatedAgent(rng))
		players = append(players, game.NewPlayer(game.AutomatedName(i+1), game.Automated, stack, agent))
	}

	match, err := game.NewMatch(players, rng, game.MatchConfig{
		SmallBlind:   game.Chips(s.cfg.Match.SmallBlind),
		BigBlind:     game.Chips(s.cfg.Match.BigBlind),
		ShuffleSeats: s.cfg.ShuffleSeats(),
		MaxRounds:    s.cfg.Match.MaxRounds,
		Observer:     s.renderer,
		Logger:       s.logger,
	})
	if err != nil {
		return err
	}

	s.logger.Info("Starting match", "match", match.ID(), "seed", seed, "players", len(players))
	names := make([]string, 0, len(players))
	for _, p := range match.Roster() {
		names = append(names, p.Name)
	}
	fmt.Println("Players: " + s.renderer.Styles().SubHeader.Render(strings.Join(names, ", ")))

	_, err = match.Run(ctx)
	return err
}
