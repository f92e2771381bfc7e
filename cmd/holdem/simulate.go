package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lox/holdem-console/internal/config"
	"github.com/lox/holdem-console/internal/console"
	"github.com/lox/holdem-console/internal/game"
	"github.com/lox/holdem-console/internal/randutil"
	"github.com/lox/holdem-console/internal/simulator"
)

// SimulateCmd plays automated matches and prints the standings
type SimulateCmd struct {
	Config    string `short:"c" default:"holdem.hcl" help:"Path to HCL configuration file (stakes and logging)"`
	Matches   int    `short:"n" default:"100" help:"Number of matches to play"`
	Players   int    `short:"p" default:"4" help:"Automated players per match"`
	Seed      int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers   int    `short:"w" default:"0" help:"Concurrent matches (0 for one per CPU)"`
	MaxRounds int    `default:"1000" help:"Rounds before the chip leader is declared the winner (0 for no limit)"`
	NoColor   bool   `help:"Disable colour output"`
	LogLevel  string `short:"l" help:"Log level (overrides config)"`
}

func (c *SimulateCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		cfg.Display.LogLevel = c.LogLevel
	}

	logger, closeLog, err := setupLogger(cfg.Display.LogLevel, cfg.Display.LogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	seed := randutil.Seed(c.Seed)
	logger.Info("Starting simulation", "matches", c.Matches, "players", c.Players, "seed", seed)

	start := time.Now()
	report, err := simulator.Run(ctx, simulator.Config{
		Matches:       c.Matches,
		Players:       c.Players,
		Seed:          seed,
		Workers:       c.Workers,
		MaxRounds:     c.MaxRounds,
		StartingStack: game.Chips(cfg.Match.StartingStack),
		SmallBlind:    game.Chips(cfg.Match.SmallBlind),
		BigBlind:      game.Chips(cfg.Match.BigBlind),
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	renderer := console.NewRenderer(os.Stdout, cfg.Color() && !c.NoColor)
	rows := make([][]string, 0, len(report.Wins))
	for _, s := range report.Standings() {
		share := float64(s.Wins) / float64(len(report.Results)) * 100
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Wins), fmt.Sprintf("%.1f%%", share)})
	}

	fmt.Println(renderer.Styles().Header.Render("Simulation results"))
	fmt.Println(renderer.Table([]string{"Player", "Wins", "Share"}, rows...))
	fmt.Printf("Matches: %d  Seed: %d  Time: %s\n", len(report.Results), seed, elapsed.Round(time.Millisecond))
	fmt.Printf("Rounds: min %d  max %d  mean %.1f\n", report.MinRounds, report.MaxRounds, report.MeanRounds())
	if report.Capped > 0 {
		fmt.Printf("%d matches reached the %d round limit and went to the chip leader\n", report.Capped, c.MaxRounds)
	}
	return nil
}
