// Package config loads the HCL file describing a console match.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete match configuration
type Config struct {
	Match   MatchSettings   `hcl:"match,block"`
	Players PlayerSettings  `hcl:"players,block"`
	Display DisplaySettings `hcl:"display,block"`
}

// MatchSettings contains the stakes and rules of the match
type MatchSettings struct {
	StartingStack float64 `hcl:"starting_stack,optional"`
	SmallBlind    float64 `hcl:"small_blind,optional"`
	BigBlind      float64 `hcl:"big_blind,optional"`
	Seed          int64   `hcl:"seed,optional"`
	ShuffleSeats  *bool   `hcl:"shuffle_seats,optional"`
	MaxRounds     int     `hcl:"max_rounds,optional"`
}

// PlayerSettings lists who sits at the table
type PlayerSettings struct {
	Humans    []string `hcl:"humans,optional"`
	Automated int      `hcl:"automated,optional"`
}

// DisplaySettings controls terminal output and logging
type DisplaySettings struct {
	Color    *bool  `hcl:"color,optional"`
	BotDelay string `hcl:"bot_delay,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// fileConfig mirrors Config with optional blocks so any of them may be left out.
type fileConfig struct {
	Match   *MatchSettings   `hcl:"match,block"`
	Players *PlayerSettings  `hcl:"players,block"`
	Display *DisplaySettings `hcl:"display,block"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Match: MatchSettings{
			StartingStack: 1000,
			SmallBlind:    25,
			BigBlind:      50,
			ShuffleSeats:  ptr(true),
		},
		Players: PlayerSettings{
			Humans:    []string{"Player"},
			Automated: 3,
		},
		Display: DisplaySettings{
			Color:    ptr(true),
			BotDelay: "400ms",
			LogLevel: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; anything left out of the file is filled from them too.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if fc.Match != nil {
		config.Match = *fc.Match
	}
	if fc.Players != nil {
		config.Players = *fc.Players
	}
	if fc.Display != nil {
		config.Display = *fc.Display
	}
	config.applyDefaults()
	return config, nil
}

// applyDefaults fills zero values inside blocks that were present in the file.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Match.StartingStack == 0 {
		c.Match.StartingStack = defaults.Match.StartingStack
	}
	if c.Match.SmallBlind == 0 && c.Match.BigBlind == 0 {
		c.Match.SmallBlind = defaults.Match.SmallBlind
		c.Match.BigBlind = defaults.Match.BigBlind
	}
	if c.Match.ShuffleSeats == nil {
		c.Match.ShuffleSeats = defaults.Match.ShuffleSeats
	}
	if c.Display.Color == nil {
		c.Display.Color = defaults.Display.Color
	}
	if c.Display.BotDelay == "" {
		c.Display.BotDelay = defaults.Display.BotDelay
	}
	if c.Display.LogLevel == "" {
		c.Display.LogLevel = defaults.Display.LogLevel
	}
}

// Validate validates the match configuration
func (c *Config) Validate() error {
	if c.Match.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive")
	}
	if c.Match.SmallBlind < 0 {
		return fmt.Errorf("small blind must not be negative")
	}
	if c.Match.BigBlind < c.Match.SmallBlind {
		return fmt.Errorf("big blind must be at least the small blind")
	}
	if c.Match.MaxRounds < 0 {
		return fmt.Errorf("max rounds must not be negative")
	}

	if c.Players.Automated < 0 {
		return fmt.Errorf("automated player count must not be negative")
	}
	if n := len(c.Players.Humans) + c.Players.Automated; n < 2 {
		return fmt.Errorf("at least 2 players are required, got %d", n)
	}
	seen := make(map[string]bool)
	for _, name := range c.Players.Humans {
		if name == "" {
			return fmt.Errorf("human player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate human player %q", name)
		}
		seen[name] = true
	}

	if _, err := c.BotDelay(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Display.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Display.LogLevel, err)
	}
	return nil
}

// BotDelay returns the pause between automated actions
func (c *Config) BotDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Display.BotDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid bot delay %q: %w", c.Display.BotDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("bot delay must not be negative")
	}
	return d, nil
}

// ShuffleSeats reports whether seats are shuffled at the start of a match
func (c *Config) ShuffleSeats() bool {
	return c.Match.ShuffleSeats == nil || *c.Match.ShuffleSeats
}

// Color reports whether output may use colour
func (c *Config) Color() bool {
	return c.Display.Color == nil || *c.Display.Color
}

func ptr[T any](v T) *T {
	return &v
}
