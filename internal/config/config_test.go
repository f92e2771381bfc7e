package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	config, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), config)
	require.NoError(t, config.Validate())
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
match {
  starting_stack = 500
  small_blind    = 10
  big_blind      = 20
  seed           = 42
  shuffle_seats  = false
  max_rounds     = 100
}

players {
  humans    = ["Alice", "Bob"]
  automated = 2
}

display {
  color     = false
  bot_delay = "0s"
  log_level = "debug"
  log_file  = "holdem.log"
}
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 500.0, config.Match.StartingStack)
	assert.Equal(t, 10.0, config.Match.SmallBlind)
	assert.Equal(t, 20.0, config.Match.BigBlind)
	assert.Equal(t, int64(42), config.Match.Seed)
	assert.False(t, config.ShuffleSeats())
	assert.Equal(t, 100, config.Match.MaxRounds)
	assert.Equal(t, []string{"Alice", "Bob"}, config.Players.Humans)
	assert.Equal(t, 2, config.Players.Automated)
	assert.False(t, config.Color())
	assert.Equal(t, "holdem.log", config.Display.LogFile)

	delay, err := config.BotDelay()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), delay)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
match {
  seed = 7
}
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), config.Match.Seed)
	assert.Equal(t, 1000.0, config.Match.StartingStack)
	assert.Equal(t, 25.0, config.Match.SmallBlind)
	assert.Equal(t, 50.0, config.Match.BigBlind)
	assert.True(t, config.ShuffleSeats())
	assert.Equal(t, []string{"Player"}, config.Players.Humans)
	assert.Equal(t, 3, config.Players.Automated)
	assert.True(t, config.Color())
	assert.Equal(t, "400ms", config.Display.BotDelay)
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"syntax error":    "match {",
		"unknown block":   "table {}",
		"wrong attribute": "match {\n  blinds = 5\n}",
		"wrong type":      "players {\n  automated = \"many\"\n}",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "automated only", mutate: func(c *Config) { c.Players.Humans = nil; c.Players.Automated = 2 }},
		{name: "zero stack", mutate: func(c *Config) { c.Match.StartingStack = 0 }, wantErr: "starting stack"},
		{name: "negative small blind", mutate: func(c *Config) { c.Match.SmallBlind = -1 }, wantErr: "small blind"},
		{name: "big below small", mutate: func(c *Config) { c.Match.BigBlind = 10 }, wantErr: "big blind"},
		{name: "negative max rounds", mutate: func(c *Config) { c.Match.MaxRounds = -1 }, wantErr: "max rounds"},
		{name: "one player", mutate: func(c *Config) { c.Players.Automated = 0 }, wantErr: "at least 2 players"},
		{name: "negative bots", mutate: func(c *Config) { c.Players.Automated = -1 }, wantErr: "automated"},
		{name: "duplicate humans", mutate: func(c *Config) { c.Players.Humans = []string{"A", "A"} }, wantErr: "duplicate"},
		{name: "empty human name", mutate: func(c *Config) { c.Players.Humans = []string{""} }, wantErr: "empty"},
		{name: "bad delay", mutate: func(c *Config) { c.Display.BotDelay = "soon" }, wantErr: "bot delay"},
		{name: "negative delay", mutate: func(c *Config) { c.Display.BotDelay = "-1s" }, wantErr: "bot delay"},
		{name: "bad log level", mutate: func(c *Config) { c.Display.LogLevel = "loud" }, wantErr: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := Default()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
