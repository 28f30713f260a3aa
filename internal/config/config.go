// Package config provides YAML-based configuration loading for t2048,
// with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a t2048 run.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines session rules.
type GameConfig struct {
	WinValue int           `yaml:"win_value"` // 0 = prompt at startup
	Spawn    []SpawnWeight `yaml:"spawn"`
}

// SpawnWeight is one entry of the spawn distribution.
type SpawnWeight struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// Weights converts the spawn distribution for board.NewSpawner.
func (g GameConfig) Weights() []board.Weight {
	weights := make([]board.Weight, len(g.Spawn))
	for i, w := range g.Spawn {
		weights[i] = board.Weight{Value: w.Value, Weight: w.Weight}
	}
	return weights
}

// DisplayConfig defines front end appearance.
type DisplayConfig struct {
	Color    bool `yaml:"color"`
	ShowHelp bool `yaml:"show_help"`
}

// StorageConfig defines where finished sessions are recorded.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig defines log destination and verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards output
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Game.WinValue != 0 && (c.Game.WinValue < 2 || !board.IsPowerOfTwo(c.Game.WinValue)) {
		return fmt.Errorf("%w: game.win_value %d is not a power of two >= 2", ErrInvalid, c.Game.WinValue)
	}
	if len(c.Game.Spawn) == 0 {
		return fmt.Errorf("%w: game.spawn needs at least one entry", ErrInvalid)
	}
	for _, w := range c.Game.Spawn {
		if w.Value < 2 || !board.IsPowerOfTwo(w.Value) {
			return fmt.Errorf("%w: game.spawn value %d is not a power of two >= 2", ErrInvalid, w.Value)
		}
		if w.Weight <= 0 {
			return fmt.Errorf("%w: game.spawn weight for %d must be positive", ErrInvalid, w.Value)
		}
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalid, c.Log.Level)
	}
	return nil
}
