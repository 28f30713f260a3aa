package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/t2048.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			Spawn: []SpawnWeight{
				{Value: 2, Weight: 9},
				{Value: 4, Weight: 1},
			},
			WinValue: 0,
		},
		Display: DisplayConfig{
			Color:    true,
			ShowHelp: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.t2048/history.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
