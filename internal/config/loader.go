package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvWinValue = "T2048_WIN_VALUE"
	EnvDBPath   = "T2048_DB_PATH"
	EnvHistory  = "T2048_HISTORY"
	EnvLogLevel = "T2048_LOG_LEVEL"
	EnvLogFile  = "T2048_LOG_FILE"
	EnvColor    = "T2048_COLOR"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Variables from ./.env are used when not already set in the environment.
func Load(customPath string) (Config, error) {
	lookup, err := DotenvLookup(".env")
	if err != nil {
		return Config{}, err
	}
	return LoadWith(customPath, lookup)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(customPath string, lookup LookupFunc) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile decodes the first configuration file found over the defaults,
// so a partial file only overrides the keys it sets.
func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "t2048.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserConfigPath returns ~/.t2048/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}

// DotenvLookup returns a lookup that prefers the process environment and
// falls back to the variables in the given dotenv file. A missing file is
// not an error.
func DotenvLookup(path string) (LookupFunc, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		vars = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}

	if v, ok := lookup(EnvWinValue); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvWinValue, v)
		}
		cfg.Game.WinValue = n
	}
	if v, ok := lookup(EnvDBPath); ok {
		cfg.Storage.DBPath = v
	}
	if v, ok := lookup(EnvHistory); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvHistory, v)
		}
		cfg.Storage.Enabled = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvColor, v)
		}
		cfg.Display.Color = b
	}
	return nil
}
