package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// noEnv is a lookup with no variables set.
func noEnv(string) (string, bool) { return "", false }

func envMap(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// search path only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := Default()
	if cfg.Game.WinValue != want.Game.WinValue {
		t.Errorf("win_value = %d, want %d", cfg.Game.WinValue, want.Game.WinValue)
	}
	if len(cfg.Game.Spawn) != len(want.Game.Spawn) {
		t.Fatalf("spawn entries = %d, want %d", len(cfg.Game.Spawn), len(want.Game.Spawn))
	}
	for i := range cfg.Game.Spawn {
		if cfg.Game.Spawn[i] != want.Game.Spawn[i] {
			t.Errorf("spawn[%d] = %+v, want %+v", i, cfg.Game.Spawn[i], want.Game.Spawn[i])
		}
	}
	if cfg.Display != want.Display || cfg.Storage != want.Storage || cfg.Log != want.Log {
		t.Errorf("embedded config = %+v, want %+v", cfg, want)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadWith("", noEnv)
	if err != nil {
		t.Fatalf("LoadWith() failed: %v", err)
	}
	if cfg.Game.WinValue != 0 {
		t.Errorf("WinValue = %d, want 0", cfg.Game.WinValue)
	}
	weights := cfg.Game.Weights()
	if len(weights) != 2 || weights[0].Value != 2 || weights[0].Weight != 9 || weights[1].Value != 4 || weights[1].Weight != 1 {
		t.Errorf("Weights() = %+v, want 2:9 and 4:1", weights)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	local := filepath.Join(work, "configs", "t2048.yaml")
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("game:\n  win_value: 512\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith("", noEnv)
	if err != nil {
		t.Fatalf("LoadWith() failed: %v", err)
	}
	if cfg.Game.WinValue != 512 {
		t.Errorf("local config: WinValue = %d, want 512", cfg.Game.WinValue)
	}
	// Keys missing from the file keep their defaults
	if len(cfg.Game.Spawn) != 2 || cfg.Log.Level != "info" {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}

	user := filepath.Join(home, ".t2048", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("game:\n  win_value: 1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadWith("", noEnv)
	if err != nil {
		t.Fatalf("LoadWith() failed: %v", err)
	}
	if cfg.Game.WinValue != 1024 {
		t.Errorf("user config should win over local: WinValue = %d, want 1024", cfg.Game.WinValue)
	}

	custom := filepath.Join(work, "custom.yaml")
	if err := os.WriteFile(custom, []byte("game:\n  win_value: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadWith(custom, noEnv)
	if err != nil {
		t.Fatalf("LoadWith(custom) failed: %v", err)
	}
	if cfg.Game.WinValue != 64 {
		t.Errorf("custom config should win: WinValue = %d, want 64", cfg.Game.WinValue)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := LoadWith(filepath.Join(work, "missing.yaml"), noEnv); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(work, "broken.yaml")
	if err := os.WriteFile(broken, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWith(broken, noEnv); err == nil {
		t.Error("unparseable custom config should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWith("", envMap(map[string]string{
		EnvWinValue: "256",
		EnvDBPath:   "/tmp/h.db",
		EnvHistory:  "false",
		EnvLogLevel: " DEBUG ",
		EnvLogFile:  "",
		EnvColor:    "0",
	}))
	if err != nil {
		t.Fatalf("LoadWith() failed: %v", err)
	}

	if cfg.Game.WinValue != 256 {
		t.Errorf("WinValue = %d, want 256", cfg.Game.WinValue)
	}
	if cfg.Storage.DBPath != "/tmp/h.db" || cfg.Storage.Enabled {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Display.Color {
		t.Error("Color should be disabled")
	}
}

func TestEnvOverrideErrors(t *testing.T) {
	isolate(t)

	tests := []map[string]string{
		{EnvWinValue: "lots"},
		{EnvWinValue: "100"},
		{EnvHistory: "maybe"},
		{EnvColor: "blue"},
		{EnvLogLevel: "verbose"},
	}

	for _, vars := range tests {
		_, err := LoadWith("", envMap(vars))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("LoadWith(env %v) error = %v, want ErrInvalid", vars, err)
		}
	}
}

func TestDotenvLookup(t *testing.T) {
	_, work := isolate(t)

	path := filepath.Join(work, ".env")
	if err := os.WriteFile(path, []byte("T2048_WIN_VALUE=128\nT2048_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "error")

	lookup, err := DotenvLookup(path)
	if err != nil {
		t.Fatalf("DotenvLookup() failed: %v", err)
	}

	if v, ok := lookup(EnvWinValue); !ok || v != "128" {
		t.Errorf("lookup(%s) = %q, %v; want value from .env", EnvWinValue, v, ok)
	}
	if v, _ := lookup(EnvLogLevel); v != "error" {
		t.Errorf("lookup(%s) = %q; process environment should win", EnvLogLevel, v)
	}

	// Missing file is fine
	if _, err := DotenvLookup(filepath.Join(work, "nope.env")); err != nil {
		t.Errorf("DotenvLookup(missing) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"preset win value", func(c *Config) { c.Game.WinValue = 2048 }, true},
		{"win value not power of two", func(c *Config) { c.Game.WinValue = 100 }, false},
		{"win value one", func(c *Config) { c.Game.WinValue = 1 }, false},
		{"negative win value", func(c *Config) { c.Game.WinValue = -8 }, false},
		{"no spawn weights", func(c *Config) { c.Game.Spawn = nil }, false},
		{"odd spawn value", func(c *Config) { c.Game.Spawn = []SpawnWeight{{Value: 3, Weight: 1}} }, false},
		{"zero weight", func(c *Config) { c.Game.Spawn[1].Weight = 0 }, false},
		{"storage without path", func(c *Config) { c.Storage.DBPath = "" }, false},
		{"storage disabled without path", func(c *Config) { c.Storage.Enabled = false; c.Storage.DBPath = "" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
