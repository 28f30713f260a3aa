package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// newLogger opens the log file from cfg. The TUI owns the terminal, so
// logs never go to stdout or stderr; an empty path discards them.
// The returned closer is nil when nothing needs closing.
func newLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closer, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
