// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play one session (same as t2048 play)
//	t2048 play               - Play one session
//	t2048 menu               - Start menu: play, browse history, quit
//	t2048 history            - Show recorded sessions and totals
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--config <path>      - Use a custom config YAML
//	--db <path>          - Set history database path (default: ~/.t2048/history.db)
//	--log-file <path>    - Write logs to this file ("" discards them)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// app holds what every command shares once flags are parsed.
var app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles of a 4x4 grid in one direction; equal neighbours merge into
their sum. After every move a new 2 (or, rarely, a 4) appears. Reach the
win value you chose to win; fill the board and the game is over.

Available commands:
  play     - Play one session (default)
  menu     - Interactive start menu
  history  - View recorded sessions
  config   - Print the effective configuration

Examples:
  t2048
  t2048 --win 2048
  t2048 play --plain < moves.txt
  t2048 history --limit 5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config; empty value discards logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides and opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = logger
	app.logFile = closer
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if app.logFile != nil {
		app.logFile.Close()
		app.logFile = nil
	}
}
