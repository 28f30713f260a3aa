package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/cli"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagWin   int
	flagPlain bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session",
	Long: `Start a 2048 session.

You are asked for the win value first unless --win or game.win_value in
the config sets it. The value must be a power of two, such as 2048.

Controls:
  Arrows, WASD, HJKL  - Slide tiles
  ?                   - More help
  Ctrl+S              - Save a text screenshot
  Q/Esc/Ctrl+C        - Quit

When stdin is not a terminal (or with --plain) the game reads one command
per line instead: left/right/up/down, w/a/s/d, h/j/k/l, q to quit.

Examples:
  t2048 play
  t2048 play --win 512
  t2048 play --plain --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command takes
// them too since play is its default action.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWin, "win", 0, "Win value; skips the prompt (0 = use config or ask)")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-oriented input even on a terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if !flagPlain && isTerminal() {
		return playTUI(store, runtimeConfig(), sessionSeed(0))
	}
	return playPlain(store)
}

func playTUI(store *storage.Store, cfg core.RuntimeConfig, seed int64) error {
	sess, err := newSession(seed)
	if err != nil {
		return err
	}

	err = tui.Run(tui.Options{
		Session:  sess,
		Journal:  newJournal(store),
		Config:   cfg,
		ShowHelp: app.cfg.Display.ShowHelp,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if msg := sess.State().Message(); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

func playPlain(store *storage.Store) error {
	sess, err := newSession(sessionSeed(0))
	if err != nil {
		return err
	}
	return cli.Run(os.Stdin, os.Stdout, sess, newJournal(store))
}

// newSession builds a session from the config and flags.
func newSession(seed int64) (*session.Session, error) {
	win := app.cfg.Game.WinValue
	if flagWin != 0 {
		win = flagWin
	}

	return session.New(session.Options{
		Seed:     seed,
		Weights:  app.cfg.Game.Weights(),
		WinValue: win,
	})
}

// sessionSeed returns the seed for the n-th session of this run, counting
// from 0. Without --seed every session seeds from the clock.
func sessionSeed(n int) int64 {
	if flagSeed == 0 {
		return 0
	}
	return flagSeed + int64(n)
}

func newJournal(store *storage.Store) *session.Journal {
	// A nil *storage.Store must not become a non-nil Recorder.
	if store == nil {
		return session.NewJournal(nil, app.logger)
	}
	return session.NewJournal(store, app.logger)
}

// openStore opens the history database. Failures are reported and the
// game continues without history.
func openStore() *storage.Store {
	if !app.cfg.Storage.Enabled {
		return nil
	}

	store, err := storage.Open(app.cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		app.logger.Warn("could not open history database", "path", app.cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Color = app.cfg.Display.Color
	return cfg
}
