package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagID    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `Show recently finished sessions and overall totals.

Every session that got past the win-value prompt is recorded when it ends,
whether it was won, lost or quit.

Examples:
  t2048 history
  t2048 history --limit 5
  t2048 history --id 6f1c...
  t2048 history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
	historyCmd.Flags().StringVar(&flagID, "id", "", "Show one session with its final board")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if !app.cfg.Storage.Enabled {
		return errors.New("history is disabled (storage.enabled is false)")
	}

	store, err := storage.Open(app.cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagClear:
		if err := store.ClearHistory(); err != nil {
			return err
		}
		app.logger.Info("history cleared", "path", app.cfg.Storage.DBPath)
		fmt.Fprintln(out, "History cleared.")
		return nil

	case flagID != "":
		return printSession(out, store, flagID)
	}

	return printHistory(out, store, flagLimit)
}

func printHistory(out io.Writer, store *storage.Store, limit int) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintln(out, tui.FormatStats(stats))

	rows := make([][]string, len(sessions))
	for i, rec := range sessions {
		rows[i] = tui.HistoryRow(i, rec)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tui.HistoryColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(out, t)
	return nil
}

func printSession(out io.Writer, store *storage.Store, id string) error {
	rec, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no session with id %q", id)
	}

	fmt.Fprintf(out, "Session  %s\n", rec.SessionID)
	fmt.Fprintf(out, "Result   %s\n", rec.Outcome)
	fmt.Fprintf(out, "Target   %d\n", rec.WinValue)
	fmt.Fprintf(out, "Moves    %d\n", rec.Moves)
	fmt.Fprintf(out, "Played   %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"))

	b, ok := board.ParseBoard(rec.Board)
	if !ok {
		return fmt.Errorf("session %s has a malformed board %q", id, rec.Board)
	}

	rows := make([][]string, board.Size)
	for r := range board.Size {
		line := b.Row(r)
		rows[r] = make([]string, board.Size)
		for c, v := range line {
			if v != 0 {
				rows[r][c] = strconv.Itoa(v)
			}
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
		})
	fmt.Fprintln(out, t)
	return nil
}
