package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

const maxHistory = 100 // Max sessions to load

// HistorySource reads recorded sessions. *storage.Store implements it.
type HistorySource interface {
	RecentSessions(limit int) ([]storage.SessionRecord, error)
	Stats() (*storage.Stats, error)
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	source    HistorySource
	sessions  []storage.SessionRecord
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a new history model and loads the sessions.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// HistoryColumns are the column titles shared by the TUI table and the
// plain history listing.
var HistoryColumns = []string{"#", "Result", "Target", "Max", "Moves", "Time", "Date"}

// HistoryRow formats one record as table cells matching HistoryColumns.
func HistoryRow(i int, rec storage.SessionRecord) []string {
	return []string{
		fmt.Sprintf("%d", i+1),
		rec.Outcome,
		fmt.Sprintf("%d", rec.WinValue),
		fmt.Sprintf("%d", rec.MaxTile),
		fmt.Sprintf("%d", rec.Moves),
		(time.Duration(rec.Duration) * time.Second).String(),
		rec.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	widths := []int{4, 7, 7, 7, 6, 9, 13}
	columns := make([]table.Column, len(HistoryColumns))
	for i, title := range HistoryColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads sessions and stats from the source.
func (m *HistoryModel) load() {
	m.sessions, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	sessions, err := m.source.RecentSessions(maxHistory)
	if err != nil {
		m.loadErr = err
	} else {
		m.sessions = sessions
	}

	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, rec := range m.sessions {
		rows[i] = table.Row(HistoryRow(i, rec))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("HISTORY"), m.width))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Sessions > 0 {
		b.WriteString(centerText(FormatStats(m.stats), m.width))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	for _, line := range strings.Split(boxStyle.Render(m.renderTableContent()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return errorStyle.Render(fmt.Sprintf("Could not load history: %v", m.loadErr))
	case len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// FormatStats renders the aggregate line shown above the history.
func FormatStats(s *storage.Stats) string {
	return fmt.Sprintf("Played %d  |  Won %d  |  Lost %d  |  Quit %d  |  Best tile %d",
		s.Sessions, s.Won, s.Lost, s.Quit, s.BestTile)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(source HistorySource, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
