package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// footerHeight is the number of lines below the board: the status or
// prompt line, a gap and the help bar.
const footerHeight = 3

const promptHint = "Enter a power of two, e.g. 2048"

// Options configures a play model.
type Options struct {
	Session       *session.Session
	Journal       *session.Journal // nil creates one that records nothing
	Config        core.RuntimeConfig
	ShowHelp      bool
	ScreenshotDir string // Empty uses ~/.t2048/screenshots
}

// Model is the Bubble Tea model for one 2048 session.
type Model struct {
	sess      *session.Session
	journal   *session.Journal
	screen    *core.Screen
	config    core.RuntimeConfig
	input     textinput.Model
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	showHelp  bool
	shotDir   string

	message   string // Status line for the last input
	promptErr string // Validation error for the win value
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts Options) Model {
	journal := opts.Journal
	if journal == nil {
		journal = session.NewJournal(nil, nil)
	}

	ti := textinput.New()
	ti.Prompt = "Win value: "
	ti.Placeholder = "2048"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Focus()

	mapper := NewKeyMapper()
	h := help.New()
	h.Width = opts.Config.ScreenW

	m := Model{
		sess:      opts.Session,
		journal:   journal,
		screen:    core.NewScreen(opts.Config.ScreenW, max(opts.Config.ScreenH-footerHeight, 0)),
		config:    opts.Config,
		input:     ti,
		keys:      mapper.Keys(),
		keyMapper: mapper,
		help:      h,
		showHelp:  opts.ShowHelp,
		shotDir:   opts.ScreenshotDir,
	}

	if m.sess.State() == session.StatePlaying {
		m.journal.Started(m.sess)
	}
	return m
}

// Init starts the cursor blink while the prompt is shown.
func (m Model) Init() tea.Cmd {
	if m.sess.State() == session.StateAwaitingWinValue {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	}

	if m.sess.State() == session.StateAwaitingWinValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.message = fmt.Sprintf("Screenshot failed: %v", err)
		} else {
			m.message = "Saved " + path
		}
		return m, nil
	}

	switch m.sess.State() {
	case session.StateAwaitingWinValue:
		return m.handlePromptKey(msg)
	case session.StatePlaying:
		return m.handlePlayKey(msg)
	}

	// Won or lost: the final board stays up until any key.
	m.quitting = true
	return m, tea.Quit
}

// handlePromptKey feeds the win-value prompt. Letters are text here, so
// only esc and ctrl+c quit.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.quit(core.ActionQuit)

	case "enter":
		value := m.input.Value()
		if err := m.sess.SubmitWinValue(value); err != nil {
			m.journal.Rejected(value, err)
			m.promptErr = fmt.Sprintf("%q: %v. %s", strings.TrimSpace(value), err, promptHint)
			m.input.Reset()
			return m, nil
		}
		m.promptErr = ""
		m.input.Blur()
		m.journal.Started(m.sess)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePlayKey maps a key to an action and hands it to the session.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit(action)
	}

	res := m.sess.Handle(action)
	m.journal.Input(m.sess, action, res)
	m.message = res.Message()
	return m, nil
}

func (m Model) quit(action core.Action) (tea.Model, tea.Cmd) {
	res := m.sess.Handle(action)
	m.journal.Input(m.sess, action, res)
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events. The session itself does
// not depend on the screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.sess.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".t2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("2048_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.config.Color))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// footer renders the prompt or status line and the help bar.
func (m Model) footer() string {
	var b strings.Builder

	switch state := m.sess.State(); {
	case state == session.StateAwaitingWinValue:
		b.WriteString(centerText(m.input.View(), m.config.ScreenW))
		b.WriteString("\n")
		if m.promptErr != "" {
			b.WriteString(centerText(errorStyle.Render(m.promptErr), m.config.ScreenW))
		} else {
			b.WriteString(centerText(helpStyle.Render(promptHint+" · esc to quit"), m.config.ScreenW))
		}
		return b.String()

	case state.Terminal():
		b.WriteString(centerText(messageStyle.Render(state.Message()), m.config.ScreenW))
		b.WriteString("\n\n")
		b.WriteString(centerText(helpStyle.Render("press any key to exit"), m.config.ScreenW))
		return b.String()
	}

	b.WriteString(centerText(messageStyle.Render(m.message), m.config.ScreenW))
	b.WriteString("\n\n")
	if m.showHelp {
		b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.config.ScreenW))
	}
	return b.String()
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.sess
}

// Message returns the current status line.
func (m Model) Message() string {
	return m.message
}

// Run starts the Bubble Tea program for one session and blocks until the
// session ends or the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return err
	}

	// Record sessions the program left unfinished, e.g. on a kill signal.
	opts.Session.Quit()
	if opts.Journal != nil {
		//nolint:errcheck // Best-effort save, already logged by the journal
		opts.Journal.Finished(opts.Session)
	}
	return nil
}
