package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, winValue int) Model {
	t.Helper()
	sess, err := session.New(session.Options{Seed: 7, WinValue: winValue})
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Color = false
	return NewModel(Options{
		Session:       sess,
		Config:        cfg,
		ShowHelp:      true,
		ScreenshotDir: t.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelPrompt(t *testing.T) {
	m := newTestModel(t, 0)

	if !strings.Contains(m.View(), "Win value:") {
		t.Fatalf("prompt not shown:\n%s", m.View())
	}

	// q is text at the prompt, not quit
	m, cmd := update(t, m, runes("q"))
	if isQuit(cmd) {
		t.Fatal("q quit while typing the win value")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().State() != session.StateAwaitingWinValue {
		t.Fatalf("state = %s after bad input", m.Session().State())
	}
	if !strings.Contains(m.View(), "not a whole number") {
		t.Errorf("validation error not shown:\n%s", m.View())
	}

	m, _ = update(t, m, runes("6"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "must be a power of two >= 2") {
		t.Errorf("power of two error not shown:\n%s", m.View())
	}

	m, _ = update(t, m, runes("64"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().State() != session.StatePlaying {
		t.Fatalf("state = %s, want playing", m.Session().State())
	}
	if m.Session().WinValue() != 64 {
		t.Errorf("WinValue() = %d, want 64", m.Session().WinValue())
	}
	if !strings.Contains(m.View(), "Target: 64") {
		t.Errorf("target not rendered:\n%s", m.View())
	}
}

func TestModelPromptEscQuits(t *testing.T) {
	m := newTestModel(t, 0)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("esc at the prompt should quit")
	}
	if m.Session().State() != session.StateQuit {
		t.Errorf("state = %s, want quit", m.Session().State())
	}
}

func TestModelInvalidKey(t *testing.T) {
	m := newTestModel(t, 2048)
	before := m.Session().Board()

	m, cmd := update(t, m, runes("x"))
	if cmd != nil {
		t.Error("invalid key returned a command")
	}
	if m.Message() != "Invalid move, try again!" {
		t.Errorf("message = %q", m.Message())
	}
	if m.Session().Board() != before {
		t.Error("invalid key changed the board")
	}
}

func TestModelMoves(t *testing.T) {
	m := newTestModel(t, 2048)

	// At least one of the four directions changes an opening board.
	moved := false
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown} {
		before := m.Session().Moves()
		m, _ = update(t, m, tea.KeyMsg{Type: k})
		if m.Session().Moves() > before {
			moved = true
		}
	}
	if !moved {
		t.Error("no arrow key moved the board")
	}
	if m.Session().Moves() == 0 {
		t.Error("Moves() = 0 after arrow keys")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 2048)

	m, cmd := update(t, m, runes("q"))
	if !isQuit(cmd) {
		t.Error("q should quit during play")
	}
	if m.Session().State() != session.StateQuit {
		t.Errorf("state = %s, want quit", m.Session().State())
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, want empty", m.View())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, 2048)
	short := m.View()

	m, _ = update(t, m, runes("?"))
	if m.Message() != "" {
		t.Errorf("? should not report an invalid move, message = %q", m.Message())
	}
	if !strings.Contains(m.View(), "screenshot") || strings.Contains(short, "screenshot") {
		t.Error("? should expand the help bar")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, 2048)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.Message(), "Saved ") {
		t.Fatalf("message = %q", m.Message())
	}

	path := strings.TrimPrefix(m.Message(), "Saved ")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.Contains(string(data), "Target: 2048") {
		t.Errorf("screenshot content:\n%s", data)
	}
	if filepath.Ext(path) != ".txt" {
		t.Errorf("screenshot path = %s", path)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 2048)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected too small message:\n%s", m.View())
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"d", runes("d"), core.ActionRight},
		{"w", runes("w"), core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"h", runes("h"), core.ActionLeft},
		{"l", runes("l"), core.ActionRight},
		{"k", runes("k"), core.ActionUp},
		{"j", runes("j"), core.ActionDown},
		{"q", runes("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runes("x"), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %s, want %s", tt.msg, got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%s) = %d, want %d", tt.msg, got, tt.want)
		}
	}
}
