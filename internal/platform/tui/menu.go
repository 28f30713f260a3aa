package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceHistory
	ChoiceQuit
)

// String returns the menu label for the choice.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceHistory:
		return "History"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. History is left out when there
// is no store to read it from.
func NewMenuModel(withHistory bool, width, height int) MenuModel {
	items := []MenuChoice{ChoicePlay}
	if withHistory {
		items = append(items, ChoiceHistory)
	}
	items = append(items, ChoiceQuit)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  2 0 4 8  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(withHistory bool, width, height int) (MenuChoice, error) {
	model := NewMenuModel(withHistory, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == ChoiceNone {
		return ChoiceQuit, nil
	}
	return m.Selected(), nil
}
