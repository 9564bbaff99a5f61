package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-lanes/internal/config"
)

const menuHeading = "Welcome to the Game Menu"

var (
	menuFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("1"))
	menuHeadingStyle  = lipgloss.NewStyle().Bold(true)
	menuRuleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	menuSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

// MenuItem is one entry of the level menu. Level is zero for the quit entry.
type MenuItem struct {
	Label string
	Level int
}

// MenuModel is the Bubble Tea model for the level menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	history  table.Model
	records  []RunRecord
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a menu listing the configured levels followed by
// a quit entry. records are shown as a history table under the items.
func NewMenuModel(cfg config.GravityConfig, records []RunRecord) MenuModel {
	items := make([]MenuItem, 0, len(cfg.Levels)+1)
	for _, lv := range cfg.Levels {
		items = append(items, MenuItem{Label: lv.Name, Level: lv.Number})
	}
	items = append(items, MenuItem{Label: "Quit Game"})

	return MenuModel{
		items:   items,
		width:   cfg.Playfield.Width,
		height:  cfg.Playfield.Height,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		history: newHistoryTable(records),
		records: records,
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + n) % n

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % n

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Level == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	inner := m.width - 2
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(menuHeadingStyle.Render(menuHeading)))
	b.WriteString("\n")
	b.WriteString(menuRuleStyle.Render(strings.Repeat("-", inner)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Label
		if i == m.cursor {
			label = menuSelectedStyle.Render(label)
		}
		b.WriteString(center(label))
		b.WriteString("\n\n")
	}

	if len(m.records) > 0 {
		b.WriteString(center(m.history.View()))
	}

	body := menuFrameStyle.
		Width(inner).
		Height(m.height - 2).
		Render(b.String())
	return body + "\n" + m.help.View(m.keys)
}

// Cursor returns the index of the highlighted item.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level int
	Quit  bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	if m.quitting || m.selected == nil {
		return MenuResult{Quit: true}
	}
	return MenuResult{Level: m.selected.Level}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.GravityConfig, records []RunRecord) (MenuResult, error) {
	model := NewMenuModel(cfg, records)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
