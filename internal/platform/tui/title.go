package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
)

const (
	titleBanner     = "G R A V I T Y   L A N E S"
	titleFrameDelay = 20 * time.Millisecond
)

var titleInstructions = []string{
	"Use the arrow keys to move left and right.",
	"Press SPACE to flip gravity.",
	"Collect every bonus before the time runs out.",
	"Don't fall off the screen!",
	"Press q to quit at any time.",
	"",
	"Press any key to start",
}

// bannerTickMsg advances the title banner by one column.
type bannerTickMsg time.Time

func bannerTickCmd() tea.Cmd {
	return tea.Tick(titleFrameDelay, func(t time.Time) tea.Msg {
		return bannerTickMsg(t)
	})
}

// TitleModel shows the instructions, then scrolls the banner from the
// right edge of the frame to the left before handing over to the menu.
type TitleModel struct {
	screen    *core.Screen
	keys      MenuKeyMap
	scrolling bool
	bannerX   int
	done      bool
	quitting  bool
}

// NewTitleModel creates a title screen sized to the playfield.
func NewTitleModel(cfg config.GravityConfig) TitleModel {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	return TitleModel{
		screen:  core.NewScreen(w, h),
		keys:    DefaultMenuKeyMap(),
		bannerX: w - len(titleBanner) - 2,
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MenuAction(msg) == MenuActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scrolling {
			m.done = true
			return m, tea.Quit
		}
		m.scrolling = true
		return m, bannerTickCmd()

	case bannerTickMsg:
		if m.bannerX <= 1 {
			m.done = true
			return m, tea.Quit
		}
		m.bannerX--
		return m, bannerTickCmd()
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	s := m.screen
	s.Clear()
	w, h := s.Width(), s.Height()
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorRed)

	if m.scrolling {
		s.DrawTextColor(m.bannerX, h/2, titleBanner, core.ColorYellow)
		return RenderScreen(s)
	}

	s.DrawTextCentered(h/4, titleBanner, core.ColorYellow)
	for i, line := range titleInstructions {
		s.DrawTextCentered(h/4+2+i, line, core.ColorDefault)
	}
	return RenderScreen(s)
}

// Quitting reports whether the player asked to leave from the title screen.
func (m TitleModel) Quitting() bool {
	return m.quitting
}

// RunTitle shows the title screen. It reports quit=true when the player
// pressed a quit key instead of continuing.
func RunTitle(cfg config.GravityConfig) (quit bool, err error) {
	p := tea.NewProgram(NewTitleModel(cfg), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(TitleModel)
	if !ok {
		return true, nil
	}
	return m.Quitting(), nil
}
