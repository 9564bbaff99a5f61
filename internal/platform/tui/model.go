package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-lanes/internal/core"
	"github.com/vovakirdan/gravity-lanes/internal/registry"
)

// RunResult is what a game program reports back to its caller.
type RunResult struct {
	// Records holds every run that reached an end state, in order.
	Records []RunRecord
	// BackToMenu is set when the player asked to return to the menu.
	BackToMenu bool
	// Quit is set when the player asked to leave the application.
	Quit bool
}

// Model is the Bubble Tea model for running a level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	now        func() time.Time
	result     RunResult
	err        error
	quitting   bool
}

// NewModel creates a model for the given game and starts its first run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reset starts a new run of the configured level.
func (m *Model) reset() error {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("level generation failed", "game", m.game.ID(), "level", m.config.Level, "seed", m.config.Seed, "error", err)
		return fmt.Errorf("start %s level %d: %w", m.game.ID(), m.config.Level, err)
	}
	m.gameState = m.game.State()
	m.started = m.now()

	fields := []any{"game", m.game.ID(), "level", m.config.Level, "seed", m.config.Seed, "bonuses", m.gameState.Total}
	if lc, ok := m.game.(laneCounter); ok {
		fields = append(fields, "lanes", lc.LaneCount())
	}
	m.logger.Info("level generated", fields...)
	return nil
}

// laneCounter is implemented by games whose levels are built from lanes.
type laneCounter interface {
	LaneCount() int
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		m.result.Quit = true
		return m, tea.Quit
	}

	if !m.gameState.GameOver {
		if action := m.keys.Action(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil
	}

	switch m.keys.EndAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.result.Quit = true
		return m, tea.Quit
	case core.ActionBack:
		m.quitting = true
		m.result.BackToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		// Picked up by the next tick so only one tick loop ever runs.
		m.inputFrame.Set(core.ActionRestart)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.inputFrame.Clear()
		m.config.Seed = time.Now().UnixNano()
		if err := m.reset(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickDelay)
	}

	if m.gameState.GameOver {
		// Keep animating the end screen while waiting for a key.
		m.game.Step(m.inputFrame)
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickDelay)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.finishRun()
	}
	if m.gameState.Quit {
		m.quitting = true
		m.result.Quit = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickDelay)
}

// finishRun records the run that just ended.
func (m *Model) finishRun() {
	rec := RunRecord{
		Level:   m.config.Level,
		Outcome: m.gameState.Outcome,
		Score:   m.gameState.Score,
		Total:   m.gameState.Total,
		Elapsed: m.now().Sub(m.started),
	}
	m.result.Records = append(m.result.Records, rec)
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"level", rec.Level,
		"outcome", rec.Outcome,
		"score", rec.Score,
		"total", rec.Total,
		"elapsed", rec.Elapsed.Round(time.Millisecond),
	)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.gameState.GameOver {
		return view + "\n" + m.help.View(m.keys.EndScreen())
	}
	return view + "\n" + m.help.View(m.keys)
}

// Result returns what the program has reported so far.
func (m Model) Result() (RunResult, error) {
	return m.result, m.err
}

// Run starts a Bubble Tea program for the given game and blocks until the
// player leaves it.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (RunResult, error) {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return RunResult{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return RunResult{}, fmt.Errorf("run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, fmt.Errorf("run %s: unexpected model %T", game.ID(), final)
	}
	return m.Result()
}
