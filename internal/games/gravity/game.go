package gravity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
	"github.com/vovakirdan/gravity-lanes/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "gravity"

// inputPriority decides which action a tick uses when several keys were
// pressed since the previous tick.
var inputPriority = []core.Action{
	core.ActionQuit,
	core.ActionToggleGravity,
	core.ActionLeft,
	core.ActionRight,
}

// Game adapts the level generator and the simulation to the platform's
// registry.Game contract.
type Game struct {
	cfg   config.GravityConfig
	rules Rules

	level     Level
	state     State
	seed      int64
	tick      int
	endTicks  int // Ticks since the attempt ended, drives end-screen animation
	now       func() time.Time
	start     time.Time
	elapsed   time.Duration
	remaining time.Duration
}

// activeConfig holds the constants used by games created with New.
var activeConfig = config.DefaultGravityConfig()

// SetConfig sets the constants used by games created with New, including
// those created through the registry.
func SetConfig(cfg config.GravityConfig) {
	activeConfig = cfg
}

// New creates a game using the constants set with SetConfig.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with explicit constants.
func NewWithConfig(cfg config.GravityConfig) *Game {
	return &Game{
		cfg:   cfg,
		rules: NewRules(cfg),
		now:   time.Now,
	}
}

// SetClock replaces the wall clock used for the countdown.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gravity Lanes"
}

// Reset generates cfg.Level from cfg.Seed and restarts the countdown.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	gen, err := NewGenerator(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	lv, err := gen.Generate(cfg.Level)
	if err != nil {
		return fmt.Errorf("generate level %d: %w", cfg.Level, err)
	}

	g.level = *lv
	g.state = StateRunning
	g.seed = cfg.Seed
	g.tick = 0
	g.endTicks = 0
	g.start = g.now()
	g.elapsed = 0
	g.remaining = g.cfg.Timing.TimeLimit
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Terminal() {
		g.endTicks++
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed = g.now().Sub(g.start)
	g.level, g.state = g.rules.Step(g.level, g.elapsed, in.First(inputPriority...))
	g.remaining = g.rules.Remaining(g.elapsed)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.level.Collected(),
		Total:    len(g.level.Bonuses),
		GameOver: g.state.Terminal(),
		Quit:     g.state == StateQuit,
		Outcome:  g.state.String(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
