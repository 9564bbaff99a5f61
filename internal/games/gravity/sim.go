package gravity

import (
	"time"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
)

// State is the phase of a play attempt. Every state but StateRunning is final.
type State int

const (
	StateRunning State = iota
	StateWon
	StateFellOff
	StateTimedOut
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateWon:
		return "Won"
	case StateFellOff:
		return "FellOff"
	case StateTimedOut:
		return "TimedOut"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s State) Terminal() bool {
	return s != StateRunning
}

// Rules holds the playfield bounds and the countdown used by Step.
type Rules struct {
	Width     int
	Height    int
	TimeLimit time.Duration
}

// NewRules extracts the simulation constants from cfg.
func NewRules(cfg config.GravityConfig) Rules {
	return Rules{
		Width:     cfg.Playfield.Width,
		Height:    cfg.Playfield.Height,
		TimeLimit: cfg.Timing.TimeLimit,
	}
}

// Remaining returns the time left on the countdown, never negative.
func (r Rules) Remaining(elapsed time.Duration) time.Duration {
	left := r.TimeLimit - elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Step advances prev by one tick. elapsed is the wall-clock time since the
// attempt started and in the single action of this tick. prev is not
// modified.
func (r Rules) Step(prev Level, elapsed time.Duration, in core.Action) (Level, State) {
	lv := prev.Clone()
	p := &lv.Player

	switch in {
	case core.ActionQuit:
		return lv, StateQuit
	case core.ActionLeft:
		p.X = core.Clamp(p.X-1, 1, r.Width-2)
	case core.ActionRight:
		p.X = core.Clamp(p.X+1, 1, r.Width-2)
	case core.ActionToggleGravity:
		p.Gravity = p.Gravity.Flip()
	}

	supported := lv.Supported()

	if r.TimeLimit-elapsed <= 0 {
		return lv, StateTimedOut
	}

	state := StateRunning
	p.Falling = !supported
	if !supported {
		p.Y += int(p.Gravity)
		if p.Y <= 0 || p.Y >= r.Height-1 {
			state = StateFellOff
		}
	}

	lv.CollectAt(p.X, p.Y+int(p.Gravity))

	if state == StateRunning && lv.AllCollected() {
		state = StateWon
	}
	return lv, state
}
