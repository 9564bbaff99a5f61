package gravity

import "time"

// Snapshot is a read-only copy of the game for presentation and tests.
type Snapshot struct {
	Tick      int
	Seed      int64
	State     State
	Elapsed   time.Duration
	Remaining time.Duration
	Level     Level
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		State:     g.state,
		Elapsed:   g.elapsed,
		Remaining: g.remaining,
		Level:     g.level.Clone(),
	}
}

// LaneCount returns how many lanes the current level has.
func (g *Game) LaneCount() int {
	return len(g.level.Lanes)
}
