// Package gravity implements Gravity Lanes: the player walks along randomly
// generated lanes, flips gravity to cling to the other side of a lane, and
// must collect every bonus before the countdown runs out.
package gravity

import "github.com/vovakirdan/gravity-lanes/internal/core"

// Gravity is the direction the player falls in, as a row delta.
type Gravity int

const (
	GravityDown Gravity = 1  // Falls toward the bottom border, stands on top of lanes
	GravityUp   Gravity = -1 // Falls toward the top border, hangs below lanes
)

// Flip returns the opposite direction.
func (g Gravity) Flip() Gravity {
	return -g
}

func (g Gravity) String() string {
	if g < 0 {
		return "up"
	}
	return "down"
}

// Lane is a horizontal platform one row high.
type Lane struct {
	X, Y   int // Leftmost cell
	Length int
	Color  core.Color
}

// Span returns the cells covered by the lane.
func (l Lane) Span() core.Rect {
	return core.NewRect(l.X, l.Y, l.Length, 1)
}

// Player is the single controllable character of a level.
type Player struct {
	X, Y    int
	Gravity Gravity
	Falling bool
	Color   core.Color
}

// Bonus is a collectible item. Only Collected ever changes after generation.
type Bonus struct {
	X, Y      int
	Collected bool
}

// Level is the complete state of one play attempt.
type Level struct {
	Number  int
	Lanes   []Lane
	Player  Player
	Bonuses []Bonus
}

// Clone returns a deep copy that shares no slices with lv.
func (lv Level) Clone() Level {
	out := lv
	out.Lanes = append([]Lane(nil), lv.Lanes...)
	out.Bonuses = append([]Bonus(nil), lv.Bonuses...)
	return out
}

// LaneAt returns the first lane covering cell (x, y).
func (lv Level) LaneAt(x, y int) (Lane, bool) {
	return laneAt(lv.Lanes, x, y)
}

func laneAt(lanes []Lane, x, y int) (Lane, bool) {
	for _, l := range lanes {
		if l.Span().Contains(x, y) {
			return l, true
		}
	}
	return Lane{}, false
}

// Supported reports whether the player stands on (or hangs from) a lane.
// The check ignores gravity: in both directions the player must share the
// lane's row.
func (lv Level) Supported() bool {
	_, ok := lv.LaneAt(lv.Player.X, lv.Player.Y)
	return ok
}

// CollectAt marks every uncollected bonus at (x, y) as collected and
// returns how many changed.
func (lv *Level) CollectAt(x, y int) int {
	n := 0
	for i := range lv.Bonuses {
		b := &lv.Bonuses[i]
		if !b.Collected && b.X == x && b.Y == y {
			b.Collected = true
			n++
		}
	}
	return n
}

// Collected returns the number of collected bonuses.
func (lv Level) Collected() int {
	n := 0
	for _, b := range lv.Bonuses {
		if b.Collected {
			n++
		}
	}
	return n
}

// AllCollected reports whether no bonus is left.
func (lv Level) AllCollected() bool {
	return lv.Collected() == len(lv.Bonuses)
}
