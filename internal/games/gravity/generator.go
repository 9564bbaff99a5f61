package gravity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
)

// Generation errors.
var (
	ErrInvalidLevel     = errors.New("gravity: invalid level number")
	ErrCapacityExceeded = errors.New("gravity: level exceeds bonus capacity")
	ErrInvalidGeometry  = errors.New("gravity: playfield cannot hold the configured lanes")
	ErrBonusPlacement   = errors.New("gravity: no free cell found for bonus")
)

// Generator builds random levels from a seeded source.
type Generator struct {
	cfg config.GravityConfig
	rng *rand.Rand
}

// NewGenerator validates that every level of cfg fits the playfield and
// the storage capacities, and returns a generator drawing from rng.
func NewGenerator(cfg config.GravityConfig, rng *rand.Rand) (*Generator, error) {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	// Lane x is drawn from [1, width-length-2], which needs at least one value.
	if cfg.Lanes.MaxLength > w-3 {
		return nil, fmt.Errorf("%w: lane length %d in width %d", ErrInvalidGeometry, cfg.Lanes.MaxLength, w)
	}
	if h < 3 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidGeometry, h)
	}
	if cfg.Bonuses.TopMargin < 1 || cfg.Bonuses.BottomMargin < 1 {
		return nil, fmt.Errorf("%w: bonus margins %d/%d reach the border",
			ErrInvalidGeometry, cfg.Bonuses.TopMargin, cfg.Bonuses.BottomMargin)
	}
	if h-cfg.Bonuses.TopMargin-cfg.Bonuses.BottomMargin < 1 {
		return nil, fmt.Errorf("%w: no rows left for bonuses in height %d", ErrInvalidGeometry, h)
	}

	for _, l := range cfg.Levels {
		if cfg.LaneCount(l.Number) < 1 {
			return nil, fmt.Errorf("%w: level %d has no lanes", ErrInvalidGeometry, l.Number)
		}
		if n := cfg.BonusCount(l.Number); n > cfg.Bonuses.Capacity {
			return nil, fmt.Errorf("%w: level %d needs %d bonuses, capacity is %d",
				ErrCapacityExceeded, l.Number, n, cfg.Bonuses.Capacity)
		}
	}

	return &Generator{cfg: cfg, rng: rng}, nil
}

// Generate creates a fresh level. The player starts in the middle of a
// random lane with gravity pointing down.
func (g *Generator) Generate(levelNumber int) (*Level, error) {
	if !g.cfg.HasLevel(levelNumber) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, levelNumber)
	}

	laneCount := g.cfg.LaneCount(levelNumber)
	lanes := make([]Lane, 0, laneCount)
	for i := 0; i < laneCount; i++ {
		lanes = append(lanes, g.randomLane())
	}

	start := lanes[g.rng.Intn(len(lanes))]
	px, py := start.Span().Center()
	player := Player{
		X:       px,
		Y:       py,
		Gravity: GravityDown,
		Falling: false,
		Color:   core.ColorRed,
	}

	bonusCount := g.cfg.BonusCount(levelNumber)
	bonuses := make([]Bonus, 0, bonusCount)
	for i := 0; i < bonusCount; i++ {
		b, err := g.placeBonus(lanes)
		if err != nil {
			return nil, fmt.Errorf("level %d, bonus %d of %d: %w", levelNumber, i+1, bonusCount, err)
		}
		bonuses = append(bonuses, b)
	}

	return &Level{
		Number:  levelNumber,
		Lanes:   lanes,
		Player:  player,
		Bonuses: bonuses,
	}, nil
}

// randomLane draws a lane inside the playfield border.
func (g *Generator) randomLane() Lane {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	minLen, maxLen := g.cfg.Lanes.MinLength, g.cfg.Lanes.MaxLength

	length := minLen + g.rng.Intn(maxLen-minLen+1)
	return Lane{
		X:      1 + g.rng.Intn(w-length-2),
		Y:      1 + g.rng.Intn(h-2),
		Length: length,
		Color:  core.LanePalette[g.rng.Intn(len(core.LanePalette))],
	}
}

// placeBonus rejection-samples a cell that no lane covers.
// Bonuses may share a cell with each other.
func (g *Generator) placeBonus(lanes []Lane) (Bonus, error) {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	top := g.cfg.Bonuses.TopMargin
	rows := h - top - g.cfg.Bonuses.BottomMargin

	for attempt := 0; attempt < g.cfg.Bonuses.MaxPlacementAttempts; attempt++ {
		x := 1 + g.rng.Intn(w-2)
		y := top + g.rng.Intn(rows)
		if _, covered := laneAt(lanes, x, y); !covered {
			return Bonus{X: x, Y: y}, nil
		}
	}
	return Bonus{}, fmt.Errorf("%w after %d attempts", ErrBonusPlacement, g.cfg.Bonuses.MaxPlacementAttempts)
}
