package gravity

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/gravity-lanes/internal/config"
	"github.com/vovakirdan/gravity-lanes/internal/core"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	gen, err := NewGenerator(config.DefaultGravityConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	return gen
}

func TestGenerateLaneInvariants(t *testing.T) {
	cfg := config.DefaultGravityConfig()
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	for seed := int64(1); seed <= 200; seed++ {
		gen := newTestGenerator(t, seed)
		for level := 1; level <= 3; level++ {
			lv, err := gen.Generate(level)
			if err != nil {
				t.Fatalf("seed %d level %d: Generate() failed: %v", seed, level, err)
			}

			if len(lv.Lanes) != cfg.Lanes.Capacity {
				t.Errorf("seed %d level %d: %d lanes, expected capacity %d", seed, level, len(lv.Lanes), cfg.Lanes.Capacity)
			}

			for i, l := range lv.Lanes {
				if l.Length < cfg.Lanes.MinLength || l.Length > cfg.Lanes.MaxLength {
					t.Errorf("seed %d lane %d: length %d outside [%d, %d]", seed, i, l.Length, cfg.Lanes.MinLength, cfg.Lanes.MaxLength)
				}
				if l.X < 1 || l.Span().Right()-1 > w-2 {
					t.Errorf("seed %d lane %d: span [%d, %d] leaves the interior", seed, i, l.X, l.Span().Right()-1)
				}
				if l.Y < 1 || l.Y > h-2 {
					t.Errorf("seed %d lane %d: row %d leaves the interior", seed, i, l.Y)
				}
				if !containsColor(core.LanePalette, l.Color) {
					t.Errorf("seed %d lane %d: colour %d not in palette", seed, i, l.Color)
				}
			}
		}
	}
}

func TestGenerateBonusesAvoidLanes(t *testing.T) {
	cfg := config.DefaultGravityConfig()
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	for seed := int64(1); seed <= 200; seed++ {
		gen := newTestGenerator(t, seed)
		for level := 1; level <= 3; level++ {
			lv, err := gen.Generate(level)
			if err != nil {
				t.Fatalf("seed %d level %d: Generate() failed: %v", seed, level, err)
			}

			if len(lv.Bonuses) != 3*level {
				t.Errorf("level %d: %d bonuses, expected %d", level, len(lv.Bonuses), 3*level)
			}

			for i, b := range lv.Bonuses {
				if b.Collected {
					t.Errorf("seed %d bonus %d: starts collected", seed, i)
				}
				if b.X < 1 || b.X > w-2 || b.Y < 3 || b.Y > h-4 {
					t.Errorf("seed %d bonus %d: (%d, %d) outside the bonus area", seed, i, b.X, b.Y)
				}
				if l, ok := lv.LaneAt(b.X, b.Y); ok {
					t.Errorf("seed %d bonus %d: (%d, %d) lies on lane %+v", seed, i, b.X, b.Y, l)
				}
			}
		}
	}
}

func TestGeneratePlayerStart(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		lv, err := newTestGenerator(t, seed).Generate(2)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		p := lv.Player
		if p.Gravity != GravityDown {
			t.Errorf("seed %d: initial gravity %v, expected down", seed, p.Gravity)
		}
		if p.Falling {
			t.Errorf("seed %d: player should not start falling", seed)
		}

		found := false
		for _, l := range lv.Lanes {
			if l.Y == p.Y && l.X+l.Length/2 == p.X {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %d: player (%d, %d) is not at the midpoint of any lane", seed, p.X, p.Y)
		}
		if !lv.Supported() {
			t.Errorf("seed %d: player should start supported", seed)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := newTestGenerator(t, 12345).Generate(3)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := newTestGenerator(t, 12345).Generate(3)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different levels:\n%+v\n%+v", a, b)
	}

	c, err := newTestGenerator(t, 54321).Generate(3)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if reflect.DeepEqual(a.Lanes, c.Lanes) {
		t.Error("different seeds should produce different lanes")
	}
}

func TestGenerateInvalidLevel(t *testing.T) {
	gen := newTestGenerator(t, 1)
	for _, n := range []int{0, 4, -2} {
		if _, err := gen.Generate(n); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Generate(%d) error = %v, expected ErrInvalidLevel", n, err)
		}
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.GravityConfig)
		wantErr error
	}{
		{
			name:    "bonus capacity too small for level 2",
			mutate:  func(c *config.GravityConfig) { c.Bonuses.Capacity = 5 },
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "lane longer than the playfield allows",
			mutate:  func(c *config.GravityConfig) { c.Lanes.MaxLength = 78 },
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "no rows for bonuses",
			mutate:  func(c *config.GravityConfig) { c.Bonuses.TopMargin = 12; c.Bonuses.BottomMargin = 12 },
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "bonus band touches the top border",
			mutate:  func(c *config.GravityConfig) { c.Bonuses.TopMargin = 0 },
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "level without lanes",
			mutate:  func(c *config.GravityConfig) { c.Lanes.BaseCount = 0; c.Lanes.PerLevel = 0 },
			wantErr: ErrInvalidGeometry,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultGravityConfig()
			tc.mutate(&cfg)
			_, err := NewGenerator(cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewGenerator() error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestPlaceBonusExhausted(t *testing.T) {
	cfg := config.DefaultGravityConfig()
	cfg.Bonuses.MaxPlacementAttempts = 50
	gen, err := NewGenerator(cfg, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}

	// Cover every cell a bonus may use.
	var lanes []Lane
	for y := cfg.Bonuses.TopMargin; y < cfg.Playfield.Height-cfg.Bonuses.BottomMargin; y++ {
		lanes = append(lanes, Lane{X: 1, Y: y, Length: cfg.Playfield.Width - 2})
	}

	if _, err := gen.placeBonus(lanes); !errors.Is(err, ErrBonusPlacement) {
		t.Errorf("placeBonus() error = %v, expected ErrBonusPlacement", err)
	}

	// Leaving a single free cell makes placement possible again.
	lanes[0].Length--
	b, err := gen.placeBonus(lanes)
	if err != nil {
		// 50 attempts may all miss one cell; retry with a generous budget.
		gen.cfg.Bonuses.MaxPlacementAttempts = 1_000_000
		b, err = gen.placeBonus(lanes)
		if err != nil {
			t.Fatalf("placeBonus() with one free cell failed: %v", err)
		}
	}
	if b.X != cfg.Playfield.Width-2 || b.Y != cfg.Bonuses.TopMargin {
		t.Errorf("bonus placed at (%d, %d), expected the only free cell (%d, %d)",
			b.X, b.Y, cfg.Playfield.Width-2, cfg.Bonuses.TopMargin)
	}
}

func containsColor(palette []core.Color, c core.Color) bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}
