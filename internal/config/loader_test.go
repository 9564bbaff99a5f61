package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadMatchesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGravityConfig()) {
		t.Errorf("embedded YAML and DefaultGravityConfig() disagree:\nyaml:    %+v\ndefault: %+v", cfg, DefaultGravityConfig())
	}
}

func TestEmbeddedConstants(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playfield.Width != 80 || cfg.Playfield.Height != 24 {
		t.Errorf("playfield = %dx%d, expected 80x24", cfg.Playfield.Width, cfg.Playfield.Height)
	}
	if cfg.Timing.TimeLimit != 60*time.Second {
		t.Errorf("time limit = %v, expected 60s", cfg.Timing.TimeLimit)
	}
	if cfg.Timing.TickDelay != 100*time.Millisecond {
		t.Errorf("tick delay = %v, expected 100ms", cfg.Timing.TickDelay)
	}
	if cfg.LevelCount() != 3 {
		t.Errorf("LevelCount() = %d, expected 3", cfg.LevelCount())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed",
			yaml:    "playfield: [",
			wantErr: "failed to parse config",
		},
		{
			name:    "empty document",
			yaml:    "{}",
			wantErr: "invalid config",
		},
		{
			name: "inverted lane range",
			yaml: strings.Replace(string(DefaultYAML()),
				"min_length: 5", "min_length: 20", 1),
			wantErr: "lane length range",
		},
		{
			name: "levels out of order",
			yaml: strings.Replace(string(DefaultYAML()),
				"number: 2", "number: 5", 1),
			wantErr: "level 2 is numbered 5",
		},
		{
			name: "no lanes",
			yaml: strings.Replace(strings.Replace(string(DefaultYAML()),
				"base_count: 10", "base_count: -5", 1),
				"per_level: 5", "per_level: 0", 1),
			wantErr: "level 1 has no lanes",
		},
		{
			name: "bonus on top border",
			yaml: strings.Replace(string(DefaultYAML()),
				"top_margin: 3", "top_margin: 0", 1),
			wantErr: "must keep bonuses off the border",
		},
		{
			name: "bonus on bottom border",
			yaml: strings.Replace(string(DefaultYAML()),
				"bottom_margin: 3", "bottom_margin: 0", 1),
			wantErr: "must keep bonuses off the border",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLaneAndBonusCounts(t *testing.T) {
	cfg := DefaultGravityConfig()

	tests := []struct {
		level     int
		requested int
		lanes     int
		bonuses   int
	}{
		{1, 15, 8, 3},
		{2, 20, 8, 6},
		{3, 25, 8, 9},
	}

	for _, tc := range tests {
		if got := cfg.RequestedLanes(tc.level); got != tc.requested {
			t.Errorf("RequestedLanes(%d) = %d, expected %d", tc.level, got, tc.requested)
		}
		if got := cfg.LaneCount(tc.level); got != tc.lanes {
			t.Errorf("LaneCount(%d) = %d, expected %d", tc.level, got, tc.lanes)
		}
		if got := cfg.BonusCount(tc.level); got != tc.bonuses {
			t.Errorf("BonusCount(%d) = %d, expected %d", tc.level, got, tc.bonuses)
		}
	}

	small := cfg
	small.Lanes.BaseCount = 1
	small.Lanes.PerLevel = 1
	if got := small.LaneCount(2); got != 3 {
		t.Errorf("LaneCount below capacity = %d, expected 3", got)
	}
}

func TestHasLevel(t *testing.T) {
	cfg := DefaultGravityConfig()
	for _, n := range []int{1, 2, 3} {
		if !cfg.HasLevel(n) {
			t.Errorf("HasLevel(%d) = false, expected true", n)
		}
	}
	for _, n := range []int{0, 4, -1} {
		if cfg.HasLevel(n) {
			t.Errorf("HasLevel(%d) = true, expected false", n)
		}
	}
}
