package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

// DefaultGravityConfig returns the hard-coded configuration used when the
// embedded YAML cannot be decoded.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		Playfield: PlayfieldConfig{
			Width:  80,
			Height: 24,
		},
		Lanes: LaneConfig{
			MinLength: 5,
			MaxLength: 15,
			Capacity:  8,
			BaseCount: 10,
			PerLevel:  5,
		},
		Bonuses: BonusConfig{
			Capacity:             10,
			PerLevel:             3,
			TopMargin:            3,
			BottomMargin:         3,
			MaxPlacementAttempts: 1000,
		},
		Timing: TimingConfig{
			TimeLimit: 60 * time.Second,
			TickDelay: 100 * time.Millisecond,
			WarnBelow: 10 * time.Second,
		},
		Levels: []LevelPreset{
			{Number: 1, Name: "Play Level 1"},
			{Number: 2, Name: "Play Level 2"},
			{Number: 3, Name: "Play Level 3"},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultGravityYAML
}
