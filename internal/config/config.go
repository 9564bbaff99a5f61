// Package config provides the embedded game constants and difficulty
// levels for Gravity Lanes.
package config

import "time"

// GravityConfig contains all constants of the game.
type GravityConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Lanes     LaneConfig      `yaml:"lanes"`
	Bonuses   BonusConfig     `yaml:"bonuses"`
	Timing    TimingConfig    `yaml:"timing"`
	Levels    []LevelPreset   `yaml:"levels"`
}

// PlayfieldConfig defines the framed playing area, border included.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LaneConfig defines lane generation parameters.
type LaneConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
	Capacity  int `yaml:"capacity"`   // Lanes stored per level
	BaseCount int `yaml:"base_count"` // Requested lanes = base_count + per_level*level
	PerLevel  int `yaml:"per_level"`
}

// BonusConfig defines bonus placement parameters.
type BonusConfig struct {
	Capacity             int `yaml:"capacity"`
	PerLevel             int `yaml:"per_level"`     // Bonuses = per_level*level
	TopMargin            int `yaml:"top_margin"`    // First row a bonus may use
	BottomMargin         int `yaml:"bottom_margin"` // Rows kept free above the bottom border
	MaxPlacementAttempts int `yaml:"max_placement_attempts"`
}

// TimingConfig defines the countdown and tick cadence.
type TimingConfig struct {
	TimeLimit time.Duration `yaml:"time_limit"`
	TickDelay time.Duration `yaml:"tick_delay"`
	WarnBelow time.Duration `yaml:"warn_below"` // HUD starts flashing at or below this
}

// LevelPreset is one entry of the level menu.
type LevelPreset struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
}
