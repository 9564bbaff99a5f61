package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes the embedded configuration.
// Falls back to DefaultGravityConfig when the embedded document is unusable;
// the returned error then explains why.
func Load() (GravityConfig, error) {
	cfg, err := Parse(defaultGravityYAML)
	if err != nil {
		return DefaultGravityConfig(), err
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (GravityConfig, error) {
	var cfg GravityConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the constants describe a playable game.
func (c GravityConfig) Validate() error {
	var errs []error

	if c.Playfield.Width < 3 || c.Playfield.Height < 3 {
		errs = append(errs, fmt.Errorf("playfield %dx%d is too small", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Lanes.MinLength < 1 || c.Lanes.MinLength > c.Lanes.MaxLength {
		errs = append(errs, fmt.Errorf("lane length range [%d, %d] is invalid", c.Lanes.MinLength, c.Lanes.MaxLength))
	}
	if c.Lanes.Capacity < 1 {
		errs = append(errs, errors.New("lane capacity must be positive"))
	}
	if c.Bonuses.Capacity < 0 || c.Bonuses.PerLevel < 0 {
		errs = append(errs, errors.New("bonus capacity and per_level must not be negative"))
	}
	if c.Bonuses.TopMargin < 1 || c.Bonuses.BottomMargin < 1 {
		errs = append(errs, fmt.Errorf("bonus margins %d/%d must keep bonuses off the border", c.Bonuses.TopMargin, c.Bonuses.BottomMargin))
	}
	if c.Bonuses.MaxPlacementAttempts < 1 {
		errs = append(errs, errors.New("max_placement_attempts must be positive"))
	}
	if c.Timing.TimeLimit <= 0 || c.Timing.TickDelay <= 0 {
		errs = append(errs, errors.New("time_limit and tick_delay must be positive"))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, l := range c.Levels {
		if l.Number != i+1 {
			errs = append(errs, fmt.Errorf("level %d is numbered %d", i+1, l.Number))
		}
		if c.LaneCount(l.Number) < 1 {
			errs = append(errs, fmt.Errorf("level %d has no lanes", l.Number))
		}
	}

	return errors.Join(errs...)
}
