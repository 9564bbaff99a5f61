package config

// LevelCount returns how many difficulty levels the menu offers.
func (c GravityConfig) LevelCount() int {
	return len(c.Levels)
}

// HasLevel reports whether n is a selectable level number.
func (c GravityConfig) HasLevel(n int) bool {
	for _, l := range c.Levels {
		if l.Number == n {
			return true
		}
	}
	return false
}

// RequestedLanes returns the lane count a level asks for before the
// capacity clamp.
func (c GravityConfig) RequestedLanes(level int) int {
	return c.Lanes.BaseCount + c.Lanes.PerLevel*level
}

// LaneCount returns the number of lanes generated for a level.
func (c GravityConfig) LaneCount(level int) int {
	n := c.RequestedLanes(level)
	if n > c.Lanes.Capacity {
		n = c.Lanes.Capacity
	}
	return n
}

// BonusCount returns the number of bonuses generated for a level.
// It is not clamped; generators must reject levels that exceed capacity.
func (c GravityConfig) BonusCount(level int) int {
	return c.Bonuses.PerLevel * level
}
