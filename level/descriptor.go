package level

// Descriptor is the difficulty of one level, derived from its number.
// All three counts grow monotonically with the level number and saturate
// at the configured caps.
type Descriptor struct {
	Level      int
	CoinCount  int
	RobotCount int
	RobotSpeed int // cells per tick
}

// Describe computes the descriptor for level n (n >= 1).
func (c *Config) Describe(n int) Descriptor {
	if n < 1 {
		n = 1
	}
	return Descriptor{
		Level:      n,
		CoinCount:  saturate(c.BaseCoins+c.CoinStep*((n-1)/c.CoinEvery), c.MaxCoins),
		RobotCount: saturate(c.BaseRobots+(n-1)/c.RobotEvery, c.MaxRobots),
		RobotSpeed: saturate(c.BaseSpeed+(n-1)/c.SpeedEvery, c.MaxSpeed),
	}
}

func saturate(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
