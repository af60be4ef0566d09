package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a balance config that cannot produce a playable board.
var ErrBadConfig = errors.New("level: invalid balance config")

// Config holds the tuning knobs for level generation and difficulty
// scaling. Zero values are filled from DefaultConfig by Load.
type Config struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	InternalWalls int   `yaml:"internal_walls"`
	Seed          int64 `yaml:"seed"`
	MaxAttempts   int   `yaml:"max_attempts"`

	BaseCoins  int `yaml:"base_coins"`
	CoinStep   int `yaml:"coin_step"`
	CoinEvery  int `yaml:"coin_every"`
	MaxCoins   int `yaml:"max_coins"`
	BaseRobots int `yaml:"base_robots"`
	RobotEvery int `yaml:"robot_every"`
	MaxRobots  int `yaml:"max_robots"`
	BaseSpeed  int `yaml:"base_speed"`
	SpeedEvery int `yaml:"speed_every"`
	MaxSpeed   int `yaml:"max_speed"`
}

// DefaultConfig mirrors the classic 20x10 board: five coins growing by
// two every third level up to ten, one robot more every second level up
// to five, robots speeding up every fourth level.
func DefaultConfig() *Config {
	return &Config{
		Width:         20,
		Height:        10,
		InternalWalls: 15,
		Seed:          1,
		MaxAttempts:   64,
		BaseCoins:     5,
		CoinStep:      2,
		CoinEvery:     3,
		MaxCoins:      10,
		BaseRobots:    1,
		RobotEvery:    2,
		MaxRobots:     5,
		BaseSpeed:     1,
		SpeedEvery:    4,
		MaxSpeed:      3,
	}
}

// Load reads a YAML balance file over the defaults. A missing file is
// not an error, the defaults stand.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("level: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configs that cannot hold a border, a door and the
// densest possible level's placements.
func (c *Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: board %dx%d too small", ErrBadConfig, c.Width, c.Height)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be positive", ErrBadConfig)
	}
	if c.CoinEvery < 1 || c.RobotEvery < 1 || c.SpeedEvery < 1 {
		return fmt.Errorf("%w: growth intervals must be positive", ErrBadConfig)
	}
	if c.InternalWalls < 0 {
		return fmt.Errorf("%w: internal_walls must not be negative", ErrBadConfig)
	}
	if c.BaseCoins < 0 || c.CoinStep < 0 || c.BaseRobots < 0 || c.BaseSpeed < 0 {
		return fmt.Errorf("%w: base counts and growth steps must not be negative", ErrBadConfig)
	}
	if c.MaxCoins < c.BaseCoins || c.MaxRobots < c.BaseRobots || c.MaxSpeed < c.BaseSpeed {
		return fmt.Errorf("%w: caps must not undercut their base values", ErrBadConfig)
	}
	interior := (c.Width - 2) * (c.Height - 2)
	// walls + door + player + densest coin/robot population
	needed := 2 + c.MaxCoins + c.MaxRobots + c.InternalWalls
	if interior < needed {
		return fmt.Errorf("%w: %d interior cells cannot hold %d placements", ErrBadConfig, interior, needed)
	}
	return nil
}
