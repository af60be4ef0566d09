package level

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chgebhardt/my-monster-game/model"
	log "github.com/sirupsen/logrus"
)

// ErrGenerationFailed indicates the attempt budget ran out without a
// connected layout. The driver must not start a level on it.
var ErrGenerationFailed = errors.New("level: no connected layout found")

// Layout is everything a fresh level starts from.
type Layout struct {
	Grid        *model.Grid
	PlayerStart model.Cell
	Coins       []model.Cell
	RobotStarts []model.Cell
	Desc        Descriptor
}

// seedMix spreads consecutive level numbers across the seed space.
const seedMix = 0x9e3779b9

// Generate builds the layout for level n. Deterministic: the same config
// and level number always produce the same layout. Wall scatter can cut
// the board apart, so generation retries up to cfg.MaxAttempts and fails
// with ErrGenerationFailed when the budget runs out.
func Generate(cfg *Config, n int) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	desc := cfg.Describe(n)
	rng := rand.New(rand.NewSource(cfg.Seed ^ int64(desc.Level)*seedMix))

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		layout := carve(cfg, desc, rng)
		if layout == nil {
			continue
		}
		log.WithFields(log.Fields{
			"level":   desc.Level,
			"attempt": attempt,
			"coins":   desc.CoinCount,
			"robots":  desc.RobotCount,
			"speed":   desc.RobotSpeed,
		}).Debug("level generated")
		return layout, nil
	}
	return nil, fmt.Errorf("%w: level %d after %d attempts", ErrGenerationFailed, desc.Level, cfg.MaxAttempts)
}

// carve makes one generation attempt: border walls, random interior
// walls, connectivity check, then door and entity placement. Returns nil
// when the scatter disconnected the open region or left no door spot.
func carve(cfg *Config, desc Descriptor, rng *rand.Rand) *Layout {
	w, h := cfg.Width, cfg.Height
	tiles := make([][]model.Tile, h)
	for r := range tiles {
		tiles[r] = make([]model.Tile, w)
		for c := range tiles[r] {
			if r == 0 || r == h-1 || c == 0 || c == w-1 {
				tiles[r][c] = model.TileWall
			}
		}
	}

	interior := make([]model.Cell, 0, (w-2)*(h-2))
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			interior = append(interior, model.Cell{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})
	for _, c := range interior[:cfg.InternalWalls] {
		tiles[c.Row][c.Col] = model.TileWall
	}
	open := interior[cfg.InternalWalls:]

	if !connected(tiles, open) {
		return nil
	}

	// door on an open cell hugging the outer wall ring
	doorIdx := -1
	for i, c := range open {
		if c.Row == 1 || c.Row == h-2 || c.Col == 1 || c.Col == w-2 {
			doorIdx = i
			break
		}
	}
	if doorIdx == -1 {
		return nil
	}
	door := open[doorIdx]
	tiles[door.Row][door.Col] = model.TileDoor

	grid, err := model.NewGrid(tiles)
	if err != nil {
		return nil
	}

	// player, coins and robot spawns on distinct open cells, door excluded;
	// the shuffled order makes the pick both random and reproducible
	spots := make([]model.Cell, 0, len(open)-1)
	for i, c := range open {
		if i != doorIdx {
			spots = append(spots, c)
		}
	}
	if len(spots) < 1+desc.CoinCount+desc.RobotCount {
		return nil
	}
	layout := &Layout{
		Grid:        grid,
		PlayerStart: spots[0],
		Coins:       append([]model.Cell(nil), spots[1:1+desc.CoinCount]...),
		RobotStarts: append([]model.Cell(nil), spots[1+desc.CoinCount:1+desc.CoinCount+desc.RobotCount]...),
		Desc:        desc,
	}
	return layout
}

// connected reports whether every open interior cell is reachable from
// the first one. Flood fill over the raw tile matrix, the Grid does not
// exist yet at this point.
func connected(tiles [][]model.Tile, open []model.Cell) bool {
	if len(open) == 0 {
		return false
	}
	h, w := len(tiles), len(tiles[0])
	seen := make(map[model.Cell]bool, len(open))
	queue := []model.Cell{open[0]}
	seen[open[0]] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := model.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
			if n.Row < 0 || n.Row >= h || n.Col < 0 || n.Col >= w {
				continue
			}
			if seen[n] || tiles[n.Row][n.Col] == model.TileWall {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen) == len(open)
}
