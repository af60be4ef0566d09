package game

import (
	"github.com/chgebhardt/my-monster-game/level"
	"github.com/chgebhardt/my-monster-game/model"
	log "github.com/sirupsen/logrus"
)

// State is the live world of one level: the shared grid, the player, the
// active coins, the robots and the win/lose machine. A single driver
// mutates it through Tick, one call per frame, nothing runs in between.
type State struct {
	grid   *model.Grid
	player model.Player
	coins  map[model.Cell]*model.Coin
	robots []*model.Robot
	desc   level.Descriptor
	status model.Status
	tick   int
	last   *model.Snapshot
}

// NewState starts a level from a generated layout.
func NewState(l *level.Layout) *State {
	coins := make(map[model.Cell]*model.Coin, len(l.Coins))
	for _, c := range l.Coins {
		coins[c] = &model.Coin{Cell: c}
	}
	robots := make([]*model.Robot, 0, len(l.RobotStarts))
	for _, c := range l.RobotStarts {
		robots = append(robots, model.NewRobot(c, l.Desc.RobotSpeed))
	}
	return &State{
		grid:   l.Grid,
		player: model.Player{Pos: l.PlayerStart},
		coins:  coins,
		robots: robots,
		desc:   l.Desc,
		status: model.Playing,
	}
}

// Status returns the state-machine position.
func (s *State) Status() model.Status { return s.status }

// Grid returns the shared read-only layout.
func (s *State) Grid() *model.Grid { return s.grid }

// Descriptor returns the difficulty of the running level.
func (s *State) Descriptor() level.Descriptor { return s.desc }

// Tick advances the world one step: apply the intended player move,
// step every robot in order, evaluate transitions, hand out a snapshot.
// Won and Caught are terminal, further ticks return the frozen snapshot
// until the driver resets or advances the level.
func (s *State) Tick(dir model.Direction) *model.Snapshot {
	if s.status != model.Playing {
		return s.Snapshot()
	}
	s.tick++
	s.movePlayer(dir)

	// a robot already parked on the player's new cell catches immediately,
	// and once caught the rest of the tick is skipped
	if s.robotAt(s.player.Pos) {
		s.caught()
	} else {
		for _, r := range s.robots {
			StepRobot(s.grid, r, s.player.Pos)
			if r.Pos == s.player.Pos {
				s.caught()
				break
			}
		}
	}
	if s.status == model.Playing && s.won() {
		s.status = model.Won
		log.WithFields(log.Fields{
			"level": s.desc.Level,
			"ticks": s.tick,
		}).Info("level cleared")
	}
	s.last = s.snapshot()
	return s.last
}

// movePlayer validates dir against the grid and resolves coin pickup and
// door delivery. Walking into a wall or off the board is silently
// rejected, the player just stays put.
func (s *State) movePlayer(dir model.Direction) {
	if dir == model.None {
		return
	}
	target := s.player.Pos.Step(dir)
	if !s.grid.IsWalkable(target) {
		return
	}
	s.player.Pos = target

	if coin, ok := s.coins[target]; ok {
		coin.Collected = true
		delete(s.coins, target)
		s.player.Carried++
		log.WithFields(log.Fields{
			"cell":    target,
			"carried": s.player.Carried,
			"left":    len(s.coins),
		}).Debug("coin collected")
	}
	if target == s.grid.Door() && s.player.Carried > 0 {
		s.player.Delivered += s.player.Carried
		s.player.Carried = 0
		log.WithField("delivered", s.player.Delivered).Debug("packages delivered")
	}
}

func (s *State) caught() {
	s.status = model.Caught
	log.WithFields(log.Fields{
		"level": s.desc.Level,
		"tick":  s.tick,
		"cell":  s.player.Pos,
	}).Info("player caught")
}

// won is true once every coin has been collected, delivered, and the
// player stands at the door.
func (s *State) won() bool {
	return len(s.coins) == 0 &&
		s.player.Carried == 0 &&
		s.player.Delivered == s.desc.CoinCount &&
		s.player.Pos == s.grid.Door()
}

func (s *State) robotAt(c model.Cell) bool {
	for _, r := range s.robots {
		if r.Pos == c {
			return true
		}
	}
	return false
}

// Snapshot returns the last emitted snapshot, or a fresh one before the
// first tick.
func (s *State) Snapshot() *model.Snapshot {
	if s.last == nil {
		s.last = s.snapshot()
	}
	return s.last
}

func (s *State) snapshot() *model.Snapshot {
	coins := make([]model.Cell, 0, len(s.coins))
	for c := range s.coins {
		coins = append(coins, c)
	}
	model.SortCells(coins)
	robots := make([]model.RobotView, 0, len(s.robots))
	for _, r := range s.robots {
		robots = append(robots, model.RobotView{
			ID:   r.ID,
			Pos:  r.Pos,
			Path: append([]model.Cell(nil), r.Path...),
		})
	}
	return &model.Snapshot{
		Grid:      s.grid,
		Level:     s.desc.Level,
		Tick:      s.tick,
		Status:    s.status,
		Player:    s.player,
		Coins:     coins,
		Robots:    robots,
		Door:      s.grid.Door(),
		CoinTotal: s.desc.CoinCount,
	}
}
