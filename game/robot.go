package game

import (
	"errors"

	"github.com/chgebhardt/my-monster-game/model"
	log "github.com/sirupsen/logrus"
)

// StepRobot advances r toward the player by up to r.Speed cells along a
// freshly computed shortest path. The robot may land on the player's
// cell but never walks past it; reading that as a catch is the state
// machine's job. Robots ignore each other, two of them sharing a cell
// is fine.
//
// When no path exists (malformed map, should not happen on a generated
// one) the robot logs a degraded-pathfinding warning and holds position.
func StepRobot(g *model.Grid, r *model.Robot, player model.Cell) {
	path, err := ShortestPath(g, r.Pos, player)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			log.WithFields(log.Fields{
				"robot":  r.ID,
				"pos":    r.Pos,
				"player": player,
			}).Warn("pathfinding degraded, robot holds position")
			r.Path = nil
			return
		}
		// out-of-range positions are a programmer error
		log.WithField("robot", r.ID).WithError(err).Error("robot step rejected")
		return
	}

	r.Path = path
	if len(path) <= 1 {
		return // already co-located with the player
	}
	steps := r.Speed
	if steps > len(path)-1 {
		steps = len(path) - 1
	}
	r.Pos = path[steps]
}
