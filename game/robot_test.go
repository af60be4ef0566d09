package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chgebhardt/my-monster-game/game"
	"github.com/chgebhardt/my-monster-game/model"
)

// TestStepRobot_Pursuit replays the reference scenario: open 5x5 board,
// player starting at (0,0) and stepping right, robot at (4,4). The
// recomputed route targets (0,1) and spans 8 cells; with the player
// frozen afterwards the robot closes in by exactly its speed per tick.
func TestStepRobot_Pursuit(t *testing.T) {
	g := mustGrid(t,
		"....D",
		".....",
		".....",
		".....",
		".....",
	)
	r := model.NewRobot(model.Cell{Row: 4, Col: 4}, 1)
	player := model.Cell{Row: 0, Col: 1} // player moved right this tick

	game.StepRobot(g, r, player)
	require.Len(t, r.Path, 8)
	assert.Equal(t, model.Cell{Row: 4, Col: 4}, r.Path[0])
	assert.Equal(t, player, r.Path[len(r.Path)-1])
	assert.Equal(t, r.Path[1], r.Pos, "speed 1 advances one cell")

	// player holds still, distance shrinks by speed each tick
	for want := 6; want >= 0; want-- {
		game.StepRobot(g, r, player)
		assert.Len(t, r.Path, want+1)
	}
	assert.Equal(t, player, r.Pos)
}

func TestStepRobot_FastRobotStopsOnPlayer(t *testing.T) {
	g := mustGrid(t, "D....")
	r := model.NewRobot(model.Cell{Row: 0, Col: 4}, 3)
	player := model.Cell{Row: 0, Col: 2}

	game.StepRobot(g, r, player)
	assert.Equal(t, player, r.Pos, "two cells away, speed three: lands on the player, never past")
}

func TestStepRobot_CoLocatedHolds(t *testing.T) {
	g := mustGrid(t, "D....")
	player := model.Cell{Row: 0, Col: 2}
	r := model.NewRobot(player, 2)

	game.StepRobot(g, r, player)
	assert.Equal(t, player, r.Pos)
	assert.Len(t, r.Path, 1)
}

func TestStepRobot_NoPathHoldsPosition(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#.#D#",
		"#####",
	)
	start := model.Cell{Row: 1, Col: 3}
	r := model.NewRobot(start, 1)

	game.StepRobot(g, r, model.Cell{Row: 1, Col: 1})
	assert.Equal(t, start, r.Pos, "degraded pathfinding must not move the robot")
	assert.Nil(t, r.Path)
}

// TestStepRobot_Independent verifies robots do not avoid each other:
// two robots on the same route end up sharing cells.
func TestStepRobot_Independent(t *testing.T) {
	g := mustGrid(t, "D....")
	player := model.Cell{Row: 0, Col: 0}
	a := model.NewRobot(model.Cell{Row: 0, Col: 3}, 2)
	b := model.NewRobot(model.Cell{Row: 0, Col: 4}, 3)

	game.StepRobot(g, a, player)
	game.StepRobot(g, b, player)
	assert.Equal(t, model.Cell{Row: 0, Col: 1}, a.Pos)
	assert.Equal(t, model.Cell{Row: 0, Col: 1}, b.Pos, "co-location is allowed")
}
