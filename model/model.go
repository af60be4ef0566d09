package model

import "github.com/google/uuid"

// Cell is a grid coordinate. Comparable, usable as a map key.
type Cell struct {
	Row, Col int
}

// Direction is the intended player move for one tick.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the row/col offset of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Step returns the cell reached by moving one cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Coin is a package waiting on the board. A collected coin leaves the
// active set; the flag stays set for anything still holding a reference.
type Coin struct {
	Cell      Cell
	Collected bool
}

// Player is the monster.
type Player struct {
	Pos       Cell
	Carried   int // coins picked up and not yet dropped at the door
	Delivered int
}

// Robot chases the player. Path is the route computed on the robot's
// last step, from its cell to the player's cell at that moment.
type Robot struct {
	ID    uuid.UUID
	Pos   Cell
	Speed int // cells per tick
	Path  []Cell
}

// NewRobot returns a robot at pos with the given per-tick speed.
func NewRobot(pos Cell, speed int) *Robot {
	return &Robot{ID: uuid.New(), Pos: pos, Speed: speed}
}
