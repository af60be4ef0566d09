package model

import (
	"sort"

	"github.com/google/uuid"
)

// Status is the state-machine position of the current level.
type Status int

const (
	Playing Status = iota
	Won
	Caught
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Caught:
		return "caught"
	}
	return "playing"
}

// RobotView is a robot as the renderer sees it.
type RobotView struct {
	ID   uuid.UUID
	Pos  Cell
	Path []Cell
}

// Snapshot is the world as handed to the rendering side after a tick.
// Everything except the shared read-only Grid is copied, so a renderer
// may keep it across ticks.
type Snapshot struct {
	Grid      *Grid
	Level     int
	Tick      int
	Status    Status
	Player    Player
	Coins     []Cell // active (uncollected) coins, row-major order
	Robots    []RobotView
	Door      Cell
	CoinTotal int
}

// SortCells orders cells row-major in place. Snapshots use it so two
// snapshots of the same world compare equal.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
