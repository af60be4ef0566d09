package game

import (
	"errors"
	"fmt"

	"github.com/chgebhardt/my-monster-game/model"
)

// ErrNoPath indicates the goal is unreachable from the start. On a
// properly generated level this never fires; a robot hitting it holds
// position instead of crashing the tick.
var ErrNoPath = errors.New("game: no path to goal")

// ShortestPath returns a shortest route from start to goal, both
// inclusive, over the walkable cells of g. Breadth-first search: the
// grid is unweighted, so the first visit of a cell is along a true
// shortest path. The fixed neighbor order of Grid.Neighbors (up, down,
// left, right) breaks ties, making the route reproducible.
//
// The result is valid for the positions it was computed from and goes
// stale the moment the target moves; callers recompute every tick.
func ShortestPath(g *model.Grid, start, goal model.Cell) ([]model.Cell, error) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: path %v -> %v", model.ErrOutOfRange, start, goal)
	}
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, start, goal)
	}
	if start == goal {
		return []model.Cell{start}, nil
	}

	parent := map[model.Cell]model.Cell{start: start}
	queue := []model.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			if n == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, n)
		}
	}
	return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, start, goal)
}

// reconstruct walks the parent links back from goal and reverses.
func reconstruct(parent map[model.Cell]model.Cell, start, goal model.Cell) []model.Cell {
	path := []model.Cell{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
