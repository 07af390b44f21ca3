package pathfind

import (
	"fmt"
	"slices"

	"coin-dungeon/internal/gamemap"
)

const (
	// DefaultMaxPaths is the number of paths AllPaths returns at most.
	DefaultMaxPaths = 64

	minPathLength = 16
	// maxExpansions bounds the total DFS work of one enumeration.
	maxExpansions = 1 << 18
)

// AllPaths enumerates simple 4-connected paths from start to goal. The
// first path is always the one FindPath returns; the rest come from a
// depth-first search trying neighbours in search order, so the result order
// is deterministic. The search stops after f.MaxPaths paths, never extends
// a path beyond f.MaxPathLength cells, prunes branches that can no longer
// reach the goal within that length and skips the shortest path it already
// holds. Total work is bounded.
func (f *Finder) AllPaths(start, goal gamemap.Cell) ([]Path, error) {
	from, err := f.endpoint(start)
	if err != nil {
		return nil, err
	}
	if _, err := f.endpoint(goal); err != nil {
		return nil, err
	}

	dist := DistanceMap(f.grid, goal)
	shortest, ok := dist[start]
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, goal)
	}
	first, err := f.FindPath(start, goal)
	if err != nil {
		return nil, err
	}

	maxLen := f.MaxPathLength
	if maxLen <= 0 {
		maxLen = max(4*(start.Manhattan(goal)+1), minPathLength)
	}
	maxLen = max(maxLen, shortest+1)
	maxPaths := f.MaxPaths
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}

	e := &enumeration{
		grid:     f.grid,
		goal:     goal,
		dist:     dist,
		maxLen:   maxLen,
		maxPaths: maxPaths,
		onPath:   make([]bool, f.grid.Len()),
		first:    first,
		out:      []Path{first},
	}
	e.walk(from)
	return e.out, nil
}

type enumeration struct {
	grid     *gamemap.Grid
	goal     gamemap.Cell
	dist     map[gamemap.Cell]int
	maxLen   int
	maxPaths int

	first  Path // seeded from A*, not emitted again
	onPath []bool
	path   Path
	out    []Path
	steps  int
}

func (e *enumeration) done() bool {
	return len(e.out) >= e.maxPaths || e.steps >= maxExpansions
}

func (e *enumeration) walk(n gamemap.Node) {
	e.steps++
	e.path = append(e.path, n.Cell)
	e.onPath[n.Index] = true
	defer func() {
		e.path = e.path[:len(e.path)-1]
		e.onPath[n.Index] = false
	}()

	if n.Cell == e.goal {
		if !slices.Equal(e.path, e.first) {
			e.out = append(e.out, append(Path(nil), e.path...))
		}
		return
	}
	for _, nb := range e.grid.Neighbors(n.Cell) {
		if e.done() {
			return
		}
		if !nb.Walkable || e.onPath[nb.Index] {
			continue
		}
		d, ok := e.dist[nb.Cell]
		if !ok || len(e.path)+1+d > e.maxLen {
			continue
		}
		e.walk(nb)
	}
}
