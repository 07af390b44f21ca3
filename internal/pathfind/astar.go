package pathfind

import (
	"fmt"

	"coin-dungeon/internal/gamemap"
)

// Finder runs searches against one level grid. The grid is never modified;
// each search keeps its own scratch state, so a Finder may be shared by
// concurrent callers.
type Finder struct {
	grid *gamemap.Grid

	// MaxPaths caps how many paths AllPaths returns.
	MaxPaths int
	// MaxPathLength caps the cells in one enumerated path. Zero picks a
	// length from the endpoints' distance.
	MaxPathLength int
}

// New returns a Finder for grid.
func New(grid *gamemap.Grid) *Finder {
	return &Finder{grid: grid, MaxPaths: DefaultMaxPaths}
}

// Grid returns the grid the finder searches.
func (f *Finder) Grid() *gamemap.Grid {
	return f.grid
}

// FindPath returns a shortest 4-connected path from start to goal.
func (f *Finder) FindPath(start, goal gamemap.Cell) (Path, error) {
	return f.search(start, goal, nil)
}

// FindPathAvoiding is FindPath with every cell within radius of threat
// treated as blocked. The start cell is exempt since the mover already
// stands there, so the returned path's first cell may lie inside the radius.
func (f *Finder) FindPathAvoiding(start, goal, threat gamemap.Cell, radius float64) (Path, error) {
	return f.search(start, goal, func(c gamemap.Cell) bool {
		return c.Distance(threat) <= radius
	})
}

// endpoint resolves c to a walkable node.
func (f *Finder) endpoint(c gamemap.Cell) (gamemap.Node, error) {
	n, ok := f.grid.NodeAt(c)
	if !ok || !n.Walkable {
		return gamemap.Node{}, fmt.Errorf("%w: %v", ErrInvalidEndpoint, c)
	}
	return n, nil
}

func (f *Finder) search(start, goal gamemap.Cell, blocked func(gamemap.Cell) bool) (Path, error) {
	from, err := f.endpoint(start)
	if err != nil {
		return nil, err
	}
	to, err := f.endpoint(goal)
	if err != nil {
		return nil, err
	}

	size := f.grid.Len()
	g := make([]int, size)
	parent := make([]int, size)
	closed := make([]bool, size)
	open := newOpenSet(size)

	parent[from.Index] = -1
	h := start.Manhattan(goal)
	open.add(from.Index, h, h)

	for open.Len() > 0 {
		cur := open.next()
		if cur == to.Index {
			return f.reconstruct(parent, cur), nil
		}
		closed[cur] = true

		node, _ := f.grid.NodeByIndex(cur)
		for _, nb := range f.grid.Neighbors(node.Cell) {
			if !nb.Walkable || closed[nb.Index] {
				continue
			}
			if blocked != nil && blocked(nb.Cell) {
				continue
			}
			cost := g[cur] + 1
			if open.contains(nb.Index) && cost >= g[nb.Index] {
				continue
			}
			g[nb.Index] = cost
			parent[nb.Index] = cur
			h := nb.Cell.Manhattan(goal)
			open.add(nb.Index, cost+h, h)
		}
	}
	return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, goal)
}

// reconstruct walks predecessor indices back from end and reverses them.
func (f *Finder) reconstruct(parent []int, end int) Path {
	var p Path
	for i := end; i >= 0; i = parent[i] {
		n, _ := f.grid.NodeByIndex(i)
		p = append(p, n.Cell)
	}
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return p
}
