package gamemap

import (
	"math"
	"sort"
)

// Grid indexes every floor and wall cell of one level. Cells outside the
// generated area have no node and are never traversable.
//
// A Grid is built once after generation and read-only afterwards, so any
// number of goroutines may query it concurrently.
type Grid struct {
	// Bounds covers every floor and wall cell.
	Bounds Region
	// CellSize is the world-space width of one cell.
	CellSize float64
	// OriginX, OriginY is the world position of the lower-left corner of cell (0,0).
	OriginX, OriginY float64

	nodes    []*Node
	walkable int
}

// New builds a grid from the final floor set and the wall cells around it.
// Floor wins when a cell appears in both.
func New(floor, walls CellSet) *Grid {
	all := append(SortedCells(floor), SortedCells(walls)...)
	bounds, _ := BoundsOf(all)
	g := &Grid{
		Bounds:   bounds,
		CellSize: 1,
		nodes:    make([]*Node, bounds.Area()),
	}
	walls.Each(func(c Cell) {
		if floor.Has(c) {
			return
		}
		n := MakeWall(c)
		g.put(n)
	})
	floor.Each(func(c Cell) {
		n := MakeFloor(c)
		g.put(n)
		g.walkable++
	})
	return g
}

func (g *Grid) put(n Node) {
	i := g.index(n.Cell)
	n.Index = i
	g.nodes[i] = &n
}

func (g *Grid) index(c Cell) int {
	return (c.Y-g.Bounds.Min.Y)*g.Bounds.Size.X + (c.X - g.Bounds.Min.X)
}

// Len returns the size of the backing node array (present or not).
func (g *Grid) Len() int {
	return len(g.nodes)
}

// InBounds reports whether c lies within the grid's bounds.
func (g *Grid) InBounds(c Cell) bool {
	return g.Bounds.Contains(c)
}

// NodeAt returns the node at c. ok is false when c is out of bounds or has
// no node.
func (g *Grid) NodeAt(c Cell) (Node, bool) {
	if !g.InBounds(c) {
		return Node{}, false
	}
	n := g.nodes[g.index(c)]
	if n == nil {
		return Node{}, false
	}
	return *n, true
}

// NodeByIndex returns the node stored at backing index i.
func (g *Grid) NodeByIndex(i int) (Node, bool) {
	if i < 0 || i >= len(g.nodes) || g.nodes[i] == nil {
		return Node{}, false
	}
	return *g.nodes[i], true
}

// IsWalkable reports whether c has a walkable node.
func (g *Grid) IsWalkable(c Cell) bool {
	n, ok := g.NodeAt(c)
	return ok && n.Walkable
}

// Neighbors returns the present 4-connected neighbors of c in search order
// (left, right, down, up). Walkability is left to the caller.
func (g *Grid) Neighbors(c Cell) []Node {
	out := make([]Node, 0, 4)
	for _, d := range neighborOrder {
		if n, ok := g.NodeAt(c.Add(d)); ok {
			out = append(out, n)
		}
	}
	return out
}

// WalkableCount returns the number of walkable nodes.
func (g *Grid) WalkableCount() int {
	return g.walkable
}

// WalkableCells returns every walkable cell in row-major order.
func (g *Grid) WalkableCells() []Cell {
	out := make([]Cell, 0, g.walkable)
	for _, n := range g.nodes {
		if n != nil && n.Walkable {
			out = append(out, n.Cell)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// WorldToCell converts a world position to the cell containing it.
func (g *Grid) WorldToCell(wx, wy float64) Cell {
	size := g.cellSize()
	return Cell{
		X: int(math.Floor((wx - g.OriginX) / size)),
		Y: int(math.Floor((wy - g.OriginY) / size)),
	}
}

// CellToWorld returns the world position of the center of c.
func (g *Grid) CellToWorld(c Cell) (float64, float64) {
	size := g.cellSize()
	return g.OriginX + (float64(c.X)+0.5)*size, g.OriginY + (float64(c.Y)+0.5)*size
}

// NodeAtWorld resolves a world position to its node.
func (g *Grid) NodeAtWorld(wx, wy float64) (Node, bool) {
	return g.NodeAt(g.WorldToCell(wx, wy))
}

// NearestWalkable returns the walkable cell whose center is closest to the
// world position. Ties go to the first cell in row-major order.
func (g *Grid) NearestWalkable(wx, wy float64) (Cell, bool) {
	best := math.MaxFloat64
	var out Cell
	found := false
	for _, c := range g.WalkableCells() {
		cx, cy := g.CellToWorld(c)
		d := math.Hypot(cx-wx, cy-wy)
		if d < best {
			best = d
			out = c
			found = true
		}
	}
	return out, found
}

func (g *Grid) cellSize() float64 {
	if g.CellSize <= 0 {
		return 1
	}
	return g.CellSize
}
