package pathfind

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"coin-dungeon/internal/gamemap"
)

// gridPather implements paths.Pather over the walkable cells of a grid.
// gruid points are relative to the grid's minimum corner.
type gridPather struct {
	grid *gamemap.Grid
	nbs  paths.Neighbors
}

func (gp *gridPather) Neighbors(p gruid.Point) []gruid.Point {
	return gp.nbs.Cardinal(p, gp.passable)
}

func (gp *gridPather) passable(p gruid.Point) bool {
	return gp.grid.IsWalkable(gp.cell(p))
}

func (gp *gridPather) point(c gamemap.Cell) gruid.Point {
	o := gp.grid.Bounds.Min
	return gruid.Point{X: c.X - o.X, Y: c.Y - o.Y}
}

func (gp *gridPather) cell(p gruid.Point) gamemap.Cell {
	o := gp.grid.Bounds.Min
	return gamemap.Cell{X: p.X + o.X, Y: p.Y + o.Y}
}

func (gp *gridPather) pathRange() *paths.PathRange {
	size := gp.grid.Bounds.Size
	return paths.NewPathRange(gruid.NewRange(0, 0, size.X, size.Y))
}

// DistanceMap returns the walking distance from the nearest source to every
// walkable cell reachable from one. Non-walkable sources are ignored.
func DistanceMap(grid *gamemap.Grid, sources ...gamemap.Cell) map[gamemap.Cell]int {
	gp := &gridPather{grid: grid}
	var pts []gruid.Point
	for _, c := range sources {
		if grid.IsWalkable(c) {
			pts = append(pts, gp.point(c))
		}
	}
	out := make(map[gamemap.Cell]int)
	if len(pts) == 0 {
		return out
	}
	for _, n := range gp.pathRange().BreadthFirstMap(gp, pts, grid.Len()) {
		out[gp.cell(n.P)] = n.Cost
	}
	return out
}

// Connected reports whether every walkable cell of grid is reachable from
// every other one. An empty grid counts as connected.
func Connected(grid *gamemap.Grid) bool {
	cells := grid.WalkableCells()
	if len(cells) == 0 {
		return true
	}
	return len(DistanceMap(grid, cells[0])) == len(cells)
}
