package generate

import (
	"math"

	"coin-dungeon/internal/gamemap"
)

// ConnectRooms links every room center into one component with a greedy
// nearest-neighbour tour starting at a random center. It does not minimise
// total corridor length and corridors may overlap.
func ConnectRooms(centers []gamemap.Cell, cfg *Config) gamemap.CellSet {
	corridors := gamemap.NewCellSet()
	if len(centers) == 0 {
		return corridors
	}
	remaining := make([]gamemap.Cell, len(centers))
	copy(remaining, centers)

	i := cfg.Rand.Intn(len(remaining))
	current := remaining[i]
	remaining = append(remaining[:i], remaining[i+1:]...)
	corridors.Put(current)

	for len(remaining) > 0 {
		i = nearest(current, remaining)
		next := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
		carveCorridor(corridors, current, next, cfg)
		current = next
	}
	return corridors
}

// nearest returns the index of the candidate closest to from. Ties go to the
// earliest candidate.
func nearest(from gamemap.Cell, candidates []gamemap.Cell) int {
	best, bestDist := -1, math.MaxFloat64
	for i, c := range candidates {
		if d := from.Distance(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// carveCorridor digs a tunnel from a to b, vertical leg first.
func carveCorridor(set gamemap.CellSet, a, b gamemap.Cell, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(set, a, b)
	default: // LShaped
		carveV(set, a.Y, b.Y, a.X)
		carveH(set, a.X, b.X, b.Y)
	}
}

func carveH(set gamemap.CellSet, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		set.Put(gamemap.Cell{X: x, Y: y})
	}
}

func carveV(set gamemap.CellSet, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		set.Put(gamemap.Cell{X: x, Y: y})
	}
}

func carveZShaped(set gamemap.CellSet, a, b gamemap.Cell) {
	midY := (a.Y + b.Y) / 2
	carveV(set, a.Y, midY, a.X)
	carveH(set, a.X, b.X, midY)
	carveV(set, midY, b.Y, b.X)
}
