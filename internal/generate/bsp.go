package generate

import (
	"math/rand"

	"coin-dungeon/internal/gamemap"
)

// RoomStrategy selects how a partition leaf is turned into floor.
type RoomStrategy uint8

const (
	RoomRectangular RoomStrategy = iota
	RoomOrganic
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
)

// Config drives procedural generation for one level.
type Config struct {
	Rooms RoomStrategy
	// Offset is the inward margin, in cells, kept clear on every side of a room.
	Offset int

	// Random-walk parameters for RoomOrganic.
	WalkLength     int
	WalkIterations int
	WalkRestart    bool // restart each walk from a random visited cell

	CorridorStyle CorridorStyle

	// KeepUndersized emits partition regions smaller than the minimums
	// instead of dropping them.
	KeepUndersized bool

	Rand *rand.Rand
}

// Partition splits root breadth-first into leaf regions no smaller than
// minW x minH. Regions that can be neither split nor emitted are dropped
// unless cfg.KeepUndersized is set, so the leaves may cover less than root.
func Partition(root gamemap.Region, minW, minH int, cfg *Config) []gamemap.Region {
	var leaves []gamemap.Region
	queue := []gamemap.Region{root}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		if r.Size.X < minW || r.Size.Y < minH {
			if cfg.KeepUndersized && r.Area() > 0 {
				leaves = append(leaves, r)
			}
			continue
		}

		canH := r.Size.Y >= 2*minH && r.Size.Y > 1
		canW := r.Size.X >= 2*minW && r.Size.X > 1
		// Heads prefers a height split, tails a width split.
		heads := cfg.Rand.Intn(2) == 0
		switch {
		case canH && (heads || !canW):
			queue = append(queue, splitHorizontally(r, cfg.Rand)...)
		case canW:
			queue = append(queue, splitVertically(r, cfg.Rand)...)
		default:
			leaves = append(leaves, r)
		}
	}
	return leaves
}

// splitHorizontally cuts r into a lower and an upper part.
func splitHorizontally(r gamemap.Region, rng *rand.Rand) []gamemap.Region {
	y := 1 + rng.Intn(r.Size.Y-1)
	return []gamemap.Region{
		{Min: r.Min, Size: gamemap.Cell{X: r.Size.X, Y: y}},
		{Min: gamemap.Cell{X: r.Min.X, Y: r.Min.Y + y}, Size: gamemap.Cell{X: r.Size.X, Y: r.Size.Y - y}},
	}
}

// splitVertically cuts r into a left and a right part.
func splitVertically(r gamemap.Region, rng *rand.Rand) []gamemap.Region {
	x := 1 + rng.Intn(r.Size.X-1)
	return []gamemap.Region{
		{Min: r.Min, Size: gamemap.Cell{X: x, Y: r.Size.Y}},
		{Min: gamemap.Cell{X: r.Min.X + x, Y: r.Min.Y}, Size: gamemap.Cell{X: r.Size.X - x, Y: r.Size.Y}},
	}
}
