package gamemap

import "math"

// Cell is one integer grid position. Cells compare and hash by value.
type Cell struct {
	X, Y int
}

// Add returns c offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// Sub returns c - d.
func (c Cell) Sub(d Cell) Cell {
	return Cell{c.X - d.X, c.Y - d.Y}
}

// Manhattan returns the 4-connected step distance between c and d.
func (c Cell) Manhattan(d Cell) int {
	return abs(c.X-d.X) + abs(c.Y-d.Y)
}

// Distance returns the Euclidean distance between c and d.
func (c Cell) Distance(d Cell) float64 {
	dx := float64(c.X - d.X)
	dy := float64(c.Y - d.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Less orders cells row-major (Y, then X). Used wherever output must be stable.
func (c Cell) Less(d Cell) bool {
	if c.Y != d.Y {
		return c.Y < d.Y
	}
	return c.X < d.X
}

// Direction offsets. Y grows upward.
var (
	Up        = Cell{0, 1}
	UpRight   = Cell{1, 1}
	Right     = Cell{1, 0}
	RightDown = Cell{1, -1}
	Down      = Cell{0, -1}
	DownLeft  = Cell{-1, -1}
	Left      = Cell{-1, 0}
	LeftUp    = Cell{-1, 1}
)

// CardinalDirections is the fixed order used for basic wall masks and for
// random-walk steps. Bit 0 of a basic mask is Up.
var CardinalDirections = [4]Cell{Up, Right, Down, Left}

// DiagonalDirections lists the four diagonal offsets, clockwise from UpRight.
var DiagonalDirections = [4]Cell{UpRight, RightDown, DownLeft, LeftUp}

// EightDirections is the fixed order used for corner wall masks.
var EightDirections = [8]Cell{Up, UpRight, Right, RightDown, Down, DownLeft, Left, LeftUp}

// neighborOrder is the expansion order for 4-connected searches.
var neighborOrder = [4]Cell{Left, Right, Down, Up}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
