package generate

import (
	"strings"

	"coin-dungeon/internal/gamemap"
)

// WallKind tells which neighbourhood a wall's mask was built from.
type WallKind uint8

const (
	// WallBasic touches floor on at least one cardinal side. Its mask has 4
	// bits in gamemap.CardinalDirections order.
	WallBasic WallKind = iota
	// WallCorner touches floor only diagonally. Its mask has 8 bits in
	// gamemap.EightDirections order.
	WallCorner
)

func (k WallKind) String() string {
	if k == WallCorner {
		return "corner"
	}
	return "basic"
}

// Wall is one classified wall cell. Bit i of Mask is set when the i-th
// neighbour in the kind's direction order is floor.
type Wall struct {
	Kind WallKind
	Mask uint8
}

// Key renders the mask as a bit string, first direction first, e.g. "0101".
// Tile selection keys on this string.
func (w Wall) Key() string {
	n := 4
	if w.Kind == WallCorner {
		n = 8
	}
	var b strings.Builder
	b.Grow(n)
	for i := range n {
		if w.Mask&(1<<i) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// WallSet maps every wall cell to its classification.
type WallSet map[gamemap.Cell]Wall

// Cells returns the wall cells as a set.
func (ws WallSet) Cells() gamemap.CellSet {
	s := gamemap.NewCellSet()
	for c := range ws {
		s.Put(c)
	}
	return s
}

// Count returns how many walls of kind k the set holds.
func (ws WallSet) Count(k WallKind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == k {
			n++
		}
	}
	return n
}

// ClassifyWalls derives the wall ring around floor. A cell cardinally next
// to floor is a basic wall; a cell only diagonally next to floor is a corner
// wall.
func ClassifyWalls(floor gamemap.CellSet) WallSet {
	walls := make(WallSet)
	floor.Each(func(c gamemap.Cell) {
		for _, d := range gamemap.CardinalDirections {
			n := c.Add(d)
			if _, done := walls[n]; done || floor.Has(n) {
				continue
			}
			walls[n] = Wall{Kind: WallBasic, Mask: neighborMask(floor, n, gamemap.CardinalDirections[:])}
		}
	})
	floor.Each(func(c gamemap.Cell) {
		for _, d := range gamemap.DiagonalDirections {
			n := c.Add(d)
			if _, done := walls[n]; done || floor.Has(n) {
				continue
			}
			walls[n] = Wall{Kind: WallCorner, Mask: neighborMask(floor, n, gamemap.EightDirections[:])}
		}
	})
	return walls
}

func neighborMask(floor gamemap.CellSet, c gamemap.Cell, dirs []gamemap.Cell) uint8 {
	var m uint8
	for i, d := range dirs {
		if floor.Has(c.Add(d)) {
			m |= 1 << i
		}
	}
	return m
}
