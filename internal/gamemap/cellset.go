package gamemap

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is an unordered set of cells. The zero value is not usable; build
// one with NewCellSet.
type CellSet = mapset.Set[Cell]

// NewCellSet returns a set holding cells.
func NewCellSet(cells ...Cell) CellSet {
	s := mapset.New[Cell]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

// Merge adds every cell of src into dst.
func Merge(dst, src CellSet) {
	src.Each(func(c Cell) {
		dst.Put(c)
	})
}

// SortedCells returns the members of s in row-major order.
func SortedCells(s CellSet) []Cell {
	out := make([]Cell, 0, s.Size())
	s.Each(func(c Cell) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// BoundsOf returns the smallest region covering every cell in cells.
// ok is false when cells is empty.
func BoundsOf(cells []Cell) (r Region, ok bool) {
	if len(cells) == 0 {
		return Region{}, false
	}
	lo, hi := cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return Region{Min: lo, Size: Cell{hi.X - lo.X + 1, hi.Y - lo.Y + 1}}, true
}
