package gamemap

// Region is an axis-aligned rectangle given by its minimum corner and size.
// The maximum corner is exclusive.
type Region struct {
	Min  Cell
	Size Cell
}

// NewRegion builds a region from its origin and dimensions.
func NewRegion(x, y, w, h int) Region {
	return Region{Min: Cell{x, y}, Size: Cell{w, h}}
}

// Max returns the exclusive maximum corner.
func (r Region) Max() Cell {
	return r.Min.Add(r.Size)
}

// Center returns the center cell of the region.
func (r Region) Center() Cell {
	return Cell{r.Min.X + r.Size.X/2, r.Min.Y + r.Size.Y/2}
}

// Area returns the number of cells covered by r.
func (r Region) Area() int {
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return 0
	}
	return r.Size.X * r.Size.Y
}

// Contains reports whether c lies inside r.
func (r Region) Contains(c Cell) bool {
	m := r.Max()
	return c.X >= r.Min.X && c.X < m.X && c.Y >= r.Min.Y && c.Y < m.Y
}

// Shrink returns r with n cells removed from every edge. The result may be empty.
func (r Region) Shrink(n int) Region {
	s := Region{
		Min:  Cell{r.Min.X + n, r.Min.Y + n},
		Size: Cell{r.Size.X - 2*n, r.Size.Y - 2*n},
	}
	if s.Size.X < 0 {
		s.Size.X = 0
	}
	if s.Size.Y < 0 {
		s.Size.Y = 0
	}
	return s
}

// Intersects reports whether r and other share at least one cell.
func (r Region) Intersects(other Region) bool {
	rm, om := r.Max(), other.Max()
	return r.Min.X < om.X && rm.X > other.Min.X &&
		r.Min.Y < om.Y && rm.Y > other.Min.Y
}

// Union returns the smallest region covering both r and other. An empty
// region is ignored.
func (r Region) Union(other Region) Region {
	if r.Area() == 0 {
		return other
	}
	if other.Area() == 0 {
		return r
	}
	rm, om := r.Max(), other.Max()
	lo := Cell{min(r.Min.X, other.Min.X), min(r.Min.Y, other.Min.Y)}
	hi := Cell{max(rm.X, om.X), max(rm.Y, om.Y)}
	return Region{Min: lo, Size: hi.Sub(lo)}
}

// Cells returns every cell of r in row-major order.
func (r Region) Cells() []Cell {
	out := make([]Cell, 0, r.Area())
	m := r.Max()
	for y := r.Min.Y; y < m.Y; y++ {
		for x := r.Min.X; x < m.X; x++ {
			out = append(out, Cell{x, y})
		}
	}
	return out
}
