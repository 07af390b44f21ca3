// Package pathfind computes routes over a level's walkability grid.
package pathfind

import (
	"errors"

	"coin-dungeon/internal/gamemap"
)

var (
	// ErrInvalidEndpoint is returned when a start or goal cell has no
	// walkable node. No search is attempted.
	ErrInvalidEndpoint = errors.New("pathfind: invalid endpoint")
	// ErrNoPath is returned when the goal cannot be reached. It is an
	// expected outcome; callers compare with errors.Is.
	ErrNoPath = errors.New("pathfind: no path")
)

// Path is a sequence of cells from start to goal, both included.
type Path []gamemap.Cell

// Cost returns the number of steps along the path.
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first cell of the path.
func (p Path) Start() (gamemap.Cell, bool) {
	if len(p) == 0 {
		return gamemap.Cell{}, false
	}
	return p[0], true
}

// End returns the last cell of the path.
func (p Path) End() (gamemap.Cell, bool) {
	if len(p) == 0 {
		return gamemap.Cell{}, false
	}
	return p[len(p)-1], true
}

// Count returns how many cells of the path are members of set.
func (p Path) Count(set gamemap.CellSet) int {
	n := 0
	for _, c := range p {
		if set.Has(c) {
			n++
		}
	}
	return n
}
