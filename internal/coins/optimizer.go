// Package coins picks routes and targets by the coins they collect.
package coins

import (
	"fmt"
	"sort"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/pathfind"
)

// PathEnumerator lists candidate paths between two cells.
// *pathfind.Finder satisfies it.
type PathEnumerator interface {
	AllPaths(start, goal gamemap.Cell) ([]pathfind.Path, error)
}

// GetMaxCoinPath returns the candidate path from start to goal that walks
// over the most cells in coinSet. Ties go to the earliest candidate, and a
// path with no coins is still an answer. Candidates that do not end at goal
// are ignored; with none left the error is pathfind.ErrNoPath.
func GetMaxCoinPath(enum PathEnumerator, start, goal gamemap.Cell, coinSet gamemap.CellSet) (pathfind.Path, error) {
	candidates, err := enum.AllPaths(start, goal)
	if err != nil {
		return nil, err
	}
	var best pathfind.Path
	bestCoins := -1
	for _, p := range candidates {
		if end, ok := p.End(); !ok || end != goal {
			continue
		}
		if n := p.Count(coinSet); n > bestCoins {
			best, bestCoins = p, n
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no candidate from %v reaches %v", pathfind.ErrNoPath, start, goal)
	}
	return best, nil
}

// Reachable returns the coins within maxDist (Euclidean) of from, nearest
// first and row-major among equals.
func Reachable(from gamemap.Cell, coinSet gamemap.CellSet, maxDist float64) []gamemap.Cell {
	var out []gamemap.Cell
	coinSet.Each(func(c gamemap.Cell) {
		if from.Distance(c) <= maxDist {
			out = append(out, c)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		di, dj := from.Distance(out[i]), from.Distance(out[j])
		if di != dj {
			return di < dj
		}
		return out[i].Less(out[j])
	})
	return out
}
