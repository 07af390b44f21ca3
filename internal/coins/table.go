package coins

import "coin-dungeon/internal/gamemap"

// Table holds coin values over a region and, after Compute, the most coins
// collectable on a monotone walk from the region's minimum corner that only
// ever steps +X or +Y.
type Table struct {
	region gamemap.Region
	coins  []int
	best   []int
}

// NewTable returns an empty table covering region.
func NewTable(region gamemap.Region) *Table {
	n := region.Area()
	return &Table{region: region, coins: make([]int, n), best: make([]int, n)}
}

// FromSet returns a computed table with value 1 on every coin of set that
// lies in region.
func FromSet(region gamemap.Region, set gamemap.CellSet) *Table {
	t := NewTable(region)
	set.Each(func(c gamemap.Cell) {
		t.Set(c, 1)
	})
	t.Compute()
	return t
}

func (t *Table) index(c gamemap.Cell) (int, bool) {
	if !t.region.Contains(c) {
		return 0, false
	}
	return (c.Y-t.region.Min.Y)*t.region.Size.X + (c.X - t.region.Min.X), true
}

// Set stores the coin value at c. It reports false when c is outside the table.
func (t *Table) Set(c gamemap.Cell, value int) bool {
	i, ok := t.index(c)
	if ok {
		t.coins[i] = value
	}
	return ok
}

// Coin returns the coin value at c, zero outside the table.
func (t *Table) Coin(c gamemap.Cell) int {
	i, ok := t.index(c)
	if !ok {
		return 0
	}
	return t.coins[i]
}

// Compute fills the table. Call it again after changing coin values.
func (t *Table) Compute() {
	w := t.region.Size.X
	for y := 0; y < t.region.Size.Y; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			t.best[i] = t.coins[i]
			if x > 0 {
				t.best[i] = max(t.best[i], t.best[i-1]+t.coins[i])
			}
			if y > 0 {
				t.best[i] = max(t.best[i], t.best[i-w]+t.coins[i])
			}
		}
	}
}

// MaxCoins returns the most coins collectable from the minimum corner up to
// and including c, zero outside the table.
func (t *Table) MaxCoins(c gamemap.Cell) int {
	i, ok := t.index(c)
	if !ok {
		return 0
	}
	return t.best[i]
}
