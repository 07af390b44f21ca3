package generate

import "coin-dungeon/internal/gamemap"

// CarveRoom turns one partition leaf into floor cells. The region's center
// is always part of the result.
func CarveRoom(region gamemap.Region, cfg *Config) gamemap.CellSet {
	inner := region.Shrink(cfg.Offset)
	var floor gamemap.CellSet
	switch cfg.Rooms {
	case RoomOrganic:
		walked := gamemap.NewCellSet()
		for _, c := range randomWalk(region.Center(), cfg) {
			// Cells that wander outside the room are discarded.
			if inner.Contains(c) {
				walked.Put(c)
			}
		}
		walked.Put(region.Center())
		// A walk that leaves and re-enters the room can strand cells.
		floor = reachableFrom(region.Center(), walked)
	default:
		floor = gamemap.NewCellSet(inner.Cells()...)
		floor.Put(region.Center())
	}
	return floor
}

// reachableFrom returns the 4-connected component of set containing start.
func reachableFrom(start gamemap.Cell, set gamemap.CellSet) gamemap.CellSet {
	out := gamemap.NewCellSet(start)
	queue := []gamemap.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range gamemap.CardinalDirections {
			next := cur.Add(d)
			if set.Has(next) && !out.Has(next) {
				out.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return out
}

// randomWalk runs cfg.WalkIterations walks of cfg.WalkLength cardinal steps
// and returns every visited cell once, in first-visit order.
func randomWalk(start gamemap.Cell, cfg *Config) []gamemap.Cell {
	seen := gamemap.NewCellSet(start)
	visited := []gamemap.Cell{start}
	pos := start
	for range cfg.WalkIterations {
		for range cfg.WalkLength {
			pos = pos.Add(gamemap.CardinalDirections[cfg.Rand.Intn(len(gamemap.CardinalDirections))])
			if !seen.Has(pos) {
				seen.Put(pos)
				visited = append(visited, pos)
			}
		}
		if cfg.WalkRestart {
			pos = visited[cfg.Rand.Intn(len(visited))]
		}
	}
	return visited
}
