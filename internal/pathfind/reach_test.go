package pathfind

import (
	"testing"

	"coin-dungeon/internal/gamemap"
)

func TestDistanceMap(t *testing.T) {
	g := gridFrom(
		"#####",
		"#...#",
		"###.#",
		"#...#",
		"#####",
	)
	dist := DistanceMap(g, gamemap.Cell{X: 1, Y: 1})
	cases := []struct {
		c    gamemap.Cell
		want int
	}{
		{gamemap.Cell{X: 1, Y: 1}, 0},
		{gamemap.Cell{X: 3, Y: 1}, 2},
		{gamemap.Cell{X: 3, Y: 2}, 3},
		{gamemap.Cell{X: 1, Y: 3}, 6},
	}
	for _, tc := range cases {
		if got, ok := dist[tc.c]; !ok || got != tc.want {
			t.Errorf("dist[%v] = %d,%v; want %d", tc.c, got, ok, tc.want)
		}
	}
	if len(dist) != g.WalkableCount() {
		t.Errorf("reached %d cells, want %d", len(dist), g.WalkableCount())
	}
	if _, ok := dist[gamemap.Cell{X: 0, Y: 0}]; ok {
		t.Error("wall should not be in the distance map")
	}
}

func TestDistanceMapNegativeOrigin(t *testing.T) {
	floor := gamemap.NewCellSet(gamemap.Cell{X: -3, Y: -2}, gamemap.Cell{X: -2, Y: -2}, gamemap.Cell{X: -1, Y: -2})
	g := gamemap.New(floor, gamemap.NewCellSet())
	dist := DistanceMap(g, gamemap.Cell{X: -1, Y: -2})
	if dist[gamemap.Cell{X: -3, Y: -2}] != 2 {
		t.Errorf("dist = %v", dist)
	}
}

func TestDistanceMapIgnoresBadSources(t *testing.T) {
	g := gridFrom("#..")
	if d := DistanceMap(g, gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 7, Y: 7}); len(d) != 0 {
		t.Errorf("dist = %v, want empty", d)
	}
}

func TestConnected(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"single room", []string{"...", "..."}, true},
		{"split by wall", []string{".#.", ".#."}, false},
		{"diagonal only", []string{".#", "#."}, false},
		{"empty", []string{"###"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Connected(gridFrom(tc.rows...)); got != tc.want {
				t.Errorf("Connected = %v, want %v", got, tc.want)
			}
		})
	}
}
