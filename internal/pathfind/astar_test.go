package pathfind

import (
	"errors"
	"sync"
	"testing"

	"coin-dungeon/internal/gamemap"
)

// gridFrom builds a grid from rows of '.' (floor) and '#' (wall); any other
// rune leaves the cell empty. Row i is y == i.
func gridFrom(rows ...string) *gamemap.Grid {
	floor, walls := gamemap.NewCellSet(), gamemap.NewCellSet()
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case '.':
				floor.Put(gamemap.Cell{X: x, Y: y})
			case '#':
				walls.Put(gamemap.Cell{X: x, Y: y})
			}
		}
	}
	return gamemap.New(floor, walls)
}

// checkPath fails unless p runs from start to goal over walkable,
// 4-adjacent cells.
func checkPath(t *testing.T, g *gamemap.Grid, p Path, start, goal gamemap.Cell) {
	t.Helper()
	if s, _ := p.Start(); s != start {
		t.Fatalf("path starts at %v, want %v", s, start)
	}
	if e, _ := p.End(); e != goal {
		t.Fatalf("path ends at %v, want %v", e, goal)
	}
	for i, c := range p {
		if !g.IsWalkable(c) {
			t.Fatalf("step %d at %v is not walkable", i, c)
		}
		if i > 0 && p[i-1].Manhattan(c) != 1 {
			t.Fatalf("step %d jumps from %v to %v", i, p[i-1], c)
		}
	}
}

func TestFindPathStraightCorridor(t *testing.T) {
	g := gridFrom(
		"#########",
		"#.......#",
		"#########",
	)
	f := New(g)
	start, goal := gamemap.Cell{X: 1, Y: 1}, gamemap.Cell{X: 7, Y: 1}
	p, err := f.FindPath(start, goal)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	checkPath(t, g, p, start, goal)
	if len(p) != 7 || p.Cost() != 6 {
		t.Errorf("len=%d cost=%d, want 7 and 6", len(p), p.Cost())
	}
}

func TestFindPathSameCell(t *testing.T) {
	g := gridFrom("...")
	c := gamemap.Cell{X: 1, Y: 0}
	p, err := New(g).FindPath(c, c)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(p) != 1 || p.Cost() != 0 {
		t.Errorf("path = %v, want the single cell", p)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	g := gridFrom(
		".....",
		".###.",
		".#.#.",
		".#.#.",
		".....",
	)
	start, goal := gamemap.Cell{X: 2, Y: 2}, gamemap.Cell{X: 2, Y: 0}
	p, err := New(g).FindPath(start, goal)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	checkPath(t, g, p, start, goal)
	// Down out of the pocket, round a side and back along the top.
	if p.Cost() != 10 {
		t.Errorf("cost = %d, want 10", p.Cost())
	}
}

func TestFindPathErrors(t *testing.T) {
	g := gridFrom(
		"...#...",
		"...#...",
	)
	f := New(g)
	cases := []struct {
		name        string
		start, goal gamemap.Cell
		want        error
	}{
		{"disconnected", gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 6, Y: 1}, ErrNoPath},
		{"start on wall", gamemap.Cell{X: 3, Y: 0}, gamemap.Cell{X: 0, Y: 0}, ErrInvalidEndpoint},
		{"goal on wall", gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 3, Y: 1}, ErrInvalidEndpoint},
		{"start out of bounds", gamemap.Cell{X: -1, Y: 0}, gamemap.Cell{X: 0, Y: 0}, ErrInvalidEndpoint},
		{"goal out of bounds", gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 0, Y: 9}, ErrInvalidEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := f.FindPath(tc.start, tc.goal)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if p != nil {
				t.Errorf("got partial path %v", p)
			}
		})
	}
}

func TestFindPathMissingNode(t *testing.T) {
	// The gap at (1,0) is inside the bounds but has no node.
	g := gridFrom(". .")
	_, err := New(g).FindPath(gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 1, Y: 0})
	if !errors.Is(err, ErrInvalidEndpoint) {
		t.Fatalf("err = %v, want ErrInvalidEndpoint", err)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	g := gridFrom(
		"........",
		"........",
		"..##....",
		"........",
		"........",
	)
	f := New(g)
	start, goal := gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 7, Y: 4}
	first, err := f.FindPath(start, goal)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	checkPath(t, g, first, start, goal)
	if first.Cost() != start.Manhattan(goal) {
		t.Errorf("cost = %d, want %d", first.Cost(), start.Manhattan(goal))
	}
	for range 5 {
		again, _ := f.FindPath(start, goal)
		if len(again) != len(first) {
			t.Fatalf("path length changed: %d vs %d", len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("step %d differs: %v vs %v", i, again[i], first[i])
			}
		}
	}
}

func TestFindPathConcurrent(t *testing.T) {
	g := gridFrom(
		"..........",
		".########.",
		"..........",
		".########.",
		"..........",
	)
	f := New(g)
	start, goal := gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 9, Y: 4}
	want, err := f.FindPath(start, goal)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]Path, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = f.FindPath(start, goal)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if len(got) != len(want) {
			t.Fatalf("goroutine %d: length %d, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("goroutine %d: step %d = %v, want %v", i, j, got[j], want[j])
			}
		}
	}
}

func TestFindPathAvoiding(t *testing.T) {
	g := gridFrom(
		".......",
		".......",
		".......",
		".......",
		".......",
	)
	f := New(g)
	start, goal := gamemap.Cell{X: 0, Y: 2}, gamemap.Cell{X: 6, Y: 2}
	threat := gamemap.Cell{X: 3, Y: 2}

	cases := []struct {
		name   string
		radius float64
		ok     bool
	}{
		{"radius 1 leaves a detour", 1, true},
		{"radius 1.5 leaves a detour", 1.5, true},
		{"radius 2 seals the room", 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := f.FindPathAvoiding(start, goal, threat, tc.radius)
			if !tc.ok {
				if !errors.Is(err, ErrNoPath) {
					t.Fatalf("err = %v, want ErrNoPath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindPathAvoiding: %v", err)
			}
			checkPath(t, g, p, start, goal)
			for _, c := range p {
				if c.Distance(threat) <= tc.radius {
					t.Errorf("path enters radius at %v", c)
				}
			}
		})
	}

	// The unconstrained search still succeeds where avoidance fails.
	if _, err := f.FindPath(start, goal); err != nil {
		t.Errorf("FindPath: %v", err)
	}
}

func TestFindPathAvoidingStartInsideRadius(t *testing.T) {
	g := gridFrom(
		".....",
		".....",
		".....",
	)
	start := gamemap.Cell{X: 1, Y: 1}
	goal := gamemap.Cell{X: 4, Y: 1}
	p, err := New(g).FindPathAvoiding(start, goal, start, 0.5)
	if err != nil {
		t.Fatalf("FindPathAvoiding: %v", err)
	}
	checkPath(t, g, p, start, goal)
	if p.Cost() != 3 {
		t.Errorf("cost = %d, want 3", p.Cost())
	}
}

func TestFindPathAvoidingOnlyStartInsideRadius(t *testing.T) {
	g := gridFrom(
		".....",
		".....",
		".....",
	)
	threat := gamemap.Cell{X: 0, Y: 1}
	start, goal := gamemap.Cell{X: 1, Y: 1}, gamemap.Cell{X: 4, Y: 1}
	const radius = 1.2
	p, err := New(g).FindPathAvoiding(start, goal, threat, radius)
	if err != nil {
		t.Fatalf("FindPathAvoiding: %v", err)
	}
	checkPath(t, g, p, start, goal)
	if p[0].Distance(threat) > radius {
		t.Fatalf("start %v should lie inside the radius", p[0])
	}
	for _, c := range p[1:] {
		if c.Distance(threat) <= radius {
			t.Errorf("path enters the radius at %v", c)
		}
	}
}

func TestFindPathAvoidingGoalInsideRadius(t *testing.T) {
	g := gridFrom(".....")
	_, err := New(g).FindPathAvoiding(gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 4, Y: 0}, gamemap.Cell{X: 4, Y: 0}, 1)
	if !errors.Is(err, ErrNoPath) {
		t.Fatalf("err = %v, want ErrNoPath", err)
	}
}

func TestOpenSetOrder(t *testing.T) {
	s := newOpenSet(8)
	s.add(0, 5, 2)
	s.add(1, 4, 3)
	s.add(2, 4, 1)
	s.add(3, 4, 1) // same f and h as 2, queued later
	s.add(4, 6, 0)
	s.add(4, 3, 0) // decrease-key

	want := []int{4, 2, 3, 1, 0}
	for i, w := range want {
		if got := s.next(); got != w {
			t.Fatalf("pop %d = %d, want %d", i, got, w)
		}
	}
	if s.Len() != 0 || s.contains(4) {
		t.Error("open set should be empty")
	}
}
