package coins

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
	"coin-dungeon/internal/pathfind"
)

// fixedPaths is a PathEnumerator returning canned candidates.
type fixedPaths struct {
	paths []pathfind.Path
	err   error
}

func (f fixedPaths) AllPaths(start, goal gamemap.Cell) ([]pathfind.Path, error) {
	return f.paths, f.err
}

func cells(xy ...int) pathfind.Path {
	var p pathfind.Path
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, gamemap.Cell{X: xy[i], Y: xy[i+1]})
	}
	return p
}

func TestGetMaxCoinPath(t *testing.T) {
	start, goal := gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 2, Y: 0}
	short := cells(0, 0, 1, 0, 2, 0)
	long := cells(0, 0, 0, 1, 1, 1, 2, 1, 2, 0)
	coinsOnLong := gamemap.NewCellSet(gamemap.Cell{X: 0, Y: 1}, gamemap.Cell{X: 2, Y: 1})

	cases := []struct {
		name  string
		paths []pathfind.Path
		coins gamemap.CellSet
		want  pathfind.Path
	}{
		{"richer path wins regardless of length", []pathfind.Path{short, long}, coinsOnLong, long},
		{"tie goes to first found", []pathfind.Path{long, short}, gamemap.NewCellSet(), long},
		{"zero-coin path is still an answer", []pathfind.Path{short}, coinsOnLong, short},
		{"candidates off goal are skipped", []pathfind.Path{cells(0, 0, 0, 1), short}, coinsOnLong, short},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetMaxCoinPath(fixedPaths{paths: tc.paths}, start, goal, tc.coins)
			if err != nil {
				t.Fatalf("GetMaxCoinPath: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestGetMaxCoinPathNoCandidates(t *testing.T) {
	start, goal := gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 2, Y: 0}
	cases := []struct {
		name string
		enum fixedPaths
		want error
	}{
		{"empty", fixedPaths{}, pathfind.ErrNoPath},
		{"none reach goal", fixedPaths{paths: []pathfind.Path{cells(0, 0, 1, 0), nil}}, pathfind.ErrNoPath},
		{"enumerator error", fixedPaths{err: pathfind.ErrInvalidEndpoint}, pathfind.ErrInvalidEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GetMaxCoinPath(tc.enum, start, goal, gamemap.NewCellSet())
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

// TestGetMaxCoinPathWithFinder drives the optimizer through real
// enumeration: the coins sit on a detour the shortest path skips.
func TestGetMaxCoinPathWithFinder(t *testing.T) {
	floor := gamemap.NewCellSet(gamemap.NewRegion(0, 0, 5, 3).Cells()...)
	grid := gamemap.New(floor, gamemap.NewCellSet())
	start, goal := gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 4, Y: 0}
	coinSet := gamemap.NewCellSet(gamemap.Cell{X: 1, Y: 2}, gamemap.Cell{X: 3, Y: 2})

	finder := pathfind.New(grid)
	finder.MaxPaths = 1 << 12
	p, err := GetMaxCoinPath(finder, start, goal, coinSet)
	if err != nil {
		t.Fatalf("GetMaxCoinPath: %v", err)
	}
	if got := p.Count(coinSet); got != 2 {
		t.Errorf("path %v collects %d coins, want 2", p, got)
	}
	if s, _ := p.Start(); s != start {
		t.Errorf("path starts at %v", s)
	}
	if e, _ := p.End(); e != goal {
		t.Errorf("path ends at %v", e)
	}
}

// TestGetMaxCoinPathNeverPoorerThanShortest covers generated levels where the
// depth-first candidates are all long detours: with a coin on every cell of
// the shortest route, the chosen route must collect at least as many.
func TestGetMaxCoinPathNeverPoorerThanShortest(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		lvl, err := generate.GenerateLevel(context.Background(), gamemap.NewRegion(0, 0, 40, 30), 8, 8,
			&generate.Config{Offset: 1, Rand: rand.New(rand.NewSource(seed))})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		finder := pathfind.New(lvl.Grid())
		centers := lvl.Centers()
		start, goal := centers[0], centers[len(centers)-1]

		shortest, err := finder.FindPath(start, goal)
		if err != nil {
			t.Fatalf("seed %d: FindPath: %v", seed, err)
		}
		coinSet := gamemap.NewCellSet(shortest...)

		rich, err := GetMaxCoinPath(finder, start, goal, coinSet)
		if err != nil {
			t.Fatalf("seed %d: GetMaxCoinPath: %v", seed, err)
		}
		if got, want := rich.Count(coinSet), shortest.Count(coinSet); got < want {
			t.Errorf("seed %d: %v->%v collects %d coins, shortest path collects %d", seed, start, goal, got, want)
		}
	}
}

func TestReachable(t *testing.T) {
	coinSet := gamemap.NewCellSet(
		gamemap.Cell{X: 3, Y: 0},
		gamemap.Cell{X: 0, Y: 3},
		gamemap.Cell{X: 1, Y: 1},
		gamemap.Cell{X: 4, Y: 4},
	)
	got := Reachable(gamemap.Cell{}, coinSet, 3)
	want := []gamemap.Cell{{X: 1, Y: 1}, {X: 3, Y: 0}, {X: 0, Y: 3}}
	if len(got) != len(want) {
		t.Fatalf("Reachable = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Reachable = %v, want %v", got, want)
		}
	}
}
