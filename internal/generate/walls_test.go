package generate

import (
	"testing"

	"coin-dungeon/internal/gamemap"
)

func TestWallKey(t *testing.T) {
	cases := []struct {
		wall Wall
		want string
	}{
		{Wall{Kind: WallBasic, Mask: 0}, "0000"},
		{Wall{Kind: WallBasic, Mask: 0b0001}, "1000"},
		{Wall{Kind: WallBasic, Mask: 0b1010}, "0101"},
		{Wall{Kind: WallCorner, Mask: 0b00000100}, "00100000"},
		{Wall{Kind: WallCorner, Mask: 0xFF}, "11111111"},
	}
	for _, tc := range cases {
		if got := tc.wall.Key(); got != tc.want {
			t.Errorf("Key(%+v) = %q, want %q", tc.wall, got, tc.want)
		}
	}
}

func TestClassifyWallsSingleCell(t *testing.T) {
	floor := gamemap.NewCellSet(gamemap.Cell{})
	walls := ClassifyWalls(floor)

	cases := []struct {
		name string
		at   gamemap.Cell
		kind WallKind
		key  string
	}{
		// Each basic wall sees the floor in the opposite direction.
		{"above", gamemap.Up, WallBasic, "0010"},
		{"right", gamemap.Right, WallBasic, "0001"},
		{"below", gamemap.Down, WallBasic, "1000"},
		{"left", gamemap.Left, WallBasic, "0100"},
		{"upper right", gamemap.UpRight, WallCorner, "00000100"},
		{"lower right", gamemap.RightDown, WallCorner, "00000001"},
		{"lower left", gamemap.DownLeft, WallCorner, "01000000"},
		{"upper left", gamemap.LeftUp, WallCorner, "00010000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := walls[tc.at]
			if !ok {
				t.Fatalf("no wall at %v", tc.at)
			}
			if w.Kind != tc.kind || w.Key() != tc.key {
				t.Errorf("wall at %v = %s %q; want %s %q", tc.at, w.Kind, w.Key(), tc.kind, tc.key)
			}
		})
	}
	if len(walls) != 8 {
		t.Errorf("got %d walls, want 8", len(walls))
	}
}

// TestClassifyWallsEnclosedRoom checks the ring around a closed room has no
// holes and every ring cell lands in exactly one category.
func TestClassifyWallsEnclosedRoom(t *testing.T) {
	for _, size := range []int{3, 4, 7} {
		room := gamemap.NewRegion(0, 0, size, size)
		floor := gamemap.NewCellSet(room.Cells()...)
		walls := ClassifyWalls(floor)

		ring := gamemap.NewRegion(-1, -1, size+2, size+2)
		for _, c := range ring.Cells() {
			if room.Contains(c) {
				if _, ok := walls[c]; ok {
					t.Errorf("size=%d: floor cell %v classified as wall", size, c)
				}
				continue
			}
			if _, ok := walls[c]; !ok {
				t.Errorf("size=%d: hole in wall ring at %v", size, c)
			}
		}
		if len(walls) != 4*size+4 {
			t.Errorf("size=%d: %d walls, want %d", size, len(walls), 4*size+4)
		}
		if got := walls.Count(WallCorner); got != 4 {
			t.Errorf("size=%d: %d corner walls, want 4", size, got)
		}
		if got := walls.Count(WallBasic); got != 4*size {
			t.Errorf("size=%d: %d basic walls, want %d", size, got, 4*size)
		}
	}
}

func TestClassifyWallsBasicWinsOverCorner(t *testing.T) {
	// (1,1) is diagonal to (0,0) but cardinal to (1,0).
	floor := gamemap.NewCellSet(gamemap.Cell{X: 0, Y: 0}, gamemap.Cell{X: 1, Y: 0})
	walls := ClassifyWalls(floor)
	w := walls[gamemap.Cell{X: 1, Y: 1}]
	if w.Kind != WallBasic {
		t.Errorf("kind = %s, want basic", w.Kind)
	}
	if w.Key() != "0010" {
		t.Errorf("key = %q, want 0010", w.Key())
	}
}

func TestWallSetCells(t *testing.T) {
	floor := gamemap.NewCellSet(gamemap.NewRegion(0, 0, 2, 2).Cells()...)
	walls := ClassifyWalls(floor)
	cells := walls.Cells()
	if cells.Size() != len(walls) {
		t.Fatalf("Cells size %d, want %d", cells.Size(), len(walls))
	}
	floor.Each(func(c gamemap.Cell) {
		if cells.Has(c) {
			t.Errorf("floor cell %v in wall set", c)
		}
	})
}
