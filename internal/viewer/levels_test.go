package viewer

import (
	"testing"

	"coin-dungeon/internal/config"
)

func TestLevelConfigScalesWithDepth(t *testing.T) {
	base := config.Config{Width: 60, Height: 40, MinRoomWidth: 9, MinRoomHeight: 6, Offset: 1}

	first := levelConfig(base, 0)
	if first.Width != 60 || first.Height != 40 || first.MinRoomWidth != 9 || first.MinRoomHeight != 6 {
		t.Errorf("depth 0 should match base, got %+v", first)
	}

	last := levelConfig(base, MaxDepth-1)
	if last.Width != 90 || last.Height != 60 {
		t.Errorf("deepest size = %dx%d, want 90x60", last.Width, last.Height)
	}
	if last.MinRoomWidth != 6 || last.MinRoomHeight != 4 {
		t.Errorf("deepest room minimum = %dx%d, want 6x4", last.MinRoomWidth, last.MinRoomHeight)
	}
	if last.Offset != base.Offset {
		t.Errorf("offset changed to %d", last.Offset)
	}

	prev := first
	for depth := 1; depth < MaxDepth; depth++ {
		cfg := levelConfig(base, depth)
		if cfg.Width < prev.Width || cfg.MinRoomWidth > prev.MinRoomWidth {
			t.Errorf("depth %d does not scale monotonically: %+v after %+v", depth, cfg, prev)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("depth %d: %v", depth, err)
		}
		prev = cfg
	}
}

func TestLevelConfigClampsDepth(t *testing.T) {
	base := config.Config{Width: 20, Height: 20, MinRoomWidth: 4, MinRoomHeight: 4}
	if got := levelConfig(base, -3); got != levelConfig(base, 0) {
		t.Errorf("negative depth = %+v", got)
	}
	if got := levelConfig(base, 99); got != levelConfig(base, MaxDepth-1) {
		t.Errorf("past max depth = %+v", got)
	}
}

func TestLerpi(t *testing.T) {
	cases := []struct {
		a, b int
		t    float64
		want int
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{10, 4, 0.5, 7},
		{5, 6, 0.25, 5},
	}
	for _, tc := range cases {
		if got := lerpi(tc.a, tc.b, tc.t); got != tc.want {
			t.Errorf("lerpi(%d,%d,%v) = %d, want %d", tc.a, tc.b, tc.t, got, tc.want)
		}
	}
}
