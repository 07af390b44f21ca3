package viewer

import (
	"math"

	"coin-dungeon/internal/config"
)

// MaxDepth is the number of depths the viewer steps through.
const MaxDepth = 10

// levelConfig scales base for the given 0-indexed depth: deeper levels are
// larger and allow smaller rooms.
func levelConfig(base config.Config, depth int) config.Config {
	t := 0.0
	if MaxDepth > 1 {
		t = float64(depth) / float64(MaxDepth-1)
	}
	t = min(max(t, 0), 1)

	cfg := base
	cfg.Width = lerpi(base.Width, base.Width*3/2, t)
	cfg.Height = lerpi(base.Height, base.Height*3/2, t)
	cfg.MinRoomWidth = lerpi(base.MinRoomWidth, max(base.MinRoomWidth*2/3, 1), t)
	cfg.MinRoomHeight = lerpi(base.MinRoomHeight, max(base.MinRoomHeight*2/3, 1), t)
	return cfg
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
