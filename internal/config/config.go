// Package config loads generator settings from the environment and flags.
package config

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
)

// Config holds the level generator settings shared by the viewer and the
// batch command. Environment variables set the defaults; flags override them.
type Config struct {
	Width          int    `env:"DUNGEON_WIDTH" envDefault:"60"`
	Height         int    `env:"DUNGEON_HEIGHT" envDefault:"40"`
	MinRoomWidth   int    `env:"DUNGEON_MIN_ROOM_WIDTH" envDefault:"8"`
	MinRoomHeight  int    `env:"DUNGEON_MIN_ROOM_HEIGHT" envDefault:"8"`
	Offset         int    `env:"DUNGEON_OFFSET" envDefault:"1"`
	Seed           int64  `env:"DUNGEON_SEED" envDefault:"0"`
	Organic        bool   `env:"DUNGEON_ORGANIC" envDefault:"false"`
	WalkLength     int    `env:"DUNGEON_WALK_LENGTH" envDefault:"20"`
	WalkIterations int    `env:"DUNGEON_WALK_ITERATIONS" envDefault:"10"`
	WalkRestart    bool   `env:"DUNGEON_WALK_RESTART" envDefault:"true"`
	ZCorridors     bool   `env:"DUNGEON_Z_CORRIDORS" envDefault:"false"`
	KeepUndersized bool   `env:"DUNGEON_KEEP_UNDERSIZED" envDefault:"false"`
	ArchivePath    string `env:"DUNGEON_ARCHIVE_PATH"`
	OTelEndpoint   string `env:"DUNGEON_OTEL_ENDPOINT"`
}

// Load reads Config from the environment alone.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseConfig loads the environment into Config, registers a flag for every
// field on fs and parses args over it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "dungeon width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "dungeon height in cells")
	fs.IntVar(&cfg.MinRoomWidth, "min-room-width", cfg.MinRoomWidth, "minimum room width")
	fs.IntVar(&cfg.MinRoomHeight, "min-room-height", cfg.MinRoomHeight, "minimum room height")
	fs.IntVar(&cfg.Offset, "offset", cfg.Offset, "inward room margin")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.Organic, "organic", cfg.Organic, "carve rooms with random walks")
	fs.IntVar(&cfg.WalkLength, "walk-length", cfg.WalkLength, "steps per random walk")
	fs.IntVar(&cfg.WalkIterations, "walk-iterations", cfg.WalkIterations, "random walks per room")
	fs.BoolVar(&cfg.WalkRestart, "walk-restart", cfg.WalkRestart, "restart each walk from a visited cell")
	fs.BoolVar(&cfg.ZCorridors, "z-corridors", cfg.ZCorridors, "carve Z-shaped corridors")
	fs.BoolVar(&cfg.KeepUndersized, "keep-undersized", cfg.KeepUndersized, "keep partition regions below the room minimum")
	fs.StringVar(&cfg.ArchivePath, "archive", cfg.ArchivePath, "SQLite level archive path")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings generation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("dungeon size %dx%d must be positive", c.Width, c.Height)
	case c.MinRoomWidth <= 0 || c.MinRoomHeight <= 0:
		return fmt.Errorf("room minimum %dx%d must be positive", c.MinRoomWidth, c.MinRoomHeight)
	case c.Offset < 0:
		return fmt.Errorf("offset %d must not be negative", c.Offset)
	case c.Organic && (c.WalkLength <= 0 || c.WalkIterations <= 0):
		return fmt.Errorf("organic rooms need positive walk length and iterations, got %d and %d", c.WalkLength, c.WalkIterations)
	}
	return nil
}

// Region returns the root region to partition.
func (c Config) Region() gamemap.Region {
	return gamemap.NewRegion(0, 0, c.Width, c.Height)
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Generation builds the generator config drawing from rng.
func (c Config) Generation(rng *rand.Rand) *generate.Config {
	g := &generate.Config{
		Offset:         c.Offset,
		WalkLength:     c.WalkLength,
		WalkIterations: c.WalkIterations,
		WalkRestart:    c.WalkRestart,
		KeepUndersized: c.KeepUndersized,
		Rand:           rng,
	}
	if c.Organic {
		g.Rooms = generate.RoomOrganic
	}
	if c.ZCorridors {
		g.CorridorStyle = generate.CorridorZShaped
	}
	return g
}

// LevelSeed derives the seed for one depth of a run so every depth is
// reproducible on its own.
func LevelSeed(seed int64, depth int) int64 {
	return seed + int64(depth)*1_000_003
}
