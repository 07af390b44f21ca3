package generate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/telemetry"
)

var (
	// ErrNoRooms is returned when partitioning yields no usable region.
	ErrNoRooms = errors.New("generate: partition produced no rooms")
	// ErrInvalidConfig is returned for configurations generation cannot run with.
	ErrInvalidConfig = errors.New("generate: invalid config")
)

// Level is the frozen output of one generation run.
type Level struct {
	Region gamemap.Region
	// Rooms are the partition leaves; RoomFloors[i] is the floor carved in Rooms[i].
	Rooms      []gamemap.Region
	RoomFloors []gamemap.CellSet
	Corridors  gamemap.CellSet
	Floor      gamemap.CellSet
	Walls      WallSet
}

// Centers returns the center of every room, in room order.
func (l *Level) Centers() []gamemap.Cell {
	out := make([]gamemap.Cell, len(l.Rooms))
	for i, r := range l.Rooms {
		out[i] = r.Center()
	}
	return out
}

// Grid builds the walkability index for the level.
func (l *Level) Grid() *gamemap.Grid {
	return gamemap.New(l.Floor, l.Walls.Cells())
}

// GenerateLevel partitions region into rooms, carves each one, connects the
// room centers with corridors and classifies the surrounding walls. With the
// same seed in cfg.Rand the result is identical across runs.
func GenerateLevel(ctx context.Context, region gamemap.Region, minRoomW, minRoomH int, cfg *Config) (*Level, error) {
	if err := validate(minRoomW, minRoomH, cfg); err != nil {
		return nil, err
	}

	_, span := telemetry.Tracer("generate").Start(ctx, "level.generate")
	defer span.End()

	rooms := Partition(region, minRoomW, minRoomH, cfg)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: region %dx%d, minimum %dx%d",
			ErrNoRooms, region.Size.X, region.Size.Y, minRoomW, minRoomH)
	}

	lvl := &Level{
		Region:     region,
		Rooms:      rooms,
		RoomFloors: make([]gamemap.CellSet, len(rooms)),
		Floor:      gamemap.NewCellSet(),
	}
	for i, r := range rooms {
		lvl.RoomFloors[i] = CarveRoom(r, cfg)
		gamemap.Merge(lvl.Floor, lvl.RoomFloors[i])
	}
	lvl.Corridors = ConnectRooms(lvl.Centers(), cfg)
	gamemap.Merge(lvl.Floor, lvl.Corridors)
	lvl.Walls = ClassifyWalls(lvl.Floor)

	span.SetAttributes(
		attribute.Int("level.width", region.Size.X),
		attribute.Int("level.height", region.Size.Y),
		attribute.Int("level.room_count", len(rooms)),
		attribute.Int("level.floor_count", lvl.Floor.Size()),
		attribute.Int("level.wall_count", len(lvl.Walls)),
	)
	return lvl, nil
}

func validate(minRoomW, minRoomH int, cfg *Config) error {
	switch {
	case cfg == nil || cfg.Rand == nil:
		return fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	case minRoomW <= 0 || minRoomH <= 0:
		return fmt.Errorf("%w: room minimum %dx%d", ErrInvalidConfig, minRoomW, minRoomH)
	case cfg.Offset < 0:
		return fmt.Errorf("%w: negative offset %d", ErrInvalidConfig, cfg.Offset)
	case cfg.Rooms == RoomOrganic && (cfg.WalkLength <= 0 || cfg.WalkIterations <= 0):
		return fmt.Errorf("%w: organic rooms need a positive walk length and iteration count", ErrInvalidConfig)
	}
	return nil
}

// Encode writes the level's floor and walls in a canonical text form: cells
// sorted row-major, one per line. Two levels encode identically exactly
// when their floor and wall sets match.
func (l *Level) Encode() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "region %d %d %d %d\n", l.Region.Min.X, l.Region.Min.Y, l.Region.Size.X, l.Region.Size.Y)

	floor := gamemap.SortedCells(l.Floor)
	fmt.Fprintf(&b, "floor %d\n", len(floor))
	for _, c := range floor {
		fmt.Fprintf(&b, "%d %d\n", c.X, c.Y)
	}

	walls := make([]gamemap.Cell, 0, len(l.Walls))
	for c := range l.Walls {
		walls = append(walls, c)
	}
	sort.Slice(walls, func(i, j int) bool { return walls[i].Less(walls[j]) })
	fmt.Fprintf(&b, "walls %d\n", len(walls))
	for _, c := range walls {
		w := l.Walls[c]
		fmt.Fprintf(&b, "%d %d %s %s\n", c.X, c.Y, w.Kind, w.Key())
	}
	return b.Bytes()
}

// Digest returns the hex SHA-256 of Encode.
func (l *Level) Digest() string {
	sum := sha256.Sum256(l.Encode())
	return hex.EncodeToString(sum[:])
}
