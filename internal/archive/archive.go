// Package archive stores generated levels in SQLite so runs can be compared
// across builds.
package archive

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"coin-dungeon/internal/generate"
)

//go:embed schema.sql
var schema string

var (
	// ErrNotFound is returned when no level is stored for a seed and depth.
	ErrNotFound = errors.New("archive: level not found")
	// ErrAlreadyExists is returned when a seed and depth is already stored.
	ErrAlreadyExists = errors.New("archive: level already stored")
)

// Record is one archived level.
type Record struct {
	Seed       int64
	Depth      int
	Width      int
	Height     int
	RoomCount  int
	FloorCount int
	WallCount  int
	Digest     string
	Encoding   []byte
	CreatedAt  time.Time
}

// FromLevel summarises lvl for storage.
func FromLevel(seed int64, depth int, lvl *generate.Level) Record {
	return Record{
		Seed:       seed,
		Depth:      depth,
		Width:      lvl.Region.Size.X,
		Height:     lvl.Region.Size.Y,
		RoomCount:  len(lvl.Rooms),
		FloorCount: lvl.Floor.Size(),
		WallCount:  len(lvl.Walls),
		Digest:     lvl.Digest(),
		Encoding:   lvl.Encode(),
	}
}

// Store persists level records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts rec. A zero CreatedAt is stamped with the current time.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.Digest == "" {
		return fmt.Errorf("digest is required")
	}
	createdAt := rec.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO levels (
		   seed, depth, width, height, room_count, floor_count, wall_count,
		   digest, encoding, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed, rec.Depth, rec.Width, rec.Height,
		rec.RoomCount, rec.FloorCount, rec.WallCount,
		rec.Digest, rec.Encoding, createdAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: seed %d depth %d", ErrAlreadyExists, rec.Seed, rec.Depth)
		}
		return fmt.Errorf("save level: %w", err)
	}
	return nil
}

const selectColumns = `SELECT seed, depth, width, height, room_count, floor_count, wall_count,
	digest, encoding, created_at FROM levels`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var createdAt int64
	err := row.Scan(&rec.Seed, &rec.Depth, &rec.Width, &rec.Height,
		&rec.RoomCount, &rec.FloorCount, &rec.WallCount,
		&rec.Digest, &rec.Encoding, &createdAt)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}

// Get returns the level stored for seed and depth.
func (s *Store) Get(ctx context.Context, seed int64, depth int) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, selectColumns+` WHERE seed = ? AND depth = ?`, seed, depth)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: seed %d depth %d", ErrNotFound, seed, depth)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get level: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		selectColumns+` ORDER BY created_at DESC, seed, depth LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
