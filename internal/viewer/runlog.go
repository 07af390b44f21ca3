package viewer

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// LevelLog records one generated level.
type LevelLog struct {
	Seed      int64     `json:"seed"`
	Depth     int       `json:"depth"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Rooms     int       `json:"rooms"`
	Floor     int       `json:"floor"`
	Walls     int       `json:"walls"`
	Coins     int       `json:"coins"`
	Digest    string    `json:"digest"`
	Generated time.Time `json:"generated"`
}

// saveLevelLog appends entry as a single JSON line to levels.jsonl.
// Errors are discarded so a disk problem never interrupts the viewer.
func saveLevelLog(entry LevelLog) {
	dir, err := levelLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "levels.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// levelLogDir returns the directory where level logs are stored:
// $XDG_DATA_HOME/coin-dungeon, defaulting to ~/.local/share/coin-dungeon.
func levelLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coin-dungeon"), nil
}

// openViewerLog returns a logger appending to viewer.log next to the level
// log, and the file to close. It falls back to discarding output with a nil
// closer.
func openViewerLog() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard, "", 0)
	dir, err := levelLogDir()
	if err != nil {
		return discard, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "viewer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard, nil
	}
	return log.New(f, "[COIN-DUNGEON] ", log.LstdFlags), f
}
