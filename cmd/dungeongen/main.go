// dungeongen generates levels headlessly, optionally printing them and
// recording them in a SQLite archive. Build:
//
//	go build -o dungeongen ./cmd/dungeongen
//
// Usage:
//
//	./dungeongen -seed 42 -count 5 -print
//	./dungeongen -seed 42 -count 5 -archive levels.db
//	./dungeongen -seed 42 -count 5 -archive levels.db -verify
//
// Every generator setting can also come from DUNGEON_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"coin-dungeon/internal/archive"
	"coin-dungeon/internal/config"
	"coin-dungeon/internal/generate"
	"coin-dungeon/internal/pathfind"
	"coin-dungeon/internal/render"
	"coin-dungeon/internal/spawn"
	"coin-dungeon/internal/telemetry"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[DUNGEONGEN] ")
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

type options struct {
	count  int
	print  bool
	verify bool
}

// errMismatch reports levels whose digest differs from the archived one.
var errMismatch = errors.New("levels differ from the archive")

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	var opts options
	fs.IntVar(&opts.count, "count", 1, "number of depths to generate")
	fs.BoolVar(&opts.print, "print", false, "print each level as text")
	fs.BoolVar(&opts.verify, "verify", false, "compare levels with the archive instead of saving them")
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		return err
	}
	if opts.count <= 0 {
		return fmt.Errorf("count %d must be positive", opts.count)
	}
	if opts.verify && cfg.ArchivePath == "" {
		return errors.New("-verify needs -archive")
	}

	shutdown, err := telemetry.Setup(ctx, "dungeongen", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	var store *archive.Store
	if cfg.ArchivePath != "" {
		store, err = archive.Open(cfg.ArchivePath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	seed := cfg.ResolveSeed()
	log.Printf("seed %d: %d level(s) of %dx%d", seed, opts.count, cfg.Width, cfg.Height)
	if opts.print {
		fmt.Fprint(out, render.Legend())
	}

	mismatches := 0
	for depth := range opts.count {
		lvl, res, err := generateDepth(ctx, cfg, seed, depth)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		rec := archive.FromLevel(seed, depth, lvl)
		fmt.Fprintf(out, "seed=%d depth=%d rooms=%d floor=%d walls=%d digest=%s\n",
			rec.Seed, rec.Depth, rec.RoomCount, rec.FloorCount, rec.WallCount, rec.Digest)

		if opts.print {
			ov := render.Overlay{Spawn: &res}
			if p, err := pathfind.New(lvl.Grid()).FindPath(res.Player, res.Treasure); err == nil {
				ov.Path = p
			}
			fmt.Fprint(out, render.Text(lvl, ov))
		}

		switch {
		case opts.verify:
			ok, err := verify(ctx, store, rec)
			if err != nil {
				return err
			}
			if !ok {
				mismatches++
			}
		case store != nil:
			if err := store.Save(ctx, rec); err != nil {
				if !errors.Is(err, archive.ErrAlreadyExists) {
					return err
				}
				log.Printf("depth %d already archived for seed %d", depth, seed)
			}
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d of %d %w", mismatches, opts.count, errMismatch)
	}
	return nil
}

// generateDepth builds and populates one depth from its derived seed.
func generateDepth(ctx context.Context, cfg config.Config, seed int64, depth int) (*generate.Level, spawn.Result, error) {
	rng := rand.New(rand.NewSource(config.LevelSeed(seed, depth)))
	lvl, err := generate.GenerateLevel(ctx, cfg.Region(), cfg.MinRoomWidth, cfg.MinRoomHeight, cfg.Generation(rng))
	if err != nil {
		return nil, spawn.Result{}, err
	}
	sc := spawn.DefaultConfig(rng)
	sc.Logger = log.Default()
	res, err := spawn.Populate(lvl, lvl.Grid(), sc)
	if err != nil {
		return nil, spawn.Result{}, fmt.Errorf("populate: %w", err)
	}
	return lvl, res, nil
}

// verify compares rec with the archived level of the same seed and depth.
func verify(ctx context.Context, store *archive.Store, rec archive.Record) (bool, error) {
	stored, err := store.Get(ctx, rec.Seed, rec.Depth)
	if errors.Is(err, archive.ErrNotFound) {
		log.Printf("depth %d: not archived", rec.Depth)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored.Digest != rec.Digest {
		log.Printf("depth %d: digest %s, archived %s", rec.Depth, rec.Digest, stored.Digest)
		return false, nil
	}
	return true, nil
}
