// coin-dungeon opens an interactive preview of generated levels. Settings
// come from DUNGEON_* environment variables and the flags listed by -help.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"coin-dungeon/internal/config"
	"coin-dungeon/internal/telemetry"
	"coin-dungeon/internal/viewer"
)

func main() {
	cfg, err := config.ParseConfig(flag.NewFlagSet("coin-dungeon", flag.ContinueOnError), os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "coin-dungeon", cfg.OTelEndpoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx) //nolint:errcheck

	// The terminal belongs to the viewer; warnings go to its log file.
	v, err := viewer.New(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := v.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
