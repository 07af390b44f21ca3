// Package viewer is an interactive terminal preview of generated levels.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"coin-dungeon/internal/coins"
	"coin-dungeon/internal/config"
	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
	"coin-dungeon/internal/pathfind"
	"coin-dungeon/internal/render"
	"coin-dungeon/internal/spawn"
)

// PathMode selects which route is drawn from the player to the treasure.
type PathMode uint8

const (
	PathShortest PathMode = iota
	PathAvoiding
	PathRichest
	numPathModes
)

func (m PathMode) String() string {
	switch m {
	case PathShortest:
		return "shortest"
	case PathAvoiding:
		return "avoiding"
	case PathRichest:
		return "richest"
	}
	return "unknown"
}

// avoidRadius is the keep-away distance around the threat in PathAvoiding.
const avoidRadius = 3.0

// maxMessages caps the message log.
const maxMessages = 50

// Viewer owns the terminal and the level being shown.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	logger   *log.Logger
	logFile  io.Closer

	base     config.Config
	seed     int64
	seedRand *rand.Rand
	depth    int
	mode     PathMode

	level   *generate.Level
	finder  *pathfind.Finder
	spawned spawn.Result
	path    pathfind.Path

	messages []string
}

// New creates a Viewer with the screen initialized. Nothing is generated
// until Run. A nil logger writes to viewer.log in the data directory.
func New(cfg config.Config, logger *log.Logger) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	var logFile io.Closer
	if logger == nil {
		logger, logFile = openViewerLog()
	}
	v := newViewer(cfg, logger)
	v.logFile = logFile
	v.screen = screen
	v.renderer = render.NewRenderer(screen, 0)
	return v, nil
}

func newViewer(cfg config.Config, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	seed := cfg.ResolveSeed()
	return &Viewer{
		logger:   logger,
		base:     cfg,
		seed:     seed,
		seedRand: rand.New(rand.NewSource(seed)),
	}
}

// Run is the main loop. It returns when the user quits or the first level
// cannot be generated.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Fini()
	if v.logFile != nil {
		defer v.logFile.Close()
	}

	if err := v.loadLevel(ctx); err != nil {
		return err
	}
	v.addMessage("Arrows/hjkl pan, c recenter, n new seed, >/< depth, tab path mode, q quit.")

	for {
		v.draw()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return nil
			}
			v.processAction(ctx, action)
		}
	}
}

func (v *Viewer) draw() {
	v.renderer.DrawFrame(v.level, render.Overlay{Spawn: &v.spawned, Path: v.path})
	v.renderer.DrawHUD(v.status(), v.messages)
}

// processAction applies one action. A level that fails to generate leaves
// the previous one on screen.
func (v *Viewer) processAction(ctx context.Context, action Action) {
	switch action {
	case ActionNewSeed:
		prev := v.seed
		v.seed = v.seedRand.Int63()
		if !v.reload(ctx) {
			v.seed = prev
		}

	case ActionDescend:
		if v.depth >= MaxDepth-1 {
			v.addMessage("There is nowhere further to descend.")
			return
		}
		v.depth++
		if !v.reload(ctx) {
			v.depth--
		}

	case ActionAscend:
		if v.depth == 0 {
			v.addMessage("Already at the top.")
			return
		}
		v.depth--
		if !v.reload(ctx) {
			v.depth++
		}

	case ActionCyclePath:
		v.mode = (v.mode + 1) % numPathModes
		v.updatePath()

	case ActionRecenter:
		if v.renderer != nil {
			v.renderer.CenterOn(v.spawned.Player)
		}

	default:
		dx, dy := actionToDelta(action)
		if (dx != 0 || dy != 0) && v.renderer != nil {
			v.renderer.Pan(dx, dy)
		}
	}
}

func (v *Viewer) reload(ctx context.Context) bool {
	if err := v.loadLevel(ctx); err != nil {
		v.logger.Printf("generate seed %d depth %d: %v", v.seed, v.depth, err)
		v.addMessage(fmt.Sprintf("Generation failed: %v", err))
		return false
	}
	return true
}

// loadLevel generates and populates the level for the current seed and
// depth. On error the current level is kept.
func (v *Viewer) loadLevel(ctx context.Context) error {
	cfg := levelConfig(v.base, v.depth)
	rng := rand.New(rand.NewSource(config.LevelSeed(v.seed, v.depth)))

	lvl, err := generate.GenerateLevel(ctx, cfg.Region(), cfg.MinRoomWidth, cfg.MinRoomHeight, cfg.Generation(rng))
	if err != nil {
		return err
	}
	grid := lvl.Grid()
	sc := spawn.DefaultConfig(rng)
	sc.Logger = v.logger
	res, err := spawn.Populate(lvl, grid, sc)
	if err != nil {
		return fmt.Errorf("populate: %w", err)
	}

	v.level = lvl
	v.finder = pathfind.New(grid)
	v.spawned = res
	v.updatePath()

	if v.renderer != nil {
		v.renderer.SetDepth(v.depth)
		v.renderer.CenterOn(res.Player)
	}

	saveLevelLog(LevelLog{
		Seed:      v.seed,
		Depth:     v.depth,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Rooms:     len(lvl.Rooms),
		Floor:     lvl.Floor.Size(),
		Walls:     len(lvl.Walls),
		Coins:     len(res.Coins),
		Digest:    lvl.Digest(),
		Generated: time.Now().UTC(),
	})
	v.addMessage(fmt.Sprintf("Depth %d: %d rooms, %d coins.", v.depth+1, len(lvl.Rooms), len(res.Coins)))
	return nil
}

// threat is the cell PathAvoiding keeps away from: the boss, else the
// first enemy.
func (v *Viewer) threat() (gamemap.Cell, bool) {
	if v.spawned.HasBoss {
		return v.spawned.Boss, true
	}
	if len(v.spawned.Enemies) > 0 {
		return v.spawned.Enemies[0], true
	}
	return gamemap.Cell{}, false
}

// updatePath recomputes the route for the current mode.
func (v *Viewer) updatePath() {
	start, goal := v.spawned.Player, v.spawned.Treasure
	var (
		p   pathfind.Path
		err error
	)
	switch v.mode {
	case PathShortest:
		p, err = v.finder.FindPath(start, goal)
	case PathAvoiding:
		if threat, ok := v.threat(); ok {
			p, err = v.finder.FindPathAvoiding(start, goal, threat, avoidRadius)
		} else {
			p, err = v.finder.FindPath(start, goal)
		}
	case PathRichest:
		p, err = coins.GetMaxCoinPath(v.finder, start, goal, v.spawned.CoinSet())
	}
	if err != nil {
		v.path = nil
		if errors.Is(err, pathfind.ErrNoPath) {
			v.addMessage(fmt.Sprintf("No %s path to the treasure.", v.mode))
		} else {
			v.logger.Printf("path %s: %v", v.mode, err)
		}
		return
	}
	v.path = p
}

func (v *Viewer) status() render.Status {
	s := render.Status{
		Seed:     v.seed,
		Depth:    v.depth,
		PathMode: v.mode.String(),
		PathCost: -1,
		Coins:    len(v.spawned.Coins),
	}
	if v.level != nil {
		s.Rooms = len(v.level.Rooms)
		s.Floor = v.level.Floor.Size()
		s.Walls = len(v.level.Walls)
	}
	if v.path != nil {
		s.PathCost = v.path.Cost()
		s.PathCoins = v.path.Count(v.spawned.CoinSet())
	}
	return s
}

func (v *Viewer) addMessage(msg string) {
	v.messages = append(v.messages, msg)
	if len(v.messages) > maxMessages {
		v.messages = v.messages[len(v.messages)-maxMessages:]
	}
}
