// Package spawn places the player, coins, enemies, boss, treasure and fires
// on a generated level.
package spawn

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
	"coin-dungeon/internal/pathfind"
)

var (
	// ErrRetryExhausted is returned when a random placement loop reaches
	// Config.MaxAttempts without finding a valid cell.
	ErrRetryExhausted = errors.New("spawn: retry limit reached")
	// ErrNoCandidate is returned when a deterministic choice has nothing to
	// choose from.
	ErrNoCandidate = errors.New("spawn: no candidate cell")
)

// Config controls placement density and spacing.
type Config struct {
	CoinsPerRoom   int
	EnemiesPerRoom int
	SpawnBoss      bool
	// BorderMargin is both the inset from room edges and the radius of the
	// all-floor neighbourhood an enemy needs.
	BorderMargin        int
	EnemySpacing        float64
	TreasureMinDistance float64
	FireCount           int
	FireSpacing         float64
	MaxAttempts         int

	Rand *rand.Rand
	// Logger receives warnings when a placement is skipped. Nil discards.
	Logger *log.Logger
}

// DefaultConfig returns the stock placement settings drawing from rng.
func DefaultConfig(rng *rand.Rand) Config {
	return Config{
		CoinsPerRoom:        5,
		EnemiesPerRoom:      2,
		SpawnBoss:           true,
		BorderMargin:        1,
		EnemySpacing:        15,
		TreasureMinDistance: 10,
		FireCount:           4,
		FireSpacing:         10,
		MaxAttempts:         100,
		Rand:                rng,
	}
}

// Result lists every placed cell.
type Result struct {
	Player   gamemap.Cell
	Treasure gamemap.Cell
	Coins    []gamemap.Cell
	Enemies  []gamemap.Cell
	Boss     gamemap.Cell
	HasBoss  bool
	Fires    []gamemap.Cell
}

// CoinSet returns the coins as a set.
func (r Result) CoinSet() gamemap.CellSet {
	return gamemap.NewCellSet(r.Coins...)
}

// Placer hands out floor cells, never the same one twice.
type Placer struct {
	cfg   Config
	floor gamemap.CellSet
	grid  *gamemap.Grid
	taken gamemap.CellSet
	log   *log.Logger
}

// NewPlacer returns a placer over floor. grid supplies walking distances.
func NewPlacer(floor gamemap.CellSet, grid *gamemap.Grid, cfg Config) *Placer {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 100
	}
	return &Placer{
		cfg:   cfg,
		floor: floor,
		grid:  grid,
		taken: gamemap.NewCellSet(),
		log:   logger,
	}
}

// Taken reports whether c already holds something.
func (p *Placer) Taken(c gamemap.Cell) bool {
	return p.taken.Has(c)
}

func (p *Placer) claim(c gamemap.Cell) {
	p.taken.Put(c)
}

// randomFloor samples cells of area until one is free floor and passes
// accept, giving up after MaxAttempts.
func (p *Placer) randomFloor(area gamemap.Region, accept func(gamemap.Cell) bool) (gamemap.Cell, error) {
	if area.Area() == 0 {
		return gamemap.Cell{}, fmt.Errorf("%w: empty area %+v", ErrRetryExhausted, area)
	}
	for range p.cfg.MaxAttempts {
		c := gamemap.Cell{
			X: area.Min.X + p.cfg.Rand.Intn(area.Size.X),
			Y: area.Min.Y + p.cfg.Rand.Intn(area.Size.Y),
		}
		if !p.floor.Has(c) || p.taken.Has(c) {
			continue
		}
		if accept != nil && !accept(c) {
			continue
		}
		return c, nil
	}
	return gamemap.Cell{}, fmt.Errorf("%w: %d attempts in %+v", ErrRetryExhausted, p.cfg.MaxAttempts, area)
}

// PlacePlayer puts the player on a random free floor cell of area.
func (p *Placer) PlacePlayer(area gamemap.Region) (gamemap.Cell, error) {
	c, err := p.randomFloor(area, nil)
	if err != nil {
		return c, fmt.Errorf("player: %w", err)
	}
	p.claim(c)
	return c, nil
}

// PlaceCoins drops up to CoinsPerRoom coins inside room, away from its
// edges. A coin that finds no free cell is skipped.
func (p *Placer) PlaceCoins(room gamemap.Region) []gamemap.Cell {
	var out []gamemap.Cell
	inner := room.Shrink(p.cfg.BorderMargin)
	for range p.cfg.CoinsPerRoom {
		c, err := p.randomFloor(inner, nil)
		if err != nil {
			p.log.Printf("coin skipped in room %+v: %v", room, err)
			continue
		}
		p.claim(c)
		out = append(out, c)
	}
	return out
}

// EnemyCandidates scans room row by row for cells whose whole margin
// neighbourhood is floor, keeping each one only if it is at least
// EnemySpacing from every candidate kept before it.
func (p *Placer) EnemyCandidates(room gamemap.Region) []gamemap.Cell {
	m := p.cfg.BorderMargin
	var out []gamemap.Cell
	for _, c := range room.Shrink(m).Cells() {
		if !p.openAround(c, m) || !spaced(c, out, p.cfg.EnemySpacing) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (p *Placer) openAround(c gamemap.Cell, m int) bool {
	for dy := -m; dy <= m; dy++ {
		for dx := -m; dx <= m; dx++ {
			if !p.floor.Has(gamemap.Cell{X: c.X + dx, Y: c.Y + dy}) {
				return false
			}
		}
	}
	return true
}

// spaced reports whether c is at least d from every cell of others.
func spaced(c gamemap.Cell, others []gamemap.Cell, d float64) bool {
	for _, o := range others {
		if c.Distance(o) < d {
			return false
		}
	}
	return true
}

// PlaceEnemies picks up to EnemiesPerRoom free candidates of room at random.
// placed holds enemies already on the level; new ones keep EnemySpacing
// from them too.
func (p *Placer) PlaceEnemies(room gamemap.Region, placed []gamemap.Cell) []gamemap.Cell {
	var avail []gamemap.Cell
	for _, c := range p.EnemyCandidates(room) {
		if !p.taken.Has(c) {
			avail = append(avail, c)
		}
	}
	var out []gamemap.Cell
	for range p.cfg.EnemiesPerRoom {
		var ok []gamemap.Cell
		for _, c := range avail {
			if !p.taken.Has(c) && spaced(c, placed, p.cfg.EnemySpacing) && spaced(c, out, p.cfg.EnemySpacing) {
				ok = append(ok, c)
			}
		}
		if len(ok) == 0 {
			if len(out) == 0 {
				p.log.Printf("no valid enemy position in room %+v", room)
			}
			break
		}
		c := ok[p.cfg.Rand.Intn(len(ok))]
		p.claim(c)
		out = append(out, c)
	}
	return out
}

// PlaceBoss claims the free candidate farthest from player by walking
// distance. Unreachable candidates are ignored; ties go to the earliest.
func (p *Placer) PlaceBoss(player gamemap.Cell, candidates []gamemap.Cell) (gamemap.Cell, error) {
	dist := pathfind.DistanceMap(p.grid, player)
	best, bestDist := gamemap.Cell{}, -1
	for _, c := range candidates {
		d, ok := dist[c]
		if !ok || p.taken.Has(c) {
			continue
		}
		if d > bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 {
		return best, fmt.Errorf("boss: %w", ErrNoCandidate)
	}
	p.claim(best)
	return best, nil
}

// PlaceTreasure claims a random free floor cell of area that is reachable
// from player and at least TreasureMinDistance away from it.
func (p *Placer) PlaceTreasure(player gamemap.Cell, area gamemap.Region) (gamemap.Cell, error) {
	dist := pathfind.DistanceMap(p.grid, player)
	c, err := p.randomFloor(area, func(c gamemap.Cell) bool {
		_, reachable := dist[c]
		return reachable && c.Distance(player) >= p.cfg.TreasureMinDistance
	})
	if err != nil {
		return c, fmt.Errorf("treasure: %w", err)
	}
	p.claim(c)
	return c, nil
}

// PlaceFires scatters up to FireCount fires over area, each at least
// FireSpacing from the others. It stops early when a fire finds no room.
func (p *Placer) PlaceFires(area gamemap.Region) []gamemap.Cell {
	var out []gamemap.Cell
	for len(out) < p.cfg.FireCount {
		c, err := p.randomFloor(area, func(c gamemap.Cell) bool {
			return spaced(c, out, p.cfg.FireSpacing)
		})
		if err != nil {
			p.log.Printf("placed %d of %d fires: %v", len(out), p.cfg.FireCount, err)
			break
		}
		p.claim(c)
		out = append(out, c)
	}
	return out
}

// Populate places everything on lvl: the player in the first room, coins in
// every room, enemies in every other room, then the boss, the treasure and
// the fires.
func Populate(lvl *generate.Level, grid *gamemap.Grid, cfg Config) (Result, error) {
	var res Result
	if cfg.Rand == nil {
		return res, errors.New("spawn: nil random source")
	}
	if len(lvl.Rooms) == 0 {
		return res, fmt.Errorf("player: %w", ErrNoCandidate)
	}
	p := NewPlacer(lvl.Floor, grid, cfg)

	player, err := p.PlacePlayer(lvl.Rooms[0])
	if err != nil {
		return res, err
	}
	res.Player = player

	for _, room := range lvl.Rooms {
		res.Coins = append(res.Coins, p.PlaceCoins(room)...)
	}

	var bossCandidates []gamemap.Cell
	for i, room := range lvl.Rooms {
		if i == 0 {
			continue
		}
		res.Enemies = append(res.Enemies, p.PlaceEnemies(room, res.Enemies)...)
		bossCandidates = append(bossCandidates, p.EnemyCandidates(room)...)
	}

	if cfg.SpawnBoss {
		boss, err := p.PlaceBoss(player, bossCandidates)
		if err != nil {
			p.log.Printf("no boss this level: %v", err)
		} else {
			res.Boss, res.HasBoss = boss, true
		}
	}

	treasure, err := p.PlaceTreasure(player, lvl.Region)
	if err != nil {
		return res, err
	}
	res.Treasure = treasure

	res.Fires = p.PlaceFires(lvl.Region)
	return res, nil
}
