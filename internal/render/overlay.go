package render

import (
	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/pathfind"
	"coin-dungeon/internal/spawn"
)

// Mark is something drawn on top of the terrain. Higher marks hide lower ones.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkPath
	MarkFire
	MarkCoin
	MarkEnemy
	MarkBoss
	MarkTreasure
	MarkPlayer
)

// Overlay is the optional content drawn over a level.
type Overlay struct {
	Spawn *spawn.Result
	Path  pathfind.Path
}

// Marks flattens the overlay into one mark per cell.
func (ov Overlay) Marks() map[gamemap.Cell]Mark {
	out := make(map[gamemap.Cell]Mark)
	put := func(c gamemap.Cell, m Mark) {
		if m > out[c] {
			out[c] = m
		}
	}
	for _, c := range ov.Path {
		put(c, MarkPath)
	}
	if s := ov.Spawn; s != nil {
		for _, c := range s.Fires {
			put(c, MarkFire)
		}
		for _, c := range s.Coins {
			put(c, MarkCoin)
		}
		for _, c := range s.Enemies {
			put(c, MarkEnemy)
		}
		if s.HasBoss {
			put(s.Boss, MarkBoss)
		}
		put(s.Treasure, MarkTreasure)
		put(s.Player, MarkPlayer)
	}
	return out
}

// glyph returns the emoji for m.
func (m Mark) glyph() string {
	switch m {
	case MarkPath:
		return GlyphPath
	case MarkFire:
		return GlyphFire
	case MarkCoin:
		return GlyphCoin
	case MarkEnemy:
		return GlyphEnemy
	case MarkBoss:
		return GlyphBoss
	case MarkTreasure:
		return GlyphTreasure
	case MarkPlayer:
		return GlyphPlayer
	}
	return ""
}
