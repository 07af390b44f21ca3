package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
)

// Plain-text symbols, indexed by Mark.
var markRunes = [...]rune{
	MarkNone:     ' ',
	MarkPath:     '*',
	MarkFire:     '^',
	MarkCoin:     '$',
	MarkEnemy:    'e',
	MarkBoss:     'B',
	MarkTreasure: 'T',
	MarkPlayer:   '@',
}

const (
	runeFloor  = '.'
	runeWall   = '#'
	runeCorner = '+'
	runeEmpty  = ' '
)

// Text renders lvl as ASCII, one line per row with the highest Y first.
// Trailing spaces are trimmed.
func Text(lvl *generate.Level, ov Overlay) string {
	cells := gamemap.SortedCells(lvl.Floor)
	cells = append(cells, gamemap.SortedCells(lvl.Walls.Cells())...)
	bounds, ok := gamemap.BoundsOf(cells)
	if !ok {
		return ""
	}
	marks := ov.Marks()

	var b strings.Builder
	row := make([]rune, bounds.Size.X)
	for y := bounds.Max().Y - 1; y >= bounds.Min.Y; y-- {
		for i := range row {
			c := gamemap.Cell{X: bounds.Min.X + i, Y: y}
			row[i] = cellRune(lvl, marks, c)
		}
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func cellRune(lvl *generate.Level, marks map[gamemap.Cell]Mark, c gamemap.Cell) rune {
	if m := marks[c]; m != MarkNone {
		return markRunes[m]
	}
	if lvl.Floor.Has(c) {
		return runeFloor
	}
	if w, ok := lvl.Walls[c]; ok {
		if w.Kind == generate.WallCorner {
			return runeCorner
		}
		return runeWall
	}
	return runeEmpty
}

var legend = []struct {
	glyph string
	sym   rune
	name  string
}{
	{GlyphPlayer, markRunes[MarkPlayer], "player"},
	{GlyphTreasure, markRunes[MarkTreasure], "treasure"},
	{GlyphBoss, markRunes[MarkBoss], "boss"},
	{GlyphEnemy, markRunes[MarkEnemy], "enemy"},
	{GlyphCoin, markRunes[MarkCoin], "coin"},
	{GlyphFire, markRunes[MarkFire], "fire"},
	{GlyphPath, markRunes[MarkPath], "path"},
}

// Legend describes the symbols used by Text alongside their terminal glyphs.
func Legend() string {
	var b strings.Builder
	for _, e := range legend {
		b.WriteString(runewidth.FillRight(e.glyph, 3))
		b.WriteRune(e.sym)
		b.WriteByte(' ')
		b.WriteString(e.name)
		b.WriteByte('\n')
	}
	return b.String()
}
