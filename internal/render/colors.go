package render

import (
	"github.com/gdamore/tcell/v2"

	"coin-dungeon/internal/generate"
)

// Theme holds the glyphs used to draw one depth's terrain. Emoji are
// rendered by the terminal with their own colors, so variation comes from
// the glyph choice rather than from tinting.
type Theme struct {
	Floor  string
	Wall   string // straight run, floor on one side
	Pillar string // floor on opposite or three or more sides
	Corner string // floor only diagonally
}

// Themes maps depth (0-indexed) to its tile set. Deeper levels reuse the last.
var Themes = []Theme{
	// Cobblestone cellar
	{Floor: "🟫", Wall: "🧱", Pillar: "🪨", Corner: "🟥"},
	// Frozen vault
	{Floor: "⬜", Wall: "🧊", Pillar: "💎", Corner: "🟦"},
	// Fungal warren
	{Floor: "🟩", Wall: "🍄", Pillar: "🌳", Corner: "🟢"},
	// Ember forge
	{Floor: "🟧", Wall: "🌋", Pillar: "🔥", Corner: "🟠"},
	// Void halls
	{Floor: "⬛", Wall: "💀", Pillar: "🦴", Corner: "🟣"},
}

// ThemeFor returns the theme for depth.
func ThemeFor(depth int) Theme {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(Themes) {
		depth = len(Themes) - 1
	}
	return Themes[depth]
}

// Entity glyphs.
const (
	GlyphPlayer   = "🧙"
	GlyphCoin     = "🪙"
	GlyphEnemy    = "👾"
	GlyphBoss     = "👹"
	GlyphTreasure = "💰"
	GlyphFire     = "🔥"
	GlyphPath     = "👣"
)

// pathStyle tints path cells so the route reads over the floor glyphs.
var pathStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)

// pillarKeys are the basic-wall masks drawn as free-standing pillars:
// floor on both opposite sides or on three or more sides.
var pillarKeys = map[string]bool{
	"1010": true, "0101": true,
	"1110": true, "1101": true, "1011": true, "0111": true,
	"1111": true,
}

// WallGlyph picks the theme glyph for a classified wall from its mask key.
func WallGlyph(t Theme, w generate.Wall) string {
	if w.Kind == generate.WallCorner {
		return t.Corner
	}
	if pillarKeys[w.Key()] {
		return t.Pillar
	}
	return t.Wall
}
