package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"coin-dungeon/internal/gamemap"
	"coin-dungeon/internal/generate"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 5

// Renderer draws a level onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	depth  int // 0-indexed depth for theme selection
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, depth int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(gamemap.Cell{}, w, max(h-hudRows, 1)),
		depth:  depth,
	}
}

// SetDepth updates the theme depth.
func (r *Renderer) SetDepth(depth int) { r.depth = depth }

// CenterOn recenters the camera on c.
func (r *Renderer) CenterOn(c gamemap.Cell) { r.camera.Center(c) }

// Pan moves the camera by dx, dy cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// Resize adapts the viewport after the terminal size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// DrawFrame renders terrain and overlay. The caller draws the HUD and shows
// the screen.
func (r *Renderer) DrawFrame(lvl *generate.Level, ov Overlay) {
	r.screen.Clear()
	r.drawMap(lvl)
	r.drawMarks(ov)
}

// drawMap renders floor and wall cells using the depth theme.
func (r *Renderer) drawMap(lvl *generate.Level) {
	theme := ThemeFor(r.depth)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	lvl.Floor.Each(func(c gamemap.Cell) {
		if sx, sy, ok := r.camera.WorldToScreen(c); ok {
			r.putGlyph(sx, sy, theme.Floor, style)
		}
	})
	for c, w := range lvl.Walls {
		if sx, sy, ok := r.camera.WorldToScreen(c); ok {
			r.putGlyph(sx, sy, WallGlyph(theme, w), style)
		}
	}
}

func (r *Renderer) drawMarks(ov Overlay) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for c, m := range ov.Marks() {
		sx, sy, ok := r.camera.WorldToScreen(c)
		if !ok {
			continue
		}
		style := base
		if m == MarkPath {
			style = pathStyle
		}
		r.putGlyph(sx, sy, m.glyph(), style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
