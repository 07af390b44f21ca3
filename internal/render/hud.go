package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Status is the information shown in the HUD.
type Status struct {
	Seed      int64
	Depth     int
	Rooms     int
	Floor     int
	Walls     int
	PathMode  string
	PathCost  int // -1 when no path
	PathCoins int
	Coins     int
}

// StatusLine formats the first HUD line.
func (s Status) StatusLine() string {
	return fmt.Sprintf("Seed: %d  Depth: %d  Rooms: %d  Floor: %d  Walls: %d",
		s.Seed, s.Depth+1, s.Rooms, s.Floor, s.Walls)
}

// PathLine formats the second HUD line.
func (s Status) PathLine() string {
	if s.PathCost < 0 {
		return fmt.Sprintf("Path [%s]: none  Coins: %d", s.PathMode, s.Coins)
	}
	return fmt.Sprintf("Path [%s]: %d steps, %d/%d coins", s.PathMode, s.PathCost, s.PathCoins, s.Coins)
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, s.StatusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, s.PathLine(), tcell.StyleDefault.Foreground(tcell.ColorLightGreen))

	// Last 2 messages.
	start := max(len(messages)-2, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
