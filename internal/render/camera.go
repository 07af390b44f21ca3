package render

import "coin-dungeon/internal/gamemap"

// Camera translates between world cells and screen cells.
// World X is multiplied by 2 because emoji occupy 2 terminal columns, and
// world Y grows upward while screen rows grow downward.
type Camera struct {
	OffsetX    int // world cell at the left edge
	OffsetY    int // world cell at the bottom edge
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c gamemap.Cell, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that c is in the middle of the view.
func (cam *Camera) Center(c gamemap.Cell) {
	// ViewWidth is in columns; each world tile is 2 columns wide.
	cam.OffsetX = c.X - (cam.ViewWidth/2)/2
	cam.OffsetY = c.Y - cam.ViewHeight/2
}

// Pan moves the view by dx, dy world cells.
func (cam *Camera) Pan(dx, dy int) {
	cam.OffsetX += dx
	cam.OffsetY += dy
}

// WorldToScreen converts world cell c to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (cam *Camera) WorldToScreen(c gamemap.Cell) (sx, sy int, visible bool) {
	sx = (c.X - cam.OffsetX) * 2
	sy = cam.ViewHeight - 1 - (c.Y - cam.OffsetY)
	visible = sx >= 0 && sx < cam.ViewWidth && sy >= 0 && sy < cam.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to the world cell drawn there.
func (cam *Camera) ScreenToWorld(sx, sy int) gamemap.Cell {
	return gamemap.Cell{X: sx/2 + cam.OffsetX, Y: cam.ViewHeight - 1 - sy + cam.OffsetY}
}
