package render

// Camera translates between dungeon coordinates and screen coordinates.
// Dungeon levels are wider than most terminals, so the camera pans.
type Camera struct {
	OffsetY    int
	OffsetX    int
	ViewHeight int // in terminal rows
	ViewWidth  int // in terminal columns
}

// NewCamera creates a camera centered on dungeon position (cy, cx).
func NewCamera(cy, cx, viewH, viewW int) *Camera {
	c := &Camera{ViewHeight: viewH, ViewWidth: viewW}
	c.Center(cy, cx)
	return c
}

// Center repositions the camera so dungeon position (cy, cx) is in the middle.
func (c *Camera) Center(cy, cx int) {
	c.OffsetY = cy - c.ViewHeight/2
	c.OffsetX = cx - c.ViewWidth/2
}

// Pan moves the camera by (dy, dx), clamping against the level bounds so at
// least part of the level stays on screen.
func (c *Camera) Pan(dy, dx, maxY, maxX int) {
	c.OffsetY += dy
	c.OffsetX += dx
	if c.OffsetY > maxY-1 {
		c.OffsetY = maxY - 1
	}
	if c.OffsetY < -c.ViewHeight+1 {
		c.OffsetY = -c.ViewHeight + 1
	}
	if c.OffsetX > maxX-1 {
		c.OffsetX = maxX - 1
	}
	if c.OffsetX < -c.ViewWidth+1 {
		c.OffsetX = -c.ViewWidth + 1
	}
}

// WorldToScreen converts dungeon (wy, wx) to screen (sy, sx).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wy, wx int) (sy, sx int, visible bool) {
	sy = wy - c.OffsetY
	sx = wx - c.OffsetX
	visible = sy >= 0 && sy < c.ViewHeight && sx >= 0 && sx < c.ViewWidth
	return
}

// ScreenToWorld converts screen (sy, sx) to dungeon coordinates.
func (c *Camera) ScreenToWorld(sy, sx int) (int, int) {
	return sy + c.OffsetY, sx + c.OffsetX
}
