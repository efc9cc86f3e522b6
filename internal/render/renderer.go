// Package render draws generated dungeon levels onto a tcell screen: terrain
// glyphs, the placed entities, and a status HUD.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"stonedelve/internal/cave"
	"stonedelve/internal/spawn"
)

// Renderer draws a dungeon level onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	// Reserve bottom 3 rows for the HUD.
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, h-3, w),
	}
}

// Resize refits the viewport after a terminal resize, keeping the center.
func (r *Renderer) Resize() {
	cy := r.camera.OffsetY + r.camera.ViewHeight/2
	cx := r.camera.OffsetX + r.camera.ViewWidth/2
	w, h := r.screen.Size()
	r.camera.ViewHeight = h - 3
	r.camera.ViewWidth = w
	r.camera.Center(cy, cx)
}

// CenterOn recenters the camera on dungeon position (y, x).
func (r *Renderer) CenterOn(y, x int) { r.camera.Center(y, x) }

// Pan scrolls the viewport by (dy, dx) within the level's bounds.
func (r *Renderer) Pan(dy, dx int, c *cave.Cave) {
	r.camera.Pan(dy, dx, c.Height, c.Width)
}

// DrawFrame renders terrain and entities. The HUD is drawn separately so
// callers can vary its contents.
func (r *Renderer) DrawFrame(c *cave.Cave, svc *spawn.Service, player cave.Point) {
	r.screen.Clear()
	r.drawTerrain(c)
	r.drawEntities(c, svc)

	if sy, sx, ok := r.camera.WorldToScreen(player.Y, player.X); ok {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(sx, sy, '@', nil, style)
	}
}

func (r *Renderer) drawTerrain(c *cave.Cave) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			sy, sx, ok := r.camera.WorldToScreen(y, x)
			if !ok {
				continue
			}
			t := FeatureTile(c, y, x)
			style := tcell.StyleDefault.Foreground(t.Color)
			if c.FlagsAt(y, x)&cave.FlagGlow != 0 && c.FeatAt(y, x) == cave.FeatFloor {
				style = style.Foreground(tcell.ColorWhite)
			}
			r.screen.SetContent(sx, sy, t.Glyph, nil, style)
		}
	}
}

// drawEntities overlays objects first, then monsters, so monsters standing on
// loot win the cell.
func (r *Renderer) drawEntities(c *cave.Cave, svc *spawn.Service) {
	for _, o := range svc.Objects() {
		sy, sx, ok := r.camera.WorldToScreen(o.Y, o.X)
		if !ok {
			continue
		}
		glyph, color := '?', tcell.ColorOlive
		switch {
		case o.Gold:
			glyph, color = '$', tcell.ColorYellow
		case o.Great:
			glyph, color = '?', tcell.ColorFuchsia
		case o.Good:
			glyph, color = '?', tcell.ColorAqua
		}
		r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
	}

	for _, p := range svc.Traps() {
		sy, sx, ok := r.camera.WorldToScreen(p.Y, p.X)
		if !ok {
			continue
		}
		r.screen.SetContent(sx, sy, '^', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	for _, m := range svc.Monsters() {
		sy, sx, ok := r.camera.WorldToScreen(m.Y, m.X)
		if !ok {
			continue
		}
		race := svc.Race(m.RaceID)
		style := tcell.StyleDefault.Foreground(PaletteColor(race.Color))
		if m.Sleeping {
			style = style.Dim(true)
		}
		r.screen.SetContent(sx, sy, race.Glyph, nil, style)
	}
}

// drawText writes a string at screen position (x, y), advancing by the
// display width of each rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
