package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"stonedelve/internal/cave"
	"stonedelve/internal/spawn"
)

// DrawHUD renders the status bar at the bottom of the screen and flushes the
// frame. seed is the generation seed shown for reproducing a level.
func (r *Renderer) DrawHUD(c *cave.Cave, svc *spawn.Service, seed int64, message string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 3

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Depth %d (%d ft)  %dx%d  feeling %d  monsters %d  objects %d  seed %d",
		c.Depth, c.Depth*50, c.Height, c.Width, c.Feeling,
		svc.MonsterCount(), svc.ObjectCount(), seed)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if message == "" {
		message = "[enter] regenerate  [>/<] depth  [t] day/night  [arrows] pan  [q] quit"
	}
	r.drawText(0, hudY+2, message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
