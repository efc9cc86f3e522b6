// Package viewer is the interactive front end: it drives the level generator
// and displays the results on a tcell screen, with keys to regenerate, change
// depth, and pan around oversized levels.
package viewer

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"stonedelve/internal/cave"
	"stonedelve/internal/generate"
	"stonedelve/internal/render"
	"stonedelve/internal/spawn"
)

// Viewer owns one screen, one generator and the current level.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer

	gen    *generate.Generator
	svc    *spawn.Service
	player *generate.Player

	seed    int64
	level   *cave.Cave
	message string
}

// New creates a Viewer over an initialized screen, seeding the generator
// from seed.
func New(screen tcell.Screen, seed int64) *Viewer {
	svc := spawn.NewService()
	gen := generate.New(rand.New(rand.NewSource(seed)), svc)
	return &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		gen:      gen,
		svc:      svc,
		player:   &generate.Player{Depth: 1},
		seed:     seed,
	}
}

// Run generates the first level and loops on input until quit. The screen is
// finalized on exit.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	v.regenerate()
	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()

		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event; returns false to quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.regenerate()
		return true
	case tcell.KeyUp:
		v.pan(-4, 0)
		return true
	case tcell.KeyDown:
		v.pan(4, 0)
		return true
	case tcell.KeyLeft:
		v.pan(0, -8)
		return true
	case tcell.KeyRight:
		v.pan(0, 8)
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		v.regenerate()
	case '>':
		if v.player.Depth < generate.MaxDepth-1 {
			v.player.Depth++
			v.player.CreateUpStair = true
			v.regenerate()
		}
	case '<':
		if v.player.Depth > 0 {
			v.player.Depth--
			v.player.CreateDownStair = true
			v.regenerate()
		}
	case 't', 'T':
		v.gen.Daytime = !v.gen.Daytime
		v.regenerate()
	}
	return true
}

func (v *Viewer) regenerate() {
	c, err := v.gen.Generate(v.player)
	if err != nil {
		v.message = fmt.Sprintf("generation error: %v", err)
		return
	}
	v.level = c
	v.player.CreateUpStair = false
	v.player.CreateDownStair = false
	v.message = ""
	v.renderer.CenterOn(v.player.Y, v.player.X)
}

func (v *Viewer) pan(dy, dx int) {
	if v.level != nil {
		v.renderer.Pan(dy, dx, v.level)
	}
}

func (v *Viewer) draw() {
	if v.level == nil {
		return
	}
	v.renderer.DrawFrame(v.level, v.svc, cave.Point{Y: v.player.Y, X: v.player.X})
	v.renderer.DrawHUD(v.level, v.svc, v.seed, v.message)
}
