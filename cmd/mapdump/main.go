// stonedelve-mapdump generates levels and prints them as colored text, for
// eyeballing generator output without a full-screen terminal session.
//
//	stonedelve-mapdump [--seed N] [--depth N] [--count N] [--stats]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"stonedelve/internal/cave"
	"stonedelve/internal/generate"
	"stonedelve/internal/spawn"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "generation seed")
	depth := flag.Int("depth", 1, "dungeon depth (0 = town)")
	count := flag.Int("count", 1, "number of levels to generate")
	stats := flag.Bool("stats", false, "print placement statistics instead of maps")
	flag.Parse()

	if *depth < 0 || *depth >= generate.MaxDepth {
		fmt.Fprintf(os.Stderr, "depth must be in [0, %d)\n", generate.MaxDepth)
		os.Exit(1)
	}

	svc := spawn.NewService()
	gen := generate.New(rand.New(rand.NewSource(*seed)), svc)

	for i := 0; i < *count; i++ {
		p := &generate.Player{Depth: *depth}
		c, err := gen.Generate(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		header := fmt.Sprintf("── depth %d  %dx%d  feeling %d  seed %d ──",
			c.Depth, c.Height, c.Width, c.Feeling, *seed)
		color.Bold.Println(header)

		if *stats {
			printStats(c, svc)
		} else {
			printLevel(c, svc, p)
		}
	}
}

// featureGlyphs maps terrain to a glyph and gookit color tag.
var featureGlyphs = map[cave.Feature]struct {
	glyph rune
	tag   color.Color
}{
	cave.FeatNone:       {' ', color.FgBlack},
	cave.FeatFloor:      {'.', color.FgDarkGray},
	cave.FeatRock:       {'#', color.FgBlack},
	cave.FeatWallInner:  {'#', color.FgGray},
	cave.FeatWallOuter:  {'#', color.FgGray},
	cave.FeatWallSolid:  {'#', color.FgGray},
	cave.FeatPerm:       {'#', color.FgWhite},
	cave.FeatMagma:      {'%', color.FgRed},
	cave.FeatQuartz:     {'%', color.FgLightWhite},
	cave.FeatMagmaGold:  {'*', color.FgYellow},
	cave.FeatQuartzGold: {'*', color.FgLightYellow},
	cave.FeatOpenDoor:   {'\'', color.FgYellow},
	cave.FeatBrokenDoor: {'\'', color.FgRed},
	cave.FeatClosedDoor: {'+', color.FgYellow},
	cave.FeatSecretDoor: {'#', color.FgGray},
	cave.FeatStairsDown: {'>', color.FgLightWhite},
	cave.FeatStairsUp:   {'<', color.FgLightWhite},
	cave.FeatRubble:     {':', color.FgRed},
	cave.FeatShop:       {'#', color.FgLightYellow},
}

func printLevel(c *cave.Cave, svc *spawn.Service, p *generate.Player) {
	// Overlay maps so entities replace their terrain glyph.
	type mark struct {
		glyph rune
		tag   color.Color
	}
	overlay := make(map[cave.Point]mark)
	for _, o := range svc.Objects() {
		m := mark{'?', color.FgCyan}
		if o.Gold {
			m = mark{'$', color.FgYellow}
		}
		overlay[cave.Point{Y: o.Y, X: o.X}] = m
	}
	for _, tp := range svc.Traps() {
		overlay[tp] = mark{'^', color.FgRed}
	}
	for _, m := range svc.Monsters() {
		r := svc.Race(m.RaceID)
		overlay[cave.Point{Y: m.Y, X: m.X}] = mark{r.Glyph, color.FgLightRed}
	}
	overlay[cave.Point{Y: p.Y, X: p.X}] = mark{'@', color.FgLightYellow}

	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if m, ok := overlay[cave.Point{Y: y, X: x}]; ok {
				b.WriteString(m.tag.Render(string(m.glyph)))
				continue
			}
			f := c.FeatAt(y, x)
			g, ok := featureGlyphs[f]
			if !ok {
				g.glyph, g.tag = '?', color.FgRed
			}
			glyph := g.glyph
			if f == cave.FeatShop {
				if n, ok := c.ShopAt(y, x); ok {
					glyph = rune('1' + n)
				}
			}
			b.WriteString(g.tag.Render(string(glyph)))
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

func printStats(c *cave.Cave, svc *spawn.Service) {
	floors, doors, stairs := 0, 0, 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			switch c.FeatAt(y, x) {
			case cave.FeatFloor:
				floors++
			case cave.FeatOpenDoor, cave.FeatBrokenDoor, cave.FeatClosedDoor, cave.FeatSecretDoor:
				doors++
			case cave.FeatStairsDown, cave.FeatStairsUp:
				stairs++
			}
		}
	}
	fmt.Printf("floors %d  doors %d  stairs %d  monsters %d  objects %d  traps %d  mon-rating %d  obj-rating %d\n",
		floors, doors, stairs,
		svc.MonsterCount(), svc.ObjectCount(), len(svc.Traps()),
		c.MonRating, c.ObjRating)
}
