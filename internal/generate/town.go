package generate

import (
	"math/rand"

	"stonedelve/internal/cave"
)

// Town dimensions and population.
const (
	townHeight = 22
	townWidth  = 66

	// MaxStores is the number of shops in town.
	MaxStores = 8

	townResidentsDay   = 4
	townResidentsNight = 8
)

// buildStore raises one shop building at grid slot (yy, xx) of the store
// lattice. Shops line a main street running horizontally through the middle
// of town, so each door faces the street.
func buildStore(rng *rand.Rand, c *cave.Cave, n, yy, xx int) {
	y0 := yy*9 + 6
	x0 := xx*14 + 12

	yn, ys := 2, 2
	if yy == 0 {
		yn = 3
	} else {
		ys = 3
	}
	y1 := y0 - randRange(rng, 1, yn)
	y2 := y0 + randRange(rng, 1, ys)
	x1 := x0 - randRange(rng, 1, 5)
	x2 := x0 + randRange(rng, 1, 5)

	// Door on the street side.
	dy := y1
	if yy == 0 {
		dy = y2
	}
	dx := randRange(rng, x1, x2)

	// The building itself cannot be dug through.
	c.FillRect(y1, x1, y2, x2, cave.FeatPerm)
	c.SetShop(dy, dx, n)
}

// buildTownLayout places the shops and stairs using a dedicated random
// source seeded from the town seed, so the town's physical layout is stable
// across visits while everything after it stays random.
func (g *Generator) buildTownLayout(c *cave.Cave, p *Player) {
	town := rand.New(rand.NewSource(g.TownSeed))

	rooms := make([]int, MaxStores)
	for n := range rooms {
		rooms[n] = n
	}

	nRows := 2
	nCols := (MaxStores + 1) / nRows

	n := MaxStores
	for y := 0; y < nRows; y++ {
		for x := 0; x < nCols; x++ {
			if n < 1 {
				break
			}
			k := town.Intn(n)
			buildStore(town, c, rooms[k], y, x)
			n--
			rooms[k] = rooms[n]
		}
	}

	// The stairs, and the player on them.
	y, x, ok := c.FindRandomInRange(town, 3, townHeight-3, 3, townWidth-3, c.IsEmpty)
	if !ok {
		y, x = townHeight/2, townWidth/2
	}
	c.SetFeat(y, x, cave.FeatStairsDown)
	p.Y, p.X = y, x
}

// townIlluminate lights the town: everything under daylight, only shop
// doorways at night.
func townIlluminate(c *cave.Cave, daytime bool) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if daytime {
				c.AddFlags(y, x, cave.FlagGlow)
				continue
			}
			if _, ok := c.ShopAt(y, x); ok {
				c.AddFlags(y, x, cave.FlagGlow)
			}
		}
	}
}

// buildTown generates the town level: a walled field of floor holding the
// shop buildings, a staircase, and a few residents. Only the physical
// layout is deterministic; the monsters are rolled normally.
func buildTown(g *Generator, c *cave.Cave, s *session, p *Player) bool {
	c.SetDimensions(townHeight, townWidth)

	c.FillRect(0, 0, c.Height-1, c.Width-1, cave.FeatPerm)
	c.FillRect(1, 1, c.Height-2, c.Width-2, cave.FeatFloor)

	g.buildTownLayout(c, p)

	townIlluminate(c, g.Daytime)

	residents := townResidentsNight
	if g.Daytime {
		residents = townResidentsDay
	}
	for i := 0; i < residents; i++ {
		g.Alloc.PlaceDistantMonster(c, g.Rand, cave.Point{Y: p.Y, X: p.X}, 3, c.Depth, true)
	}

	return true
}
