package generate

import (
	"stonedelve/internal/cave"
)

const (
	maxCavernTries  = 10
	cavernMinDepth  = 15
	cavernOpenDivis = 13 // open-cell target is area / this
)

// initCavern seals the map edge and opens a random density% of the interior.
func initCavern(g *Generator, c *cave.Cave, density int) {
	h, w := c.Height, c.Width
	count := h * w * density / 100

	c.DrawRect(0, 0, h-1, w-1, cave.FeatPerm)
	c.FillRect(1, 1, h-2, w-2, cave.FeatWallSolid)

	for count > 0 {
		y := randRange(g.Rand, 1, h-2)
		x := randRange(g.Rand, 1, w-2)
		if c.FeatAt(y, x) == cave.FeatWallSolid {
			c.SetFeat(y, x, cave.FeatFloor)
			count--
		}
	}
}

// countAdjWalls returns how many of the 8 neighbors of (y, x) are not floor.
func countAdjWalls(c *cave.Cave, y, x int) int {
	count := 0
	for yd := -1; yd <= 1; yd++ {
		for xd := -1; xd <= 1; xd++ {
			if yd == 0 && xd == 0 {
				continue
			}
			if c.IsFloor(y+yd, x+xd) {
				continue
			}
			count++
		}
	}
	return count
}

// mutateCavern runs one simultaneous pass of the (4,5) cellular automaton.
// The pass is computed into a scratch buffer before committing, so a cell's
// new state never depends on neighbors updated earlier in the same pass.
func mutateCavern(c *cave.Cave, scratch []cave.Feature) {
	h, w := c.Height, c.Width

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			switch count := countAdjWalls(c, y, x); {
			case count > 5:
				scratch[y*w+x] = cave.FeatWallSolid
			case count < 4:
				scratch[y*w+x] = cave.FeatFloor
			default:
				scratch[y*w+x] = c.FeatAt(y, x)
			}
		}
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c.SetFeat(y, x, scratch[y*w+x])
		}
	}
}

// countOpenSquares counts the passable cells on the map.
func countOpenSquares(c *cave.Cave) int {
	num := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.IsPassable(y, x) {
				num++
			}
		}
	}
	return num
}

// buildCavern grows an organic open cave with a cellular automaton, then
// repairs connectivity with the region engine. It declines at shallow depth
// and when ten seeding attempts fail to open enough of the map.
func buildCavern(g *Generator, c *cave.Cave, s *session, p *Player) bool {
	rng := g.Rand

	h := randRange(rng, cave.MaxHeight/2, cave.MaxHeight*3/4)
	w := randRange(rng, cave.MaxWidth/2, cave.MaxWidth*3/4)
	limit := h * w / cavernOpenDivis

	density := randRange(rng, 25, 30)
	times := randRange(rng, 3, 6)

	c.SetDimensions(h, w)
	g.tracef("cavern h=%d w=%d density=%d times=%d", h, w, density, times)

	if c.Depth < cavernMinDepth {
		return false
	}

	scratch := make([]cave.Feature, h*w)
	ok := false
	for tries := 0; tries < maxCavernTries; tries++ {
		initCavern(g, c, density)
		for i := 0; i < times; i++ {
			mutateCavern(c, scratch)
		}

		if open := countOpenSquares(c); open >= limit {
			g.tracef("cavern ok (%d vs %d)", open, limit)
			ok = true
			break
		}
	}
	if !ok {
		return false
	}

	colors, counts := colorRegions(c, false)
	removeSmallRegions(c, colors, counts)
	joinRegions(c, colors, counts)

	// Stairs near walls.
	g.allocStairs(c, cave.FeatStairsDown, randRange(rng, 1, 3), 3)
	g.allocStairs(c, cave.FeatStairsUp, randRange(rng, 1, 2), 3)

	// Rubble and traps, scaled to depth and cavern size.
	k := clamp(c.Depth/3, 2, 10)
	k = 2 * k * h * w / (cave.MaxHeight * cave.MaxWidth)

	g.allocObjects(c, setBoth, allocRubble, randRange(rng, 1, k), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocTrap, randRange(rng, 1, k), c.Depth, OriginFloor)

	g.newPlayerSpot(c, p)

	for i := minMonsterAlloc + randRange(rng, 1, 8) + k; i > 0; i-- {
		g.Alloc.PlaceDistantMonster(c, rng, cave.Point{Y: p.Y, X: p.X}, 0, c.Depth, true)
	}

	g.allocObjects(c, setBoth, allocObject, max(0, randNormal(rng, 6, 3)), c.Depth, OriginCavern)
	g.allocObjects(c, setBoth, allocGold, max(0, randNormal(rng, 6, 3)), c.Depth, OriginCavern)
	g.allocObjects(c, setBoth, allocGood, rng.Intn(2), c.Depth, OriginCavern)

	return true
}
