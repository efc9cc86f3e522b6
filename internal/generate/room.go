package generate

import (
	"math/rand"

	"stonedelve/internal/cave"
)

// markRoom flags an inclusive rectangle as room interior, optionally lit.
func markRoom(c *cave.Cave, y1, x1, y2, x2 int, light bool) {
	fl := cave.FlagRoom
	if light {
		fl |= cave.FlagGlow
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.AddFlags(y, x, fl)
		}
	}
}

// roomLight decides whether a room at this depth is lit. Shallow rooms are
// usually lit, deep ones almost never.
func roomLight(rng *rand.Rand, depth int) bool {
	return depth <= randRange(rng, 1, 25)
}

// generatePlus fills the center row and column of an inclusive rectangle.
// Combined with DrawRect this splits a room into four compartments.
func generatePlus(c *cave.Cave, y1, x1, y2, x2 int, f cave.Feature) {
	y0 := (y1 + y2) / 2
	x0 := (x1 + x2) / 2
	for y := y1; y <= y2; y++ {
		c.SetFeat(y, x0, f)
	}
	for x := x1; x <= x2; x++ {
		c.SetFeat(y0, x, f)
	}
}

// generateOpen opens the middle of all four sides of a rectangle.
func generateOpen(c *cave.Cave, y1, x1, y2, x2 int, f cave.Feature) {
	y0 := (y1 + y2) / 2
	x0 := (x1 + x2) / 2
	c.SetFeat(y1, x0, f)
	c.SetFeat(y0, x1, f)
	c.SetFeat(y2, x0, f)
	c.SetFeat(y0, x2, f)
}

// generateHole opens the middle of one random side of a rectangle.
func generateHole(rng *rand.Rand, c *cave.Cave, y1, x1, y2, x2 int, f cave.Feature) {
	y0 := (y1 + y2) / 2
	x0 := (x1 + x2) / 2
	switch rng.Intn(4) {
	case 0:
		c.SetFeat(y1, x0, f)
	case 1:
		c.SetFeat(y0, x1, f)
	case 2:
		c.SetFeat(y2, x0, f)
	case 3:
		c.SetFeat(y0, x2, f)
	}
}

// ── vault furnishing helpers ────────────────────────────────────────────────

// vaultObjects scatters up to num items or gold piles near (y, x).
func (g *Generator) vaultObjects(c *cave.Cave, y, x, depth, num int) {
	rng := g.Rand
	for ; num > 0; num-- {
		for i := 0; i < 11; i++ {
			j, k, ok := c.FindRandomNear(rng, y, x, 2, 3, func(int, int) bool { return true })
			if !ok || !c.CanPutItem(j, k) {
				continue
			}
			if rng.Intn(100) < 75 {
				g.Alloc.PlaceObject(c, rng, j, k, depth, false, false, OriginSpecial)
			} else {
				g.Alloc.PlaceGold(c, rng, j, k, depth, OriginVault)
			}
			break
		}
	}
}

// vaultTraps places num traps near (y, x) within the given displacement.
func (g *Generator) vaultTraps(c *cave.Cave, y, x, yd, xd, num int) {
	rng := g.Rand
	for i := 0; i < num; i++ {
		for tries := 0; tries <= 5; tries++ {
			y1, x1, ok := c.FindRandomNear(rng, y, x, yd, xd, func(int, int) bool { return true })
			if !ok || !c.IsEmpty(y1, x1) {
				continue
			}
			g.Alloc.PlaceTrap(c, rng, y1, x1)
			break
		}
	}
}

// vaultMonsters places num sleeping monsters adjacent to (y, x).
func (g *Generator) vaultMonsters(c *cave.Cave, y1, x1, depth, num int) {
	rng := g.Rand
	for k := 0; k < num; k++ {
		for i := 0; i < 9; i++ {
			y := y1 + rng.Intn(3) - 1
			x := x1 + rng.Intn(3) - 1
			if !c.InBounds(y, x) || !c.IsEmpty(y, x) {
				continue
			}
			g.Alloc.PlaceRandomMonster(c, rng, y, x, depth, true, true, OriginDropSpecial)
			break
		}
	}
}

// ── room builders ───────────────────────────────────────────────────────────

// buildSimple makes a plain rectangular room, rarely pillared or ragged.
func buildSimple(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand

	y1 := y0 - randRange(rng, 1, 4)
	x1 := x0 - randRange(rng, 1, 11)
	y2 := y0 + randRange(rng, 1, 3)
	x2 := x0 + randRange(rng, 1, 11)

	light := roomLight(rng, c.Depth)

	markRoom(c, y1-1, x1-1, y2+1, x2+1, light)
	c.DrawRect(y1-1, x1-1, y2+1, x2+1, cave.FeatWallOuter)
	c.FillRect(y1, x1, y2, x2, cave.FeatFloor)

	if oneIn(rng, 20) {
		// Pillar room.
		for y := y1; y <= y2; y += 2 {
			for x := x1; x <= x2; x += 2 {
				c.SetFeat(y, x, cave.FeatWallInner)
			}
		}
	} else if oneIn(rng, 50) {
		// Ragged-edge room.
		for y := y1 + 2; y <= y2-2; y += 2 {
			c.SetFeat(y, x1, cave.FeatWallInner)
			c.SetFeat(y, x2, cave.FeatWallInner)
		}
		for x := x1 + 2; x <= x2-2; x += 2 {
			c.SetFeat(y1, x, cave.FeatWallInner)
			c.SetFeat(y2, x, cave.FeatWallInner)
		}
	}
	return true
}

// buildOverlap makes two overlapping rectangular rooms.
func buildOverlap(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand
	light := roomLight(rng, c.Depth)

	y1a := y0 - randRange(rng, 1, 4)
	x1a := x0 - randRange(rng, 1, 11)
	y2a := y0 + randRange(rng, 1, 3)
	x2a := x0 + randRange(rng, 1, 10)

	y1b := y0 - randRange(rng, 1, 3)
	x1b := x0 - randRange(rng, 1, 10)
	y2b := y0 + randRange(rng, 1, 4)
	x2b := x0 + randRange(rng, 1, 11)

	markRoom(c, y1a-1, x1a-1, y2a+1, x2a+1, light)
	markRoom(c, y1b-1, x1b-1, y2b+1, x2b+1, light)

	c.DrawRect(y1a-1, x1a-1, y2a+1, x2a+1, cave.FeatWallOuter)
	c.DrawRect(y1b-1, x1b-1, y2b+1, x2b+1, cave.FeatWallOuter)

	c.FillRect(y1a, x1a, y2a, x2a, cave.FeatFloor)
	c.FillRect(y1b, x1b, y2b, x2b, cave.FeatFloor)

	return true
}

// buildCircular makes a circular room of interior radius 4 to 7, sometimes
// with a small walled chamber in the middle.
func buildCircular(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand

	radius := 2 + randRange(rng, 1, 2) + randRange(rng, 1, 3)

	fl := cave.FlagRoom
	if roomLight(rng, c.Depth) {
		fl |= cave.FlagGlow
	}

	c.FillCircle(y0, x0, radius+1, 1, cave.FeatWallOuter, fl)
	c.FillCircle(y0, x0, radius, 0, cave.FeatFloor, fl)

	// Especially large circular rooms get a middle chamber.
	if radius-4 > 0 && rng.Intn(4) < radius-4 {
		rd, cd := randDir(rng)

		c.DrawRect(y0-2, x0-2, y0+2, x0+2, cave.FeatWallInner)
		c.SetFeat(y0+cd*2, x0+rd*2, cave.FeatSecretDoor)

		g.vaultObjects(c, y0, x0, c.Depth, rng.Intn(2))
		g.vaultMonsters(c, y0, x0, c.Depth+1, rng.Intn(3))
	}
	return true
}

// buildCrossed makes a plus-shaped room from two crossing rectangles, with a
// random feature in the 3x3 center.
func buildCrossed(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand
	light := roomLight(rng, c.Depth)

	// Inner half-width is fixed; the arms vary.
	wy, wx := 1, 1
	dy := randRange(rng, 3, 4)
	dx := randRange(rng, 3, 11)

	// Room (a) runs north/south, room (b) east/west.
	y1a, x1a, y2a, x2a := y0-dy, x0-wx, y0+dy, x0+wx
	y1b, x1b, y2b, x2b := y0-wy, x0-dx, y0+wy, x0+dx

	markRoom(c, y1a-1, x1a-1, y2a+1, x2a+1, light)
	markRoom(c, y1b-1, x1b-1, y2b+1, x2b+1, light)

	c.DrawRect(y1a-1, x1a-1, y2a+1, x2a+1, cave.FeatWallOuter)
	c.DrawRect(y1b-1, x1b-1, y2b+1, x2b+1, cave.FeatWallOuter)

	c.FillRect(y1a, x1a, y2a, x2a, cave.FeatFloor)
	c.FillRect(y1b, x1b, y2b, x2b, cave.FeatFloor)

	switch randRange(rng, 1, 4) {
	case 1:
		// Plain intersection.

	case 2:
		// Solid middle pillar.
		c.FillRect(y1b, x1a, y2b, x2a, cave.FeatWallInner)

	case 3:
		// Inner treasure vault.
		c.DrawRect(y1b, x1a, y2b, x2a, cave.FeatWallInner)
		generateHole(rng, c, y1b, x1a, y2b, x2a, cave.FeatSecretDoor)

		g.Alloc.PlaceObject(c, rng, y0, x0, c.Depth, false, false, OriginSpecial)
		g.vaultMonsters(c, y0, x0, c.Depth+2, rng.Intn(2)+3)
		g.vaultTraps(c, y0, x0, 4, 4, rng.Intn(3)+2)

	case 4:
		if oneIn(rng, 3) {
			// Pinch the center shut, sometimes with secret doors.
			for y := y1b; y <= y2b; y++ {
				if y == y0 {
					continue
				}
				c.SetFeat(y, x1a-1, cave.FeatWallInner)
				c.SetFeat(y, x2a+1, cave.FeatWallInner)
			}
			for x := x1a; x <= x2a; x++ {
				if x == x0 {
					continue
				}
				c.SetFeat(y1b-1, x, cave.FeatWallInner)
				c.SetFeat(y2b+1, x, cave.FeatWallInner)
			}
			if oneIn(rng, 3) {
				generateOpen(c, y1b-1, x1a-1, y2b+1, x2a+1, cave.FeatSecretDoor)
			}
		} else if oneIn(rng, 3) {
			generatePlus(c, y1b, x1a, y2b, x2a, cave.FeatWallInner)
		} else if oneIn(rng, 3) {
			c.SetFeat(y0, x0, cave.FeatWallInner)
		}
	}
	return true
}

// buildLarge makes a 9x23 room with one of five inner layouts: a plain inner
// room, a treasure chamber, pillars, a checkerboard, or four compartments.
func buildLarge(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand
	light := roomLight(rng, c.Depth)

	y1, y2 := y0-4, y0+4
	x1, x2 := x0-11, x0+11

	markRoom(c, y1-1, x1-1, y2+1, x2+1, light)
	c.DrawRect(y1-1, x1-1, y2+1, x2+1, cave.FeatWallOuter)
	c.FillRect(y1, x1, y2, x2, cave.FeatFloor)

	// The inner room.
	y1, y2 = y1+2, y2-2
	x1, x2 = x1+2, x2-2
	c.DrawRect(y1-1, x1-1, y2+1, x2+1, cave.FeatWallInner)

	switch randRange(rng, 1, 5) {
	case 1:
		// Plain inner room with a guardian.
		generateHole(rng, c, y1-1, x1-1, y2+1, x2+1, cave.FeatSecretDoor)
		g.vaultMonsters(c, y0, x0, c.Depth+2, 1)

	case 2:
		// Inner room holding a smaller treasure room.
		generateHole(rng, c, y1-1, x1-1, y2+1, x2+1, cave.FeatSecretDoor)

		c.DrawRect(y0-1, x0-1, y0+1, x0+1, cave.FeatWallInner)
		generateHole(rng, c, y0-1, x0-1, y0+1, x0+1, cave.FeatClosedDoor)

		g.vaultMonsters(c, y0, x0, c.Depth+2, randRange(rng, 1, 3)+2)

		// Object usually, stairs occasionally.
		if rng.Intn(100) < 80 {
			g.Alloc.PlaceObject(c, rng, y0, x0, c.Depth, false, false, OriginSpecial)
		} else {
			g.placeRandomStairs(rng, c, y0, x0)
		}

		g.vaultTraps(c, y0, x0, 4, 10, 2+randRange(rng, 1, 3))

	case 3:
		// Inner pillar, sometimes flanked, sometimes ringed.
		generateHole(rng, c, y1-1, x1-1, y2+1, x2+1, cave.FeatSecretDoor)

		c.FillRect(y0-1, x0-1, y0+1, x0+1, cave.FeatWallInner)

		if oneIn(rng, 2) {
			if oneIn(rng, 2) {
				c.FillRect(y0-1, x0-7, y0+1, x0-5, cave.FeatWallInner)
				c.FillRect(y0-1, x0+5, y0+1, x0+7, cave.FeatWallInner)
			} else {
				c.FillRect(y0-1, x0-6, y0+1, x0-4, cave.FeatWallInner)
				c.FillRect(y0-1, x0+4, y0+1, x0+6, cave.FeatWallInner)
			}
		}

		if oneIn(rng, 3) {
			c.DrawRect(y0-1, x0-5, y0+1, x0+5, cave.FeatWallInner)

			placeSecretDoor(c, y0-3+randRange(rng, 1, 2)*2, x0-3)
			placeSecretDoor(c, y0-3+randRange(rng, 1, 2)*2, x0+3)

			g.vaultMonsters(c, y0, x0-2, c.Depth+2, randRange(rng, 1, 2))
			g.vaultMonsters(c, y0, x0+2, c.Depth+2, randRange(rng, 1, 2))

			if oneIn(rng, 3) {
				g.Alloc.PlaceObject(c, rng, y0, x0-2, c.Depth, false, false, OriginSpecial)
			}
			if oneIn(rng, 3) {
				g.Alloc.PlaceObject(c, rng, y0, x0+2, c.Depth, false, false, OriginSpecial)
			}
		}

	case 4:
		// Checkerboard maze.
		generateHole(rng, c, y1-1, x1-1, y2+1, x2+1, cave.FeatSecretDoor)

		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				if (x+y)&1 != 0 {
					c.SetFeat(y, x, cave.FeatWallInner)
				}
			}
		}

		g.vaultMonsters(c, y0, x0-5, c.Depth+2, randRange(rng, 1, 3))
		g.vaultMonsters(c, y0, x0+5, c.Depth+2, randRange(rng, 1, 3))
		g.vaultTraps(c, y0, x0-3, 2, 8, randRange(rng, 1, 3))
		g.vaultTraps(c, y0, x0+3, 2, 8, randRange(rng, 1, 3))
		g.vaultObjects(c, y0, x0, c.Depth, 3)

	case 5:
		// Four compartments around an inner cross.
		generatePlus(c, y1, x1, y2, x2, cave.FeatWallInner)

		if rng.Intn(100) < 50 {
			i := randRange(rng, 1, 10)
			placeSecretDoor(c, y1-1, x0-i)
			placeSecretDoor(c, y1-1, x0+i)
			placeSecretDoor(c, y2+1, x0-i)
			placeSecretDoor(c, y2+1, x0+i)
		} else {
			i := randRange(rng, 1, 3)
			placeSecretDoor(c, y0+i, x1-1)
			placeSecretDoor(c, y0-i, x1-1)
			placeSecretDoor(c, y0+i, x2+1)
			placeSecretDoor(c, y0-i, x2+1)
		}

		g.vaultObjects(c, y0, x0, c.Depth, 2+randRange(rng, 1, 2))

		g.vaultMonsters(c, y0+1, x0-4, c.Depth+2, randRange(rng, 1, 4))
		g.vaultMonsters(c, y0+1, x0+4, c.Depth+2, randRange(rng, 1, 4))
		g.vaultMonsters(c, y0-1, x0-4, c.Depth+2, randRange(rng, 1, 4))
		g.vaultMonsters(c, y0-1, x0+4, c.Depth+2, randRange(rng, 1, 4))
	}

	return true
}
