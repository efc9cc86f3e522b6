package generate

import (
	"math/rand"

	"stonedelve/internal/cave"
)

// The castle keep has a fixed footprint placed in the upper-left quarter of
// the level, surrounded by open ground.
const (
	castleTop    = 10
	castleLeft   = 10
	castleHeight = 21
	castleWidth  = 44
)

// drawParapet draws a square tower of the given radius centered on (y, x),
// hollowed to floor inside.
func drawParapet(c *cave.Cave, y, x, r int) {
	c.DrawRect(y-r, x-r, y+r, x+r, cave.FeatWallSolid)
	c.FillRect(y-r+1, x-r+1, y+r-1, x+r-1, cave.FeatFloor)
}

// drawVerticalRampart draws a hollow wall segment running from y1 to y2
// along column x.
func drawVerticalRampart(c *cave.Cave, y1, y2, x, r int) {
	c.DrawRect(y1, x-r, y2, x+r, cave.FeatWallSolid)
	c.FillRect(y1, x-r+1, y2, x+r-1, cave.FeatFloor)
}

// drawHorizontalRampart draws a hollow wall segment running from x1 to x2
// along row y.
func drawHorizontalRampart(c *cave.Cave, x1, x2, y, r int) {
	c.DrawRect(y-r, x1, y+r, x2, cave.FeatWallSolid)
	c.FillRect(y-r+1, x1, y+r-1, x2, cave.FeatFloor)
}

// drawEntrance opens a gated entrance centered on (y, x) in a wall of
// half-thickness r: num door columns each side of center, walled out to
// width, plus inner doors flanking the gatehouse.
func drawEntrance(rng *rand.Rand, c *cave.Cave, y, x, r, num, width int) {
	for i := 0; i < width; i++ {
		if i < num {
			placeClosedDoor(rng, c, y-r, x-i)
			placeClosedDoor(rng, c, y+r, x-i)
			placeClosedDoor(rng, c, y-r, x+i)
			placeClosedDoor(rng, c, y+r, x+i)
		} else {
			c.SetFeat(y-r, x-i, cave.FeatWallSolid)
			c.SetFeat(y+r, x-i, cave.FeatWallSolid)
			c.SetFeat(y-r, x+i, cave.FeatWallSolid)
			c.SetFeat(y+r, x+i, cave.FeatWallSolid)
		}
	}
	placeClosedDoor(rng, c, y, x-num-1)
	placeClosedDoor(rng, c, y, x+num+1)
}

// drawOuterWall raises the castle's curtain wall: corner parapets, two
// gatehouse parapets flanking the southern entrance, and hollow ramparts
// between them.
func drawOuterWall(rng *rand.Rand, c *cave.Cave, y1, x1, y2, x2 int) {
	r := 2
	w := x2 - x1
	w2 := w / 2

	drawParapet(c, y1, x1, r)
	drawParapet(c, y2, x1, r)
	drawParapet(c, y1, x2, r)
	drawParapet(c, y2, x2, r)

	drawParapet(c, y2, x1+w2-r-3, r)
	drawParapet(c, y2, x1+w2+r+3, r)

	drawEntrance(rng, c, y2, x1+w2, r-1, 2, 3)

	drawVerticalRampart(c, y1+r, y2-r, x1, r-1)
	drawVerticalRampart(c, y1+r, y2-r, x2, r-1)
	drawHorizontalRampart(c, x1+r, x2-r, y1, r-1)

	// The southern rampart leaves room for the gatehouse.
	drawHorizontalRampart(c, x1+r, x1+w2-r*3-1, y2, r-1)
	drawHorizontalRampart(c, x1+w2+r*3+1, x2-r, y2, r-1)
}

// buildCastle generates a walled keep standing in open ground. The keep
// itself is fixed; the grounds around it vary in extent.
func buildCastle(g *Generator, c *cave.Cave, s *session, p *Player) bool {
	rng := g.Rand

	cy1, cy2 := castleTop, castleTop+castleHeight
	cx1, cx2 := castleLeft, castleLeft+castleWidth

	i := randRange(rng, 1, 4) + 6
	h := randRange(rng, cave.MaxHeight*i/10, cave.MaxHeight)
	w := randRange(rng, cave.MaxWidth*i/12, cave.MaxWidth)

	c.SetDimensions(h, w)
	g.tracef("castle h=%d w=%d", h, w)

	c.DrawRect(0, 0, h-1, w-1, cave.FeatPerm)
	c.FillRect(1, 1, h-2, w-2, cave.FeatFloor)

	drawOuterWall(rng, c, cy1, cx1, cy2, cx2)

	// The towers and ramparts are drawn hollow; cut passages so their
	// interiors connect to the grounds.
	ensureConnectedness(c)

	// Stairs near walls, as the open levels do.
	g.allocStairs(c, cave.FeatStairsDown, randRange(rng, 1, 3), 3)
	g.allocStairs(c, cave.FeatStairsUp, randRange(rng, 1, 2), 3)

	k := clamp(c.Depth/3, 2, 10)
	k = 2 * k * h * w / (cave.MaxHeight * cave.MaxWidth)

	g.allocObjects(c, setBoth, allocRubble, randRange(rng, 1, k), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocTrap, randRange(rng, 1, k), c.Depth, OriginFloor)

	// The player arrives in the courtyard.
	p.Y = (cy1 + cy2) / 2
	p.X = (cx1 + cx2) / 2
	if p.CreateDownStair {
		c.SetFeat(p.Y, p.X, cave.FeatStairsDown)
		p.CreateDownStair = false
	} else if p.CreateUpStair {
		c.SetFeat(p.Y, p.X, cave.FeatStairsUp)
		p.CreateUpStair = false
	}

	for i := minMonsterAlloc + randRange(rng, 1, 8) + k; i > 0; i-- {
		g.Alloc.PlaceDistantMonster(c, rng, cave.Point{Y: p.Y, X: p.X}, 0, c.Depth, true)
	}

	g.allocObjects(c, setBoth, allocObject, max(0, randNormal(rng, 6, 3)), c.Depth, OriginCavern)
	g.allocObjects(c, setBoth, allocGold, max(0, randNormal(rng, 6, 3)), c.Depth, OriginCavern)
	g.allocObjects(c, setBoth, allocGood, rng.Intn(2), c.Depth, OriginCavern)

	return true
}
