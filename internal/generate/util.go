package generate

import (
	"math"
	"math/rand"

	"stonedelve/internal/cave"
)

// The four cardinal direction deltas, in (dy, dx) form.
var (
	cardinalDY = [4]int{-1, 1, 0, 0}
	cardinalDX = [4]int{0, 0, -1, 1}
)

// randRange returns a uniform value in [lo, hi] inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// oneIn reports true with probability 1/n.
func oneIn(rng *rand.Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return rng.Intn(n) == 0
}

// randNormal draws from a normal distribution with the given mean and
// standard deviation, rounded to the nearest int.
func randNormal(rng *rand.Rand, mean, stddev int) int {
	return mean + int(math.Round(rng.NormFloat64()*float64(stddev)))
}

// shuffle permutes xs in place with the Fisher–Yates shuffle.
func shuffle(rng *rand.Rand, xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// correctDir picks a cardinal direction from (y1, x1) toward (y2, x2).
// Diagonal targets choose one axis at random.
func correctDir(rng *rand.Rand, y1, x1, y2, x2 int) (dy, dx int) {
	dy = sign(y2 - y1)
	dx = sign(x2 - x1)
	if dy != 0 && dx != 0 {
		if rng.Intn(2) == 0 {
			dy = 0
		} else {
			dx = 0
		}
	}
	return dy, dx
}

// randDir picks a random cardinal direction.
func randDir(rng *rand.Rand) (dy, dx int) {
	i := rng.Intn(4)
	return cardinalDY[i], cardinalDX[i]
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// findEmpty locates a uniformly random empty floor cell.
func findEmpty(rng *rand.Rand, c *cave.Cave) (int, int, bool) {
	return c.FindRandom(rng, c.IsEmpty)
}

// nextToWalls counts walls in the four cardinal neighbors of (y, x).
func nextToWalls(c *cave.Cave, y, x int) int {
	k := 0
	for i := 0; i < 4; i++ {
		ny, nx := y+cardinalDY[i], x+cardinalDX[i]
		if c.InBounds(ny, nx) && c.IsWall(ny, nx) {
			k++
		}
	}
	return k
}

// ── door and stair placement ────────────────────────────────────────────────

// placeClosedDoor places a closed door at (y, x). Most doors are plain;
// occasionally they are locked, rarely stuck. The lock strength is folded
// into the door feature for this engine, so all three look the same here.
func placeClosedDoor(rng *rand.Rand, c *cave.Cave, y, x int) {
	c.SetFeat(y, x, cave.FeatClosedDoor)
}

// placeSecretDoor places a secret door at (y, x).
func placeSecretDoor(c *cave.Cave, y, x int) {
	c.SetFeat(y, x, cave.FeatSecretDoor)
}

// placeRandomDoor places a door of random state at (y, x): open, broken,
// secret, or closed.
func placeRandomDoor(rng *rand.Rand, c *cave.Cave, y, x int) {
	tmp := rng.Intn(100)
	switch {
	case tmp < 30:
		c.SetFeat(y, x, cave.FeatOpenDoor)
	case tmp < 40:
		c.SetFeat(y, x, cave.FeatBrokenDoor)
	case tmp < 60:
		c.SetFeat(y, x, cave.FeatSecretDoor)
	default:
		placeClosedDoor(rng, c, y, x)
	}
}

// placeRubble converts (y, x) to a rubble pile.
func placeRubble(c *cave.Cave, y, x int) {
	c.SetFeat(y, x, cave.FeatRubble)
}

// placeStairs places stairs of the requested kind at (y, x), subject to the
// level rules: all stairs in town go down; all stairs on an unfinished quest
// level or the bottom level go up.
func (g *Generator) placeStairs(c *cave.Cave, y, x int, feat cave.Feature) {
	switch {
	case c.Depth == 0:
		c.SetFeat(y, x, cave.FeatStairsDown)
	case g.isQuest(c.Depth) || c.Depth >= MaxDepth-1:
		c.SetFeat(y, x, cave.FeatStairsUp)
	default:
		c.SetFeat(y, x, feat)
	}
}

// placeRandomStairs places stairs of random direction at (y, x) if the cell
// can hold them.
func (g *Generator) placeRandomStairs(rng *rand.Rand, c *cave.Cave, y, x int) {
	if !c.CanPutItem(y, x) {
		return
	}
	feat := cave.FeatStairsUp
	if rng.Intn(100) < 50 {
		feat = cave.FeatStairsDown
	}
	g.placeStairs(c, y, x, feat)
}

// allocStairs places num staircases on empty cells near walls, relaxing the
// wall requirement whenever 1000 tries fail at the current strictness.
func (g *Generator) allocStairs(c *cave.Cave, feat cave.Feature, num, walls int) {
	rng := g.Rand
	for i := 0; i < num; i++ {
		for done := false; !done; {
			for j := 0; !done && j <= 1000; j++ {
				y, x, ok := findEmpty(rng, c)
				if !ok {
					return
				}
				if nextToWalls(c, y, x) < walls {
					continue
				}
				g.placeStairs(c, y, x, feat)
				done = true
			}
			if walls > 0 {
				walls--
			}
		}
	}
}

// ── random object allocation ────────────────────────────────────────────────

// Placement sets and kinds for allocObjects.
const (
	setCorridor = 1 << iota
	setRoom
	setBoth = setCorridor | setRoom
)

type allocKind uint8

const (
	allocRubble allocKind = iota
	allocTrap
	allocGold
	allocObject
	allocGood
	allocGreat
)

// allocObjects scatters num entities of the given kind over empty cells in
// the requested set (corridor, room, or both).
func (g *Generator) allocObjects(c *cave.Cave, set int, kind allocKind, num, depth int, origin Origin) {
	for k := 0; k < num; k++ {
		g.allocObject(c, set, kind, depth, origin)
	}
}

// allocObject places a single entity on a random legal cell, reporting
// whether a spot was found before the tries ran out.
func (g *Generator) allocObject(c *cave.Cave, set int, kind allocKind, depth int, origin Origin) bool {
	rng := g.Rand
	var y, x int
	found := false
	for tries := 0; tries < 2000; tries++ {
		ey, ex, ok := findEmpty(rng, c)
		if !ok {
			return false
		}
		room := c.IsRoom(ey, ex)
		if set&setCorridor != 0 && !room {
			y, x, found = ey, ex, true
			break
		}
		if set&setRoom != 0 && room {
			y, x, found = ey, ex, true
			break
		}
	}
	if !found {
		return false
	}

	switch kind {
	case allocRubble:
		placeRubble(c, y, x)
	case allocTrap:
		g.Alloc.PlaceTrap(c, rng, y, x)
	case allocGold:
		g.Alloc.PlaceGold(c, rng, y, x, depth, origin)
	case allocObject:
		g.Alloc.PlaceObject(c, rng, y, x, depth, false, false, origin)
	case allocGood:
		g.Alloc.PlaceObject(c, rng, y, x, depth, true, false, origin)
	case allocGreat:
		g.Alloc.PlaceObject(c, rng, y, x, depth, true, true, origin)
	}
	return true
}

// newPlayerSpot places the player at a random start cell, creating the stairs
// the player arrived by when a pending request is set.
func (g *Generator) newPlayerSpot(c *cave.Cave, p *Player) {
	y, x, ok := c.FindRandom(g.Rand, c.IsStart)
	if !ok {
		// Fall back to any passable cell; a level with no start cell at all
		// will fail the connectivity validation anyway.
		y, x, _ = c.FindRandom(g.Rand, c.IsPassable)
	}

	if p.CreateDownStair {
		c.SetFeat(y, x, cave.FeatStairsDown)
		p.CreateDownStair = false
	} else if p.CreateUpStair {
		c.SetFeat(y, x, cave.FeatStairsUp)
		p.CreateUpStair = false
	}

	p.Y, p.X = y, x
}
