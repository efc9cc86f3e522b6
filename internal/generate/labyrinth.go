package generate

import (
	"stonedelve/internal/cave"
)

const labyrinthMinDepth = 13

// labToI converts maze coordinates to an index into the maze arrays.
func labToI(y, x, w int) int { return y*w + x }

// labToYX is the inverse of labToI.
func labToYX(i, w int) (y, x int) { return i / w, i % w }

// labAdjoin returns the two cell indices separated by the wall at index i.
// Walls have exactly one odd coordinate; the odd axis decides whether the
// neighbors are vertical or horizontal.
func labAdjoin(i, w int) (a, b int) {
	y, x := labToYX(i, w)
	if y%2 == 0 {
		return labToI(y, x-1, w), labToI(y, x+1, w)
	}
	return labToI(y-1, x, w), labToI(y+1, x, w)
}

// labIsTunnel reports whether (y, x) looks like a maze corridor: open on one
// axis and walled on the other.
func labIsTunnel(c *cave.Cave, y, x int) bool {
	west := c.IsFloor(y, x-1)
	east := c.IsFloor(y, x+1)
	north := c.IsFloor(y-1, x)
	south := c.IsFloor(y+1, x)
	return north == south && west == east && north != west
}

// buildLabyrinth generates a perfect maze with a randomized Kruskal pass
// over the cell/wall grid, then sprinkles doors and treasure.
//
// Labyrinths gate themselves on the level number: never shallower than 13,
// never on quest levels, and even then only a few percent of the time, with
// better odds on depths divisible by small primes.
func buildLabyrinth(g *Generator, c *cave.Cave, s *session, p *Player) bool {
	rng := g.Rand

	if c.Depth < labyrinthMinDepth || g.isQuest(c.Depth) {
		return false
	}

	chance := 1
	for _, div := range []int{3, 5, 7, 11, 13} {
		if c.Depth%div == 0 {
			chance++
		}
	}
	if rng.Intn(100) >= chance {
		return false
	}

	// Maze area must be odd in both directions; the enclosing walls are
	// added on top of these dimensions.
	h := 15 + rng.Intn(c.Depth/10)*2
	w := 51 + rng.Intn(c.Depth/10)*2
	n := h * w

	// Most labyrinths are lit, many lit ones are revealed, and most have
	// diggable walls.
	lit := rng.Intn(c.Depth) < 25 || rng.Intn(2) < 1
	known := lit && rng.Intn(c.Depth) < 25
	soft := rng.Intn(c.Depth) < 35 || rng.Intn(3) < 2

	c.SetDimensions(h+2, w+2)
	g.tracef("labyrinth h=%d w=%d lit=%v soft=%v", h, w, lit, soft)

	rock := cave.FeatPerm
	if soft {
		rock = cave.FeatWallSolid
	}
	c.FillRect(0, 0, c.Height-1, c.Width-1, cave.FeatPerm)
	c.FillRect(1, 1, h, w, rock)

	// sets tracks connectedness: two cells with equal set ids are joined.
	// walls lists every maze coordinate, to be shuffled below.
	sets := make([]int, n)
	walls := make([]int, n)
	for i := range walls {
		walls[i] = i
		sets[i] = -1
	}

	var glow cave.Flag
	if lit {
		glow = cave.FlagGlow
	}

	// Open the 1x1 cells at even maze coordinates.
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 2 {
			k := labToI(y, x, w)
			sets[k] = k
			c.SetFeat(y+1, x+1, cave.FeatFloor)
			c.AddFlags(y+1, x+1, glow)
		}
	}

	shuffle(rng, walls)

	// Randomized Kruskal: for each candidate wall, if the cells on either
	// side are in different sets, carve it and merge the sets.
	for _, j := range walls {
		y, x := labToYX(j, w)
		if (x < 1 && y < 1) || (x > w-2 && y > h-2) {
			continue
		}
		if x%2 == y%2 {
			continue
		}

		a, b := labAdjoin(j, w)
		if sets[a] == sets[b] {
			continue
		}

		sa, sb := sets[a], sets[b]
		c.SetFeat(y+1, x+1, cave.FeatFloor)
		c.AddFlags(y+1, x+1, glow)

		for k := range sets {
			if sets[k] == sb {
				sets[k] = sa
			}
		}
	}

	g.newPlayerSpot(c, p)

	// Exactly one staircase each way; the player's arrival stairs count.
	if p.CreateDownStair {
		g.allocStairs(c, cave.FeatStairsUp, 1, 3)
	} else {
		g.allocStairs(c, cave.FeatStairsDown, 1, 3)
	}

	// A door for every 100 squares, preferring corridor-shaped cells.
	for i := n / 100; i > 0; i-- {
		y, x, ok := 0, 0, false
		for j := 0; j < 10; j++ {
			y, x, ok = findEmpty(rng, c)
			if !ok || labIsTunnel(c, y, x) {
				break
			}
		}
		if ok {
			placeClosedDoor(rng, c, y, x)
		}
	}

	// Rubble, traps, monsters and treasure scaled to depth and maze size.
	k := clamp(c.Depth/3, 2, 10)
	k = 3 * k * h * w / (cave.MaxHeight * cave.MaxWidth)

	g.allocObjects(c, setBoth, allocRubble, randRange(rng, 1, k), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocTrap, randRange(rng, 1, k), c.Depth, OriginFloor)

	for i := minMonsterAlloc + randRange(rng, 1, 8) + k; i > 0; i-- {
		g.Alloc.PlaceDistantMonster(c, rng, cave.Point{Y: p.Y, X: p.X}, 0, c.Depth, true)
	}

	g.allocObjects(c, setBoth, allocObject, max(0, randNormal(rng, 6, 3)), c.Depth, OriginLabyrinth)
	g.allocObjects(c, setBoth, allocGold, max(0, randNormal(rng, 6, 3)), c.Depth, OriginLabyrinth)
	g.allocObjects(c, setBoth, allocGood, rng.Intn(2), c.Depth, OriginLabyrinth)

	// Unlit labyrinths compensate with good items, undiggable ones with
	// great items.
	if !lit {
		g.allocObjects(c, setBoth, allocGood, max(0, randNormal(rng, 3, 2)), c.Depth, OriginLabyrinth)
	}
	if !soft {
		g.allocObjects(c, setBoth, allocGreat, max(0, randNormal(rng, 2, 1)), c.Depth, OriginLabyrinth)
	}

	if known {
		markKnown(c)
	}

	return true
}

// markKnown lights and flags the whole map, used for revealed labyrinths.
func markKnown(c *cave.Cave) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.AddFlags(y, x, cave.FlagGlow)
		}
	}
}
