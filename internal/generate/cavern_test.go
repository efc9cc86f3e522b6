package generate

import (
	"testing"

	"stonedelve/internal/cave"
)

// TestMutateCavernRules exercises the 4/5 cellular automaton on a hand-built
// neighborhood: a lone open cell in rock closes, a clearing stays open.
func TestMutateCavernRules(t *testing.T) {
	c := newRockCave(12, 12, 20)
	scratch := make([]cave.Feature, 12*12)

	// Lone open cell surrounded by rock: 8 wall neighbors > 5, so it fills.
	c.SetFeat(5, 5, cave.FeatFloor)
	mutateCavern(c, scratch)
	if c.IsPassable(5, 5) {
		t.Error("isolated open cell survived the automaton")
	}

	// Center of a clearing: 0 wall neighbors < 4, so it opens (stays open).
	c = newRockCave(12, 12, 20)
	c.FillRect(3, 3, 8, 8, cave.FeatFloor)
	mutateCavern(c, scratch)
	if !c.IsPassable(5, 5) {
		t.Error("clearing center closed despite open neighborhood")
	}
}

// TestBuildCavernDeclinesShallow verifies caverns refuse shallow depths.
func TestBuildCavernDeclinesShallow(t *testing.T) {
	g, _ := newTestGenerator(2)
	c := cave.New(10)
	s := newSession(g.Profiles[1])
	if buildCavern(g, c, s, &Player{Depth: 10}) {
		t.Error("cavern generated above its minimum depth")
	}
}

// TestBuildCavernConnected generates caverns until one succeeds and checks
// the open area forms one region with stairs in it.
func TestBuildCavernConnected(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g, _ := newTestGenerator(seed)
		p := &Player{Depth: 40}
		c := cave.New(p.Depth)
		s := newSession(g.Profiles[1])
		if !buildCavern(g, c, s, p) {
			continue
		}

		_, counts := colorRegions(c, true)
		if got := regionCount(counts); got != 1 {
			t.Fatalf("seed=%d: cavern has %d regions", seed, got)
		}

		// The builder only accepts a seeding whose automaton opened at
		// least area/13 of the map.
		if open, limit := countOpenSquares(c), c.Height*c.Width/cavernOpenDivis; open < limit {
			t.Fatalf("seed=%d: cavern opened %d grids, want at least %d", seed, open, limit)
		}

		down := 0
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				if c.FeatAt(y, x) == cave.FeatStairsDown {
					down++
				}
			}
		}
		if down == 0 {
			t.Fatalf("seed=%d: cavern has no down stairs", seed)
		}
		if !c.IsPassable(p.Y, p.X) {
			t.Fatalf("seed=%d: player on impassable cell", seed)
		}
		return
	}
	t.Fatal("no cavern generated in 50 seeds")
}
