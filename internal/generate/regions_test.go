package generate

import (
	"testing"

	"stonedelve/internal/cave"
)

// carvePocket opens a rectangular floor pocket on a rock-filled cave.
func carvePocket(c *cave.Cave, y1, x1, y2, x2 int) {
	c.FillRect(y1, x1, y2, x2, cave.FeatFloor)
}

func newRockCave(h, w, depth int) *cave.Cave {
	c := cave.New(depth)
	c.SetDimensions(h, w)
	c.FillRect(0, 0, h-1, w-1, cave.FeatRock)
	c.DrawRect(0, 0, h-1, w-1, cave.FeatPerm)
	return c
}

func TestColorRegionsCountsPockets(t *testing.T) {
	c := newRockCave(20, 40, 10)
	carvePocket(c, 3, 3, 7, 10)
	carvePocket(c, 12, 25, 16, 35)

	colors, counts := colorRegions(c, true)
	if got := regionCount(counts); got != 2 {
		t.Fatalf("regionCount = %d, want 2", got)
	}

	// Cells within one pocket share a color; pockets differ.
	a := colors[4*c.Width+4]
	b := colors[13*c.Width+26]
	if a == 0 || b == 0 {
		t.Fatal("pocket cells left uncolored")
	}
	if a == b {
		t.Error("separate pockets share a region color")
	}
}

func TestColorRegionsDiagonalAdjacency(t *testing.T) {
	c := newRockCave(10, 10, 10)
	c.SetFeat(3, 3, cave.FeatFloor)
	c.SetFeat(4, 4, cave.FeatFloor) // touches only diagonally

	_, counts := colorRegions(c, true)
	if got := regionCount(counts); got != 1 {
		t.Errorf("diagonal: regionCount = %d, want 1", got)
	}

	_, counts = colorRegions(c, false)
	if got := regionCount(counts); got != 2 {
		t.Errorf("cardinal: regionCount = %d, want 2", got)
	}
}

func TestRemoveSmallRegions(t *testing.T) {
	c := newRockCave(20, 40, 10)
	carvePocket(c, 3, 3, 8, 12)    // large, stays
	carvePocket(c, 14, 30, 15, 31) // 4 cells, below threshold

	colors, counts := colorRegions(c, true)
	removeSmallRegions(c, colors, counts)

	if c.IsPassable(14, 30) {
		t.Error("small region survived removal")
	}
	if !c.IsPassable(4, 4) {
		t.Error("large region was removed")
	}
	if got := regionCount(counts); got != 1 {
		t.Errorf("regionCount after removal = %d, want 1", got)
	}
}

func TestJoinRegionsConnectsEverything(t *testing.T) {
	c := newRockCave(24, 60, 10)
	carvePocket(c, 3, 3, 8, 12)
	carvePocket(c, 14, 40, 20, 52)
	carvePocket(c, 4, 45, 8, 55)

	colors, counts := colorRegions(c, true)
	if regionCount(counts) != 3 {
		t.Fatalf("setup: regionCount = %d, want 3", regionCount(counts))
	}

	joinRegions(c, colors, counts)

	_, counts = colorRegions(c, true)
	if got := regionCount(counts); got != 1 {
		t.Errorf("regionCount after join = %d, want 1", got)
	}
}

func TestJoinRegionsIdempotent(t *testing.T) {
	c := newRockCave(20, 40, 10)
	carvePocket(c, 3, 3, 8, 12)
	carvePocket(c, 12, 25, 16, 35)

	colors, counts := colorRegions(c, true)
	joinRegions(c, colors, counts)

	before := snapshotFeats(c)
	colors, counts = colorRegions(c, true)
	joinRegions(c, colors, counts)

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.FeatAt(y, x) != before[y][x] {
				t.Fatalf("second join modified terrain at (%d,%d)", y, x)
			}
		}
	}
}

func snapshotFeats(c *cave.Cave) [][]cave.Feature {
	out := make([][]cave.Feature, c.Height)
	for y := range out {
		out[y] = make([]cave.Feature, c.Width)
		for x := 0; x < c.Width; x++ {
			out[y][x] = c.FeatAt(y, x)
		}
	}
	return out
}

func TestEnsureConnectedFillsStrandedCells(t *testing.T) {
	c := newRockCave(20, 40, 10)
	carvePocket(c, 3, 3, 8, 12)
	c.SetFeat(15, 30, cave.FeatFloor) // stranded cell

	n := ensureConnected(c, 4, 4)
	if n == 0 {
		t.Fatal("ensureConnected found no reachable cells")
	}
	if c.IsPassable(15, 30) {
		t.Error("stranded cell still passable after ensureConnected")
	}
	if !c.IsPassable(4, 4) {
		t.Error("start cell was filled in")
	}
}
