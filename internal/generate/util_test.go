package generate

import (
	"math/rand"
	"testing"

	"stonedelve/internal/cave"
)

func TestRandRangeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := randRange(rng, 3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("randRange(3,7) = %d", v)
		}
	}
	if v := randRange(rng, 5, 5); v != 5 {
		t.Errorf("randRange(5,5) = %d", v)
	}
}

func TestOneIn(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		if !oneIn(rng, 1) {
			t.Fatal("oneIn(1) returned false")
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]int, 50)
	for i := range xs {
		xs[i] = i
	}
	shuffle(rng, xs)

	seen := make(map[int]bool)
	for _, v := range xs {
		if v < 0 || v >= 50 || seen[v] {
			t.Fatalf("shuffle broke the permutation at value %d", v)
		}
		seen[v] = true
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 2, 10, 5},
		{1, 2, 10, 2},
		{11, 2, 10, 10},
	}
	for _, tc := range cases {
		if got := clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("clamp(%d,%d,%d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestCorrectDirAimsAtTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dy, dx := correctDir(rng, 10, 10, 20, 10)
	if dy != 1 || dx != 0 {
		t.Errorf("correctDir south = (%d,%d)", dy, dx)
	}
	dy, dx = correctDir(rng, 10, 10, 10, 2)
	if dy != 0 || dx != -1 {
		t.Errorf("correctDir west = (%d,%d)", dy, dx)
	}
}

func TestNextToWalls(t *testing.T) {
	c := newRockCave(10, 10, 5)
	c.SetFeat(5, 5, cave.FeatFloor)
	c.SetFeat(5, 6, cave.FeatFloor)

	if got := nextToWalls(c, 5, 5); got != 3 {
		t.Errorf("nextToWalls = %d, want 3", got)
	}
}

func TestAllocStairsPlacesRequested(t *testing.T) {
	g, _ := newTestGenerator(5)
	c := newRockCave(30, 60, 10)
	c.FillRect(5, 5, 24, 54, cave.FeatFloor)

	g.allocStairs(c, cave.FeatStairsDown, 3, 3)

	stairs := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.FeatAt(y, x) == cave.FeatStairsDown {
				stairs++
			}
		}
	}
	if stairs != 3 {
		t.Errorf("placed %d stairs, want 3", stairs)
	}
}

func TestPlaceRandomDoorAlwaysDoor(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	c := newRockCave(10, 10, 5)
	for i := 0; i < 100; i++ {
		placeRandomDoor(rng, c, 5, 5)
		if !c.FeatAt(5, 5).IsDoor() {
			t.Fatalf("placeRandomDoor left %v", c.FeatAt(5, 5))
		}
	}
}

func TestNewPlayerSpotHonorsStairRequests(t *testing.T) {
	g, _ := newTestGenerator(7)
	c := newRockCave(30, 60, 10)
	c.FillRect(5, 5, 24, 54, cave.FeatFloor)

	p := &Player{Depth: 10, CreateUpStair: true}
	g.newPlayerSpot(c, p)

	if !c.InBounds(p.Y, p.X) {
		t.Fatal("player out of bounds")
	}
	if c.FeatAt(p.Y, p.X) != cave.FeatStairsUp {
		t.Errorf("arrival cell is %v, want up stairs", c.FeatAt(p.Y, p.X))
	}
	if p.CreateUpStair {
		t.Error("CreateUpStair request not consumed")
	}
}
