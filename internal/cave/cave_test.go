package cave

import (
	"math/rand"
	"testing"
)

func TestFeaturePredicates(t *testing.T) {
	cases := []struct {
		f        Feature
		wall     bool
		passable bool
	}{
		{FeatFloor, false, true},
		{FeatRock, true, false},
		{FeatPerm, true, false},
		{FeatMagma, true, false},
		{FeatClosedDoor, false, true},
		{FeatSecretDoor, false, true},
		{FeatStairsDown, false, true},
		{FeatRubble, false, true},
		{FeatShop, false, true},
	}
	for _, tc := range cases {
		if got := tc.f.IsWall(); got != tc.wall {
			t.Errorf("%v.IsWall() = %v, want %v", tc.f, got, tc.wall)
		}
		if got := tc.f.IsPassable(); got != tc.passable {
			t.Errorf("%v.IsPassable() = %v, want %v", tc.f, got, tc.passable)
		}
	}
}

func TestSetDimensionsResets(t *testing.T) {
	c := New(10)
	if c.Height != MaxHeight || c.Width != MaxWidth {
		t.Fatalf("New: %dx%d, want %dx%d", c.Height, c.Width, MaxHeight, MaxWidth)
	}

	c.SetFeat(5, 5, FeatFloor)
	c.SetDimensions(20, 30)
	if c.Height != 20 || c.Width != 30 {
		t.Fatalf("SetDimensions: %dx%d", c.Height, c.Width)
	}
	if c.FeatAt(5, 5) != FeatNone {
		t.Error("SetDimensions kept old terrain")
	}
}

func TestFindRandomInRangeIsHalfOpen(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New(5)
	c.SetDimensions(20, 20)
	c.FillRect(0, 0, 19, 19, FeatFloor)

	for i := 0; i < 500; i++ {
		y, x, ok := c.FindRandomInRange(rng, 3, 8, 10, 14, func(y, x int) bool { return true })
		if !ok {
			t.Fatal("no cell found in an all-floor range")
		}
		if y < 3 || y >= 8 || x < 10 || x >= 14 {
			t.Fatalf("cell (%d,%d) outside half-open range", y, x)
		}
	}
}

func TestFindRandomRespectsPredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := New(5)
	c.SetDimensions(10, 10)
	c.FillRect(0, 0, 9, 9, FeatRock)
	c.SetFeat(4, 7, FeatFloor)

	y, x, ok := c.FindRandom(rng, c.IsFloor)
	if !ok || y != 4 || x != 7 {
		t.Fatalf("FindRandom = (%d,%d,%v), want (4,7,true)", y, x, ok)
	}

	if _, _, ok := c.FindRandom(rng, func(y, x int) bool { return false }); ok {
		t.Error("FindRandom found a cell for an unsatisfiable predicate")
	}
}

func TestFindRandomNearStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := New(5)
	c.SetDimensions(10, 10)
	c.FillRect(0, 0, 9, 9, FeatFloor)

	// Center near the corner: candidate window goes out of bounds.
	for i := 0; i < 200; i++ {
		y, x, ok := c.FindRandomNear(rng, 1, 1, 3, 3, c.IsFloor)
		if !ok {
			t.Fatal("no cell found near corner")
		}
		if !c.InBounds(y, x) {
			t.Fatalf("out-of-bounds cell (%d,%d)", y, x)
		}
	}
}

// TestFillCircleSymmetric verifies the filled disc is symmetric under
// reflection through both axes.
func TestFillCircleSymmetric(t *testing.T) {
	c := New(5)
	c.SetDimensions(40, 40)
	c.FillRect(0, 0, 39, 39, FeatRock)

	const cy, cx, r = 20, 20, 7
	c.FillCircle(cy, cx, r, 0, FeatFloor, 0)

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			a := c.FeatAt(cy+dy, cx+dx)
			if b := c.FeatAt(cy-dy, cx+dx); a != b {
				t.Fatalf("vertical asymmetry at offset (%d,%d)", dy, dx)
			}
			if b := c.FeatAt(cy+dy, cx-dx); a != b {
				t.Fatalf("horizontal asymmetry at offset (%d,%d)", dy, dx)
			}
		}
	}

	if c.FeatAt(cy, cx) != FeatFloor {
		t.Error("circle center not filled")
	}
	if c.FeatAt(cy, cx+r+2) == FeatFloor {
		t.Error("circle spilled past its radius")
	}
}

func TestShopRegistry(t *testing.T) {
	c := New(0)
	c.SetDimensions(20, 20)
	c.SetShop(5, 6, 3)

	if c.FeatAt(5, 6) != FeatShop {
		t.Fatal("SetShop did not set the shop feature")
	}
	n, ok := c.ShopAt(5, 6)
	if !ok || n != 3 {
		t.Errorf("ShopAt = (%d,%v), want (3,true)", n, ok)
	}
	if _, ok := c.ShopAt(1, 1); ok {
		t.Error("ShopAt reported a shop on a plain cell")
	}
}

func TestFlags(t *testing.T) {
	c := New(5)
	c.SetDimensions(10, 10)
	c.AddFlags(2, 3, FlagRoom|FlagGlow)

	if !c.IsRoom(2, 3) {
		t.Error("room flag not set")
	}
	if c.FlagsAt(2, 3)&FlagGlow == 0 {
		t.Error("glow flag not set")
	}
	if c.IsVault(2, 3) {
		t.Error("vault flag set spuriously")
	}
}
