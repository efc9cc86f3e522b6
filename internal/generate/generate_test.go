package generate

import (
	"math/rand"
	"testing"

	"stonedelve/internal/cave"
)

// fakeAlloc is a minimal Allocator for generation tests: it records
// placements without modeling real monsters or objects.
type fakeAlloc struct {
	races    []MonsterRace
	restrict func(MonsterRace) bool

	monsters []cave.Point
	monRaces []int
	objects  []cave.Point
	traps    []cave.Point
}

func newFakeAlloc() *fakeAlloc {
	return &fakeAlloc{
		races: []MonsterRace{
			{ID: 1, Name: "rat", Base: "rodent", Glyph: 'r', Level: 1, Rarity: 1, Flags: RFAnimal},
			{ID: 2, Name: "orc", Base: "orc", Glyph: 'o', Level: 8, Rarity: 1, Flags: RFOrc | RFEvil},
			{ID: 3, Name: "troll", Base: "troll", Glyph: 'T', Level: 25, Rarity: 1, Flags: RFTroll | RFEvil},
			{ID: 4, Name: "dragon", Base: "dragon", Glyph: 'D', Level: 60, Rarity: 1,
				Flags: RFDragon | RFEvil, Spells: RSBreatheFire},
			{ID: 5, Name: "warden", Base: "lich", Glyph: 'L', Level: 99, Rarity: 1,
				Flags: RFUnique | RFQuestor | RFUndead | RFEvil},
		},
	}
}

func (f *fakeAlloc) Races() []MonsterRace { return f.races }

func (f *fakeAlloc) Race(id int) MonsterRace {
	for _, r := range f.races {
		if r.ID == id {
			return r
		}
	}
	return MonsterRace{}
}

func (f *fakeAlloc) PrepareTable(restrict func(MonsterRace) bool) { f.restrict = restrict }

func (f *fakeAlloc) Draw(rng *rand.Rand, depth int) int {
	var ids []int
	for _, r := range f.races {
		if r.Level > depth || r.Flags.HasAny(RFUnique) {
			continue
		}
		if f.restrict != nil && !f.restrict(r) {
			continue
		}
		ids = append(ids, r.ID)
	}
	if len(ids) == 0 {
		return 0
	}
	return ids[rng.Intn(len(ids))]
}

func (f *fakeAlloc) PlaceMonster(c *cave.Cave, rng *rand.Rand, y, x, raceID int, group, sleeping bool, origin Origin) bool {
	if !c.InBounds(y, x) || !c.IsEmpty(y, x) {
		return false
	}
	f.monsters = append(f.monsters, cave.Point{Y: y, X: x})
	f.monRaces = append(f.monRaces, raceID)
	c.SetMonster(y, x, len(f.monsters))
	c.MonRating += f.Race(raceID).Level
	return true
}

func (f *fakeAlloc) PlaceRandomMonster(c *cave.Cave, rng *rand.Rand, y, x, depth int, group, sleeping bool, origin Origin) bool {
	id := f.Draw(rng, depth)
	if id == 0 {
		return false
	}
	return f.PlaceMonster(c, rng, y, x, id, group, sleeping, origin)
}

func (f *fakeAlloc) PlaceDistantMonster(c *cave.Cave, rng *rand.Rand, player cave.Point, minDist, depth int, sleeping bool) bool {
	for i := 0; i < 50; i++ {
		y, x := rng.Intn(c.Height), rng.Intn(c.Width)
		if !c.IsEmpty(y, x) {
			continue
		}
		dy, dx := abs(y-player.Y), abs(x-player.X)
		if dy <= minDist && dx <= minDist {
			continue
		}
		return f.PlaceRandomMonster(c, rng, y, x, depth, true, sleeping, OriginFloor)
	}
	return false
}

func (f *fakeAlloc) PlaceObject(c *cave.Cave, rng *rand.Rand, y, x, level int, good, great bool, origin Origin) bool {
	if !c.InBounds(y, x) || !c.CanPutItem(y, x) {
		return false
	}
	f.objects = append(f.objects, cave.Point{Y: y, X: x})
	c.SetObject(y, x, len(f.objects))
	c.ObjRating += level
	return true
}

func (f *fakeAlloc) PlaceGold(c *cave.Cave, rng *rand.Rand, y, x, level int, origin Origin) bool {
	return f.PlaceObject(c, rng, y, x, level, false, false, origin)
}

func (f *fakeAlloc) PlaceTrap(c *cave.Cave, rng *rand.Rand, y, x int) {
	f.traps = append(f.traps, cave.Point{Y: y, X: x})
}

func (f *fakeAlloc) MonsterCount() int { return len(f.monsters) }
func (f *fakeAlloc) ObjectCount() int  { return len(f.objects) }

func (f *fakeAlloc) Reset() {
	f.monsters = f.monsters[:0]
	f.monRaces = f.monRaces[:0]
	f.objects = f.objects[:0]
	f.traps = f.traps[:0]
	f.restrict = nil
}

func newTestGenerator(seed int64) (*Generator, *fakeAlloc) {
	alloc := newFakeAlloc()
	g := New(rand.New(rand.NewSource(seed)), alloc)
	return g, alloc
}

// TestGenerateConnected verifies that every passable cell of a generated
// level belongs to a single region, across several depths and seeds.
func TestGenerateConnected(t *testing.T) {
	for _, depth := range []int{1, 6, 30, 60} {
		for seed := int64(0); seed < 4; seed++ {
			g, _ := newTestGenerator(seed)
			c, err := g.Generate(&Player{Depth: depth})
			if err != nil {
				t.Fatalf("depth=%d seed=%d: %v", depth, seed, err)
			}

			_, counts := colorRegions(c, true)
			regions := 0
			for _, n := range counts {
				if n > 0 {
					regions++
				}
			}
			if regions != 1 {
				t.Errorf("depth=%d seed=%d: %d disconnected regions", depth, seed, regions)
			}
		}
	}
}

// TestGenerateSealedBoundary verifies the outermost ring is permanent rock
// (or shop-front buildings in town) so nothing escapes the map.
func TestGenerateSealedBoundary(t *testing.T) {
	for _, depth := range []int{0, 1, 25, 50} {
		g, _ := newTestGenerator(7)
		c, err := g.Generate(&Player{Depth: depth})
		if err != nil {
			t.Fatalf("depth=%d: %v", depth, err)
		}

		for x := 0; x < c.Width; x++ {
			if !c.IsPerm(0, x) || !c.IsPerm(c.Height-1, x) {
				t.Fatalf("depth=%d: boundary breach in row 0/%d at x=%d", depth, c.Height-1, x)
			}
		}
		for y := 0; y < c.Height; y++ {
			if !c.IsPerm(y, 0) || !c.IsPerm(y, c.Width-1) {
				t.Fatalf("depth=%d: boundary breach in col 0/%d at y=%d", depth, c.Width-1, y)
			}
		}
	}
}

// TestGenerateStairs verifies stair placement: down stairs everywhere above
// the bottom, up stairs everywhere below the surface.
func TestGenerateStairs(t *testing.T) {
	for _, depth := range []int{0, 1, 20, 45} {
		g, _ := newTestGenerator(11)
		c, err := g.Generate(&Player{Depth: depth})
		if err != nil {
			t.Fatalf("depth=%d: %v", depth, err)
		}

		down, up := 0, 0
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				switch c.FeatAt(y, x) {
				case cave.FeatStairsDown:
					down++
				case cave.FeatStairsUp:
					up++
				}
			}
		}
		if down == 0 {
			t.Errorf("depth=%d: no down stairs", depth)
		}
		if depth > 0 && up == 0 {
			t.Errorf("depth=%d: no up stairs", depth)
		}
		if depth == 0 && up != 0 {
			t.Errorf("town has %d up stairs", up)
		}
	}
}

// TestGeneratePlayerPlaced verifies the player lands on a passable cell.
func TestGeneratePlayerPlaced(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g, _ := newTestGenerator(seed)
		p := &Player{Depth: 12}
		c, err := g.Generate(p)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		if !c.InBounds(p.Y, p.X) || !c.IsPassable(p.Y, p.X) {
			t.Errorf("seed=%d: player at (%d,%d) feat=%v", seed, p.Y, p.X, c.FeatAt(p.Y, p.X))
		}
		if c.MonsterAt(p.Y, p.X) != 0 {
			t.Errorf("seed=%d: player starts on a monster at (%d,%d)", seed, p.Y, p.X)
		}
	}
}

// TestGenerateMonstersAndLoot verifies the default population floors.
func TestGenerateMonstersAndLoot(t *testing.T) {
	g, alloc := newTestGenerator(3)
	_, err := g.Generate(&Player{Depth: 10})
	if err != nil {
		t.Fatal(err)
	}
	if alloc.MonsterCount() < minMonsterAlloc {
		t.Errorf("MonsterCount() = %d, want at least %d", alloc.MonsterCount(), minMonsterAlloc)
	}
	if alloc.ObjectCount() == 0 {
		t.Error("level has no objects at all")
	}
}

// TestTownLayoutDeterministic verifies the town terrain is identical across
// regenerations with the same town seed, even as the main RNG advances.
func TestTownLayoutDeterministic(t *testing.T) {
	g, _ := newTestGenerator(5)
	g.TownSeed = 12345

	first, err := g.Generate(&Player{Depth: 0})
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Generate(&Player{Depth: 0})
	if err != nil {
		t.Fatal(err)
	}

	if first.Height != second.Height || first.Width != second.Width {
		t.Fatalf("town dims changed: %dx%d vs %dx%d",
			first.Height, first.Width, second.Height, second.Width)
	}
	for y := 0; y < first.Height; y++ {
		for x := 0; x < first.Width; x++ {
			if first.FeatAt(y, x) != second.FeatAt(y, x) {
				t.Fatalf("town terrain differs at (%d,%d): %v vs %v",
					y, x, first.FeatAt(y, x), second.FeatAt(y, x))
			}
		}
	}
}

// TestTownHasAllShops verifies every store front gets an entrance.
func TestTownHasAllShops(t *testing.T) {
	g, _ := newTestGenerator(9)
	c, err := g.Generate(&Player{Depth: 0})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.FeatAt(y, x) != cave.FeatShop {
				continue
			}
			n, ok := c.ShopAt(y, x)
			if !ok {
				t.Fatalf("shop feature at (%d,%d) without a shop number", y, x)
			}
			seen[n] = true
		}
	}
	for n := 0; n < MaxStores; n++ {
		if !seen[n] {
			t.Errorf("store %d missing from town", n)
		}
	}
}

// TestQuestLevelHostsGuardian verifies quest depths place their questor race.
func TestQuestLevelHostsGuardian(t *testing.T) {
	g, alloc := newTestGenerator(21)
	_, err := g.Generate(&Player{Depth: 99})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, id := range alloc.monRaces {
		if id == 5 {
			found = true
		}
	}
	if !found {
		t.Error("depth 99 level generated without its quest guardian")
	}
}

// TestGenerateFailsAfterRetries verifies the retry loop gives up instead of
// spinning forever when every level is rejected.
func TestGenerateFailsAfterRetries(t *testing.T) {
	g, _ := newTestGenerator(1)
	g.MaxObjects = 0 // every attempt trips the ceiling

	if _, err := g.Generate(&Player{Depth: 5}); err == nil {
		t.Fatal("Generate succeeded despite an impossible object ceiling")
	}
}

// TestFeelingBounds sanity-checks the feeling grade composition.
func TestFeelingBounds(t *testing.T) {
	for seed := int64(0); seed < 3; seed++ {
		g, _ := newTestGenerator(seed)
		c, err := g.Generate(&Player{Depth: 30})
		if err != nil {
			t.Fatal(err)
		}
		if c.Feeling < 11 || c.Feeling > 109 {
			t.Errorf("seed=%d: feeling %d outside grade range", seed, c.Feeling)
		}
		if c.FeelingSquares != 0 {
			t.Errorf("seed=%d: FeelingSquares = %d, want 0 on a fresh level", seed, c.FeelingSquares)
		}
	}
}
