package cave

import "math/rand"

// Maximum dungeon dimensions. Individual levels may be smaller; the block
// grid used for room placement divides these evenly.
const (
	MaxHeight = 66
	MaxWidth  = 198

	BlockHeight = 11
	BlockWidth  = 11
)

// Flag is a per-cell bitset tracking generation and lighting state.
type Flag uint8

const (
	FlagRoom Flag = 1 << iota // cell belongs to a room
	FlagGlow                  // cell is permanently lit
	FlagIcky                  // vault interior; protected from teleports etc.
	FlagFeel                  // sampled for level-feeling discovery
)

// Point is a (row, column) map coordinate.
type Point struct {
	Y, X int
}

// Cave is the 2D map buffer for one dungeon level: terrain, flags and
// occupancy references. It is allocated fresh for each generation attempt and
// fully overwritten on retries.
//
// All coordinate arguments to Cave methods must be in bounds; violating that
// is a programming error and panics.
type Cave struct {
	Height, Width int
	Depth         int

	feats [][]Feature
	flags [][]Flag

	// Occupancy references owned by the spawning layer. Zero means vacant.
	monsters [][]int
	objects  [][]int

	shops map[Point]int

	// Level-feeling bookkeeping, accumulated during population.
	ObjRating      int
	MonRating      int
	GoodItem       bool
	Feeling        int
	FeelingSquares int

	// Index pool for uniform random cell searches, sized Height*Width.
	squares []int
}

// New returns a Cave sized for the given depth with maximum dimensions.
// Builders typically shrink it via SetDimensions before carving.
func New(depth int) *Cave {
	c := &Cave{Depth: depth, shops: make(map[Point]int)}
	c.SetDimensions(MaxHeight, MaxWidth)
	return c
}

// SetDimensions resizes the map buffers and the random-search index pool.
// Previous contents are invalidated.
func (c *Cave) SetDimensions(h, w int) {
	if h < 3 || h > MaxHeight || w < 3 || w > MaxWidth {
		panic("cave: dimensions out of range")
	}
	c.Height, c.Width = h, w
	c.feats = make([][]Feature, h)
	c.flags = make([][]Flag, h)
	c.monsters = make([][]int, h)
	c.objects = make([][]int, h)
	for y := 0; y < h; y++ {
		c.feats[y] = make([]Feature, w)
		c.flags[y] = make([]Flag, w)
		c.monsters[y] = make([]int, w)
		c.objects[y] = make([]int, w)
	}
	c.squares = make([]int, h*w)
	for i := range c.squares {
		c.squares[i] = i
	}
}

// InBounds reports whether (y, x) lies within the map.
func (c *Cave) InBounds(y, x int) bool {
	return y >= 0 && y < c.Height && x >= 0 && x < c.Width
}

// FeatAt returns the terrain at (y, x).
func (c *Cave) FeatAt(y, x int) Feature { return c.feats[y][x] }

// SetFeat replaces the terrain at (y, x).
func (c *Cave) SetFeat(y, x int, f Feature) { c.feats[y][x] = f }

// FlagsAt returns the flag bitset at (y, x).
func (c *Cave) FlagsAt(y, x int) Flag { return c.flags[y][x] }

// AddFlags ors fl into the bitset at (y, x).
func (c *Cave) AddFlags(y, x int, fl Flag) { c.flags[y][x] |= fl }

// ClearFlags removes fl from the bitset at (y, x).
func (c *Cave) ClearFlags(y, x int, fl Flag) { c.flags[y][x] &^= fl }

// MonsterAt returns the monster id occupying (y, x), or 0.
func (c *Cave) MonsterAt(y, x int) int { return c.monsters[y][x] }

// SetMonster records monster id at (y, x); 0 vacates the cell.
func (c *Cave) SetMonster(y, x, id int) { c.monsters[y][x] = id }

// ObjectAt returns the object id lying at (y, x), or 0.
func (c *Cave) ObjectAt(y, x int) int { return c.objects[y][x] }

// SetObject records object id at (y, x); 0 vacates the cell.
func (c *Cave) SetObject(y, x, id int) { c.objects[y][x] = id }

// SetShop places a shop entrance for shop number n at (y, x).
func (c *Cave) SetShop(y, x, n int) {
	c.SetFeat(y, x, FeatShop)
	c.shops[Point{y, x}] = n
}

// ShopAt returns the shop number at (y, x) and whether one is present.
func (c *Cave) ShopAt(y, x int) (int, bool) {
	n, ok := c.shops[Point{y, x}]
	return n, ok
}

// ── predicates ──────────────────────────────────────────────────────────────

// IsFloor reports plain floor at (y, x).
func (c *Cave) IsFloor(y, x int) bool { return c.feats[y][x] == FeatFloor }

// IsWall reports any wall or vein at (y, x).
func (c *Cave) IsWall(y, x int) bool { return c.feats[y][x].IsWall() }

// IsGranite reports plain granite (any sub-type) at (y, x).
func (c *Cave) IsGranite(y, x int) bool { return c.feats[y][x].IsGranite() }

// IsPerm reports permanent wall at (y, x).
func (c *Cave) IsPerm(y, x int) bool { return c.feats[y][x] == FeatPerm }

// IsStrongWall reports granite, vein or permanent wall at (y, x) — terrain a
// doorway may lean against.
func (c *Cave) IsStrongWall(y, x int) bool {
	f := c.feats[y][x]
	return f.IsGranite() || f.IsMineral() || f == FeatPerm
}

// IsPassable reports whether a creature could occupy (y, x).
func (c *Cave) IsPassable(y, x int) bool { return c.feats[y][x].IsPassable() }

// IsRoom reports whether (y, x) is inside a room.
func (c *Cave) IsRoom(y, x int) bool { return c.flags[y][x]&FlagRoom != 0 }

// IsVault reports whether (y, x) is vault interior.
func (c *Cave) IsVault(y, x int) bool { return c.flags[y][x]&FlagIcky != 0 }

// IsEmpty reports plain floor with no monster and no object at (y, x).
func (c *Cave) IsEmpty(y, x int) bool {
	return c.IsFloor(y, x) && c.monsters[y][x] == 0 && c.objects[y][x] == 0
}

// IsStart reports whether (y, x) is a legal player starting cell: empty and
// not inside a vault.
func (c *Cave) IsStart(y, x int) bool {
	return c.IsEmpty(y, x) && !c.IsVault(y, x)
}

// CanPutItem reports clean floor where an object may be dropped.
func (c *Cave) CanPutItem(y, x int) bool {
	return c.IsFloor(y, x) && c.objects[y][x] == 0
}

// ── random cell search ──────────────────────────────────────────────────────

// FindRandom locates a uniformly random cell satisfying pred anywhere on the
// map. It draws indices from the preallocated pool in permutation order, so
// the choice is unbiased and the scan is O(cells) worst case.
func (c *Cave) FindRandom(rng *rand.Rand, pred func(y, x int) bool) (int, int, bool) {
	return findIn(rng, c.squares, 0, c.Height, 0, c.Width, pred)
}

// FindRandomInRange locates a uniformly random cell satisfying pred with
// y1 <= y < y2 and x1 <= x < x2.
func (c *Cave) FindRandomInRange(rng *rand.Rand, y1, y2, x1, x2 int, pred func(y, x int) bool) (int, int, bool) {
	n := (y2 - y1) * (x2 - x1)
	if n <= 0 {
		return 0, 0, false
	}
	squares := make([]int, n)
	for i := range squares {
		squares[i] = i
	}
	return findIn(rng, squares, y1, y2, x1, x2, pred)
}

// FindRandomNear locates a uniformly random in-bounds cell satisfying pred
// within +/- yd, xd of (y0, x0).
func (c *Cave) FindRandomNear(rng *rand.Rand, y0, x0, yd, xd int, pred func(y, x int) bool) (int, int, bool) {
	inb := func(y, x int) bool { return c.InBounds(y, x) && pred(y, x) }
	return c.FindRandomInRange(rng, y0-yd, y0+yd+1, x0-xd, x0+xd+1, inb)
}

// findIn scans squares in an incrementally generated random permutation,
// returning the first cell that satisfies pred.
func findIn(rng *rand.Rand, squares []int, y1, y2, x1, x2 int, pred func(y, x int) bool) (int, int, bool) {
	xd := x2 - x1
	n := (y2 - y1) * xd
	for i := 0; i < n; i++ {
		j := rng.Intn(n-i) + i
		squares[i], squares[j] = squares[j], squares[i]

		y := squares[i]/xd + y1
		x := squares[i]%xd + x1
		if pred(y, x) {
			return y, x, true
		}
	}
	return 0, 0, false
}
