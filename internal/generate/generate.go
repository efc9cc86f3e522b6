package generate

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"stonedelve/internal/cave"
)

// Dungeon-wide constants.
const (
	// MaxDepth is one past the deepest generatable level.
	MaxDepth = 128

	// maxAttempts bounds the generate-validate-retry loop.
	maxAttempts = 100

	// minMonsterAlloc is the baseline monster count per level.
	minMonsterAlloc = 14

	// feelingTotal is how many hidden feeling squares each level gets.
	feelingTotal = 100

	// Baseline object allocations for the default level builder.
	amtRoomObjects = 7
	amtFloorItems  = 2
	amtGold        = 3
)

// Generator builds dungeon levels. It owns the random source, the profile
// list and the capacity limits; the entity placement service is a
// collaborator behind the Allocator interface.
//
// A Generator is not safe for concurrent use; generation is a synchronous
// batch computation.
type Generator struct {
	Rand  *rand.Rand
	Alloc Allocator

	Profiles []*CaveProfile
	Town     *CaveProfile

	// TownSeed fixes the town's physical layout across visits.
	TownSeed int64
	Daytime  bool

	// Quests holds the depths whose levels must host their quest monster
	// and never generate as labyrinths.
	Quests mapset.Set[int]

	// Capacity ceilings; a level exceeding either is regenerated.
	MaxMonsters int
	MaxObjects  int

	// Trace, when set, receives debug lines during generation.
	Trace func(format string, args ...any)
}

// New returns a Generator with the standard profiles and limits.
func New(rng *rand.Rand, alloc Allocator) *Generator {
	quests := mapset.New[int]()
	quests.Put(99)
	quests.Put(100)

	return &Generator{
		Rand:        rng,
		Alloc:       alloc,
		Profiles:    DefaultProfiles(),
		Town:        TownProfile(),
		TownSeed:    rng.Int63(),
		Daytime:     true,
		Quests:      quests,
		MaxMonsters: 1024,
		MaxObjects:  512,
	}
}

func (g *Generator) tracef(format string, args ...any) {
	if g.Trace != nil {
		g.Trace(format, args...)
	}
}

// isQuest reports whether depth hosts a quest.
func (g *Generator) isQuest(depth int) bool {
	return depth > 0 && g.Quests.Has(depth)
}

// Generate builds a level for the player's depth. It retries with fully
// cleared state until a valid level comes out, and fails only after 100
// attempts, which indicates something structurally wrong with the
// configuration rather than bad luck.
func (g *Generator) Generate(p *Player) (*cave.Cave, error) {
	for tries := 0; tries < maxAttempts; tries++ {
		c, err := g.attempt(p)
		if err != nil {
			g.tracef("generation restarted: %v", err)
			continue
		}
		return c, nil
	}
	return nil, fmt.Errorf("level generation failed %d times at depth %d", maxAttempts, p.Depth)
}

// attempt runs one full generation pass, returning an error when the level
// must be regenerated.
func (g *Generator) attempt(p *Player) (*cave.Cave, error) {
	c := cave.New(p.Depth)
	g.Alloc.Reset()

	built := false
	if p.Depth == 0 {
		s := newSession(g.Town)
		built = caveBuilders[g.Town.Kind](g, c, s, p)
	} else {
		perc := g.Rand.Intn(100)
		last := len(g.Profiles) - 1
		for i, profile := range g.Profiles {
			if i < last && profile.Cutoff < perc {
				continue
			}
			s := newSession(profile)
			if caveBuilders[profile.Kind](g, c, s, p) {
				g.tracef("profile chosen: %s", profile.Name)
				built = true
				break
			}
		}
	}
	if !built {
		return nil, fmt.Errorf("no profile produced a level")
	}

	// Quest levels must host their quest monsters.
	if g.isQuest(c.Depth) {
		for _, r := range g.Alloc.Races() {
			if !r.Flags.HasAll(RFQuestor) || r.Level != c.Depth {
				continue
			}
			if y, x, ok := findEmpty(g.Rand, c); ok {
				g.Alloc.PlaceMonster(c, g.Rand, y, x, r.ID, true, true, OriginDrop)
			}
		}
	}

	g.placeFeeling(c)
	c.Feeling = calcObjFeeling(c) + calcMonFeeling(c)

	if n := g.Alloc.ObjectCount(); n >= g.MaxObjects {
		return nil, fmt.Errorf("too many objects (%d)", n)
	}
	if n := g.Alloc.MonsterCount(); n >= g.MaxMonsters {
		return nil, fmt.Errorf("too many monsters (%d)", n)
	}

	return c, nil
}

// ── the default rooms-and-tunnels builder ───────────────────────────────────

// roomBuild attempts a room of the given profile with its block footprint
// anchored at (by0, bx0). Only one crowded room is allowed per level, and
// no two rooms may share blocks.
func roomBuild(g *Generator, c *cave.Cave, s *session, by0, bx0 int, profile RoomProfile) bool {
	by1, bx1 := by0, bx0
	by2 := by0 + profile.Height
	bx2 := bx0 + profile.Width

	if c.Depth < profile.MinDepth {
		return false
	}
	if s.crowded && profile.Crowded {
		return false
	}

	if by1 < 0 || by2 >= s.rowBlocks {
		return false
	}
	if bx1 < 0 || bx2 >= s.colBlocks {
		return false
	}

	for by := by1; by <= by2; by++ {
		for bx := bx1; bx <= bx2; bx++ {
			if s.blockUsed[by][bx] {
				return false
			}
		}
	}

	// The room is centered on its block footprint.
	y := (by1 + by2 + 1) * cave.BlockHeight / 2
	x := (bx1 + bx2 + 1) * cave.BlockWidth / 2

	if !roomBuilders[profile.Kind](g, c, s, y, x) {
		return false
	}

	s.recordCenter(y, x)

	for by := by1; by < by2; by++ {
		for bx := bx1; bx < bx2; bx++ {
			s.blockUsed[by][bx] = true
		}
	}

	if profile.Crowded {
		s.crowded = true
	}
	return true
}

// buildDefaultLevel is the classic rooms-and-tunnels builder: pack rooms
// into free 11x11 blocks, tunnel them together in scrambled order, sprinkle
// junction doors and mineral streamers, then populate.
func buildDefaultLevel(g *Generator, c *cave.Cave, s *session, p *Player) bool {
	rng := g.Rand

	// Some levels generate fewer rooms in the same area; room density stays
	// constant because rooms are still drawn from the same block grid.
	sizePercent := 100
	if !g.isQuest(c.Depth) {
		switch i := randRange(rng, 1, 10) + c.Depth/24; {
		case i < 2:
			sizePercent = 75
		case i < 3:
			sizePercent = 80
		case i < 4:
			sizePercent = 85
		case i < 5:
			sizePercent = 90
		case i < 6:
			sizePercent = 95
		}
	}
	numRooms := s.profile.Rooms * sizePercent / 100

	c.SetDimensions(cave.MaxHeight, cave.MaxWidth)
	c.FillRect(0, 0, c.Height-1, c.Width-1, cave.FeatRock)

	s.initBlocks(c.Height, c.Width)
	tried := make([][]bool, s.rowBlocks)
	for i := range tried {
		tried[i] = make([]bool, s.colBlocks)
	}

	for built := 0; built < numRooms; {
		// Pick an untried block uniformly by reservoir sampling.
		j, tby, tbx := 0, 0, 0
		for by := 0; by < s.rowBlocks; by++ {
			for bx := 0; bx < s.colBlocks; bx++ {
				if tried[by][bx] {
					continue
				}
				j++
				if oneIn(rng, j) {
					tby, tbx = by, bx
				}
			}
		}
		if j == 0 {
			break
		}
		tried[tby][tbx] = true

		key := rng.Intn(100)

		// The rarity draw has a depth/unusual chance of reaching 1, a
		// (depth/unusual)^2 chance of reaching 2, up to the profile's max.
		rarity := 0
		for i := 0; i == rarity && i < s.profile.MaxRarity; i++ {
			if rng.Intn(s.profile.Unusual) < c.Depth {
				rarity++
			}
		}

		for _, rp := range s.profile.RoomKinds {
			if rp.Rarity > rarity || rp.Cutoff <= key {
				continue
			}
			if roomBuild(g, c, s, tby, tbx, rp) {
				built++
				break
			}
		}
	}

	c.DrawRect(0, 0, c.Height-1, c.Width-1, cave.FeatPerm)

	// Scramble the room order so corridors crisscross the level.
	for range s.centers {
		p1 := rng.Intn(len(s.centers))
		p2 := rng.Intn(len(s.centers))
		s.centers[p1], s.centers[p2] = s.centers[p2], s.centers[p1]
	}

	s.doors = s.doors[:0]

	if len(s.centers) == 0 {
		return false
	}

	// Connect each room to the previous one, and the first to the last.
	prev := s.centers[len(s.centers)-1]
	for _, cent := range s.centers {
		carveTunnel(rng, c, s, cent.Y, cent.X, prev.Y, prev.X)
		prev = cent
	}

	placeJunctionDoors(rng, c, s)

	ensureConnectedness(c)

	for i := 0; i < s.profile.Streamer.Mag; i++ {
		buildStreamer(g, c, s, cave.FeatMagma, s.profile.Streamer.MC)
	}
	for i := 0; i < s.profile.Streamer.Qua; i++ {
		buildStreamer(g, c, s, cave.FeatQuartz, s.profile.Streamer.QC)
	}

	g.allocStairs(c, cave.FeatStairsDown, randRange(rng, 3, 4), 3)
	g.allocStairs(c, cave.FeatStairsUp, randRange(rng, 1, 2), 3)

	k := clamp(c.Depth/3, 2, 10)

	g.allocObjects(c, setCorridor, allocRubble, randRange(rng, 1, k), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocTrap, randRange(rng, 1, k), c.Depth, OriginFloor)

	g.newPlayerSpot(c, p)

	for i := minMonsterAlloc + randRange(rng, 1, 8) + k; i > 0; i-- {
		g.Alloc.PlaceDistantMonster(c, rng, cave.Point{Y: p.Y, X: p.X}, 0, c.Depth, true)
	}

	g.allocObjects(c, setRoom, allocObject, max(0, randNormal(rng, amtRoomObjects, 3)), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocObject, max(0, randNormal(rng, amtFloorItems, 3)), c.Depth, OriginFloor)
	g.allocObjects(c, setBoth, allocGold, max(0, randNormal(rng, amtGold, 3)), c.Depth, OriginFloor)

	return true
}

// ensureConnectedness joins every open region of the level into one
// component, carving through walls where needed.
func ensureConnectedness(c *cave.Cave) {
	colors, counts := colorRegions(c, true)
	joinRegions(c, colors, counts)
}

// The eight direction deltas used by streamers.
var (
	streamDY = [8]int{-1, 1, 0, 0, -1, -1, 1, 1}
	streamDX = [8]int{0, 0, -1, 1, -1, 1, -1, 1}
)

// buildStreamer lays a vein of mineral through the dungeon, walking a random
// direction from near the center and converting plain rock as it goes, with
// an occasional visible treasure seam.
func buildStreamer(g *Generator, c *cave.Cave, s *session, feat cave.Feature, chance int) {
	rng := g.Rand

	y := c.Height/2 - 10 + rng.Intn(21)
	x := c.Width/2 - 15 + rng.Intn(31)
	dir := rng.Intn(8)

	for {
		for i := 0; i < s.profile.Streamer.Den; i++ {
			d := s.profile.Streamer.Rng
			ty, tx, ok := c.FindRandomNear(rng, y, x, d, d, func(int, int) bool { return true })
			if !ok {
				continue
			}
			if c.FeatAt(ty, tx) != cave.FeatRock {
				continue
			}
			c.SetFeat(ty, tx, feat)
			if oneIn(rng, chance) {
				upgradeMineral(c, ty, tx)
			}
		}

		y += streamDY[dir]
		x += streamDX[dir]
		if !c.InBounds(y, x) {
			break
		}
	}
}

// upgradeMineral adds visible treasure to a mineral vein.
func upgradeMineral(c *cave.Cave, y, x int) {
	switch c.FeatAt(y, x) {
	case cave.FeatMagma:
		c.SetFeat(y, x, cave.FeatMagmaGold)
	case cave.FeatQuartz:
		c.SetFeat(y, x, cave.FeatQuartzGold)
	}
}

// placeFeeling hides the squares whose discovery reveals the level feeling.
func (g *Generator) placeFeeling(c *cave.Cave) {
	for i := 0; i < feelingTotal; i++ {
		for j := 0; j < 500; j++ {
			y := g.Rand.Intn(c.Height)
			x := g.Rand.Intn(c.Width)
			if c.IsWall(y, x) || c.FlagsAt(y, x)&cave.FlagFeel != 0 {
				continue
			}
			c.AddFlags(y, x, cave.FlagFeel)
			break
		}
	}
	c.FeelingSquares = 0
}

// calcObjFeeling grades the level's loot, adjusted for depth. Lower is more
// exciting; 10 is reserved for levels holding an artifact.
func calcObjFeeling(c *cave.Cave) int {
	if c.Depth == 0 {
		return 0
	}
	if c.GoodItem {
		return 10
	}

	x := c.ObjRating / c.Depth
	switch {
	case x > 6000:
		return 20
	case x > 3500:
		return 30
	case x > 2000:
		return 40
	case x > 1000:
		return 50
	case x > 500:
		return 60
	case x > 300:
		return 70
	case x > 200:
		return 80
	case x > 100:
		return 90
	}
	return 100
}

// calcMonFeeling grades the level's monster danger, adjusted for depth
// squared. Lower is more dangerous.
func calcMonFeeling(c *cave.Cave) int {
	if c.Depth == 0 {
		return 0
	}

	x := c.MonRating / (c.Depth * c.Depth)
	switch {
	case x > 7000:
		return 1
	case x > 4500:
		return 2
	case x > 2500:
		return 3
	case x > 1500:
		return 4
	case x > 800:
		return 5
	case x > 400:
		return 6
	case x > 150:
		return 7
	case x > 50:
		return 8
	}
	return 9
}
