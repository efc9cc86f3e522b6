package generate

import (
	"math/rand"

	"stonedelve/internal/cave"
)

// Origin tags why an entity was placed, for later provenance display.
type Origin uint8

const (
	OriginFloor Origin = iota
	OriginSpecial
	OriginVault
	OriginPit
	OriginCavern
	OriginLabyrinth
	OriginDrop
	OriginDropPit
	OriginDropVault
	OriginDropSpecial
)

// MonsterFlags describe innate properties of a monster race. Pit and nest
// profiles match against these.
type MonsterFlags uint32

const (
	RFUnique MonsterFlags = 1 << iota
	RFQuestor
	RFAnimal
	RFOrc
	RFTroll
	RFGiant
	RFDragon
	RFDemon
	RFUndead
	RFEvil
	RFHound
	RFSpider
	RFFriends // appears in groups
)

// HasAll reports whether every flag in sub is set.
func (f MonsterFlags) HasAll(sub MonsterFlags) bool { return f&sub == sub }

// HasAny reports whether any flag in sub is set.
func (f MonsterFlags) HasAny(sub MonsterFlags) bool { return f&sub != 0 }

// SpellFlags describe a race's innate spells and breath attacks.
type SpellFlags uint32

const (
	RSBreatheAcid SpellFlags = 1 << iota
	RSBreatheElec
	RSBreatheFire
	RSBreatheCold
	RSBreathePoison
	RSCauseWounds
	RSSummonKin
)

// HasAll reports whether every spell flag in sub is set.
func (f SpellFlags) HasAll(sub SpellFlags) bool { return f&sub == sub }

// HasAny reports whether any spell flag in sub is set.
func (f SpellFlags) HasAny(sub SpellFlags) bool { return f&sub != 0 }

// MonsterRace is the read-only view of one race that generation needs:
// enough to depth-match, to sort pits by toughness, and to filter by pit
// profile restrictions. Race ids are positive; 0 means "no race".
type MonsterRace struct {
	ID     int
	Name   string
	Base   string
	Glyph  rune
	Color  byte
	Level  int
	Rarity int
	Flags  MonsterFlags
	Spells SpellFlags
}

// Allocator is the entity placement service and monster allocation table
// that generation consumes. Implementations own the per-level monster and
// object lists; generation only records terrain.
//
// PrepareTable installs a restriction predicate for subsequent Draw calls;
// PrepareTable(nil) removes it. Pit and nest builders must uninstall their
// restriction before returning.
type Allocator interface {
	// Races returns the full race catalog, for quest-monster scans.
	Races() []MonsterRace
	// Race returns the catalog entry for a race id.
	Race(id int) MonsterRace

	PrepareTable(restrict func(MonsterRace) bool)
	// Draw picks a race id appropriate to the target depth from the prepared
	// table, or 0 when the table has no candidates.
	Draw(rng *rand.Rand, depth int) int

	// PlaceMonster places one monster of a specific race. Reports failure
	// when the cell cannot hold it or the level monster list is full.
	PlaceMonster(c *cave.Cave, rng *rand.Rand, y, x, raceID int, group, sleeping bool, origin Origin) bool
	// PlaceRandomMonster draws a depth-appropriate race and places it.
	PlaceRandomMonster(c *cave.Cave, rng *rand.Rand, y, x, depth int, group, sleeping bool, origin Origin) bool
	// PlaceDistantMonster places a depth-appropriate monster on an empty cell
	// at least minDist away from the player.
	PlaceDistantMonster(c *cave.Cave, rng *rand.Rand, player cave.Point, minDist, depth int, sleeping bool) bool

	PlaceObject(c *cave.Cave, rng *rand.Rand, y, x, level int, good, great bool, origin Origin) bool
	PlaceGold(c *cave.Cave, rng *rand.Rand, y, x, level int, origin Origin) bool
	PlaceTrap(c *cave.Cave, rng *rand.Rand, y, x int)

	// MonsterCount and ObjectCount report current per-level totals for the
	// orchestrator's ceiling checks.
	MonsterCount() int
	ObjectCount() int

	// Reset wipes the per-level entity lists at the start of an attempt.
	Reset()
}

// Player carries the player state generation reads and writes: position,
// target depth, and pending stair-creation requests from the last level
// transition.
type Player struct {
	Y, X  int
	Depth int

	CreateDownStair bool
	CreateUpStair   bool
}
