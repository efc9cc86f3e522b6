package generate

import (
	"math/rand"
	"sort"

	"stonedelve/internal/cave"
)

// PitProfile restricts which monster races may populate a pit or nest, and
// at what depth the theme is most at home.
type PitProfile struct {
	Name      string
	Nest      bool // otherwise a pit
	Ave       int  // depth the theme is centered on
	Rarity    int
	ObjRarity int // % chance of an object under each monster

	Flags           MonsterFlags // required
	ForbiddenFlags  MonsterFlags
	Spells          SpellFlags // required
	ForbiddenSpells SpellFlags
	Bases           []string // allowed base races, empty = any
}

var pitProfiles = []PitProfile{
	// nests
	{Name: "spider nest", Nest: true, Ave: 20, Rarity: 1, ObjRarity: 5,
		Flags: RFSpider},
	{Name: "animal den", Nest: true, Ave: 35, Rarity: 1, ObjRarity: 10,
		Flags: RFAnimal, ForbiddenFlags: RFHound},
	{Name: "kennel", Nest: true, Ave: 45, Rarity: 2,
		Flags: RFHound},
	{Name: "crypt", Nest: true, Ave: 60, Rarity: 2, ObjRarity: 20,
		Flags: RFUndead},

	// pits
	{Name: "orc pit", Nest: false, Ave: 20, Rarity: 1, ObjRarity: 5,
		Flags: RFOrc},
	{Name: "troll pit", Nest: false, Ave: 40, Rarity: 1, ObjRarity: 5,
		Flags: RFTroll},
	{Name: "giant pit", Nest: false, Ave: 55, Rarity: 1, ObjRarity: 10,
		Flags: RFGiant},
	{Name: "acid dragon pit", Nest: false, Ave: 65, Rarity: 2, ObjRarity: 10,
		Flags:  RFDragon,
		Spells: RSBreatheAcid, ForbiddenSpells: RSBreatheElec | RSBreatheFire | RSBreatheCold | RSBreathePoison},
	{Name: "electric dragon pit", Nest: false, Ave: 65, Rarity: 2, ObjRarity: 10,
		Flags:  RFDragon,
		Spells: RSBreatheElec, ForbiddenSpells: RSBreatheAcid | RSBreatheFire | RSBreatheCold | RSBreathePoison},
	{Name: "fire dragon pit", Nest: false, Ave: 70, Rarity: 2, ObjRarity: 10,
		Flags:  RFDragon,
		Spells: RSBreatheFire, ForbiddenSpells: RSBreatheAcid | RSBreatheElec | RSBreatheCold | RSBreathePoison},
	{Name: "cold dragon pit", Nest: false, Ave: 70, Rarity: 2, ObjRarity: 10,
		Flags:  RFDragon,
		Spells: RSBreatheCold, ForbiddenSpells: RSBreatheAcid | RSBreatheElec | RSBreatheFire | RSBreathePoison},
	{Name: "demon pit", Nest: false, Ave: 80, Rarity: 2, ObjRarity: 15,
		Flags: RFDemon | RFEvil},
}

// allows reports whether a race fits the profile's restrictions. Uniques
// never belong in a pit.
func (p *PitProfile) allows(r MonsterRace) bool {
	if r.Flags.HasAny(RFUnique) {
		return false
	}
	if !r.Flags.HasAll(p.Flags) {
		return false
	}
	if r.Flags.HasAny(p.ForbiddenFlags) {
		return false
	}
	if !r.Spells.HasAll(p.Spells) {
		return false
	}
	if r.Spells.HasAny(p.ForbiddenSpells) {
		return false
	}
	if len(p.Bases) > 0 {
		match := false
		for _, b := range p.Bases {
			if r.Base == b {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}

// selectPitProfile picks the pit or nest theme for this depth. Each theme
// rolls a depth from a normal distribution centered on its average, and the
// theme landing closest to the actual depth wins, subject to its rarity.
// When every rarity roll fails, the first matching theme is the fallback.
func selectPitProfile(rng *rand.Rand, depth int, nest bool) *PitProfile {
	var pick *PitProfile
	dist := 999
	for i := range pitProfiles {
		p := &pitProfiles[i]
		if p.Nest != nest {
			continue
		}
		if pick == nil {
			pick = p
		}
		offset := randNormal(rng, p.Ave, 10)
		d := abs(offset - depth)
		if d < dist && oneIn(rng, p.Rarity) {
			pick = p
			dist = d
		}
	}
	return pick
}

// drawPitRaces draws n races matching the profile, hard for the depth.
// It reports failure if any draw comes up empty, so the caller can abandon
// the room before touching the map.
func (g *Generator) drawPitRaces(p *PitProfile, depth, n int) ([]int, bool) {
	g.Alloc.PrepareTable(p.allows)
	defer g.Alloc.PrepareTable(nil)

	what := make([]int, n)
	for i := range what {
		what[i] = g.Alloc.Draw(g.Rand, depth+10)
		if what[i] == 0 {
			return nil, false
		}
	}
	return what, true
}

// carvePitRoom draws the moat-and-chamber shell shared by pits and nests.
func carvePitRoom(rng *rand.Rand, c *cave.Cave, y0, x0 int) {
	y1, y2 := y0-4, y0+4
	x1, x2 := x0-11, x0+11

	markRoom(c, y1-1, x1-1, y2+1, x2+1, false)
	c.DrawRect(y1-1, x1-1, y2+1, x2+1, cave.FeatWallOuter)
	c.FillRect(y1, x1, y2, x2, cave.FeatFloor)

	// The inner chamber.
	y1, y2 = y1+2, y2-2
	x1, x2 = x1+2, x2-2
	c.DrawRect(y1-1, x1-1, y2+1, x2+1, cave.FeatWallInner)
	generateHole(rng, c, y1-1, x1-1, y2+1, x2+1, cave.FeatSecretDoor)
}

// buildNest makes a monster nest: a moated chamber stocked from 64 draws of
// a themed race pool, so the population has variety but a single flavor.
// The monster pool is validated before any carving, so a failed draw leaves
// the map untouched.
func buildNest(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand

	profile := selectPitProfile(rng, c.Depth, true)
	if profile == nil {
		return false
	}

	what, ok := g.drawPitRaces(profile, c.Depth, 64)
	if !ok {
		return false
	}

	carvePitRoom(rng, c, y0, x0)

	c.MonRating += 5 + profile.Ave/10

	for y := y0 - 2; y <= y0+2; y++ {
		for x := x0 - 9; x <= x0+9; x++ {
			g.Alloc.PlaceMonster(c, rng, y, x, what[rng.Intn(64)], false, false, OriginDropPit)

			// Occasionally an item, good a third of the time.
			if rng.Intn(100) < profile.ObjRarity {
				g.Alloc.PlaceObject(c, rng, y, x, c.Depth+10, oneIn(rng, 3), false, OriginPit)
			}
		}
	}

	return true
}

// buildPit makes a monster pit: the same shell as a nest, but stocked in
// concentric rings of increasing toughness. Sixteen races are drawn, sorted
// by level, and the even entries form the rings from rim to center.
func buildPit(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	rng := g.Rand

	profile := selectPitProfile(rng, c.Depth, false)
	if profile == nil {
		return false
	}

	what, ok := g.drawPitRaces(profile, c.Depth, 16)
	if !ok {
		return false
	}

	sort.Slice(what, func(i, j int) bool {
		return g.Alloc.Race(what[i]).Level < g.Alloc.Race(what[j]).Level
	})
	for i := 0; i < 8; i++ {
		what[i] = what[i*2]
	}

	carvePitRoom(rng, c, y0, x0)

	c.MonRating += 5 + profile.Ave/10

	place := func(y, x, idx int) {
		g.Alloc.PlaceMonster(c, rng, y, x, what[idx], false, false, OriginDropPit)
	}

	// Top and bottom rows.
	for x := x0 - 9; x <= x0+9; x++ {
		place(y0-2, x, 0)
		place(y0+2, x, 0)
	}

	// Middle columns, weakest at the rim.
	for y := y0 - 1; y <= y0+1; y++ {
		place(y, x0-9, 0)
		place(y, x0+9, 0)

		place(y, x0-8, 1)
		place(y, x0+8, 1)
		place(y, x0-7, 1)
		place(y, x0+7, 1)

		place(y, x0-6, 2)
		place(y, x0+6, 2)
		place(y, x0-5, 2)
		place(y, x0+5, 2)

		place(y, x0-4, 3)
		place(y, x0+4, 3)
		place(y, x0-3, 3)
		place(y, x0+3, 3)

		place(y, x0-2, 4)
		place(y, x0+2, 4)
	}

	// Above and below the center monster.
	for x := x0 - 1; x <= x0+1; x++ {
		place(y0+1, x, 5)
		place(y0-1, x, 5)
	}

	// Flanking the center.
	place(y0, x0+1, 6)
	place(y0, x0-1, 6)

	// The center monster.
	place(y0, x0, 7)

	for y := y0 - 2; y <= y0+2; y++ {
		for x := x0 - 9; x <= x0+9; x++ {
			if rng.Intn(100) < profile.ObjRarity {
				g.Alloc.PlaceObject(c, rng, y, x, c.Depth+10, oneIn(rng, 3), false, OriginPit)
			}
		}
	}

	return true
}
