// Package spawn implements the entity placement service consumed by level
// generation: a depth-weighted monster allocation table, per-level monster
// and object lists, and the terrain-aware placement rules.
package spawn

import (
	"math/rand"

	"stonedelve/internal/cave"
	"stonedelve/internal/generate"
)

// Monster is one placed monster instance.
type Monster struct {
	Y, X     int
	RaceID   int
	Sleeping bool
	Origin   generate.Origin
}

// Object is one placed object instance. Gold piles are objects with Gold set.
type Object struct {
	Y, X   int
	Level  int
	Good   bool
	Great  bool
	Gold   bool
	Origin generate.Origin
}

// Service implements generate.Allocator. It owns the race catalog, the
// restriction predicate installed by pit and nest builders, and the per-level
// entity lists. A Service is not safe for concurrent use.
type Service struct {
	races    []generate.MonsterRace
	restrict func(generate.MonsterRace) bool

	monsters []Monster
	objects  []Object
	traps    []cave.Point

	// uniques already placed this level, by race id.
	placedUnique map[int]bool
}

// NewService returns a Service over the standard race catalog.
func NewService() *Service {
	return &Service{
		races:        raceCatalog,
		placedUnique: make(map[int]bool),
	}
}

// Races returns the full race catalog.
func (s *Service) Races() []generate.MonsterRace { return s.races }

// Race returns the catalog entry for id, or a zero race for unknown ids.
func (s *Service) Race(id int) generate.MonsterRace {
	for _, r := range s.races {
		if r.ID == id {
			return r
		}
	}
	return generate.MonsterRace{}
}

// Monsters returns the monsters placed on the current level.
func (s *Service) Monsters() []Monster { return s.monsters }

// Objects returns the objects placed on the current level.
func (s *Service) Objects() []Object { return s.objects }

// Traps returns the trap locations on the current level.
func (s *Service) Traps() []cave.Point { return s.traps }

// PrepareTable installs a restriction on subsequent Draw calls. Passing nil
// clears it.
func (s *Service) PrepareTable(restrict func(generate.MonsterRace) bool) {
	s.restrict = restrict
}

// Draw picks a race id appropriate to depth from the prepared table, or 0
// when no race qualifies. The draw is weighted toward common races but rolls
// twice and keeps the deeper result, so dangerous levels skew dangerous.
func (s *Service) Draw(rng *rand.Rand, depth int) int {
	// Rarely allow a nastier, out-of-depth pick.
	if depth > 0 && rng.Intn(25) == 0 {
		depth += depth/4 + 2
	}
	if depth > generate.MaxDepth-1 {
		depth = generate.MaxDepth - 1
	}

	first := s.drawOne(rng, depth)
	second := s.drawOne(rng, depth)
	if second == 0 {
		return first
	}
	if first == 0 || s.Race(second).Level > s.Race(first).Level {
		return second
	}
	return first
}

func (s *Service) drawOne(rng *rand.Rand, depth int) int {
	total := 0
	pick := 0
	for _, r := range s.races {
		// Townsfolk (level 0) appear only in town; dungeon races never do.
		if depth > 0 {
			if r.Level <= 0 || r.Level > depth {
				continue
			}
		} else if r.Level != 0 {
			continue
		}
		if r.Flags.HasAny(generate.RFUnique) && s.placedUnique[r.ID] {
			continue
		}
		if s.restrict != nil && !s.restrict(r) {
			continue
		}
		w := 100 / max(1, r.Rarity)
		total += w
		if rng.Intn(total) < w {
			pick = r.ID
		}
	}
	return pick
}

// distance is the classic roguelike approximation of euclidean distance.
func distance(y1, x1, y2, x2 int) int {
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	if dy > dx {
		return dy + dx/2
	}
	return dx + dy/2
}

// PlaceMonster places one monster of a specific race at (y, x), plus escorts
// when group is set and the race is gregarious. Reports whether the lead
// monster was placed.
func (s *Service) PlaceMonster(c *cave.Cave, rng *rand.Rand, y, x, raceID int, group, sleeping bool, origin generate.Origin) bool {
	r := s.Race(raceID)
	if r.ID == 0 {
		return false
	}
	if !s.placeOne(c, rng, y, x, r, sleeping, origin) {
		return false
	}

	if group && !r.Flags.HasAny(generate.RFUnique) && r.Flags.HasAny(generate.RFFriends) {
		n := 1 + rng.Intn(4) + rng.Intn(4)
		for i := 0; i < n; i++ {
			ny, nx, ok := c.FindRandomNear(rng, y, x, 2, 2, c.IsEmpty)
			if !ok {
				continue
			}
			s.placeOne(c, rng, ny, nx, r, sleeping, origin)
		}
	}
	return true
}

func (s *Service) placeOne(c *cave.Cave, rng *rand.Rand, y, x int, r generate.MonsterRace, sleeping bool, origin generate.Origin) bool {
	if !c.InBounds(y, x) || !c.IsEmpty(y, x) {
		return false
	}
	if r.Flags.HasAny(generate.RFUnique) {
		if s.placedUnique[r.ID] {
			return false
		}
		s.placedUnique[r.ID] = true
	}

	s.monsters = append(s.monsters, Monster{Y: y, X: x, RaceID: r.ID, Sleeping: sleeping, Origin: origin})
	c.SetMonster(y, x, len(s.monsters))

	// Out-of-depth monsters raise the level's danger rating sharply.
	c.MonRating += r.Level * r.Level
	if r.Level > c.Depth {
		c.MonRating += (r.Level - c.Depth) * r.Level * 2
	}
	return true
}

// PlaceRandomMonster draws a depth-appropriate race and places it at (y, x).
func (s *Service) PlaceRandomMonster(c *cave.Cave, rng *rand.Rand, y, x, depth int, group, sleeping bool, origin generate.Origin) bool {
	id := s.Draw(rng, depth)
	if id == 0 {
		return false
	}
	return s.PlaceMonster(c, rng, y, x, id, group, sleeping, origin)
}

// PlaceDistantMonster places a depth-appropriate monster on an empty cell at
// least minDist away from the player.
func (s *Service) PlaceDistantMonster(c *cave.Cave, rng *rand.Rand, player cave.Point, minDist, depth int, sleeping bool) bool {
	for tries := 0; tries < 100; tries++ {
		y := rng.Intn(c.Height)
		x := rng.Intn(c.Width)
		if !c.IsEmpty(y, x) {
			continue
		}
		if distance(y, x, player.Y, player.X) <= minDist {
			continue
		}
		return s.PlaceRandomMonster(c, rng, y, x, depth, true, sleeping, generate.OriginFloor)
	}
	return false
}

// PlaceObject places one object at (y, x). Good and great raise the object's
// quality floor; great objects holding an artifact mark the whole level.
func (s *Service) PlaceObject(c *cave.Cave, rng *rand.Rand, y, x, level int, good, great bool, origin generate.Origin) bool {
	if !c.InBounds(y, x) || !c.CanPutItem(y, x) {
		return false
	}
	s.objects = append(s.objects, Object{Y: y, X: x, Level: level, Good: good, Great: great, Origin: origin})
	c.SetObject(y, x, len(s.objects))

	rating := level
	if good {
		rating += 10 + level
	}
	if great {
		rating += 30 + 2*level
		// Stand-in for artifact creation.
		if rng.Intn(20) == 0 {
			c.GoodItem = true
		}
	}
	c.ObjRating += rating * rating
	return true
}

// PlaceGold places a gold pile at (y, x).
func (s *Service) PlaceGold(c *cave.Cave, rng *rand.Rand, y, x, level int, origin generate.Origin) bool {
	if !c.InBounds(y, x) || !c.CanPutItem(y, x) {
		return false
	}
	s.objects = append(s.objects, Object{Y: y, X: x, Level: level, Gold: true, Origin: origin})
	c.SetObject(y, x, len(s.objects))
	return true
}

// PlaceTrap records a hidden trap at (y, x).
func (s *Service) PlaceTrap(c *cave.Cave, rng *rand.Rand, y, x int) {
	if !c.InBounds(y, x) || !c.IsFloor(y, x) {
		return
	}
	s.traps = append(s.traps, cave.Point{Y: y, X: x})
}

// MonsterCount reports the monsters placed on the current level.
func (s *Service) MonsterCount() int { return len(s.monsters) }

// ObjectCount reports the objects placed on the current level.
func (s *Service) ObjectCount() int { return len(s.objects) }

// Reset wipes the per-level entity lists for a fresh generation attempt.
// Cell occupancy lives on the Cave, so a reset pairs with a fresh Cave.
func (s *Service) Reset() {
	s.monsters = s.monsters[:0]
	s.objects = s.objects[:0]
	s.traps = s.traps[:0]
	s.placedUnique = make(map[int]bool)
	s.restrict = nil
}
