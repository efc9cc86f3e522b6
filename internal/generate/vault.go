package generate

import (
	"math/rand"
	"strings"

	"stonedelve/internal/cave"
)

// vaultTemplate is a hand-drawn room layout. The legend:
//
//	(space)  not part of the vault
//	%        boundary wall; tunnels may pierce it
//	#        inner wall
//	X        permanent inner wall
//	+        secret door
//	^        trap
//	*        treasure or a trap
//	.        floor
//	,        maybe a monster, maybe an object
//	&        monster a little out of depth
//	@        monster well out of depth
//	9        tough monster guarding good treasure
//	8        terrifying monster guarding great treasure
type vaultTemplate struct {
	name   string
	kind   RoomKind
	rating int
	rows   []string
}

func vaultRows(s string) []string {
	return strings.Split(strings.Trim(s, "\n"), "\n")
}

var vaultCatalog = []vaultTemplate{
	{
		name: "sealed chamber", kind: RoomLesserVault, rating: 5,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%%%
%.................%
%.#####+#. .#####.%
%.#*,,..#. .#..9.+%
%+.....,#. .#,,*#.%
%.#####+#. .#####.%
%.................%
%%%%%%%%%%%%%%%%%%%`),
	},
	{
		name: "split cells", kind: RoomLesserVault, rating: 6,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%
%#######+#######%
%#,....#.#....,#%
%#..9..+.+..9..#%
%#,....#.#....,#%
%#######+#######%
%%%%%%%%%%%%%%%%%`),
	},
	{
		name: "trap run", kind: RoomLesserVault, rating: 7,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%%%%%
%^..................%
%.#################.%
%.+.,.&.^.9.^.&.,.*#%
%.#################.%
%..................^%
%%%%%%%%%%%%%%%%%%%%%`),
	},
	{
		name: "ring keep", kind: RoomMediumVault, rating: 12,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%%%%%%%%%
%.......................%
%.#####################.%
%.#,,,,,,,,^,,,,,,,,,,#.%
%.#,#################,#.%
%.#,+.*....9....&...#,#.%
%.#,#######+#######.#,#.%
%.#,,,,,,,,,,,,,,,,,,,#.%
%.#########+###########.%
%.......................%
%%%%%%%%%%%%%%%%%%%%%%%%%`),
	},
	{
		name: "twin wards", kind: RoomMediumVault, rating: 14,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%%%%%%%%%%%
%.........................%
%.####+####...####+####...%
%.#,,,,,,,#...#,,,,,,,#...%
%.#,##+##,#...#,##+##,#...%
%.#,#*.9#,+...+,#9.*#,#...%
%.#,#####,#...#,#####,#...%
%.#,,,,,,,#...#,,,,,,,#...%
%.#########...#########...%
%.........................%
%%%%%%%%%%%%%%%%%%%%%%%%%%%`),
	},
	{
		name: "grand gauntlet", kind: RoomGreaterVault, rating: 35,
		rows: vaultRows(`
%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%
%.....................................%
%.###################################.%
%.#,,,,,,,^,,,,,,,,&,,,,,,,,^,,,,,,,#.%
%.#,#####+#########X#########+#####,#.%
%.#,#...&...^...*.....*...^...&...#,#.%
%.#,#.#########+#X#+#########.#.#.#,#.%
%.#,+.#,,,,,,,,#.8.#,,,,,,,,#.+.#.#,#.%
%.#,#.#.9....@.+.*.+.@....9.#.#.#.#,#.%
%.#,+.#,,,,,,,,#.8.#,,,,,,,,#.+.#.#,#.%
%.#,#.#########+#X#+#########.#.#.#,#.%
%.#,#...&...^...*.....*...^...&...#,#.%
%.#,#####+#########X#########+#####,#.%
%.#,,,,,,,^,,,,,,,,&,,,,,,,,^,,,,,,,#.%
%.###################################.%
%.....................................%
%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%`),
	},
}

// randomVault picks one template of the given kind uniformly, by reservoir
// sampling over the catalog.
func randomVault(rng *rand.Rand, kind RoomKind) *vaultTemplate {
	var pick *vaultTemplate
	n := 1
	for i := range vaultCatalog {
		v := &vaultCatalog[i]
		if v.kind != kind {
			continue
		}
		if oneIn(rng, n) {
			pick = v
		}
		n++
	}
	return pick
}

// buildVaultRows stamps a template onto the map, centered on (y0, x0).
//
// The first pass lays terrain; the second places monsters and objects, so
// that inhabitants never land on cells a later terrain symbol would
// overwrite. Boundary cells keep their room flag but are not marked as vault
// interior, which lets the tunneler pierce them.
func (g *Generator) buildVaultRows(c *cave.Cave, y0, x0 int, rows []string) {
	rng := g.Rand
	ymax := len(rows)
	xmax := 0
	for _, row := range rows {
		if len(row) > xmax {
			xmax = len(row)
		}
	}

	for dy, row := range rows {
		for dx := 0; dx < len(row); dx++ {
			t := row[dx]
			if t == ' ' {
				continue
			}

			y := y0 - ymax/2 + dy
			x := x0 - xmax/2 + dx

			c.SetFeat(y, x, cave.FeatFloor)
			icky := true

			switch t {
			case '%':
				// Door step, not vault interior; the tunneler may
				// remove this wall.
				c.SetFeat(y, x, cave.FeatWallOuter)
				icky = false
			case '#':
				c.SetFeat(y, x, cave.FeatWallInner)
			case 'X':
				c.SetFeat(y, x, cave.FeatPerm)
			case '+':
				placeSecretDoor(c, y, x)
			case '^':
				g.Alloc.PlaceTrap(c, rng, y, x)
			case '*':
				if rng.Intn(100) < 75 {
					g.Alloc.PlaceObject(c, rng, y, x, c.Depth, false, false, OriginVault)
				} else {
					g.Alloc.PlaceTrap(c, rng, y, x)
				}
			}

			c.AddFlags(y, x, cave.FlagRoom)
			if icky {
				c.AddFlags(y, x, cave.FlagIcky)
			}
		}
	}

	for dy, row := range rows {
		for dx := 0; dx < len(row); dx++ {
			y := y0 - ymax/2 + dy
			x := x0 - xmax/2 + dx

			switch row[dx] {
			case '&':
				g.Alloc.PlaceRandomMonster(c, rng, y, x, c.Depth+5, true, true, OriginDropVault)
			case '@':
				g.Alloc.PlaceRandomMonster(c, rng, y, x, c.Depth+11, true, true, OriginDropVault)
			case '9':
				g.Alloc.PlaceRandomMonster(c, rng, y, x, c.Depth+9, true, true, OriginDropVault)
				g.Alloc.PlaceObject(c, rng, y, x, c.Depth+7, true, false, OriginVault)
			case '8':
				g.Alloc.PlaceRandomMonster(c, rng, y, x, c.Depth+40, true, true, OriginDropVault)
				g.Alloc.PlaceObject(c, rng, y, x, c.Depth+20, true, true, OriginVault)
			case ',':
				if rng.Intn(100) < 50 {
					g.Alloc.PlaceRandomMonster(c, rng, y, x, c.Depth+3, true, true, OriginDropVault)
				}
				if rng.Intn(100) < 50 {
					g.Alloc.PlaceObject(c, rng, y, x, c.Depth+7, false, false, OriginVault)
				}
			}
		}
	}
}

func (g *Generator) buildVaultKind(c *cave.Cave, y0, x0 int, kind RoomKind) bool {
	v := randomVault(g.Rand, kind)
	if v == nil {
		return false
	}
	c.MonRating += v.rating
	g.buildVaultRows(c, y0, x0, v.rows)
	return true
}

func buildLesserVault(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	return g.buildVaultKind(c, y0, x0, RoomLesserVault)
}

func buildMediumVault(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	return g.buildVaultKind(c, y0, x0, RoomMediumVault)
}

// buildGreaterVault only fires as the first room of a level, and then only
// after a depth check: 2/3 at depth 90+, 4/9 at 80, and so on, which keeps
// greater vaults out of the shallows.
func buildGreaterVault(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool {
	if len(s.centers) > 0 {
		return false
	}

	num, den := 2, 3
	for i := 90; i > c.Depth; i -= 10 {
		num *= 2
		den *= 3
	}
	if g.Rand.Intn(den) >= num {
		return false
	}

	return g.buildVaultKind(c, y0, x0, RoomGreaterVault)
}
