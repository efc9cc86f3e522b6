package generate

import "stonedelve/internal/cave"

// CaveKind selects a level builder. Builders are looked up in caveBuilders
// rather than stored as function pointers in profile data.
type CaveKind uint8

const (
	CaveDefault CaveKind = iota // rooms and tunnels
	CaveLabyrinth
	CaveCavern
	CaveCastle
	CaveTown
)

// RoomKind selects a room builder within the default level builder.
type RoomKind uint8

const (
	RoomSimple RoomKind = iota
	RoomOverlap
	RoomCircular
	RoomCrossed
	RoomLarge
	RoomNest
	RoomPit
	RoomLesserVault
	RoomMediumVault
	RoomGreaterVault
)

type caveBuilder func(g *Generator, c *cave.Cave, s *session, p *Player) bool

type roomBuilder func(g *Generator, c *cave.Cave, s *session, y0, x0 int) bool

// caveBuilders and roomBuilders map kind tags to their builders. The maps are
// populated here, next to the kinds, so adding a kind and forgetting its
// builder fails loudly at first use.
var caveBuilders = map[CaveKind]caveBuilder{
	CaveDefault:   buildDefaultLevel,
	CaveLabyrinth: buildLabyrinth,
	CaveCavern:    buildCavern,
	CaveCastle:    buildCastle,
	CaveTown:      buildTown,
}

var roomBuilders = map[RoomKind]roomBuilder{
	RoomSimple:       buildSimple,
	RoomOverlap:      buildOverlap,
	RoomCircular:     buildCircular,
	RoomCrossed:      buildCrossed,
	RoomLarge:        buildLarge,
	RoomNest:         buildNest,
	RoomPit:          buildPit,
	RoomLesserVault:  buildLesserVault,
	RoomMediumVault:  buildMediumVault,
	RoomGreaterVault: buildGreaterVault,
}

// TunnelProfile shapes corridor random walks.
type TunnelProfile struct {
	Name string
	Rnd  int // % chance of choosing a random direction
	Chg  int // % chance of re-aiming toward the target
	Con  int // % chance of continuing past an early-exit opportunity
	Pen  int // % chance of a door where a tunnel pierces a room wall
	Jct  int // % chance of a door at a tunnel junction
}

// StreamerProfile shapes mineral vein placement.
type StreamerProfile struct {
	Name string
	Den  int // cells placed per streamer step
	Rng  int // spread around the streamer's walk
	Mag  int // number of magma streamers
	MC   int // 1/chance of treasure per magma cell
	Qua  int // number of quartz streamers
	QC   int // 1/chance of treasure per quartz cell
}

// RoomProfile describes one room shape the default builder can place.
// Profile order matters: the first profile passing the rarity/cutoff/footprint
// checks wins.
type RoomProfile struct {
	Name     string
	Kind     RoomKind
	Height   int // footprint in blocks
	Width    int
	MinDepth int
	Crowded  bool // at most one crowded room (pit/nest) per level
	Rarity   int
	Cutoff   int // upper bound of the 0–99 selection roll
}

// CaveProfile is the immutable configuration for one level builder.
type CaveProfile struct {
	Name      string
	Kind      CaveKind
	Rooms     int // rooms to attempt
	Unusual   int // depth scale for the rarity draw; higher = plainer levels
	MaxRarity int
	Tunnel    TunnelProfile
	Streamer  StreamerProfile
	RoomKinds []RoomProfile
	Cutoff    int // selection cutoff against a 0–99 roll; last profile always tried
}

var defaultTunnel = TunnelProfile{"tunnel-default", 10, 30, 15, 25, 90}

var defaultStreamer = StreamerProfile{"streamer-default", 5, 2, 3, 90, 2, 40}

// defaultRooms is ordered rarest-first within each rarity tier.
var defaultRooms = []RoomProfile{
	// greater vaults have rarity 1 but gate themselves on depth internally
	{"greater vault", RoomGreaterVault, 4, 6, 10, false, 1, 100},

	// very rare rooms
	{"medium vault", RoomMediumVault, 2, 3, 5, false, 2, 10},
	{"lesser vault", RoomLesserVault, 2, 3, 5, false, 2, 25},
	{"monster pit", RoomPit, 1, 3, 5, true, 2, 40},
	{"monster nest", RoomNest, 1, 3, 5, true, 2, 50},

	// unusual rooms
	{"large room", RoomLarge, 1, 3, 3, false, 1, 25},
	{"crossed room", RoomCrossed, 1, 3, 3, false, 1, 50},
	{"circular room", RoomCircular, 2, 2, 1, false, 1, 60},
	{"overlap room", RoomOverlap, 1, 3, 1, false, 1, 100},

	// normal rooms
	{"simple room", RoomSimple, 1, 3, 1, false, 0, 100},
}

// DefaultProfiles returns the standard dungeon profile list, in selection
// order. Earlier profiles are tried when the selection roll falls under their
// cutoff (or when they gate themselves internally, like the labyrinth); the
// last profile is always tried.
func DefaultProfiles() []*CaveProfile {
	return []*CaveProfile{
		{
			Name: "labyrinth", Kind: CaveLabyrinth, Unusual: 200,
			Tunnel: defaultTunnel, Streamer: defaultStreamer,
			// always considered; labyrinth declines internally by depth and
			// a layered chance
			Cutoff: 100,
		},
		{
			Name: "cavern", Kind: CaveCavern, Unusual: 200,
			Tunnel: defaultTunnel, Streamer: defaultStreamer,
			Cutoff: 10,
		},
		{
			Name: "castle", Kind: CaveCastle, Unusual: 200,
			Tunnel: defaultTunnel, Streamer: defaultStreamer,
			Cutoff: 4,
		},
		{
			Name: "default", Kind: CaveDefault,
			Rooms: 50, Unusual: 200, MaxRarity: 2,
			Tunnel: defaultTunnel, Streamer: defaultStreamer,
			RoomKinds: defaultRooms,
			Cutoff:    100,
		},
	}
}

// TownProfile returns the profile used for depth 0.
func TownProfile() *CaveProfile {
	return &CaveProfile{
		Name: "town-default", Kind: CaveTown,
		Rooms: 50, Unusual: 200, MaxRarity: 2,
		Tunnel: defaultTunnel, Streamer: defaultStreamer,
	}
}
