package generate

import (
	"math/rand"
	"testing"

	"stonedelve/internal/cave"
)

func findProfile(t *testing.T, name string) *PitProfile {
	t.Helper()
	for i := range pitProfiles {
		if pitProfiles[i].Name == name {
			return &pitProfiles[i]
		}
	}
	t.Fatalf("no pit profile named %q", name)
	return nil
}

func TestPitProfileAllows(t *testing.T) {
	orcPit := findProfile(t, "orc pit")
	den := findProfile(t, "animal den")
	firePit := findProfile(t, "fire dragon pit")

	orc := MonsterRace{ID: 1, Level: 10, Flags: RFOrc | RFEvil}
	uniqueOrc := MonsterRace{ID: 2, Level: 15, Flags: RFOrc | RFEvil | RFUnique}
	hound := MonsterRace{ID: 3, Level: 20, Flags: RFAnimal | RFHound}
	bear := MonsterRace{ID: 4, Level: 14, Flags: RFAnimal}
	fireDrake := MonsterRace{ID: 5, Level: 48, Flags: RFDragon | RFEvil, Spells: RSBreatheFire}
	iceDrake := MonsterRace{ID: 6, Level: 48, Flags: RFDragon | RFEvil, Spells: RSBreatheCold}
	multiDrake := MonsterRace{ID: 7, Level: 60, Flags: RFDragon | RFEvil,
		Spells: RSBreatheFire | RSBreatheCold}

	cases := []struct {
		name    string
		profile *PitProfile
		race    MonsterRace
		want    bool
	}{
		{"orc in orc pit", orcPit, orc, true},
		{"unique rejected", orcPit, uniqueOrc, false},
		{"animal not orc", orcPit, bear, false},
		{"bear in den", den, bear, true},
		{"hound forbidden in den", den, hound, false},
		{"fire drake in fire pit", firePit, fireDrake, true},
		{"ice drake rejected from fire pit", firePit, iceDrake, false},
		{"mixed breath rejected from fire pit", firePit, multiDrake, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.allows(tc.race); got != tc.want {
				t.Errorf("allows(%s) = %v, want %v", tc.race.Name, got, tc.want)
			}
		})
	}
}

func TestSelectPitProfile(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 50; i++ {
		p := selectPitProfile(rng, 20, true)
		if p == nil {
			t.Fatal("no nest profile selected at depth 20")
		}
		if !p.Nest {
			t.Fatalf("selectPitProfile(nest) returned pit %q", p.Name)
		}

		p = selectPitProfile(rng, 40, false)
		if p == nil {
			t.Fatal("no pit profile selected at depth 40")
		}
		if p.Nest {
			t.Fatalf("selectPitProfile(pit) returned nest %q", p.Name)
		}
	}
}

// TestDrawPitRacesRestoresTable verifies the two-phase draw leaves the
// allocation table unrestricted whether it succeeds or fails.
func TestDrawPitRacesRestoresTable(t *testing.T) {
	g, alloc := newTestGenerator(6)

	p := findProfile(t, "orc pit")
	ids, ok := g.drawPitRaces(p, 20, 8)
	if !ok {
		t.Fatal("drawPitRaces failed with an orc in the catalog")
	}
	for _, id := range ids {
		if !alloc.Race(id).Flags.HasAll(RFOrc) {
			t.Errorf("race %d drawn for an orc pit is not an orc", id)
		}
	}
	if alloc.restrict != nil {
		t.Error("restriction left installed after a successful draw")
	}

	// No spiders in the fake catalog: the draw must fail cleanly.
	spiders := findProfile(t, "spider nest")
	if _, ok := g.drawPitRaces(spiders, 20, 8); ok {
		t.Fatal("drawPitRaces succeeded with no eligible races")
	}
	if alloc.restrict != nil {
		t.Error("restriction left installed after a failed draw")
	}
}

// TestBuildPitPlacesNothingOnFailure verifies the two-phase commit: when no
// races qualify, the terrain must stay untouched.
func TestBuildPitPlacesNothingOnFailure(t *testing.T) {
	g, alloc := newTestGenerator(13)
	// Strip the catalog so every draw fails.
	alloc.races = nil

	c := newRockCave(40, 80, 30)
	before := snapshotFeats(c)

	if buildPit(g, c, newSession(g.Profiles[len(g.Profiles)-1]), 20, 40) {
		t.Fatal("buildPit reported success with an empty catalog")
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.FeatAt(y, x) != before[y][x] {
				t.Fatalf("failed pit modified terrain at (%d,%d)", y, x)
			}
		}
	}
	if alloc.MonsterCount() != 0 {
		t.Error("failed pit placed monsters")
	}
}

func TestCarvePitRoomShape(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := newRockCave(40, 80, 30)
	carvePitRoom(rng, c, 20, 40)

	if !c.IsFloor(20, 40) {
		t.Error("pit chamber center is not floor")
	}
	if !c.IsRoom(20, 40) {
		t.Error("pit chamber not flagged as room")
	}
	// The inner chamber wall ring must exist around the monster area.
	if c.FeatAt(20, 40) == cave.FeatWallInner {
		t.Error("chamber center is a wall")
	}
}
