package generate

import (
	"math/rand"
	"testing"

	"stonedelve/internal/cave"
)

// TestCarveTunnelConnects verifies tunnels reach their targets across plain
// rock for a spread of seeds and endpoints.
func TestCarveTunnelConnects(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := newRockCave(44, 100, 10)
		s := newSession(DefaultProfiles()[len(DefaultProfiles())-1])

		y1, x1 := 5+rng.Intn(10), 5+rng.Intn(20)
		y2, x2 := 30+rng.Intn(10), 70+rng.Intn(20)
		c.SetFeat(y1, x1, cave.FeatFloor)
		c.SetFeat(y2, x2, cave.FeatFloor)

		carveTunnel(rng, c, s, y1, x1, y2, x2)

		_, counts := colorRegions(c, true)
		if got := regionCount(counts); got != 1 {
			t.Errorf("seed=%d: endpoints in %d regions after tunneling", seed, got)
		}
	}
}

// TestCarveTunnelCommitsOnEarlyStop verifies that a tunnel ending early on an
// existing corridor still digs its queued grids, so the start stays joined to
// whatever the walk ran into.
func TestCarveTunnelCommitsOnEarlyStop(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := newRockCave(44, 100, 10)
		s := newSession(DefaultProfiles()[len(DefaultProfiles())-1])

		// A corridor already crosses the path between the endpoints.
		c.FillYRange(50, 1, 42, cave.FeatFloor, 0)
		c.SetFeat(20, 10, cave.FeatFloor)
		c.SetFeat(20, 90, cave.FeatFloor)

		carveTunnel(rng, c, s, 20, 10, 20, 90)

		colors, _ := colorRegions(c, true)
		if colors[20*c.Width+10] != colors[20*c.Width+50] {
			t.Errorf("seed=%d: start cell not joined to the corridor it reached", seed)
		}
	}
}

// TestCarveTunnelTerminates verifies the step cap holds even when the target
// is unreachable behind permanent rock.
func TestCarveTunnelTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newRockCave(30, 30, 10)

	// Wall off the target completely.
	c.DrawRect(20, 20, 28, 28, cave.FeatPerm)
	c.SetFeat(24, 24, cave.FeatFloor)
	c.SetFeat(3, 3, cave.FeatFloor)

	s := newSession(DefaultProfiles()[len(DefaultProfiles())-1])
	carveTunnel(rng, c, s, 3, 3, 24, 24) // must return, not spin
}

// TestCarveTunnelNeverBreachesPerm verifies permanent rock survives tunneling.
func TestCarveTunnelNeverBreachesPerm(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := newRockCave(40, 80, 10)
		c.DrawRect(10, 30, 25, 50, cave.FeatPerm)

		s := newSession(DefaultProfiles()[len(DefaultProfiles())-1])
		c.SetFeat(15, 5, cave.FeatFloor)
		c.SetFeat(15, 70, cave.FeatFloor)
		carveTunnel(rng, c, s, 15, 5, 15, 70)

		for y := 10; y <= 25; y++ {
			for _, x := range []int{30, 50} {
				if c.FeatAt(y, x) != cave.FeatPerm {
					t.Fatalf("seed=%d: perm wall breached at (%d,%d)", seed, y, x)
				}
			}
		}
	}
}

func TestPossibleDoorway(t *testing.T) {
	c := newRockCave(10, 10, 5)

	// A corridor running east-west through a wall gap.
	c.SetFeat(5, 3, cave.FeatFloor)
	c.SetFeat(5, 5, cave.FeatFloor)
	c.SetFeat(5, 4, cave.FeatFloor)
	c.SetFeat(4, 4, cave.FeatWallSolid)
	c.SetFeat(6, 4, cave.FeatWallSolid)

	if !possibleDoorway(c, 5, 4) {
		t.Error("flanked corridor cell not recognized as doorway")
	}
	if possibleDoorway(c, 3, 3) {
		t.Error("solid rock recognized as doorway")
	}
}
