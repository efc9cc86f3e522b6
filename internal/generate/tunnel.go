package generate

import (
	"math/rand"

	"stonedelve/internal/cave"
)

// maxTunnelSteps bounds the directed walk so a pathological level cannot
// loop forever.
const maxTunnelSteps = 2000

// carveTunnel digs a corridor from (row1, col1) to (row2, col2).
//
// It must run before streamers are placed, since the granite wall subtypes
// mark where corridors may pierce rooms. Dug grids are queued and committed
// at the end so a corridor crossing itself does not sprout doors, and wall
// piercings are queued so a corridor cannot leave a room and re-enter
// through the same entrance. Piercing an outer wall solidifies the adjacent
// outer walls, which keeps two corridors from using neighboring exits and
// stops corridors from shaving room corners.
func carveTunnel(rng *rand.Rand, c *cave.Cave, s *session, row1, col1, row2, col2 int) {
	tun := s.profile.Tunnel
	s.resetTunnel()

	startRow, startCol := row1, col1
	rowDir, colDir := correctDir(rng, row1, col1, row2, col2)

	doorFlag := false
	steps := 0

walk:
	for row1 != row2 || col1 != col2 {
		if steps++; steps > maxTunnelSteps {
			break
		}

		// Allow bends.
		if rng.Intn(100) < tun.Chg {
			rowDir, colDir = correctDir(rng, row1, col1, row2, col2)
			if rng.Intn(100) < tun.Rnd {
				rowDir, colDir = randDir(rng)
			}
		}

		tmpRow := row1 + rowDir
		tmpCol := col1 + colDir

		for !c.InBounds(tmpRow, tmpCol) {
			rowDir, colDir = correctDir(rng, row1, col1, row2, col2)
			if rng.Intn(100) < tun.Rnd {
				rowDir, colDir = randDir(rng)
			}
			tmpRow = row1 + rowDir
			tmpCol = col1 + colDir
		}

		switch feat := c.FeatAt(tmpRow, tmpCol); {
		case feat == cave.FeatPerm:
			// Never touch the dungeon edge.
			continue

		case feat == cave.FeatWallSolid:
			continue

		case feat == cave.FeatWallOuter:
			// Pierce the room wall, unless the grid beyond is another
			// boundary wall.
			y := tmpRow + rowDir
			x := tmpCol + colDir
			switch c.FeatAt(y, x) {
			case cave.FeatPerm, cave.FeatWallOuter, cave.FeatWallSolid:
				continue
			}

			row1, col1 = tmpRow, tmpCol
			s.recordWall(row1, col1)

			// Forbid re-entry near this piercing.
			for y = row1 - 1; y <= row1+1; y++ {
				for x = col1 - 1; x <= col1+1; x++ {
					if c.FeatAt(y, x) == cave.FeatWallOuter {
						c.SetFeat(y, x, cave.FeatWallSolid)
					}
				}
			}

		case c.IsRoom(tmpRow, tmpCol):
			// Travel quickly through rooms.
			row1, col1 = tmpRow, tmpCol

		case feat.IsWall():
			// Tunnel through all other walls.
			row1, col1 = tmpRow, tmpCol
			s.recordTunnel(row1, col1)
			doorFlag = false

		default:
			// Corridor intersection or overlap.
			row1, col1 = tmpRow, tmpCol

			if !doorFlag {
				s.recordDoor(row1, col1)
				doorFlag = true
			}

			// Allow preemptive termination once the tunnel has wandered
			// far enough from its start. Queued grids still get dug.
			if rng.Intn(100) >= tun.Con {
				if abs(row1-startRow) > 10 || abs(col1-startCol) > 10 {
					break walk
				}
			}
		}
	}

	commitTunnel(rng, c, s, tun.Pen)
}

// commitTunnel turns the queued tunnel grids into corridor floor and applies
// the wall piercings, each with a chance of a door.
func commitTunnel(rng *rand.Rand, c *cave.Cave, s *session, pen int) {
	for _, pt := range s.tunnels {
		c.SetFeat(pt.Y, pt.X, cave.FeatFloor)
	}
	for _, pt := range s.walls {
		c.SetFeat(pt.Y, pt.X, cave.FeatFloor)
		if rng.Intn(100) < pen {
			placeRandomDoor(rng, c, pt.Y, pt.X)
		}
	}
}

// nextToCorridor counts the cardinal neighbors of (y, x) that are corridor
// floor, meaning floor grids not inside any room.
func nextToCorridor(c *cave.Cave, y, x int) int {
	k := 0
	for i := 0; i < 4; i++ {
		ny, nx := y+cardinalDY[i], x+cardinalDX[i]
		if !c.InBounds(ny, nx) {
			continue
		}
		if c.IsFloor(ny, nx) && !c.IsRoom(ny, nx) {
			k++
		}
	}
	return k
}

// possibleDoorway reports whether (y, x) sits between two strong walls and
// touches at least two corridor grids, the shape of a legal doorway.
func possibleDoorway(c *cave.Cave, y, x int) bool {
	if nextToCorridor(c, y, x) < 2 {
		return false
	}
	if c.IsStrongWall(y-1, x) && c.IsStrongWall(y+1, x) {
		return true
	}
	if c.IsStrongWall(y, x-1) && c.IsStrongWall(y, x+1) {
		return true
	}
	return false
}

// tryDoor places a random door at (y, x) when the junction chance fires and
// the grid forms a doorway.
func tryDoor(rng *rand.Rand, c *cave.Cave, s *session, y, x int) {
	if !c.InBounds(y, x) || c.IsStrongWall(y, x) || c.IsRoom(y, x) {
		return
	}
	if rng.Intn(100) < s.profile.Tunnel.Jct && possibleDoorway(c, y, x) {
		placeRandomDoor(rng, c, y, x)
	}
}

// placeJunctionDoors walks the door candidates collected while tunneling and
// tries a door on each candidate and its cardinal neighbors.
func placeJunctionDoors(rng *rand.Rand, c *cave.Cave, s *session) {
	for _, pt := range s.doors {
		tryDoor(rng, c, s, pt.Y, pt.X-1)
		tryDoor(rng, c, s, pt.Y, pt.X+1)
		tryDoor(rng, c, s, pt.Y-1, pt.X)
		tryDoor(rng, c, s, pt.Y+1, pt.X)
	}
}
