package generate

import "stonedelve/internal/cave"

// Bounds on the session's recorded point lists. These are soft caps: once a
// list is full, further entries are silently dropped. Callers must tolerate
// truncated lists; this is a deliberate safety valve, not an error.
const (
	maxCenters = 100
	maxDoors   = 200
	maxWalls   = 500
	maxTunnels = 900
)

// session holds the transient bookkeeping for one generation attempt. It is
// owned by the orchestrator and threaded explicitly through every builder —
// never a package global — and is discarded wholesale between attempts.
type session struct {
	profile *CaveProfile

	centers []cave.Point // room centers, for tunneling order
	doors   []cave.Point // candidate junction door locations
	walls   []cave.Point // wall piercings made by the current tunnel
	tunnels []cave.Point // rock cells carved by the current tunnel

	// Coarse block occupancy for room placement collision.
	rowBlocks, colBlocks int
	blockUsed            [][]bool

	crowded bool // a pit or nest has been placed on this level
}

func newSession(profile *CaveProfile) *session {
	return &session{
		profile: profile,
		centers: make([]cave.Point, 0, maxCenters),
		doors:   make([]cave.Point, 0, maxDoors),
		walls:   make([]cave.Point, 0, maxWalls),
		tunnels: make([]cave.Point, 0, maxTunnels),
	}
}

// initBlocks sizes the block occupancy grid for a level of h×w cells.
func (s *session) initBlocks(h, w int) {
	s.rowBlocks = h / cave.BlockHeight
	s.colBlocks = w / cave.BlockWidth
	s.blockUsed = make([][]bool, s.rowBlocks)
	for i := range s.blockUsed {
		s.blockUsed[i] = make([]bool, s.colBlocks)
	}
}

// capped append helpers; silently drop entries past each list's bound.

func (s *session) recordCenter(y, x int) {
	if len(s.centers) < maxCenters {
		s.centers = append(s.centers, cave.Point{Y: y, X: x})
	}
}

func (s *session) recordDoor(y, x int) {
	if len(s.doors) < maxDoors {
		s.doors = append(s.doors, cave.Point{Y: y, X: x})
	}
}

func (s *session) recordWall(y, x int) {
	if len(s.walls) < maxWalls {
		s.walls = append(s.walls, cave.Point{Y: y, X: x})
	}
}

func (s *session) recordTunnel(y, x int) {
	if len(s.tunnels) < maxTunnels {
		s.tunnels = append(s.tunnels, cave.Point{Y: y, X: x})
	}
}

// resetTunnel clears the per-tunnel lists before a new corridor walk.
func (s *session) resetTunnel() {
	s.walls = s.walls[:0]
	s.tunnels = s.tunnels[:0]
}
