package generate

import "stonedelve/internal/cave"

// The region engine labels connected open areas, prunes pockets too small to
// matter, and carves passages between whatever remains, so open-area
// generators can guarantee a single connected component before population.

var (
	adjDY = [8]int{-1, 1, 0, 0, -1, -1, 1, 1}
	adjDX = [8]int{0, 0, -1, 1, -1, 1, -1, 1}
)

// smallRegionThreshold is the minimum region size worth keeping. Anything
// smaller is filled back in rather than joined.
const smallRegionThreshold = 9

// colorRegions labels every passable cell with a region color, starting at 1.
// counts[color] is the number of cells in that region; colors and counts are
// indexed by cell and color respectively, and both are sized height*width.
func colorRegions(c *cave.Cave, diagonal bool) (colors, counts []int) {
	h, w := c.Height, c.Width
	colors = make([]int, h*w)
	counts = make([]int, h*w)

	color := 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if colors[y*w+x] != 0 || !c.IsPassable(y, x) {
				continue
			}
			colorRegionFrom(c, colors, counts, y, x, color, diagonal)
			color++
		}
	}
	return colors, counts
}

// colorRegionFrom flood-fills one region from (y, x) with the given color.
func colorRegionFrom(c *cave.Cave, colors, counts []int, y, x, color int, diagonal bool) {
	w := c.Width
	limit := 4
	if diagonal {
		limit = 8
	}

	queue := []int{y*w + x}
	colors[y*w+x] = color

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		counts[color]++

		cy, cx := i/w, i%w
		for d := 0; d < limit; d++ {
			ny, nx := cy+adjDY[d], cx+adjDX[d]
			if !c.InBounds(ny, nx) {
				continue
			}
			j := ny*w + nx
			if colors[j] != 0 || !c.IsPassable(ny, nx) {
				continue
			}
			colors[j] = color
			queue = append(queue, j)
		}
	}
}

// removeSmallRegions converts every region below the size threshold back to
// solid wall and zeroes its bookkeeping.
func removeSmallRegions(c *cave.Cave, colors, counts []int) {
	deleted := make([]bool, len(counts))
	for color, n := range counts {
		if n > 0 && n < smallRegionThreshold {
			deleted[color] = true
			counts[color] = 0
		}
	}

	w := c.Width
	for y := 1; y < c.Height-1; y++ {
		for x := 1; x < c.Width-1; x++ {
			i := y*w + x
			if colors[i] == 0 || !deleted[colors[i]] {
				continue
			}
			colors[i] = 0
			c.SetFeat(y, x, cave.FeatWallSolid)
		}
	}
}

// regionCount reports how many distinct regions remain.
func regionCount(counts []int) int {
	n := 0
	for _, v := range counts {
		if v > 0 {
			n++
		}
	}
	return n
}

// joinRegions carves passages until the whole map is one region. Each step
// picks a surviving region and tunnels the shortest wall path to the nearest
// cell of any other region, then merges their bookkeeping.
func joinRegions(c *cave.Cave, colors, counts []int) {
	for num := regionCount(counts); num > 1; num-- {
		color := 0
		for i, v := range counts {
			if v > 0 {
				color = i
				break
			}
		}
		if !joinRegion(c, colors, counts, color) {
			return
		}
	}
}

// joinRegion runs a breadth-first search outward from every cell of the
// given region, through walls, stopping at the first cell belonging to a
// different region. The path back to the source region is carved to floor
// and recolored, and the two regions become one.
func joinRegion(c *cave.Cave, colors, counts []int, color int) bool {
	h, w := c.Height, c.Width
	size := h * w

	previous := make([]int, size)
	for i := range previous {
		previous[i] = -1
	}

	var queue []int
	for i := 0; i < size; i++ {
		if colors[i] == color {
			queue = append(queue, i)
			previous[i] = i
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		if colors[i] != 0 && colors[i] != color {
			// Found another region; carve the path back.
			color2 := colors[i]
			for j := previous[i]; colors[j] != color; j = previous[j] {
				c.SetFeat(j/w, j%w, cave.FeatFloor)
				colors[j] = color
				counts[color]++
			}
			// Relabel the reached region.
			for j := 0; j < size; j++ {
				if colors[j] == color2 {
					colors[j] = color
				}
			}
			counts[color] += counts[color2]
			counts[color2] = 0
			return true
		}

		cy, cx := i/w, i%w
		for d := 0; d < 4; d++ {
			ny, nx := cy+adjDY[d], cx+adjDX[d]
			if ny < 1 || ny >= h-1 || nx < 1 || nx >= w-1 {
				continue
			}
			j := ny*w + nx
			if previous[j] >= 0 || c.IsPerm(ny, nx) {
				continue
			}
			previous[j] = i
			queue = append(queue, j)
		}
	}
	return false
}

// ensureConnected verifies that every passable cell is reachable from
// (y0, x0), converting any stranded passable cell back to solid wall. It is
// a defensive post-pass; a correctly joined level loses nothing here.
func ensureConnected(c *cave.Cave, y0, x0 int) int {
	h, w := c.Height, c.Width
	seen := make([]bool, h*w)

	queue := []int{y0*w + x0}
	seen[y0*w+x0] = true

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		cy, cx := i/w, i%w
		for d := 0; d < 4; d++ {
			ny, nx := cy+adjDY[d], cx+adjDX[d]
			if !c.InBounds(ny, nx) || seen[ny*w+nx] || !c.IsPassable(ny, nx) {
				continue
			}
			seen[ny*w+nx] = true
			queue = append(queue, ny*w+nx)
		}
	}

	stranded := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.IsPassable(y, x) && !seen[y*w+x] {
				c.SetFeat(y, x, cave.FeatWallSolid)
				stranded++
			}
		}
	}
	return stranded
}
