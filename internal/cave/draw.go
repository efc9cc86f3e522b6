package cave

import "math"

// FillRect sets every cell in the inclusive rectangle to f.
func (c *Cave) FillRect(y1, x1, y2, x2 int, f Feature) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.SetFeat(y, x, f)
		}
	}
}

// DrawRect sets the border cells of the inclusive rectangle to f.
func (c *Cave) DrawRect(y1, x1, y2, x2 int, f Feature) {
	for y := y1; y <= y2; y++ {
		c.SetFeat(y, x1, f)
		c.SetFeat(y, x2, f)
	}
	for x := x1; x <= x2; x++ {
		c.SetFeat(y1, x, f)
		c.SetFeat(y2, x, f)
	}
}

// FillXRange sets row y from x1 to x2 inclusive to f, adding flags.
func (c *Cave) FillXRange(y, x1, x2 int, f Feature, fl Flag) {
	for x := x1; x <= x2; x++ {
		c.SetFeat(y, x, f)
		c.AddFlags(y, x, fl)
	}
}

// FillYRange sets column x from y1 to y2 inclusive to f, adding flags.
func (c *Cave) FillYRange(x, y1, y2 int, f Feature, fl Flag) {
	for y := y1; y <= y2; y++ {
		c.SetFeat(y, x, f)
		c.AddFlags(y, x, fl)
	}
}

// FillCircle draws a filled circle of the given radius centered on (y0, x0).
// For each offset i from the center the half-width is round(sqrt(r²−i²));
// border widens every scan by that many cells, plus one extra whenever the
// half-width shrank from the previous row, which keeps the border smooth
// across the circle's "steps".
func (c *Cave) FillCircle(y0, x0, radius, border int, f Feature, fl Flag) {
	last := 0
	r2 := radius * radius
	for i := 0; i <= radius; i++ {
		k := int(math.Sqrt(float64(r2-i*i)) + 0.5)

		b := border
		if border > 0 && last > k {
			b++
		}

		c.FillXRange(y0-i, x0-k-b, x0+k+b, f, fl)
		c.FillXRange(y0+i, x0-k-b, x0+k+b, f, fl)
		c.FillYRange(x0-i, y0-k-b, y0+k+b, f, fl)
		c.FillYRange(x0+i, y0-k-b, y0+k+b, f, fl)
		last = k
	}
}
