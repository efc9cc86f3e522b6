package render

import "testing"

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := NewCamera(33, 99, 40, 80)

	for _, p := range [][2]int{{33, 99}, {20, 70}, {50, 130}} {
		sy, sx, _ := c.WorldToScreen(p[0], p[1])
		wy, wx := c.ScreenToWorld(sy, sx)
		if wy != p[0] || wx != p[1] {
			t.Errorf("round trip of (%d,%d) gave (%d,%d)", p[0], p[1], wy, wx)
		}
	}
}

func TestWorldToScreenVisibility(t *testing.T) {
	c := NewCamera(20, 40, 40, 80)

	if _, _, ok := c.WorldToScreen(20, 40); !ok {
		t.Error("camera center reported off screen")
	}
	if _, _, ok := c.WorldToScreen(20+1000, 40); ok {
		t.Error("far cell reported on screen")
	}
}

func TestPanClamps(t *testing.T) {
	c := NewCamera(10, 10, 20, 40)

	for i := 0; i < 100; i++ {
		c.Pan(-5, -5, 66, 198)
	}
	if c.OffsetY < -c.ViewHeight+1 || c.OffsetX < -c.ViewWidth+1 {
		t.Errorf("pan escaped lower clamp: offset (%d,%d)", c.OffsetY, c.OffsetX)
	}

	for i := 0; i < 200; i++ {
		c.Pan(5, 5, 66, 198)
	}
	if c.OffsetY > 65 || c.OffsetX > 197 {
		t.Errorf("pan escaped upper clamp: offset (%d,%d)", c.OffsetY, c.OffsetX)
	}
}
