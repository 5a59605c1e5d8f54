package canvas

import "math"

const (
	ZoomLimitMin = 0.25
	ZoomLimitMax = 4.0
	ZoomSpeed    = 0.1
)

// Camera maps the window onto the page. X, Y is the page point shown at the
// window's top-left corner.
type Camera struct {
	X, Y float64
	Zoom float64
}

func (c *Camera) PageToScreen(px, py float64) (float64, float64) {
	sx := (px - c.X) * c.Zoom
	sy := (py - c.Y) * c.Zoom
	return sx, sy
}

func (c *Camera) ScreenToPage(sx, sy float64) (float64, float64) {
	px := sx/c.Zoom + c.X
	py := sy/c.Zoom + c.Y
	return px, py
}

// ScrollBy moves the page by a screen-space delta. The page cannot scroll
// above or left of its origin.
func (c *Camera) ScrollBy(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom

	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
}

// ZoomBy scales the page by (1+ZoomSpeed)^steps, ignoring steps that leave
// the zoom limits.
func (c *Camera) ZoomBy(steps float64) bool {
	newZoom := c.Zoom * math.Pow(1+ZoomSpeed, steps)
	if newZoom > ZoomLimitMin && newZoom < ZoomLimitMax {
		c.Zoom = newZoom
		return true
	}
	return false
}
