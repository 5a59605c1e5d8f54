package magnifier

// State is the tracker's lifecycle state.
type State int

const (
	// Idle means no image geometry is known; pointer samples are ignored.
	Idle State = iota
	// Tracking means scale and bounds are computed for the loaded image.
	Tracking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	}
	return "unknown"
}

// Frame is one synchronized update: the lens position inside the thumbnail
// and the full image offset inside the viewport. Viewport is always derived
// from Lens, never set on its own.
type Frame struct {
	Lens     Point
	Viewport Point
}

// Tracker maps pointer samples to frames.
type Tracker struct {
	state  State
	thumb  Rect
	lens   Size
	scale  Scale
	bounds LensBounds
	pos    Point
}

// Track enters the Tracking state with fresh geometry. initial is the lens
// position as currently rendered, relative to the thumbnail; it is kept
// inside the new thumbnail.
func (t *Tracker) Track(thumb Rect, lens Size, scale Scale, initial Point) Frame {
	t.state = Tracking
	t.thumb = thumb
	t.lens = lens
	t.scale = scale
	t.bounds = ComputeBounds(thumb, lens)
	t.pos = Point{
		Left: keepInside(initial.Left, thumb.Width, lens.Width),
		Top:  keepInside(initial.Top, thumb.Height, lens.Height),
	}
	return t.frame()
}

// keepInside limits a lens offset to [0, extent-lens], or 0 when the lens
// does not fit.
func keepInside(pos, extent, lens float64) float64 {
	if pos <= 0 || extent-lens <= 0 {
		return 0
	}
	if pos >= extent-lens {
		return extent - lens
	}
	return pos
}

// Reset drops all geometry and returns to Idle.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Bounds() LensBounds {
	return t.bounds
}

func (t *Tracker) Scale() Scale {
	return t.scale
}

// Frame returns the last computed frame.
func (t *Tracker) Frame() Frame {
	return t.frame()
}

func (t *Tracker) frame() Frame {
	if t.state != Tracking {
		return Frame{}
	}
	return Frame{Lens: t.pos, Viewport: t.scale.ToViewport(t.pos)}
}

// Move converts a pointer position into a frame. It returns false while Idle.
func (t *Tracker) Move(pointer Point) (Frame, bool) {
	if t.state != Tracking {
		return Frame{}, false
	}

	t.pos = Point{
		Left: clampAxis(pointer.Left, t.thumb.Left, t.thumb.Width, t.lens.Width, t.bounds.MinLeft, t.bounds.MaxLeft),
		Top:  clampAxis(pointer.Top, t.thumb.Top, t.thumb.Height, t.lens.Height, t.bounds.MinTop, t.bounds.MaxTop),
	}
	return t.frame(), true
}

// clampAxis resolves one axis of the lens position. Inside [min, max] the lens
// follows the pointer exactly; on or beyond a bound it snaps to the thumbnail
// edge. When the
// lens is larger than the thumbnail the range is empty and the lens stays at 0.
func clampAxis(pointer, origin, extent, lens, min, max float64) float64 {
	if min > max {
		return 0
	}
	pos := pointer - origin - lens/2
	if pointer <= min {
		pos = 0
	}
	if pointer >= max {
		pos = extent - lens
	}
	return pos
}
