package magnifier

import (
	"errors"
	"fmt"
)

// ErrImageNotLoaded is returned when the full image has no natural width yet.
var ErrImageNotLoaded = errors.New("full image not loaded")

// Scale is the ratio between the thumbnail's displayed width and the full
// image's natural width. Both axes use the same ratio.
type Scale struct {
	ratio float64
}

// ComputeScale derives the scale from the thumbnail size and the full image size.
func ComputeScale(thumb, full Size) (Scale, error) {
	if full.Width <= 0 {
		return Scale{}, ErrImageNotLoaded
	}
	if thumb.Width <= 0 {
		return Scale{}, fmt.Errorf("thumbnail has no width (%g)", thumb.Width)
	}
	return Scale{ratio: thumb.Width / full.Width}, nil
}

func (s Scale) Ratio() float64 {
	return s.ratio
}

// Valid reports whether the scale came from ComputeScale.
func (s Scale) Valid() bool {
	return s.ratio > 0
}

// ToViewport converts a lens position into the offset of the full image
// inside the viewport.
func (s Scale) ToViewport(lens Point) Point {
	return Point{
		Left: -(lens.Left / s.ratio),
		Top:  -(lens.Top / s.ratio),
	}
}

// ViewportSize is the viewport size that shows exactly the lens region.
func (s Scale) ViewportSize(lens Size) Size {
	return Size{
		Width:  lens.Width / s.ratio,
		Height: lens.Height / s.ratio,
	}
}
