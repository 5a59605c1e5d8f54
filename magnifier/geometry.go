// Package magnifier keeps a thumbnail, a movable lens and a zoomed viewport
// geometrically consistent while the pointer moves over the thumbnail.
//
// All positions are page coordinates unless a name says otherwise: the lens
// position and the viewport offset are local to their containers.
package magnifier

// Point is a position, or an offset when relative to a container.
type Point struct {
	Left, Top float64
}

// Size is a rendered or natural pixel size.
type Size struct {
	Width, Height float64
}

// Rect is a positioned box in page coordinates. It is a snapshot: hosts
// recompute it rather than update it.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Origin() Point {
	return Point{Left: r.Left, Top: r.Top}
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.Left >= r.Left && p.Left < r.Left+r.Width &&
		p.Top >= r.Top && p.Top < r.Top+r.Height
}
