package magnifier

// LensBounds is the range the pointer may take, in page coordinates, while
// the lens follows it without leaving the thumbnail.
type LensBounds struct {
	MinLeft, MaxLeft float64
	MinTop, MaxTop   float64
}

// ComputeBounds insets the thumbnail by half the lens size on every edge.
// A lens larger than the thumbnail yields MinLeft > MaxLeft (or the vertical
// equivalent); the tracker handles that case.
func ComputeBounds(thumb Rect, lens Size) LensBounds {
	return LensBounds{
		MinLeft: thumb.Left + lens.Width/2,
		MaxLeft: thumb.Left + thumb.Width - lens.Width/2,
		MinTop:  thumb.Top + lens.Height/2,
		MaxTop:  thumb.Top + thumb.Height - lens.Height/2,
	}
}

func (b LensBounds) DegenerateX() bool {
	return b.MinLeft > b.MaxLeft
}

func (b LensBounds) DegenerateY() bool {
	return b.MinTop > b.MaxTop
}
