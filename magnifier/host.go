package magnifier

// Element is an opaque handle to a host visual element.
type Element interface {
	Name() string
}

// Node describes an element the widget asks the host to create.
type Node struct {
	Tag   string // "div" or "img"
	Class string
	Src   string
}

// DOM finds and builds host elements.
type DOM interface {
	Query(selector string) (Element, bool)
	// ReplaceChildren removes parent's children and appends new ones built
	// from nodes, returning them in order.
	ReplaceChildren(parent Element, nodes ...Node) []Element
}

// GeometryProvider measures rendered elements.
type GeometryProvider interface {
	// BoundingBox is page-relative and rounded to integer pixels.
	BoundingBox(el Element) Rect
	// Size is the rendered box size in pixels.
	Size(el Element) Size
}

// StyleUpdate assigns style properties to one element.
type StyleUpdate struct {
	Element Element
	Style   Style
}

// StyleApplier writes style properties. All updates passed to one
// SetStyles call must become visible together.
type StyleApplier interface {
	SetStyles(updates ...StyleUpdate)
}

// ImageLoader loads an image and calls done once, later, on the UI loop,
// with the image's natural size. done is never called if loading fails.
type ImageLoader interface {
	Load(src string, done func(natural Size))
}

// PointerEvent is a pointer sample in page coordinates.
type PointerEvent struct {
	Page Point

	prevent func()
}

// NewPointerEvent builds an event whose PreventDefault calls prevent.
func NewPointerEvent(page Point, prevent func()) PointerEvent {
	return PointerEvent{Page: page, prevent: prevent}
}

// PreventDefault suppresses the host's default action for this event.
func (e PointerEvent) PreventDefault() {
	if e.prevent != nil {
		e.prevent()
	}
}

// PointerSource delivers pointer events for an element and its descendants.
// Installing a handler replaces the element's previous handler.
type PointerSource interface {
	HandleMove(el Element, fn func(PointerEvent))
	HandleDown(el Element, fn func(PointerEvent))
}
