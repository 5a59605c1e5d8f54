package canvas

import (
	"image"
	"math"
	"sort"

	"pic-magnifier/magnifier"
)

// ImageSource provides decoded images by source.
type ImageSource interface {
	Image(src string) (image.Image, bool)
}

// Scene is the page: a tree of elements with a simple float/block layout.
// It serves as DOM, geometry provider and style applier for the magnifier.
type Scene struct {
	Camera Camera

	root   *Element
	images ImageSource

	screenWidth  int
	screenHeight int

	frames   int
	revision int
	flowSig  []magnifier.Rect

	textures map[textureKey]*texture
}

func NewScene(images ImageSource) *Scene {
	return &Scene{
		Camera:   Camera{Zoom: 1.0},
		root:     &Element{tag: "body", style: magnifier.Style{}},
		images:   images,
		textures: make(map[textureKey]*texture),
	}
}

// SetScreenSize records the window size in screen pixels.
func (s *Scene) SetScreenSize(w, h int) {
	s.screenWidth = w
	s.screenHeight = h
}

// PageWidth is the window width in page pixels.
func (s *Scene) PageWidth() float64 {
	if s.screenWidth == 0 {
		return 0
	}
	return float64(s.screenWidth) / s.Camera.Zoom
}

// Append adds an element under parent, or at the top level when parent is nil.
func (s *Scene) Append(parent *Element, tag, id, class string, style magnifier.Style) *Element {
	if parent == nil {
		parent = s.root
	}
	if style == nil {
		style = magnifier.Style{}
	}
	el := &Element{tag: tag, id: id, class: class, style: style.Clone(), parent: parent}
	parent.children = append(parent.children, el)
	return el
}

func (s *Scene) Query(selector string) (magnifier.Element, bool) {
	if el := find(s.root, selector); el != nil {
		return el, true
	}
	return nil, false
}

func find(e *Element, selector string) *Element {
	for _, c := range e.children {
		if c.matches(selector) {
			return c
		}
		if el := find(c, selector); el != nil {
			return el
		}
	}
	return nil
}

func (s *Scene) ReplaceChildren(parent magnifier.Element, nodes ...magnifier.Node) []magnifier.Element {
	p, ok := parent.(*Element)
	if !ok {
		return nil
	}
	for _, c := range p.children {
		c.parent = nil
	}
	p.children = nil

	out := make([]magnifier.Element, 0, len(nodes))
	for _, n := range nodes {
		el := s.Append(p, n.Tag, "", n.Class, nil)
		el.src = n.Src
		out = append(out, el)
	}
	return out
}

// SetStyles applies every update before anything is drawn again; Update and
// Draw never interleave.
func (s *Scene) SetStyles(updates ...magnifier.StyleUpdate) {
	for _, u := range updates {
		el, ok := u.Element.(*Element)
		if !ok {
			continue
		}
		for k, v := range u.Style {
			el.style[k] = v
		}
	}
	s.frames++
}

// Frames counts SetStyles calls.
func (s *Scene) Frames() int {
	return s.frames
}

func (s *Scene) BoundingBox(el magnifier.Element) magnifier.Rect {
	e, ok := el.(*Element)
	if !ok {
		return magnifier.Rect{}
	}
	s.Layout()
	return magnifier.Rect{
		Left:   math.Round(e.box.Left),
		Top:    math.Round(e.box.Top),
		Width:  math.Round(e.box.Width),
		Height: math.Round(e.box.Height),
	}
}

func (s *Scene) Size(el magnifier.Element) magnifier.Size {
	return s.BoundingBox(el).Size()
}

// Revision changes whenever the layout of in-flow elements changes.
// Absolutely positioned elements (lens, zoomed image) do not count.
func (s *Scene) Revision() int {
	s.Layout()
	return s.revision
}

// HitTest returns the elements under a page point, innermost first.
func (s *Scene) HitTest(p magnifier.Point) []magnifier.Element {
	s.Layout()
	var chain []magnifier.Element
	if hit := hitTest(s.root, p); hit != nil {
		for e := hit; e != nil && e != s.root; e = e.parent {
			chain = append(chain, e)
		}
	}
	return chain
}

func hitTest(e *Element, p magnifier.Point) *Element {
	if e.hidden() {
		return nil
	}
	if e.style["overflow"] == "hidden" && !e.box.Contains(p) {
		return nil
	}
	kids := paintOrder(e.children)
	for i := len(kids) - 1; i >= 0; i-- {
		if hit := hitTest(kids[i], p); hit != nil {
			return hit
		}
	}
	if e.parent != nil && e.box.Contains(p) {
		return e
	}
	if e.parent == nil {
		return e
	}
	return nil
}

// paintOrder sorts by z-index, keeping document order for ties.
func paintOrder(children []*Element) []*Element {
	out := make([]*Element, len(children))
	copy(out, children)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].zIndex() < out[j].zIndex()
	})
	return out
}
