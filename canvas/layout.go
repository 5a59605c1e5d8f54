package canvas

import (
	"strconv"
	"strings"

	"pic-magnifier/magnifier"
)

// PagePadding is the margin around the page content.
const PagePadding = 20.0

// Layout positions every element. Top-level elements float left in rows
// that wrap at the page width; each row is centred.
func (s *Scene) Layout() {
	pageW := s.PageWidth()
	avail := pageW - 2*PagePadding

	type row struct {
		items []*Element
		width float64
	}
	var rows []row
	cur := row{}
	for _, el := range s.root.children {
		if el.hidden() {
			continue
		}
		w, _ := s.place(el, 0, 0, avail)
		adv := w + el.px("left")
		if len(cur.items) > 0 && cur.width+adv > avail {
			rows = append(rows, cur)
			cur = row{}
		}
		cur.items = append(cur.items, el)
		cur.width += adv
	}
	if len(cur.items) > 0 {
		rows = append(rows, cur)
	}

	y := PagePadding
	for _, r := range rows {
		x := PagePadding
		if r.width < avail {
			x += (avail - r.width) / 2
		}
		rowH := 0.0
		for _, el := range r.items {
			w, h := s.place(el, x, y, avail)
			x += w + el.px("left")
			if h > rowH {
				rowH = h
			}
		}
		y += rowH
	}
	s.root.box = magnifier.Rect{Width: pageW, Height: y + PagePadding}

	s.updateRevision()
}

// place lays out el with its outer top-left corner at (x, y) inside a
// containing block avail pixels wide, and returns its outer size.
func (s *Scene) place(el *Element, x, y, avail float64) (float64, float64) {
	if el.hidden() {
		el.box = magnifier.Rect{Left: x, Top: y}
		return 0, 0
	}

	pad := el.px("padding")
	natural := s.natural(el)

	w, fixedW := length(el.style["width"], avail)
	if !fixedW {
		switch {
		case natural.Width > 0:
			w = natural.Width
		case el.parent == s.root:
			w = s.contentWidth(el, avail)
		default:
			w = avail - 2*pad
		}
	}

	if el.style["position"] == "relative" {
		x += el.px("left")
		y += el.px("top")
	}
	inner := magnifier.Point{Left: x + pad, Top: y + pad}

	flowH := 0.0
	for _, c := range el.children {
		if c.absolute() {
			s.place(c, inner.Left+c.px("left"), inner.Top+c.px("top"), w)
			continue
		}
		_, ch := s.place(c, inner.Left, inner.Top+flowH, w)
		flowH += ch
	}

	h, fixedH := length(el.style["height"], 0)
	if !fixedH {
		switch {
		case natural.Width > 0 && fixedW:
			h = w * natural.Height / natural.Width
		case natural.Height > 0:
			h = natural.Height
		default:
			h = flowH
		}
	}

	el.box = magnifier.Rect{Left: x, Top: y, Width: w + 2*pad, Height: h + 2*pad}
	return el.box.Width, el.box.Height
}

// contentWidth is the shrink-to-fit width of a float without a width.
func (s *Scene) contentWidth(el *Element, avail float64) float64 {
	widest := 0.0
	for _, c := range el.children {
		if c.absolute() || c.hidden() {
			continue
		}
		w, _ := length(c.style["width"], avail)
		if n := s.natural(c); w == 0 && n.Width > 0 {
			w = n.Width
		}
		if w > widest {
			widest = w
		}
	}
	return widest
}

func (s *Scene) natural(el *Element) magnifier.Size {
	if el.tag != "img" || el.src == "" || s.images == nil {
		return magnifier.Size{}
	}
	img, ok := s.images.Image(el.src)
	if !ok {
		return magnifier.Size{}
	}
	b := img.Bounds()
	return magnifier.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// length resolves "NNpx" or "NN%" against base.
func length(v string, base float64) (float64, bool) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, false
		}
		return base * pct / 100, true
	}
	return magnifier.ParsePx(v)
}

func (s *Scene) updateRevision() {
	var sig []magnifier.Rect
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, c := range e.children {
			if c.absolute() {
				continue
			}
			sig = append(sig, c.box)
			walk(c)
		}
	}
	walk(s.root)

	if !sameRects(sig, s.flowSig) {
		s.revision++
		s.flowSig = sig
	}
}

func sameRects(a, b []magnifier.Rect) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
