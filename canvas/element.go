package canvas

import (
	"strconv"

	"pic-magnifier/magnifier"
)

// Element is a box on the page: a div or an img.
type Element struct {
	tag   string
	id    string
	class string
	src   string
	style magnifier.Style

	parent   *Element
	children []*Element

	// box is the page rectangle from the last layout.
	box magnifier.Rect
}

func (e *Element) Name() string {
	n := e.tag
	if e.id != "" {
		n += "#" + e.id
	}
	if e.class != "" {
		n += "." + e.class
	}
	return n
}

func (e *Element) Tag() string   { return e.tag }
func (e *Element) Class() string { return e.class }
func (e *Element) Src() string   { return e.src }

// Style returns the element's style property, or "".
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) matches(selector string) bool {
	switch {
	case selector == "":
		return false
	case selector[0] == '#':
		return e.id == selector[1:]
	case selector[0] == '.':
		return e.class == selector[1:]
	}
	return e.tag == selector
}

func (e *Element) hidden() bool {
	return e.style["display"] == "none"
}

func (e *Element) absolute() bool {
	return e.style["position"] == "absolute"
}

func (e *Element) px(prop string) float64 {
	v, _ := magnifier.ParsePx(e.style[prop])
	return v
}

func (e *Element) zIndex() int {
	z, err := strconv.Atoi(e.style["z-index"])
	if err != nil {
		return 0
	}
	return z
}

func (e *Element) opacity() float32 {
	s, ok := e.style["opacity"]
	if !ok {
		return 1
	}
	o, err := strconv.ParseFloat(s, 32)
	if err != nil || o < 0 {
		return 1
	}
	if o > 1 {
		return 1
	}
	return float32(o)
}
