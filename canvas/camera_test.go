package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestCameraRoundTrip(t *testing.T) {
	c := Camera{X: 10, Y: 0, Zoom: 2}

	sx, sy := c.PageToScreen(20, 30)
	if sx != 20 || sy != 60 {
		t.Errorf("Expected screen (20, 60), got (%v, %v)", sx, sy)
	}
	px, py := c.ScreenToPage(sx, sy)
	if px != 20 || py != 30 {
		t.Errorf("Expected page (20, 30), got (%v, %v)", px, py)
	}
}

func TestCameraScrollClampsAtOrigin(t *testing.T) {
	c := Camera{X: 10, Y: 10, Zoom: 1}

	c.ScrollBy(-30, 0)
	if c.X != 40 {
		t.Errorf("Expected X 40, got %v", c.X)
	}
	c.ScrollBy(100, 100)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected camera clamped at origin, got (%v, %v)", c.X, c.Y)
	}
}

func TestCameraZoomLimits(t *testing.T) {
	c := Camera{Zoom: 1}
	if !c.ZoomBy(1) || math.Abs(c.Zoom-1.1) > 1e-9 {
		t.Errorf("Expected zoom 1.1, got %v", c.Zoom)
	}
	if c.ZoomBy(100) {
		t.Errorf("Expected zoom past the limit to be ignored")
	}
	if math.Abs(c.Zoom-1.1) > 1e-9 {
		t.Errorf("Expected zoom unchanged, got %v", c.Zoom)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}, true},
		{"#FF8000", color.NRGBA{255, 128, 0, 255}, true},
		{"white", color.NRGBA{255, 255, 255, 255}, true},
		{"rgb(255, 0, 0)", color.NRGBA{255, 0, 0, 255}, true},
		{"rgba(0,0,255,0.5)", color.NRGBA{0, 0, 255, 127}, true},
		{"", color.NRGBA{}, false},
		{"transparent", color.NRGBA{}, false},
		{"#zzz", color.NRGBA{}, false},
		{"rgb(300, 0, 0)", color.NRGBA{}, false},
		{"chartreuse", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q): expected ok=%v, got %v", tt.in, tt.ok, ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestElementStyleHelpers(t *testing.T) {
	s := NewScene(nil)
	el := s.Append(nil, "div", "lens", "focus", map[string]string{"opacity": "0.5", "z-index": "101", "left": "12px"})

	if el.Name() != "div#lens.focus" {
		t.Errorf("Expected name div#lens.focus, got %s", el.Name())
	}
	if el.opacity() != 0.5 || el.zIndex() != 101 || el.px("left") != 12 {
		t.Errorf("Unexpected helpers: opacity %v z %v left %v", el.opacity(), el.zIndex(), el.px("left"))
	}
	if el.px("top") != 0 || el.zIndex() < 0 {
		t.Errorf("Expected missing properties to read as zero")
	}
}
