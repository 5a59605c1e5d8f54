package magnifier

import (
	"sort"
	"strconv"
	"strings"
)

// Style is a set of visual property assignments, CSS-like ("width": "50px").
type Style map[string]string

// Clone returns an independent copy.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Style group names. They match the keys accepted in Options.CSS.
const (
	GroupSourceContainer = "sourceImgContainerCss"
	GroupSourceImg       = "sourceImgCss"
	GroupLens            = "focusPointContainerCss"
	GroupShowContainer   = "showImgContainerCss"
	GroupMaxImg          = "maxImgCss"
)

// Stylesheet holds one Style per named group.
type Stylesheet map[string]Style

// DefaultStylesheet returns a fresh copy of the built-in styles. Every widget
// owns its own copy so overrides never leak between instances.
func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		GroupSourceContainer: {
			"width":    "260px",
			"position": "relative",
			"float":    "left",
			"padding":  "0px",
		},
		GroupSourceImg: {
			"display": "block",
			"width":   "100%",
		},
		GroupLens: {
			"width":      "50px",
			"height":     "50px",
			"display":    "block",
			"position":   "absolute",
			"top":        "0px",
			"left":       "0px",
			"opacity":    "0.5",
			"cursor":     "move",
			"z-index":    "101",
			"background": "#000",
		},
		GroupShowContainer: {
			"width":      "200px",
			"height":     "200px",
			"background": "#000",
			"float":      "left",
			"overflow":   "hidden",
			"position":   "relative",
			"left":       "20px",
		},
		GroupMaxImg: {
			"position": "absolute",
			"left":     "0px",
			"top":      "0px",
		},
	}
}

// Merge copies overrides into known groups and returns the names of groups it
// did not recognize, sorted.
func (ss Stylesheet) Merge(overrides map[string]Style) []string {
	var unknown []string
	for group, props := range overrides {
		dst, ok := ss[group]
		if !ok {
			unknown = append(unknown, group)
			continue
		}
		for k, v := range props {
			dst[k] = v
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Px formats a pixel length.
func Px(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses "12px", "12.5px" or a bare number.
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
