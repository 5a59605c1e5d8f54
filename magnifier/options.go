package magnifier

import "fmt"

// ElementRef names a host element either directly or by selector.
type ElementRef struct {
	Selector string
	Element  Element
}

// Selector refers to an element by selector.
func Selector(s string) ElementRef {
	return ElementRef{Selector: s}
}

// Ref refers to an element the caller already holds.
func Ref(el Element) ElementRef {
	return ElementRef{Element: el}
}

func (r ElementRef) IsZero() bool {
	return r.Element == nil && r.Selector == ""
}

func (r ElementRef) String() string {
	if r.Element != nil {
		return r.Element.Name()
	}
	return r.Selector
}

// Options configures a widget.
type Options struct {
	// ImgSrc is the image shown both as thumbnail and zoomed.
	ImgSrc string
	// SourceImg holds the thumbnail and the lens.
	SourceImg ElementRef
	// ShowImg holds the zoomed image.
	ShowImg ElementRef
	// CSS overrides style groups by name (see the Group constants).
	CSS map[string]Style
}

// ConfigError reports a missing or unusable option.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("magnifier: option %s: %s", e.Field, e.Reason)
}

// Validate checks the required options.
func (o Options) Validate() error {
	if o.SourceImg.IsZero() {
		return &ConfigError{Field: "sourceImgSelector", Reason: "required, selector or element"}
	}
	if o.ShowImg.IsZero() {
		return &ConfigError{Field: "showImgSelector", Reason: "required, selector or element"}
	}
	if o.ImgSrc == "" {
		return &ConfigError{Field: "imgSrc", Reason: "required, image source"}
	}
	return nil
}
