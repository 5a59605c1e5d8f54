package magnifier

import (
	"errors"
	"log"
)

// Env bundles the host collaborators a widget drives.
type Env struct {
	DOM      DOM
	Geometry GeometryProvider
	Styles   StyleApplier
	Loader   ImageLoader
	Pointer  PointerSource

	// Logger receives diagnostics. Defaults to log.Default().
	Logger *log.Logger
	// Debug enables informational diagnostics; errors are always logged.
	Debug bool
}

// surfaces are the elements one widget instance renders into.
type surfaces struct {
	sourceContainer Element
	showContainer   Element
	lens            Element
	thumb           Element
	maxImg          Element
}

// Widget is one magnifier instance. All methods must be called from the
// host's UI loop.
type Widget struct {
	env    Env
	styles Stylesheet
	surf   surfaces

	ready   bool   // Init succeeded
	src     string // most recently requested source
	request int    // bumped per load; completions for older requests are stale
	loaded  string // source the current geometry belongs to
	tracker Tracker

	generation int
}

func New(env Env) *Widget {
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	return &Widget{env: env}
}

// Init validates opts, builds the widget's elements and starts loading the
// image. On error nothing is built and the widget stays inert.
func (w *Widget) Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		w.env.Logger.Println(err)
		return err
	}

	source, err := w.resolve("sourceImgSelector", opts.SourceImg)
	if err != nil {
		w.env.Logger.Println(err)
		return err
	}
	show, err := w.resolve("showImgSelector", opts.ShowImg)
	if err != nil {
		w.env.Logger.Println(err)
		return err
	}

	w.styles = DefaultStylesheet()
	if unknown := w.styles.Merge(opts.CSS); len(unknown) > 0 {
		w.debugf("ignoring unknown style groups %v", unknown)
	}

	w.surf = surfaces{sourceContainer: source, showContainer: show}
	w.ready = true
	w.load(opts.ImgSrc)
	return nil
}

func (w *Widget) resolve(field string, ref ElementRef) (Element, error) {
	if ref.Element != nil {
		return ref.Element, nil
	}
	el, ok := w.env.DOM.Query(ref.Selector)
	if !ok {
		return nil, &ConfigError{Field: field, Reason: "no element matches " + ref.Selector}
	}
	return el, nil
}

// SwapImage replaces the image. Asking for the current source again is a
// no-op unless force is set.
func (w *Widget) SwapImage(src string, force bool) {
	if !w.ready {
		return
	}
	if src == w.src && !force {
		return
	}
	w.load(src)
}

func (w *Widget) load(src string) {
	w.request++
	req := w.request
	w.src = src
	w.loaded = ""
	w.tracker.Reset()
	w.build(src)

	w.debugf("loading %s", src)
	w.env.Loader.Load(src, func(Size) {
		w.onImageReady(req, src)
	})
}

// build rebuilds the lens, the thumbnail and the zoomed image.
func (w *Widget) build(src string) {
	srcEls := w.env.DOM.ReplaceChildren(w.surf.sourceContainer,
		Node{Tag: "div", Class: "focusPointContainer"},
		Node{Tag: "img", Class: "sourceImg", Src: src},
	)
	showEls := w.env.DOM.ReplaceChildren(w.surf.showContainer,
		Node{Tag: "img", Class: "maxImg", Src: src},
	)
	w.surf.lens, w.surf.thumb = srcEls[0], srcEls[1]
	w.surf.maxImg = showEls[0]
}

func (w *Widget) onImageReady(req int, src string) {
	if req != w.request || src != w.src {
		w.debugf("discarding stale load of %s (want %s)", src, w.src)
		return
	}

	w.env.Styles.SetStyles(
		StyleUpdate{Element: w.surf.sourceContainer, Style: w.styles[GroupSourceContainer].Clone()},
		StyleUpdate{Element: w.surf.thumb, Style: w.styles[GroupSourceImg].Clone()},
		StyleUpdate{Element: w.surf.lens, Style: w.styles[GroupLens].Clone()},
		StyleUpdate{Element: w.surf.showContainer, Style: w.styles[GroupShowContainer].Clone()},
		StyleUpdate{Element: w.surf.maxImg, Style: w.styles[GroupMaxImg].Clone()},
	)

	if err := w.measure(); err != nil {
		w.env.Logger.Printf("magnifier: %s: %v", src, err)
		return
	}
	w.loaded = src

	w.env.Pointer.HandleMove(w.surf.sourceContainer, w.onPointerMove)
	w.env.Pointer.HandleDown(w.surf.sourceContainer, func(ev PointerEvent) {
		ev.PreventDefault()
	})
}

// measure recomputes scale and bounds from the rendered layout, resizes the
// viewport to match the lens and applies the lens's rendered position.
func (w *Widget) measure() error {
	geo := w.env.Geometry

	size := geo.Size(w.surf.sourceContainer)
	scale, err := ComputeScale(size, geo.Size(w.surf.maxImg))
	if err != nil {
		w.tracker.Reset()
		return err
	}

	lens := geo.Size(w.surf.lens)
	view := scale.ViewportSize(lens)
	w.env.Styles.SetStyles(StyleUpdate{
		Element: w.surf.showContainer,
		Style:   Style{"width": Px(view.Width), "height": Px(view.Height)},
	})

	// Positions are read after the resize since it can move the thumbnail.
	box := geo.BoundingBox(w.surf.sourceContainer)
	thumb := Rect{Left: box.Left, Top: box.Top, Width: size.Width, Height: size.Height}
	lensBox := geo.BoundingBox(w.surf.lens)
	initial := Point{Left: lensBox.Left - thumb.Left, Top: lensBox.Top - thumb.Top}

	frame := w.tracker.Track(thumb, lens, scale, initial)
	w.generation++
	w.ApplyFrame(frame)
	return nil
}

// Refresh re-measures after the host layout changed. It does nothing until
// an image is loaded.
func (w *Widget) Refresh() {
	if w.tracker.State() != Tracking {
		return
	}
	if err := w.measure(); err != nil {
		w.env.Logger.Printf("magnifier: refresh %s: %v", w.loaded, err)
	}
}

func (w *Widget) onPointerMove(ev PointerEvent) {
	ev.PreventDefault()
	frame, ok := w.tracker.Move(ev.Page)
	if !ok {
		return
	}
	w.ApplyFrame(frame)
}

// ApplyFrame writes the lens position and the zoomed image offset as one update.
func (w *Widget) ApplyFrame(f Frame) {
	if w.surf.lens == nil || w.surf.maxImg == nil {
		return
	}
	w.env.Styles.SetStyles(
		StyleUpdate{Element: w.surf.lens, Style: Style{"left": Px(f.Lens.Left), "top": Px(f.Lens.Top)}},
		StyleUpdate{Element: w.surf.maxImg, Style: Style{"left": Px(f.Viewport.Left), "top": Px(f.Viewport.Top)}},
	)
}

func (w *Widget) State() State {
	return w.tracker.State()
}

func (w *Widget) Frame() Frame {
	return w.tracker.Frame()
}

// Source is the most recently requested image source.
func (w *Widget) Source() string {
	return w.src
}

// Loaded is the source the current geometry belongs to, or "" while Idle.
func (w *Widget) Loaded() string {
	return w.loaded
}

func (w *Widget) Scale() Scale {
	return w.tracker.Scale()
}

func (w *Widget) Bounds() LensBounds {
	return w.tracker.Bounds()
}

// Generation counts geometry recomputations.
func (w *Widget) Generation() int {
	return w.generation
}

// Stylesheet returns the widget's merged styles.
func (w *Widget) Stylesheet() Stylesheet {
	return w.styles
}

// IsConfigError reports whether err came from option validation.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func (w *Widget) debugf(format string, args ...any) {
	if w.env.Debug {
		w.env.Logger.Printf("magnifier: "+format, args...)
	}
}
