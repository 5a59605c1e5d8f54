package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pic-magnifier/magnifier"
)

// WheelStep is the scroll distance in screen pixels per wheel notch.
const WheelStep = 40.0

// Host defines the callbacks the dispatcher needs from the main game.
type Host interface {
	ScreenToPage(sx, sy float64) (float64, float64)
	HitTest(p magnifier.Point) []magnifier.Element
	IsMouseOver(mx, my int) bool
	ApplyPan(dx, dy float64)
	ApplyZoom(steps float64)
}

// Sample is the pointer state of one tick.
type Sample struct {
	X, Y            int
	LeftPressed     bool
	LeftJustPressed bool
	MiddlePressed   bool
	WheelX, WheelY  float64
	Ctrl            bool
}

// Dispatcher turns polled pointer state into element events. It implements
// magnifier.PointerSource.
type Dispatcher struct {
	host Host

	moves map[magnifier.Element]func(magnifier.PointerEvent)
	downs map[magnifier.Element]func(magnifier.PointerEvent)

	// Internal state
	hasLast    bool
	lastX      int
	lastY      int
	isPanning  bool
	lastMouseX int
	lastMouseY int

	// prevented is set when a handler cancelled the default action of the
	// current left press.
	prevented bool
}

func NewDispatcher(h Host) *Dispatcher {
	return &Dispatcher{
		host:  h,
		moves: make(map[magnifier.Element]func(magnifier.PointerEvent)),
		downs: make(map[magnifier.Element]func(magnifier.PointerEvent)),
	}
}

func (d *Dispatcher) HandleMove(el magnifier.Element, fn func(magnifier.PointerEvent)) {
	if fn == nil {
		delete(d.moves, el)
		return
	}
	d.moves[el] = fn
}

func (d *Dispatcher) HandleDown(el magnifier.Element, fn func(magnifier.PointerEvent)) {
	if fn == nil {
		delete(d.downs, el)
		return
	}
	d.downs[el] = fn
}

// Update polls Ebiten and dispatches the result.
func (d *Dispatcher) Update() {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	d.Dispatch(Sample{
		X:               mx,
		Y:               my,
		LeftPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MiddlePressed:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		WheelX:          wx,
		WheelY:          wy,
		Ctrl:            ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
	})
}

// Dispatch delivers one tick of pointer state.
func (d *Dispatcher) Dispatch(s Sample) {
	overUI := d.host.IsMouseOver(s.X, s.Y)
	px, py := d.host.ScreenToPage(float64(s.X), float64(s.Y))
	page := magnifier.Point{Left: px, Top: py}

	if !d.hasLast || s.X != d.lastX || s.Y != d.lastY {
		d.hasLast = true
		d.lastX, d.lastY = s.X, s.Y
		if !overUI {
			d.bubble(d.moves, page, nil)
		}
	}

	if s.LeftJustPressed && !overUI {
		d.prevented = false
		d.bubble(d.downs, page, func() { d.prevented = true })
	}

	d.handleWheel(s)
	d.handlePanning(s, overUI)
}

// bubble calls the handlers of the hit element and its ancestors,
// innermost first.
func (d *Dispatcher) bubble(handlers map[magnifier.Element]func(magnifier.PointerEvent), page magnifier.Point, prevent func()) {
	if len(handlers) == 0 {
		return
	}
	ev := magnifier.NewPointerEvent(page, prevent)
	for _, el := range d.host.HitTest(page) {
		if fn, ok := handlers[el]; ok {
			fn(ev)
		}
	}
}

func (d *Dispatcher) handleWheel(s Sample) {
	if s.WheelX == 0 && s.WheelY == 0 {
		return
	}
	if s.Ctrl {
		if s.WheelY != 0 {
			d.host.ApplyZoom(s.WheelY)
		}
		return
	}
	d.host.ApplyPan(s.WheelX*WheelStep, s.WheelY*WheelStep)
}

func (d *Dispatcher) handlePanning(s Sample, overUI bool) {
	isPanButtonHeld := s.MiddlePressed ||
		(s.LeftPressed && !d.prevented && !overUI)

	if !d.isPanning {
		if isPanButtonHeld {
			d.isPanning = true
			d.lastMouseX, d.lastMouseY = s.X, s.Y
		}
	} else {
		if isPanButtonHeld {
			dx := float64(s.X - d.lastMouseX)
			dy := float64(s.Y - d.lastMouseY)
			d.host.ApplyPan(dx, dy)
			d.lastMouseX, d.lastMouseY = s.X, s.Y
		} else {
			d.isPanning = false
		}
	}
}

// Panning reports whether a drag is scrolling the page.
func (d *Dispatcher) Panning() bool {
	return d.isPanning
}
