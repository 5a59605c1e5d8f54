package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

const (
	buttonMargin = 10
	buttonHeight = 30
)

// Actions are the toolbar callbacks. Nil actions get no button.
type Actions struct {
	Reload  func()
	Save    func()
	ZoomIn  func()
	ZoomOut func()
}

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), actions Actions, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	ui.initButtons(actions)
	return ui
}

// initButtons lists the toolbar right to left.
func (ui *UISystem) initButtons(a Actions) {
	add := func(label string, fn func()) {
		if fn == nil {
			return
		}
		ui.buttons = append(ui.buttons, &Button{Label: label, W: buttonWidth(label), H: buttonHeight, OnClick: fn})
	}
	add("+", a.ZoomIn)
	add("-", a.ZoomOut)
	add("Save", a.Save)
	add("Reload", a.Reload)
	ui.updateButtonPositions()
}

func buttonWidth(label string) float32 {
	w := float32(20 + 7*len(label))
	if w < buttonHeight {
		return buttonHeight
	}
	return w
}

// Position relative to top-right
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - buttonMargin
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = buttonMargin
		x -= buttonMargin
	}
}

func (ui *UISystem) Buttons() []*Button {
	return ui.buttons
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click runs the action of the button under (mx, my) and reports whether
// there was one.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
