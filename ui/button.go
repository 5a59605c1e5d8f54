package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonColor      = color.RGBA{60, 60, 70, 200}
	buttonHoverColor = color.RGBA{80, 80, 95, 220}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button, highlighted under the cursor. It uses the provided font.Face via getter.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	bg := buttonColor
	if b.IsMouseOver(ebiten.CursorPosition()) {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	tw := font.MeasureString(face, b.Label).Ceil()
	th := (face.Metrics().Ascent + face.Metrics().Descent).Ceil()
	x := int(b.X) + (int(b.W)-tw)/2
	y := int(b.Y) + (int(b.H)-th)/2
	drawText(screen, face, b.Label, x, y, color.White)
}
