package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBackdrop fills the window and draws the page grid under the content.
func DrawBackdrop(cam *Camera, screen *ebiten.Image, screenWidth, screenHeight int, gridSize float64, background, gridColor color.Color) {
	screen.Fill(background)

	left, top := cam.ScreenToPage(0, 0)
	right, bottom := cam.ScreenToPage(float64(screenWidth), float64(screenHeight))

	startX := math.Floor(left/gridSize) * gridSize
	startY := math.Floor(top/gridSize) * gridSize

	// Vertical lines
	for px := startX; px < right; px += gridSize {
		sx, _ := cam.PageToScreen(px, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(screenHeight), 1, gridColor, false)
	}

	// Horizontal lines
	for py := startY; py < bottom; py += gridSize {
		_, sy := cam.PageToScreen(0, py)
		vector.StrokeLine(screen, 0, float32(sy), float32(screenWidth), float32(sy), 1, gridColor, false)
	}
}
