package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type textureKey struct {
	src  string
	w, h int
}

type texture struct {
	img  *ebiten.Image
	used bool
}

// Draw renders the page through the camera.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.Layout()
	for _, t := range s.textures {
		t.used = false
	}

	for _, el := range paintOrder(s.root.children) {
		s.drawElement(screen, el, screen.Bounds(), 1)
	}

	// Free textures for images that were resized or replaced.
	for k, t := range s.textures {
		if !t.used {
			t.img.Deallocate()
			delete(s.textures, k)
		}
	}
}

func (s *Scene) drawElement(screen *ebiten.Image, el *Element, clip image.Rectangle, alpha float32) {
	if el.hidden() || clip.Empty() {
		return
	}
	alpha *= el.opacity()

	x, y := s.Camera.PageToScreen(el.box.Left, el.box.Top)
	w := el.box.Width * s.Camera.Zoom
	h := el.box.Height * s.Camera.Zoom
	rect := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))

	dst := screen.SubImage(clip).(*ebiten.Image)

	if bg, ok := ParseColor(el.style["background"]); ok {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), withAlpha(bg, alpha), false)
	}

	if el.tag == "img" {
		if tex := s.texture(el.src, rect.Dx(), rect.Dy()); tex != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
			op.ColorScale.ScaleAlpha(alpha)
			dst.DrawImage(tex, op)
		}
	}

	childClip := clip
	if el.style["overflow"] == "hidden" {
		childClip = clip.Intersect(rect)
	}
	for _, c := range paintOrder(el.children) {
		s.drawElement(screen, c, childClip, alpha)
	}
}

// texture returns src resampled to w×h with Lanczos. A texture lives until a
// frame no longer draws it.
func (s *Scene) texture(src string, w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 || s.images == nil {
		return nil
	}
	key := textureKey{src: src, w: w, h: h}
	if t, ok := s.textures[key]; ok {
		t.used = true
		return t.img
	}

	img, ok := s.images.Image(src)
	if !ok {
		return nil
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}
	t := &texture{img: ebiten.NewImageFromImage(img), used: true}
	s.textures[key] = t
	return t.img
}

func withAlpha(c color.Color, alpha float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * float64(alpha)))
	return n
}
