package ui

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth  = 420
	lineHeight  = 18
	panelMargin = 10
)

// DebugPanel lists current problems, one line per topic (for example
// "config" or "load").
type DebugPanel struct {
	errors map[string]string
}

func (d *DebugPanel) SetError(topic, msg string) {
	if d.errors == nil {
		d.errors = make(map[string]string)
	}
	d.errors[topic] = msg
}

// Clear removes the topic's message, or every message when topic is "".
func (d *DebugPanel) Clear(topic string) {
	if topic == "" {
		d.errors = nil
		return
	}
	delete(d.errors, topic)
}

// Lines returns "topic: message" lines in topic order.
func (d *DebugPanel) Lines() []string {
	if d == nil {
		return nil
	}
	topics := make([]string, 0, len(d.errors))
	for t := range d.errors {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	lines := make([]string, len(topics))
	for i, t := range topics {
		lines[i] = t + ": " + d.errors[t]
	}
	return lines
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	lines := d.Lines()
	if len(lines) == 0 {
		return
	}
	w, h := getScreenSize()
	pw, ph := panelWidth, len(lines)*lineHeight+16
	x := w - pw - panelMargin
	y := h - ph - panelMargin
	bg := color.RGBA{40, 40, 40, 220}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), bg, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	for i, line := range lines {
		drawText(screen, face, line, x+8, y+8+i*lineHeight, color.RGBA{255, 200, 50, 255})
	}
}
