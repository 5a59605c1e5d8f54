package magnifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scenarioThumb = Rect{Left: 10, Top: 10, Width: 260, Height: 260}
	scenarioLens  = Size{50, 50}
)

func scenarioTracker(t *testing.T) *Tracker {
	t.Helper()
	s, err := ComputeScale(scenarioThumb.Size(), Size{1300, 1300})
	require.NoError(t, err)
	tr := &Tracker{}
	tr.Track(scenarioThumb, scenarioLens, s, Point{})
	return tr
}

func TestTracker_IdleIgnoresPointer(t *testing.T) {
	var tr Tracker
	assert.Equal(t, Idle, tr.State())

	_, ok := tr.Move(Point{Left: 100, Top: 100})
	assert.False(t, ok)
	assert.Equal(t, Frame{}, tr.Frame())
}

func TestTracker_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		pointer  Point
		lens     Point
		viewport Point
	}{
		{"below min pins to origin", Point{5, 5}, Point{0, 0}, Point{0, 0}},
		{"beyond max pins to far edge", Point{300, 300}, Point{210, 210}, Point{-1050, -1050}},
		{"interior follows pointer", Point{100, 150}, Point{65, 115}, Point{-325, -575}},
		{"exactly min", Point{35, 35}, Point{0, 0}, Point{0, 0}},
		{"exactly max", Point{245, 245}, Point{210, 210}, Point{-1050, -1050}},
		{"axes clamp independently", Point{5, 300}, Point{0, 210}, Point{0, -1050}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := scenarioTracker(t)
			f, ok := tr.Move(tt.pointer)
			require.True(t, ok)
			assert.InDelta(t, tt.lens.Left, f.Lens.Left, 1e-9)
			assert.InDelta(t, tt.lens.Top, f.Lens.Top, 1e-9)
			assert.InDelta(t, tt.viewport.Left, f.Viewport.Left, 1e-9)
			assert.InDelta(t, tt.viewport.Top, f.Viewport.Top, 1e-9)
			assert.Equal(t, f, tr.Frame())
		})
	}
}

func TestTracker_InteriorIsIdentity(t *testing.T) {
	tr := scenarioTracker(t)
	b := tr.Bounds()
	for x := b.MinLeft + 0.5; x < b.MaxLeft; x += 7.25 {
		for y := b.MinTop + 0.5; y < b.MaxTop; y += 11.5 {
			f, ok := tr.Move(Point{x, y})
			require.True(t, ok)
			assert.Equal(t, x-scenarioThumb.Left-scenarioLens.Width/2, f.Lens.Left)
			assert.Equal(t, y-scenarioThumb.Top-scenarioLens.Height/2, f.Lens.Top)
		}
	}
}

func TestTracker_BoundaryPinning(t *testing.T) {
	tr := scenarioTracker(t)
	for _, p := range []float64{-1000, 0, 10, 34.999} {
		f, _ := tr.Move(Point{p, p})
		assert.Equal(t, Point{0, 0}, f.Lens, "pointer %v", p)
	}
	for _, p := range []float64{245.001, 270, 5000} {
		f, _ := tr.Move(Point{p, p})
		assert.Equal(t, Point{210, 210}, f.Lens, "pointer %v", p)
	}
}

func TestTracker_PointerOnFractionalBoundIsExact(t *testing.T) {
	s, err := ComputeScale(Size{260, 260}, Size{1300, 1300})
	require.NoError(t, err)

	for _, origin := range []float64{123.45, 7.7, 10.1} {
		var tr Tracker
		tr.Track(Rect{Left: origin, Top: origin, Width: 260, Height: 260}, Size{50, 50}, s, Point{})
		b := tr.Bounds()

		f, _ := tr.Move(Point{b.MinLeft, b.MinTop})
		assert.Equal(t, Point{0, 0}, f.Lens, "origin %v at min", origin)

		f, _ = tr.Move(Point{b.MaxLeft, b.MaxTop})
		assert.Equal(t, Point{210, 210}, f.Lens, "origin %v at max", origin)
	}
}

func TestTracker_TrackKeepsInitialInsideThumbnail(t *testing.T) {
	s, err := ComputeScale(Size{130, 130}, Size{260, 260})
	require.NoError(t, err)

	var tr Tracker
	f := tr.Track(Rect{Width: 130, Height: 130}, Size{50, 50}, s, Point{210, -5})
	assert.Equal(t, Point{80, 0}, f.Lens)
	assert.Equal(t, Point{-160, 0}, f.Viewport)

	f = tr.Track(Rect{Width: 40, Height: 130}, Size{60, 50}, s, Point{30, 40})
	assert.Equal(t, Point{0, 40}, f.Lens)
}

func TestTracker_OddLensKeepsHalfPixel(t *testing.T) {
	s, err := ComputeScale(Size{100, 100}, Size{400, 400})
	require.NoError(t, err)
	var tr Tracker
	tr.Track(Rect{Width: 100, Height: 100}, Size{51, 51}, s, Point{})

	f, _ := tr.Move(Point{50, 50})
	assert.Equal(t, Point{24.5, 24.5}, f.Lens)
	assert.Equal(t, Point{-98, -98}, f.Viewport)

	f, _ = tr.Move(Point{99, 99})
	assert.Equal(t, Point{49, 49}, f.Lens)
}

func TestTracker_DegenerateAxisPinsToZero(t *testing.T) {
	s, err := ComputeScale(Size{40, 100}, Size{400, 1000})
	require.NoError(t, err)
	var tr Tracker
	tr.Track(Rect{Left: 0, Top: 0, Width: 40, Height: 100}, Size{60, 60}, s, Point{})

	for _, x := range []float64{-10, 0, 20, 30, 39, 500} {
		f, ok := tr.Move(Point{x, 50})
		require.True(t, ok)
		assert.Equal(t, 0.0, f.Lens.Left, "pointer x %v", x)
		assert.InDelta(t, 20, f.Lens.Top, 1e-9)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := scenarioTracker(t)
	tr.Move(Point{100, 100})
	tr.Reset()
	assert.Equal(t, Idle, tr.State())
	_, ok := tr.Move(Point{100, 100})
	assert.False(t, ok)
}
