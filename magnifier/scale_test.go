package magnifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScale(t *testing.T) {
	s, err := ComputeScale(Size{260, 260}, Size{1300, 1300})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, s.Ratio(), 1e-12)
	assert.True(t, s.Valid())

	view := s.ViewportSize(Size{50, 50})
	assert.InDelta(t, 250, view.Width, 1e-9)
	assert.InDelta(t, 250, view.Height, 1e-9)
}

func TestComputeScale_UsesWidthOnly(t *testing.T) {
	// A non-square image still gets one ratio for both axes.
	s, err := ComputeScale(Size{200, 150}, Size{800, 10})
	require.NoError(t, err)
	assert.Equal(t, 0.25, s.Ratio())

	off := s.ToViewport(Point{Left: 10, Top: 20})
	assert.Equal(t, Point{Left: -40, Top: -80}, off)
}

func TestComputeScale_NotLoaded(t *testing.T) {
	_, err := ComputeScale(Size{260, 260}, Size{0, 0})
	assert.True(t, errors.Is(err, ErrImageNotLoaded))

	_, err = ComputeScale(Size{0, 260}, Size{1300, 1300})
	assert.Error(t, err)
}

func TestScale_RoundTrip(t *testing.T) {
	sizes := []struct {
		thumb, full Size
	}{
		{Size{260, 260}, Size{1300, 1300}},
		{Size{300, 200}, Size{1024, 683}},
		{Size{97, 97}, Size{3001, 3001}},
		{Size{400, 400}, Size{200, 200}},
	}
	for _, sz := range sizes {
		s, err := ComputeScale(sz.thumb, sz.full)
		require.NoError(t, err)
		require.Greater(t, s.Ratio(), 0.0)

		for _, lens := range []Point{{0, 0}, {13, 7}, {sz.thumb.Width / 3, sz.thumb.Height / 2}} {
			off := s.ToViewport(lens)
			assert.Equal(t, -lens.Left/s.Ratio(), off.Left)
			assert.Equal(t, -lens.Top/s.Ratio(), off.Top)
		}
	}
}

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds(Rect{Left: 10, Top: 10, Width: 260, Height: 260}, Size{50, 50})
	assert.Equal(t, LensBounds{MinLeft: 35, MaxLeft: 245, MinTop: 35, MaxTop: 245}, b)
	assert.False(t, b.DegenerateX())
	assert.False(t, b.DegenerateY())
}

func TestComputeBounds_LensLargerThanThumb(t *testing.T) {
	b := ComputeBounds(Rect{Left: 0, Top: 0, Width: 40, Height: 100}, Size{60, 60})
	assert.True(t, b.DegenerateX())
	assert.False(t, b.DegenerateY())
	assert.Greater(t, b.MinLeft, b.MaxLeft)
}
