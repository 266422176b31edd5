package seamcarve

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergy_BorderPixels(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 3}, {6, 4},
	}
	for _, s := range sizes {
		pic := newRandomPicture(s.w, s.h, int64(s.w*10+s.h))
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				if x != 0 && x != s.w-1 && y != 0 && y != s.h-1 {
					continue
				}
				e, err := Energy(pic, x, y)
				require.NoError(t, err)
				assert.Equal(t, BorderEnergy, e, "pixel (%d,%d) of %dx%d", x, y, s.w, s.h)
			}
		}
	}
}

func TestEnergy_InteriorGradient(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff})
	img.SetNRGBA(2, 1, color.NRGBA{R: 40, G: 60, B: 90, A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0xff})
	img.SetNRGBA(1, 2, color.NRGBA{R: 3, G: 4, B: 0, A: 0xff})

	c := NewCarver(NewPicture(img))
	e, err := c.Energy(1, 1)
	require.NoError(t, err)

	// Δx² = 30² + 40² + 60², Δy² = 3² + 4²
	assert.InDelta(t, math.Sqrt(6100+25), e, 1e-12)
}

func TestEnergy_IgnoresDiagonalNeighbors(t *testing.T) {
	pic := newRandomPicture(3, 3, 7)
	before, err := Energy(pic, 1, 1)
	require.NoError(t, err)

	for _, corner := range []image.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		pic.Image().SetNRGBA(corner.X, corner.Y, color.NRGBA{R: 0xff, G: 0x01, B: 0x7f, A: 0xff})
	}
	after, err := Energy(pic, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEnergy_NonNegative(t *testing.T) {
	pic := newRandomPicture(8, 7, 42)
	for y := 0; y < pic.Height(); y++ {
		for x := 0; x < pic.Width(); x++ {
			e, err := Energy(pic, x, y)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, e, 0.0)
		}
	}
}

func TestEnergy_UniformInteriorIsZero(t *testing.T) {
	pic := newUniformPicture(5, 5, color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff})
	e, err := Energy(pic, 2, 2)
	require.NoError(t, err)
	assert.Zero(t, e)
}

func TestEnergy_OutOfBounds(t *testing.T) {
	pic := newRandomPicture(3, 3, 1)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}} {
		_, err := Energy(pic, p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "pixel %v", p)
	}
}

func TestEnergy_PropagatesGridErrors(t *testing.T) {
	_, err := Energy(brokenGrid{w: 3, h: 3}, 1, 1)
	assert.ErrorIs(t, err, errBrokenGrid)

	e, err := Energy(brokenGrid{w: 3, h: 3}, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, BorderEnergy, e)
}
