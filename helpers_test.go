package seamcarve

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

// newUniformPicture returns a w×h picture filled with a single color.
func newUniformPicture(w, h int, c color.NRGBA) *Picture {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return NewPicture(img)
}

// newRandomPicture returns a w×h picture with reproducible random colors.
func newRandomPicture(w, h int, seed int64) *Picture {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rnd.Intn(256)),
				G: uint8(rnd.Intn(256)),
				B: uint8(rnd.Intn(256)),
				A: 0xff,
			})
		}
	}
	return NewPicture(img)
}

// bruteForceCost enumerates every seam of the given direction and
// returns the lowest total energy among them.
func bruteForceCost(t *testing.T, g Grid, dir Direction) float64 {
	t.Helper()

	l := newLattice(g, dir)
	best := math.Inf(1)

	var walk func(step, pos int, acc float64)
	walk = func(step, pos int, acc float64) {
		p := l.at(step, pos)
		e, err := Energy(g, p.X, p.Y)
		if err != nil {
			t.Fatalf("unexpected energy error: %v", err)
		}
		acc += e
		if step == l.steps()-1 {
			best = math.Min(best, acc)
			return
		}
		for d := -1; d <= 1; d++ {
			if next := pos + d; next >= 0 && next < l.breadth() {
				walk(step+1, next, acc)
			}
		}
	}
	for pos := 0; pos < l.breadth(); pos++ {
		walk(0, pos, 0)
	}
	return best
}

var errBrokenGrid = errors.New("broken grid")

// brokenGrid reports its dimensions but fails to deliver any pixel.
type brokenGrid struct {
	w, h int
}

func (b brokenGrid) Width() int  { return b.w }
func (b brokenGrid) Height() int { return b.h }

func (b brokenGrid) ColorAt(x, y int) (uint8, uint8, uint8, error) {
	return 0, 0, 0, errBrokenGrid
}
