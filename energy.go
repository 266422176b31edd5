package seamcarve

import "math"

// BorderEnergy is the energy of every pixel on the image border.
// It keeps seams from cutting along the edges of the image.
const BorderEnergy = 1000.0

// Energy returns the dual-gradient energy of the pixel at column x and row y.
//
// Border pixels get BorderEnergy. For an interior pixel the energy is
// sqrt(Δx² + Δy²), where Δx² is the sum of the squared channel differences
// between the left and right neighbors and Δy² the same for the pixels above and below.
// Only the four orthogonal neighbors take part in the computation.
func Energy(g Grid, x, y int) (float64, error) {
	w, h := g.Width(), g.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, outOfBounds(x, y, w, h)
	}
	if x == 0 || x == w-1 || y == 0 || y == h-1 {
		return BorderEnergy, nil
	}

	dx, err := gradient(g, x-1, y, x+1, y)
	if err != nil {
		return 0, err
	}
	dy, err := gradient(g, x, y-1, x, y+1)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(dx + dy), nil
}

// gradient sums the squared per channel differences of two pixels.
func gradient(g Grid, x0, y0, x1, y1 int) (float64, error) {
	r0, g0, b0, err := g.ColorAt(x0, y0)
	if err != nil {
		return 0, err
	}
	r1, g1, b1, err := g.ColorAt(x1, y1)
	if err != nil {
		return 0, err
	}
	dr := float64(r0) - float64(r1)
	dg := float64(g0) - float64(g1)
	db := float64(b0) - float64(b1)

	return dr*dr + dg*dg + db*db, nil
}
