package seamcarve

import (
	"fmt"

	"github.com/esimov/seamcarve/utils"
)

// Seam is a connected path of pixels crossing the image.
// A vertical seam holds the column index for every row,
// a horizontal seam the row index for every column.
type Seam []int

// Validate checks that s is a well formed seam of direction dir on g:
// one entry per row (or column), every entry inside the grid and
// consecutive entries differing by at most one.
func (s Seam) Validate(g Grid, dir Direction) error {
	l := newLattice(g, dir)
	if len(s) != l.steps() {
		return fmt.Errorf("%w: %s seam has length %d, want %d", ErrInvalidSeam, dir, len(s), l.steps())
	}
	for i, pos := range s {
		if pos < 0 || pos >= l.breadth() {
			return fmt.Errorf("%w: entry %d is %d, outside [0,%d)", ErrInvalidSeam, i, pos, l.breadth())
		}
		if i > 0 && utils.Abs(pos-s[i-1]) > 1 {
			return fmt.Errorf("%w: entries %d and %d are not adjacent (%d, %d)", ErrInvalidSeam, i-1, i, s[i-1], pos)
		}
	}
	return nil
}

// Points converts the seam into pixel coordinates.
func (s Seam) Points(dir Direction) []Point {
	points := make([]Point, len(s))
	for i, pos := range s {
		if dir == Vertical {
			points[i] = Point{X: pos, Y: i}
		} else {
			points[i] = Point{X: i, Y: pos}
		}
	}
	return points
}

// Cost returns the total energy of the pixels covered by the seam.
func (s Seam) Cost(g Grid, dir Direction) (float64, error) {
	var total float64
	for _, p := range s.Points(dir) {
		e, err := Energy(g, p.X, p.Y)
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}
