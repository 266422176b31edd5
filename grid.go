package seamcarve

import "fmt"

// Grid is the read-only pixel view the seam finder works on.
// Both dimensions are expected to be at least 1.
type Grid interface {
	Width() int
	Height() int
	// ColorAt returns the RGB channels of the pixel at column x and row y.
	// It fails with ErrOutOfBounds outside the grid.
	ColorAt(x, y int) (r, g, b uint8, err error)
}

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// Direction selects the orientation of a seam.
type Direction int

const (
	// Vertical seams run from the top row to the bottom row, one pixel per row.
	Vertical Direction = iota
	// Horizontal seams run from the left column to the right column, one pixel per column.
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown seam direction %q", s)
}

// inBounds reports whether (x, y) addresses a pixel of g.
func inBounds(g Grid, x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}
