package seamcarve

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a pixel is addressed outside the current grid.
	ErrOutOfBounds = errors.New("seamcarve: coordinate out of bounds")

	// ErrInvalidSeam is returned when a seam does not fit the picture it is applied to.
	ErrInvalidSeam = errors.New("seamcarve: invalid seam")
)

// InvariantError reports a broken internal invariant of the seam search,
// such as a predecessor chain that does not lead back to the virtual source.
// It is raised with panic: a seam search that hits it has no meaningful result.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("seamcarve: %s: invariant violated: %s", e.Op, e.Msg)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

func outOfBounds(x, y, w, h int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, w, h)
}
