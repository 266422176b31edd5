package seamcarve

// source is the virtual node that precedes the first row (or column) of the grid.
var source = Point{X: -1, Y: -1}

// lattice describes the seam graph laid over a width×height grid for one direction.
// A seam advances one step along the major axis (rows for vertical seams, columns
// for horizontal ones) and shifts by at most one position along the minor axis.
type lattice struct {
	width  int
	height int
	dir    Direction
}

func newLattice(g Grid, dir Direction) lattice {
	return lattice{width: g.Width(), height: g.Height(), dir: dir}
}

// steps returns the seam length.
func (l lattice) steps() int {
	if l.dir == Vertical {
		return l.height
	}
	return l.width
}

// breadth returns the number of positions available at each step.
func (l lattice) breadth() int {
	if l.dir == Vertical {
		return l.width
	}
	return l.height
}

func (l lattice) at(step, pos int) Point {
	if l.dir == Vertical {
		return Point{X: pos, Y: step}
	}
	return Point{X: step, Y: pos}
}

func (l lattice) step(p Point) int {
	if l.dir == Vertical {
		return p.Y
	}
	return p.X
}

func (l lattice) pos(p Point) int {
	if l.dir == Vertical {
		return p.X
	}
	return p.Y
}

func (l lattice) size() int { return l.width * l.height }

func (l lattice) index(p Point) int { return p.X + p.Y*l.width }

func (l lattice) point(i int) Point { return Point{X: i % l.width, Y: i / l.width} }

func (l lattice) contains(p Point) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// isLast reports whether p lies on the final row (or column) of the seam.
func (l lattice) isLast(p Point) bool {
	return l.step(p) == l.steps()-1
}

// degree returns the number of neighbor slots of p. The virtual source is linked to
// every position of the first step, interior points to the three positions of the next
// step, and points of the last step to nothing.
func (l lattice) degree(p Point) int {
	switch {
	case p == source:
		return l.breadth()
	case l.isLast(p):
		return 0
	}
	return 3
}

// neighbor returns the k-th neighbor slot of p. For grid points the slots map to the
// offsets -1, 0 and +1 on the next step; ok is false if the slot falls off the grid.
func (l lattice) neighbor(p Point, k int) (q Point, ok bool) {
	if p == source {
		return l.at(0, k), true
	}
	q = l.at(l.step(p)+1, l.pos(p)+k-1)
	return q, l.contains(q)
}
