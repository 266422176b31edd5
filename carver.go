package seamcarve

import "fmt"

// Predecessor markers of the path table.
const (
	unreached  = -2
	fromSource = -1
)

// Carver finds minimum energy seams on a Grid.
// It keeps no state between calls, so the Grid may change between two searches.
type Carver struct {
	grid Grid
}

// NewCarver returns a Carver operating on g.
func NewCarver(g Grid) *Carver {
	return &Carver{grid: g}
}

// Width returns the current width of the underlying grid.
func (c *Carver) Width() int { return c.grid.Width() }

// Height returns the current height of the underlying grid.
func (c *Carver) Height() int { return c.grid.Height() }

// Energy returns the energy of the pixel at column x and row y.
func (c *Carver) Energy(x, y int) (float64, error) {
	return Energy(c.grid, x, y)
}

// FindVerticalSeam returns the top to bottom seam of lowest total energy.
// The seam holds one column index per row.
func (c *Carver) FindVerticalSeam() (Seam, error) {
	return c.FindSeam(Vertical)
}

// FindHorizontalSeam returns the left to right seam of lowest total energy.
// The seam holds one row index per column.
func (c *Carver) FindHorizontalSeam() (Seam, error) {
	return c.FindSeam(Horizontal)
}

// FindSeam returns the lowest energy seam in the given direction.
// An error is returned if the grid is empty or fails to deliver a pixel.
func (c *Carver) FindSeam(dir Direction) (Seam, error) {
	if c.grid.Width() < 1 || c.grid.Height() < 1 {
		return nil, fmt.Errorf("%w: empty %dx%d grid", ErrOutOfBounds, c.grid.Width(), c.grid.Height())
	}
	l := newLattice(c.grid, dir)
	t := newPathTable(c.grid, l)

	return t.shortestPath(l.topologicalOrder())
}

// pathTable holds the shortest path state of a single seam search.
// Distances and predecessors are stored in flat slices indexed by x + y*width,
// followed by one extra slot for the virtual sink.
type pathTable struct {
	lattice
	grid Grid
	dist []float64
	from []int
}

func newPathTable(g Grid, l lattice) *pathTable {
	n := l.size() + 1
	t := &pathTable{
		lattice: l,
		grid:    g,
		dist:    make([]float64, n),
		from:    make([]int, n),
	}
	for i := range t.from {
		t.from[i] = unreached
	}
	return t
}

// sink returns the slot of the virtual node following the last row (or column).
func (t *pathTable) sink() int { return t.size() }

func (t *pathTable) energy(p Point) (float64, error) {
	return Energy(t.grid, p.X, p.Y)
}

// relax records the path through cur as the best known path to next,
// if next was not reached yet or the new path is strictly cheaper.
func (t *pathTable) relax(cur, next int, weight float64) {
	d := t.dist[cur] + weight
	if t.from[next] == unreached || d < t.dist[next] {
		t.dist[next] = d
		t.from[next] = cur
	}
}

// shortestPath computes the cheapest path from the virtual source to the virtual sink
// based on the following logic:
//   - every pixel of the first step is reached from the source at the cost of its own energy;
//   - the pixels are visited in topological order and each one relaxes its (at most three)
//     neighbors on the next step, the edge weight being the energy of the neighbor;
//   - pixels of the last step relax the sink with their own distance.
func (t *pathTable) shortestPath(order []Point) (Seam, error) {
	if len(order) == 0 || order[0] != source {
		invariant("shortestPath", "topological order does not start at the virtual source")
	}

	for pos := 0; pos < t.breadth(); pos++ {
		p := t.at(0, pos)
		e, err := t.energy(p)
		if err != nil {
			return nil, err
		}
		i := t.index(p)
		t.dist[i] = e
		t.from[i] = fromSource
	}

	for _, p := range order[1:] {
		cur := t.index(p)
		if t.from[cur] == unreached {
			invariant("shortestPath", "point %v visited before any of its predecessors", p)
		}
		if t.isLast(p) {
			t.relax(cur, t.sink(), 0)
			continue
		}
		for k := 0; k < 3; k++ {
			q, ok := t.neighbor(p, k)
			if !ok {
				continue
			}
			e, err := t.energy(q)
			if err != nil {
				return nil, err
			}
			t.relax(cur, t.index(q), e)
		}
	}

	return t.trace(), nil
}

// trace walks the predecessor links back from the sink and
// collects the position of the seam at every step.
func (t *pathTable) trace() Seam {
	seam := make(Seam, t.steps())
	cur := t.sink()

	for i := len(seam) - 1; i >= 0; i-- {
		prev := t.from[cur]
		if prev < 0 {
			invariant("trace", "missing predecessor at step %d", i)
		}
		p := t.point(prev)
		if t.step(p) != i {
			invariant("trace", "predecessor %v is not on step %d", p, i)
		}
		seam[i] = t.pos(p)
		cur = prev
	}
	if t.from[cur] != fromSource {
		invariant("trace", "path does not start at the virtual source")
	}

	return seam
}
