package seamcarve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTopologicalOrder verifies that order starts at the source, lists every grid
// point exactly once and places every point after all of its predecessors.
func checkTopologicalOrder(t *testing.T, l lattice, order []Point) {
	t.Helper()

	require.Len(t, order, l.size()+1)
	require.Equal(t, source, order[0])

	position := make(map[Point]int, len(order))
	for i, p := range order {
		_, dup := position[p]
		require.False(t, dup, "point %v listed twice", p)
		position[p] = i
	}
	for i, p := range order {
		for k := 0; k < l.degree(p); k++ {
			q, ok := l.neighbor(p, k)
			if !ok {
				continue
			}
			assert.Less(t, i, position[q], "%v must come before %v", p, q)
		}
	}
}

func TestTopologicalOrder_Valid(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 5}, {5, 1}, {3, 3}, {4, 7}, {9, 2},
	}
	for _, s := range sizes {
		for _, dir := range []Direction{Vertical, Horizontal} {
			l := newLattice(newRandomPicture(s.w, s.h, 3), dir)
			checkTopologicalOrder(t, l, l.topologicalOrder())
		}
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	pic := newRandomPicture(6, 5, 11)
	for _, dir := range []Direction{Vertical, Horizontal} {
		l := newLattice(pic, dir)
		assert.Equal(t, l.topologicalOrder(), l.topologicalOrder())
	}
}

func TestTopologicalOrder_Exact(t *testing.T) {
	l := newLattice(newRandomPicture(3, 3, 5), Vertical)
	expected := []Point{
		source,
		{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}, {2, 1}, {1, 2}, {2, 2},
	}
	assert.Equal(t, expected, l.topologicalOrder())

	// Points without successors are listed in ascending order.
	l = newLattice(newRandomPicture(1, 4, 5), Horizontal)
	assert.Equal(t, []Point{source, {0, 0}, {0, 1}, {0, 2}, {0, 3}}, l.topologicalOrder())
}

func TestTopologicalOrder_DeepGraph(t *testing.T) {
	// A single column of 20000 pixels produces a path of the same depth.
	l := lattice{width: 1, height: 20000, dir: Vertical}
	order := l.topologicalOrder()

	require.Len(t, order, 20001)
	for i, p := range order[1:] {
		assert.Equal(t, Point{X: 0, Y: i}, p)
	}
}
