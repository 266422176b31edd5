package seamcarve

import "slices"

// frame is a depth-first stack entry: a node and the number of its
// neighbor slots that are still to be scanned.
type frame struct {
	p    Point
	left int
}

// topologicalOrder returns the virtual source followed by every grid point, such that
// each point comes after all of the points a seam can reach it from.
//
// The order is the reversed postorder of a depth-first traversal started at the source.
// The traversal keeps its own stack instead of recursing, since the depth of the
// graph grows with the image size. Each point is pushed at most once.
func (l lattice) topologicalOrder() []Point {
	var (
		visited = make([]bool, l.size())
		post    = make([]Point, 0, l.size()+1)
		stack   = make([]frame, 0, l.steps()+1)
	)
	stack = append(stack, frame{p: source, left: l.degree(source)})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		pushed := false

		// Scan the slots backwards: once the postorder gets reversed,
		// siblings show up in ascending order.
		for top.left > 0 {
			top.left--
			q, ok := l.neighbor(top.p, top.left)
			if !ok {
				continue
			}
			i := l.index(q)
			if visited[i] {
				continue
			}
			visited[i] = true
			stack = append(stack, frame{p: q, left: l.degree(q)})
			pushed = true
			break
		}
		if !pushed {
			post = append(post, top.p)
			stack = stack[:len(stack)-1]
		}
	}
	slices.Reverse(post)

	return post
}
