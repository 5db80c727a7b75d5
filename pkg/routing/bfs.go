package routing

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

// BreadthFirst ignores weights and returns a path with the fewest edges.
type BreadthFirst struct {
	opts Options
}

func NewBreadthFirst(opts Options) *BreadthFirst {
	return &BreadthFirst{opts: opts}
}

func (b *BreadthFirst) Search(g *datastructure.Graph, start, end datastructure.NodeID) (PathResult, error) {
	s, t, err := endpoints(g, start, end)
	if err != nil {
		return PathResult{}, err
	}
	if s == t {
		return trivialResult(start), nil
	}

	tree := newSearchTree(g.NodeCount())
	seen := make([]bool, g.NodeCount())
	queue := datastructure.NewQueue[datastructure.Index](64)

	seen[s] = true
	queue.Push(s)
	explored := 0
	for queue.Len() > 0 {
		u := queue.Pop()
		explored++
		if u == t {
			return tree.found(g, s, t, explored), nil
		}
		if capReached(b.opts, explored) {
			return exhausted(start, end, explored)
		}

		for _, arc := range g.Arcs(u) {
			if seen[arc.To] {
				continue
			}
			seen[arc.To] = true
			// parallel edges: the tree keeps the lightest arc to arc.To
			w, _ := g.EdgeWeight(u, arc.To)
			tree.set(arc.To, u, w)
			queue.Push(arc.To)
		}
	}

	return noPathResult(start, end, explored), nil
}
