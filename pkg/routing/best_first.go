package routing

import (
	"math"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/heuristic"
)

// BestFirst expands nodes in order of accumulated cost plus a heuristic estimate.
// With heuristic.Zero it is uniform-cost search (Dijkstra); with an admissible
// heuristic it is A* and the returned path has minimum total weight.
type BestFirst struct {
	h    heuristic.Func
	opts Options
}

func NewUniformCost(opts Options) *BestFirst {
	return &BestFirst{h: heuristic.Zero, opts: opts}
}

func NewAStar(h heuristic.Func, opts Options) *BestFirst {
	if h == nil {
		h = heuristic.Zero
	}
	return &BestFirst{h: h, opts: opts}
}

func (b *BestFirst) Search(g *datastructure.Graph, start, end datastructure.NodeID) (PathResult, error) {
	s, t, err := endpoints(g, start, end)
	if err != nil {
		return PathResult{}, err
	}
	if s == t {
		return trivialResult(start), nil
	}

	n := g.NodeCount()
	target := g.NodeAt(t)
	tree := newSearchTree(n)
	closed := make([]bool, n)
	cost := make([]float64, n)
	for i := range cost {
		cost[i] = math.Inf(1)
	}

	pq := datastructure.NewMinPriorityQueue[datastructure.Index]()
	cost[s] = 0
	pq.Push(s, b.h(g.NodeAt(s), target))

	explored := 0
	for pq.Len() > 0 {
		u, _ := pq.Pop()
		if closed[u] {
			// stale entry
			continue
		}
		closed[u] = true
		explored++
		if u == t {
			return tree.found(g, s, t, explored), nil
		}
		if capReached(b.opts, explored) {
			return exhausted(start, end, explored)
		}

		for _, arc := range g.Arcs(u) {
			if closed[arc.To] {
				continue
			}
			newCost := cost[u] + arc.Weight
			if newCost < cost[arc.To] {
				cost[arc.To] = newCost
				tree.set(arc.To, u, arc.Weight)
				pq.Push(arc.To, newCost+b.h(g.NodeAt(arc.To), target))
			}
		}
	}

	return noPathResult(start, end, explored), nil
}
