package routing

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

// DepthFirst explores one branch as deep as possible before backtracking.
// The path it returns is not optimal in any sense.
type DepthFirst struct {
	opts Options
}

func NewDepthFirst(opts Options) *DepthFirst {
	return &DepthFirst{opts: opts}
}

type dfsEntry struct {
	node   datastructure.Index
	parent datastructure.Index
	weight float64
}

func (d *DepthFirst) Search(g *datastructure.Graph, start, end datastructure.NodeID) (PathResult, error) {
	s, t, err := endpoints(g, start, end)
	if err != nil {
		return PathResult{}, err
	}
	if s == t {
		return trivialResult(start), nil
	}

	tree := newSearchTree(g.NodeCount())
	visited := make([]bool, g.NodeCount())
	stack := datastructure.NewStack[dfsEntry](64)

	stack.Push(dfsEntry{node: s, parent: datastructure.InvalidIndex})
	explored := 0
	for stack.Len() > 0 {
		e := stack.Pop()
		if visited[e.node] {
			continue
		}
		visited[e.node] = true
		if e.parent != datastructure.InvalidIndex {
			tree.set(e.node, e.parent, e.weight)
		}
		explored++
		if e.node == t {
			return tree.found(g, s, t, explored), nil
		}
		if capReached(d.opts, explored) {
			return exhausted(start, end, explored)
		}

		// reverse push so the first neighbor is expanded first
		arcs := g.Arcs(e.node)
		for i := len(arcs) - 1; i >= 0; i-- {
			if !visited[arcs[i].To] {
				w, _ := g.EdgeWeight(e.node, arcs[i].To)
				stack.Push(dfsEntry{node: arcs[i].To, parent: e.node, weight: w})
			}
		}
	}

	return noPathResult(start, end, explored), nil
}
