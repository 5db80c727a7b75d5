package routing

import (
	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/heuristic"
)

// Options tune a search. The zero value means no limits.
type Options struct {
	// MaxExplored stops the search with ErrSearchExhausted after this many
	// expansions. 0 means unlimited.
	MaxExplored int
}

// Searcher finds a path between two nodes. Implementations never modify the graph
// and keep all working state per call, so one Searcher may serve concurrent calls.
type Searcher interface {
	Search(g *datastructure.Graph, start, end datastructure.NodeID) (PathResult, error)
}

// NewSearcher returns the searcher for alg.
func NewSearcher(alg Algorithm, opts Options) (Searcher, error) {
	switch alg {
	case BFS:
		return NewBreadthFirst(opts), nil
	case DFS:
		return NewDepthFirst(opts), nil
	case UCS:
		return NewUniformCost(opts), nil
	case AStar:
		return NewAStar(heuristic.GreatCircle, opts), nil
	case AStarEuclidean:
		return NewAStar(heuristic.Euclidean, opts), nil
	case AStarManhattan:
		return NewAStar(heuristic.Manhattan, opts), nil
	case AStarCombined:
		return NewAStar(heuristic.Combined, opts), nil
	}
	return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown algorithm %d", int(alg))
}

// endpoints resolves start and end to dense indexes.
func endpoints(g *datastructure.Graph, start, end datastructure.NodeID) (datastructure.Index, datastructure.Index, error) {
	s, ok := g.IndexOf(start)
	if !ok {
		return 0, 0, pkg.WrapErrorf(nil, pkg.ErrUnknownLocation, "start node %d is not in the graph", start)
	}
	t, ok := g.IndexOf(end)
	if !ok {
		return 0, 0, pkg.WrapErrorf(nil, pkg.ErrUnknownLocation, "end node %d is not in the graph", end)
	}
	return s, t, nil
}

func trivialResult(start datastructure.NodeID) PathResult {
	return PathResult{
		Start:    start,
		End:      start,
		Path:     []datastructure.NodeID{},
		Explored: 1,
		Status:   Trivial,
	}
}

func noPathResult(start, end datastructure.NodeID, explored int) PathResult {
	return PathResult{
		Start:    start,
		End:      end,
		Path:     []datastructure.NodeID{},
		Explored: explored,
		Status:   NoPath,
	}
}

func exhausted(start, end datastructure.NodeID, explored int) (PathResult, error) {
	return noPathResult(start, end, explored), pkg.WrapErrorf(nil, pkg.ErrSearchExhausted,
		"search from %d to %d stopped after exploring %d nodes", start, end, explored)
}

func capReached(opts Options, explored int) bool {
	return opts.MaxExplored > 0 && explored >= opts.MaxExplored
}

// searchTree records how each reached node was first reached.
type searchTree struct {
	parent []datastructure.Index
	weight []float64 // weight of the arc from parent
}

func newSearchTree(n int) searchTree {
	parent := make([]datastructure.Index, n)
	for i := range parent {
		parent[i] = datastructure.InvalidIndex
	}
	return searchTree{parent: parent, weight: make([]float64, n)}
}

func (st searchTree) set(child, parent datastructure.Index, weight float64) {
	st.parent[child] = parent
	st.weight[child] = weight
}

// found walks parents back from t and returns the path from s to t with its length.
func (st searchTree) found(g *datastructure.Graph, s, t datastructure.Index, explored int) PathResult {
	path := []datastructure.NodeID{}
	distance := 0.0
	for cur := t; cur != s; cur = st.parent[cur] {
		path = append(path, g.NodeAt(cur).ID)
		distance += st.weight[cur]
	}
	path = append(path, g.NodeAt(s).ID)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return PathResult{
		Start:    g.NodeAt(s).ID,
		End:      g.NodeAt(t).ID,
		Path:     path,
		Explored: explored,
		Distance: distance,
		Status:   Found,
	}
}
