package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func searchWith(t *testing.T, alg Algorithm, opts Options, g *datastructure.Graph, start, end datastructure.NodeID) (PathResult, error) {
	t.Helper()
	s, err := NewSearcher(alg, opts)
	require.NoError(t, err)
	return s.Search(g, start, end)
}

func TestSquareScenario(t *testing.T) {
	g := squareGraph(t)

	tests := []struct {
		alg          Algorithm
		wantPath     []datastructure.NodeID
		wantDistance float64
	}{
		{alg: BFS, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
		{alg: DFS, wantPath: []datastructure.NodeID{nodeA, nodeB, nodeC}, wantDistance: 2},
		{alg: UCS, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
		{alg: AStar, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
		{alg: AStarEuclidean, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
		{alg: AStarManhattan, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
		{alg: AStarCombined, wantPath: []datastructure.NodeID{nodeA, nodeC}, wantDistance: 1.4},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			res, err := searchWith(t, tt.alg, Options{}, g, nodeA, nodeC)
			require.NoError(t, err)
			assert.Equal(t, Found, res.Status)
			assert.Equal(t, tt.wantPath, res.Path)
			assert.InDelta(t, tt.wantDistance, res.Distance, 1e-12)
			assert.Greater(t, res.Explored, 0)
			assert.LessOrEqual(t, res.Explored, g.NodeCount())
		})
	}
}

func TestParallelEdgesUseLightestArc(t *testing.T) {
	// the heavier 1-2 arc comes first in the adjacency list
	g, err := datastructure.Load(datastructure.Source{
		Nodes: []datastructure.NodeInput{
			{ID: 1, Lat: -7.7700, Lon: 110.377},
			{ID: 2, Lat: -7.7701, Lon: 110.377},
			{ID: 3, Lat: -7.7702, Lon: 110.377},
		},
		Edges: []datastructure.EdgeInput{
			{From: 1, To: 2, Weight: 50},
			{From: 2, To: 3, Weight: 20},
			{From: 2, To: 1, Weight: 20},
		},
	})
	require.NoError(t, err)

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := searchWith(t, alg, Options{}, g, 1, 3)
			require.NoError(t, err)
			require.Equal(t, Found, res.Status)
			assert.Equal(t, []datastructure.NodeID{1, 2, 3}, res.Path)
			assert.InDelta(t, 40, res.Distance, 1e-12)

			m, err := Metrics(g, res, DefaultWalkingSpeed)
			require.NoError(t, err)
			assert.InDelta(t, res.Distance, m.Distance, 1e-12)
		})
	}
}

func TestSelfSearch(t *testing.T) {
	g := squareGraph(t)
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := searchWith(t, alg, Options{}, g, nodeB, nodeB)
			require.NoError(t, err)
			assert.Equal(t, Trivial, res.Status)
			assert.Empty(t, res.Path)
			assert.Zero(t, res.Distance)
			assert.Equal(t, 1, res.Explored)
		})
	}
}

func TestIsolatedDestination(t *testing.T) {
	g := squareGraph(t)
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := searchWith(t, alg, Options{}, g, nodeA, nodeE)
			require.NoError(t, err)
			assert.Equal(t, NoPath, res.Status)
			assert.Empty(t, res.Path)
			assert.Zero(t, res.Distance)
			// every node of A's component is expanded
			assert.Equal(t, 4, res.Explored)

			m, err := Metrics(g, res, DefaultWalkingSpeed)
			require.NoError(t, err)
			assert.Zero(t, m.Distance)
			assert.Zero(t, m.Time)
			assert.Equal(t, 4, m.NodesExplored)
		})
	}
}

func TestUnknownNode(t *testing.T) {
	g := squareGraph(t)
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			_, err := searchWith(t, alg, Options{}, g, nodeA, 999)
			assert.True(t, errors.Is(err, pkg.ErrUnknownLocation))
			_, err = searchWith(t, alg, Options{}, g, 999, nodeA)
			assert.True(t, errors.Is(err, pkg.ErrUnknownLocation))
		})
	}
}

func TestMaxExplored(t *testing.T) {
	g := squareGraph(t)

	t.Run("cap reached before the goal", func(t *testing.T) {
		for _, alg := range Algorithms() {
			res, err := searchWith(t, alg, Options{MaxExplored: 1}, g, nodeA, nodeC)
			assert.True(t, errors.Is(err, pkg.ErrSearchExhausted), alg.String())
			assert.Equal(t, 1, res.Explored)
			assert.Empty(t, res.Path)
		}
	})

	t.Run("goal reached on the last allowed expansion", func(t *testing.T) {
		res, err := searchWith(t, UCS, Options{MaxExplored: 4}, g, nodeA, nodeC)
		require.NoError(t, err)
		assert.Equal(t, Found, res.Status)
		assert.Equal(t, 4, res.Explored)
	})

	t.Run("unreachable goal with a large cap", func(t *testing.T) {
		res, err := searchWith(t, AStar, Options{MaxExplored: 100}, g, nodeA, nodeE)
		require.NoError(t, err)
		assert.Equal(t, NoPath, res.Status)
		assert.True(t, errors.Is(res.Err(), pkg.ErrNoPathFound))
	})
}

func TestPathResultErr(t *testing.T) {
	g := squareGraph(t)
	found, err := searchWith(t, UCS, Options{}, g, nodeA, nodeC)
	require.NoError(t, err)
	assert.NoError(t, found.Err())

	trivial, err := searchWith(t, UCS, Options{}, g, nodeA, nodeA)
	require.NoError(t, err)
	assert.NoError(t, trivial.Err())
}

func TestSearchIsDeterministic(t *testing.T) {
	g, src := randomCampus(t, 8, 8, 7)
	start, end := src.Nodes[0].ID, src.Nodes[len(src.Nodes)-1].ID

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			first, err := searchWith(t, alg, Options{}, g, start, end)
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, err := searchWith(t, alg, Options{}, g, start, end)
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		})
	}
}

func TestOptimalityAgainstDijkstraOracle(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		g, src := randomCampus(t, 7, 9, seed)

		oracle := simple.NewWeightedUndirectedGraph(0, 0)
		for _, n := range src.Nodes {
			oracle.AddNode(simple.Node(n.ID))
		}
		for _, e := range src.Edges {
			from, to := simple.Node(e.From), simple.Node(e.To)
			// keep the lightest of parallel edges
			if existing, ok := oracle.Weight(int64(e.From), int64(e.To)); ok && existing <= e.Weight {
				continue
			}
			oracle.SetWeightedEdge(oracle.NewWeightedEdge(from, to, e.Weight))
		}

		pairs := [][2]datastructure.NodeID{
			{src.Nodes[0].ID, src.Nodes[len(src.Nodes)-1].ID},
			{src.Nodes[5].ID, src.Nodes[40].ID},
			{src.Nodes[17].ID, src.Nodes[3].ID},
			{src.Nodes[62].ID, src.Nodes[9].ID},
		}

		for _, p := range pairs {
			shortest := path.DijkstraFrom(simple.Node(p[0]), oracle)
			want := shortest.WeightTo(int64(p[1]))

			bfs, err := searchWith(t, BFS, Options{}, g, p[0], p[1])
			require.NoError(t, err)

			for _, alg := range Algorithms() {
				res, err := searchWith(t, alg, Options{}, g, p[0], p[1])
				require.NoError(t, err)
				require.Equal(t, Found, res.Status)
				assert.Equal(t, p[0], res.Path[0])
				assert.Equal(t, p[1], res.Path[len(res.Path)-1])
				assert.LessOrEqual(t, len(bfs.Path), len(res.Path), "%s has fewer edges than BFS", alg)

				m, err := Metrics(g, res, DefaultWalkingSpeed)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, m.Distance, want-1e-9)

				if alg == BFS || alg == DFS {
					continue
				}
				assert.InDelta(t, want, res.Distance, 1e-9, "%s seed %d pair %v", alg, seed, p)
				assert.InDelta(t, want, m.Distance, 1e-9)
			}
		}
	}
}

func TestAStarExploresNoMoreThanUCS(t *testing.T) {
	g, src := randomCampus(t, 10, 10, 11)
	start, end := src.Nodes[0].ID, src.Nodes[len(src.Nodes)-1].ID

	ucs, err := searchWith(t, UCS, Options{}, g, start, end)
	require.NoError(t, err)
	astar, err := searchWith(t, AStar, Options{}, g, start, end)
	require.NoError(t, err)

	assert.LessOrEqual(t, astar.Explored, ucs.Explored)
}

func TestCustomHeuristicSearcher(t *testing.T) {
	g := squareGraph(t)
	s := NewAStar(nil, Options{})
	res, err := s.Search(g, nodeA, nodeC)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{nodeA, nodeC}, res.Path)
}

func TestNewSearcherUnknownAlgorithm(t *testing.T) {
	_, err := NewSearcher(Algorithm(42), Options{})
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}
