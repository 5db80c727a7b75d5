package heuristic

import (
	"math"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/geo"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// campusGrid lays out rows x cols nodes about 40 m apart with horizontal,
// vertical and diagonal roads weighted by their great-circle length.
func campusGrid(rows, cols int) []datastructure.Node {
	nodes := make([]datastructure.Node, 0, rows*cols)
	for r := 0; r < rows; r++ {
		rowLat, rowLon := geo.GetDestinationPoint(-7.7700, 110.3770, 180, float64(r)*40)
		for c := 0; c < cols; c++ {
			// small jitter keeps the grid from being perfectly axis aligned
			lat, lon := geo.GetDestinationPoint(rowLat, rowLon, 90+float64((r*7+c*3)%5), float64(c)*40)
			nodes = append(nodes, datastructure.Node{ID: datastructure.NodeID(r*cols + c), Lat: lat, Lon: lon})
		}
	}
	return nodes
}

func TestHeuristicsAreAdmissible(t *testing.T) {
	const rows, cols = 6, 7
	nodes := campusGrid(rows, cols)

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	connect := func(a, b int) {
		w := geo.HaversineDistance(nodes[a].Lat, nodes[a].Lon, nodes[b].Lat, nodes[b].Lon)
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(a), simple.Node(b), w))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				connect(id, id+1)
			}
			if r+1 < rows {
				connect(id, id+cols)
			}
			if r+1 < rows && c+1 < cols && (r+c)%2 == 0 {
				connect(id, id+cols+1)
			}
		}
	}

	heuristics := map[string]Func{
		"great circle": GreatCircle,
		"euclidean":    Euclidean,
		"manhattan":    Manhattan,
		"combined":     Combined,
		"zero":         Zero,
		"blend":        WeightedBlend(0.3, Euclidean, Manhattan),
	}

	targets := []int{0, cols - 1, rows*cols - 1, (rows / 2 * cols) + cols/2}
	for name, h := range heuristics {
		t.Run(name, func(t *testing.T) {
			for _, target := range targets {
				shortest := path.DijkstraFrom(simple.Node(target), g)
				for i := range nodes {
					assert.LessOrEqual(t, h(nodes[i], nodes[target]), shortest.WeightTo(int64(i))+1e-9,
						"node %d to %d", i, target)
				}
			}
		})
	}
}

func TestHeuristicOrdering(t *testing.T) {
	nodes := campusGrid(4, 4)
	for _, a := range nodes {
		for _, b := range nodes {
			gc := GreatCircle(a, b)
			eu := Euclidean(a, b)
			mh := Manhattan(a, b)

			assert.LessOrEqual(t, eu, gc+1e-9)
			assert.LessOrEqual(t, mh, eu+1e-9)
			assert.Equal(t, math.Min(eu, mh), Combined(a, b))
			assert.GreaterOrEqual(t, mh, 0.0)
		}
		assert.Zero(t, GreatCircle(a, a))
		assert.Zero(t, Manhattan(a, a))
	}
}

func TestWeightedBlend(t *testing.T) {
	a := func(_, _ datastructure.Node) float64 { return 10 }
	b := func(_, _ datastructure.Node) float64 { return 20 }

	cases := []struct {
		name string
		w    float64
		want float64
	}{
		{name: "all a", w: 1, want: 10},
		{name: "all b", w: 0, want: 20},
		{name: "quarter", w: 0.25, want: 17.5},
		{name: "clamped high", w: 3, want: 10},
		{name: "clamped low", w: -1, want: 20},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedBlend(tt.w, a, b)(datastructure.Node{}, datastructure.Node{})
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}
