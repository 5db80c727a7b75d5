package routing

import (
	"testing"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/geo"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	nodeA datastructure.NodeID = iota + 1
	nodeB
	nodeC
	nodeD
	nodeE
)

// squareGraph is A-B-C-D-A with unit sides, a 1.4 diagonal A-C and an isolated E.
// Coordinates are a few centimeters apart so every heuristic stays below the weights.
func squareGraph(t *testing.T) *datastructure.Graph {
	t.Helper()
	g, err := datastructure.Load(datastructure.Source{
		Nodes: []datastructure.NodeInput{
			{ID: nodeA, Lat: -7.770000, Lon: 110.377000},
			{ID: nodeB, Lat: -7.770000, Lon: 110.377001},
			{ID: nodeC, Lat: -7.770001, Lon: 110.377001},
			{ID: nodeD, Lat: -7.770001, Lon: 110.377000},
			{ID: nodeE, Lat: -7.770100, Lon: 110.377100},
		},
		Edges: []datastructure.EdgeInput{
			{From: nodeA, To: nodeB, Weight: 1},
			{From: nodeB, To: nodeC, Weight: 1},
			{From: nodeC, To: nodeD, Weight: 1},
			{From: nodeD, To: nodeA, Weight: 1},
			{From: nodeA, To: nodeC, Weight: 1.4},
		},
		POIs: []datastructure.POIInput{
			{Name: "A", NodeID: nodeA},
			{Name: "B", NodeID: nodeB},
			{Name: "C", NodeID: nodeC},
			{Name: "D", NodeID: nodeD},
			{Name: "E", NodeID: nodeE},
		},
	})
	require.NoError(t, err)
	return g
}

// randomCampus builds a connected rows x cols grid about 30 m apart with extra random
// shortcuts. Weights are at least the great-circle length of each edge.
func randomCampus(t *testing.T, rows, cols int, seed uint64) (*datastructure.Graph, datastructure.Source) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	src := datastructure.Source{}
	for r := 0; r < rows; r++ {
		rowLat, rowLon := geo.GetDestinationPoint(-7.7700, 110.3770, 180, float64(r)*30)
		for c := 0; c < cols; c++ {
			lat, lon := geo.GetDestinationPoint(rowLat, rowLon, 90, float64(c)*30+rng.Float64()*5)
			src.Nodes = append(src.Nodes, datastructure.NodeInput{ID: datastructure.NodeID(r*cols + c + 100), Lat: lat, Lon: lon})
		}
	}

	connect := func(a, b int) {
		na, nb := src.Nodes[a], src.Nodes[b]
		// detours make some roads longer than the straight line
		w := geo.HaversineDistance(na.Lat, na.Lon, nb.Lat, nb.Lon) * (1 + rng.Float64()*0.5)
		src.Edges = append(src.Edges, datastructure.EdgeInput{From: na.ID, To: nb.ID, Weight: w})
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
		}
	}
	for i := 0; i < rows*cols/2; i++ {
		a := rng.Intn(len(src.Nodes))
		b := rng.Intn(len(src.Nodes))
		if a != b {
			connect(a, b)
		}
	}

	g, err := datastructure.Load(src)
	require.NoError(t, err)
	return g, src
}
