package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingComparator struct {
	pairs []comparator.Pair
	algs  []routing.Algorithm
}

func (c *recordingComparator) CompareAll(_ context.Context, _ *datastructure.Graph, pairs []comparator.Pair,
	algorithms []routing.Algorithm) ([]comparator.ComparisonRecord, error) {
	c.pairs = pairs
	c.algs = algorithms
	records := make([]comparator.ComparisonRecord, 0, len(algorithms))
	for i, alg := range algorithms {
		records = append(records, comparator.ComparisonRecord{
			Algorithm:        alg,
			AvgDistance:      100,
			AvgNodesExplored: float64(10 * (i + 1)),
			Runs:             len(pairs),
			Successes:        len(pairs),
		})
	}
	return records, nil
}

func lineGraph(t *testing.T, pois int) *datastructure.Graph {
	t.Helper()
	src := datastructure.Source{}
	for i := 1; i <= pois; i++ {
		src.Nodes = append(src.Nodes, datastructure.NodeInput{ID: datastructure.NodeID(i), Lat: -7.77, Lon: 110.377 + float64(i)*1e-4})
		src.POIs = append(src.POIs, datastructure.POIInput{Name: string(rune('A' + i - 1)), NodeID: datastructure.NodeID(i)})
		if i > 1 {
			src.Edges = append(src.Edges, datastructure.EdgeInput{From: datastructure.NodeID(i - 1), To: datastructure.NodeID(i), Weight: 11.1})
		}
	}
	g, err := datastructure.Load(src)
	require.NoError(t, err)
	return g
}

func TestCompareDefaults(t *testing.T) {
	g := lineGraph(t, 5)
	c := &recordingComparator{}
	svc := NewCompareService(zap.NewNop(), g, c, 4, 42)

	result, err := svc.Compare(context.Background(), CompareQuery{})
	require.NoError(t, err)

	assert.Equal(t, routing.Algorithms(), c.algs)
	assert.Len(t, c.pairs, 4)
	assert.Equal(t, 4, result.Pairs)
	require.NotNil(t, result.Summary)
	assert.Equal(t, routing.BFS, result.Summary.MostEfficient)
	assert.Equal(t, routing.AStarCombined, result.Summary.MostThorough)
}

func TestCompareQueryOverrides(t *testing.T) {
	g := lineGraph(t, 5)
	c := &recordingComparator{}
	svc := NewCompareService(zap.NewNop(), g, c, 4, 42)

	seed := uint64(9)
	_, err := svc.Compare(context.Background(), CompareQuery{
		Algorithms: []routing.Algorithm{routing.UCS},
		MaxPairs:   20,
		Seed:       &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, []routing.Algorithm{routing.UCS}, c.algs)
	assert.Equal(t, comparator.AllPairs(g), c.pairs)

	assert.Equal(t, svc.Pairs(3, 9), svc.Pairs(3, 9))
	assert.Len(t, svc.Pairs(-1, 9), 10)
}

func TestCompareNeedsTwoLocations(t *testing.T) {
	g := lineGraph(t, 1)
	svc := NewCompareService(zap.NewNop(), g, &recordingComparator{}, 0, 42)

	_, err := svc.Compare(context.Background(), CompareQuery{})
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}
