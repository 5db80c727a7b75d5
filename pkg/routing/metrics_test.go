package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	g := squareGraph(t)

	t.Run("diagonal route", func(t *testing.T) {
		res := PathResult{Start: nodeA, End: nodeC, Path: []datastructure.NodeID{nodeA, nodeC}, Explored: 4, Distance: 1.4, Status: Found}
		m, err := Metrics(g, res, DefaultWalkingSpeed)
		require.NoError(t, err)
		assert.InDelta(t, 1.4, m.Distance, 1e-12)
		assert.InDelta(t, 1.4/84, m.Time, 1e-12)
		assert.Equal(t, 4, m.NodesExplored)
		assert.Equal(t, "A", m.StartName)
		assert.Equal(t, "C", m.EndName)
		assert.Equal(t, Found, m.Status)
	})

	t.Run("distance is recomputed from edge weights", func(t *testing.T) {
		res := PathResult{Start: nodeA, End: nodeC, Path: []datastructure.NodeID{nodeA, nodeB, nodeC}, Distance: 99}
		m, err := Metrics(g, res, 2)
		require.NoError(t, err)
		assert.InDelta(t, 2, m.Distance, 1e-12)
		assert.InDelta(t, 1, m.Time, 1e-12)
	})

	t.Run("trivial route", func(t *testing.T) {
		m, err := Metrics(g, trivialResult(nodeB), DefaultWalkingSpeed)
		require.NoError(t, err)
		assert.Zero(t, m.Distance)
		assert.Zero(t, m.Time)
		assert.Equal(t, 1, m.NodesExplored)
	})

	t.Run("non adjacent step", func(t *testing.T) {
		res := PathResult{Path: []datastructure.NodeID{nodeA, nodeE}}
		_, err := Metrics(g, res, DefaultWalkingSpeed)
		assert.True(t, errors.Is(err, pkg.ErrMalformedGraphInput))
	})

	t.Run("unknown node", func(t *testing.T) {
		res := PathResult{Path: []datastructure.NodeID{nodeA, 77}}
		_, err := Metrics(g, res, DefaultWalkingSpeed)
		assert.True(t, errors.Is(err, pkg.ErrMalformedGraphInput))
	})

	t.Run("invalid speed", func(t *testing.T) {
		_, err := Metrics(g, trivialResult(nodeA), 0)
		assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
	})
}
