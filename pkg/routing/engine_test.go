package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	calls int
	err   error
}

func (s *stubRenderer) Render(_ *datastructure.Graph, result PathResult) (Artifact, error) {
	s.calls++
	if s.err != nil {
		return Artifact{}, s.err
	}
	return Artifact{ContentType: "text/plain", Data: []byte(result.Status.String())}, nil
}

func TestEngineRoute(t *testing.T) {
	g := squareGraph(t)
	renderer := &stubRenderer{}
	engine, err := NewEngine(g, EngineOptions{Renderer: renderer}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWalkingSpeed, engine.WalkingSpeed())

	t.Run("named route", func(t *testing.T) {
		route, err := engine.Route("a", "C", UCS)
		require.NoError(t, err)
		assert.Equal(t, UCS, route.Algorithm)
		assert.Equal(t, []datastructure.NodeID{nodeA, nodeC}, route.Result.Path)
		assert.InDelta(t, 1.4, route.Metrics.Distance, 1e-12)
		assert.InDelta(t, 1.4/DefaultWalkingSpeed, route.Metrics.Time, 1e-12)
		assert.Equal(t, "A", route.Metrics.StartName)
		assert.Equal(t, "C", route.Metrics.EndName)
		require.NotNil(t, route.Artifact)
		assert.Equal(t, "found", string(route.Artifact.Data))
	})

	t.Run("no path is not an error", func(t *testing.T) {
		route, err := engine.Route("A", "E", BFS)
		require.NoError(t, err)
		assert.Equal(t, NoPath, route.Result.Status)
		assert.Zero(t, route.Metrics.Distance)
		assert.Greater(t, route.Metrics.NodesExplored, 0)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := engine.Route("A", "Stadium", BFS)
		assert.True(t, errors.Is(err, pkg.ErrUnknownLocation))
		_, err = engine.Route("Stadium", "A", BFS)
		assert.True(t, errors.Is(err, pkg.ErrUnknownLocation))
	})

	t.Run("renderer failure", func(t *testing.T) {
		failing, err := NewEngine(g, EngineOptions{Renderer: &stubRenderer{err: errors.New("boom")}}, nil)
		require.NoError(t, err)
		_, err = failing.Route("A", "C", AStar)
		assert.True(t, errors.Is(err, pkg.ErrInternalServerError))
	})

	t.Run("exhausted search", func(t *testing.T) {
		capped, err := NewEngine(g, EngineOptions{Search: Options{MaxExplored: 1}}, nil)
		require.NoError(t, err)
		route, err := capped.Route("A", "C", UCS)
		assert.True(t, errors.Is(err, pkg.ErrSearchExhausted))
		assert.Equal(t, 1, route.Result.Explored)
	})
}

func TestEngineLocations(t *testing.T) {
	g := squareGraph(t)
	engine, err := NewEngine(g, EngineOptions{WalkingSpeed: 60}, nil)
	require.NoError(t, err)

	loc, err := engine.Location("b")
	require.NoError(t, err)
	assert.Equal(t, "B", loc.Name)
	assert.Equal(t, nodeB, loc.NodeID)

	assert.Len(t, engine.Locations(), 5)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, engine.Suggest("F", 0))
	assert.Equal(t, []string{"A", "B"}, engine.Suggest("F", 2))
}

func TestNewEngineInvalidSpeed(t *testing.T) {
	_, err := NewEngine(squareGraph(t), EngineOptions{WalkingSpeed: -1}, nil)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}
