package geo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOSM(t *testing.T) {
	src, err := ParseOSM(context.Background(), "testdata/campus.osm", ParseOptions{})
	require.NoError(t, err)

	t.Run("only walkable way nodes become graph nodes", func(t *testing.T) {
		ids := []datastructure.NodeID{}
		for _, n := range src.Nodes {
			ids = append(ids, n.ID)
		}
		assert.Equal(t, []datastructure.NodeID{1, 2, 3, 4}, ids)
	})

	t.Run("edges follow way id order", func(t *testing.T) {
		pairs := [][2]datastructure.NodeID{}
		for _, e := range src.Edges {
			pairs = append(pairs, [2]datastructure.NodeID{e.From, e.To})
		}
		assert.Equal(t, [][2]datastructure.NodeID{{1, 2}, {2, 3}, {4, 1}, {4, 3}}, pairs)
	})

	t.Run("edge weights are great-circle meters", func(t *testing.T) {
		assert.InDelta(t, 110.17, src.Edges[0].Weight, 0.05)
		assert.InDelta(t, HaversineDistance(-7.7700, 110.3780, -7.7710, 110.3780), src.Edges[1].Weight, 1e-9)
	})

	t.Run("named features snap to the nearest node, first name wins", func(t *testing.T) {
		assert.Equal(t, []datastructure.POIInput{
			{Name: "Central Library", NodeID: 1},
			{Name: "Engineering Hall", NodeID: 3},
		}, src.POIs)
	})

	t.Run("result loads into a graph", func(t *testing.T) {
		g, err := datastructure.Load(src)
		require.NoError(t, err)
		id, err := g.Resolve("engineering hall")
		require.NoError(t, err)
		assert.Equal(t, datastructure.NodeID(3), id)
	})
}

func TestParseOSMMissingFile(t *testing.T) {
	_, err := ParseOSM(context.Background(), filepath.Join(t.TempDir(), "missing.osm"), ParseOptions{})
	assert.True(t, errors.Is(err, pkg.ErrMalformedGraphInput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestIsWayWalkable(t *testing.T) {
	tests := []struct {
		name string
		tag  map[string]string
		want bool
	}{
		{name: "footway", tag: map[string]string{"highway": "footway"}, want: true},
		{name: "motorway", tag: map[string]string{"highway": "motorway"}, want: false},
		{name: "private road", tag: map[string]string{"highway": "service", "access": "private"}, want: false},
		{name: "private road open to pedestrians", tag: map[string]string{"highway": "service", "access": "private", "foot": "yes"}, want: true},
		{name: "foot no", tag: map[string]string{"highway": "path", "foot": "no"}, want: false},
		{name: "not a highway", tag: map[string]string{"building": "yes"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWayWalkable(tt.tag))
		})
	}
}

func TestGetPOIName(t *testing.T) {
	assert.Equal(t, "Faculty of Engineering (FT)", GetPOIName(map[string]string{"name": "Faculty of Engineering", "short_name": "FT"}))
	assert.Equal(t, "", GetPOIName(map[string]string{"short_name": "FT"}))
	assert.False(t, isPOI(map[string]string{"amenity": "bench"}))
	assert.True(t, isPOI(map[string]string{"amenity": "cafe", "name": "Kantin"}))
}
