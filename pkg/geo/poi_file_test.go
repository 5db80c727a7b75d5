package geo

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPOIFile(t *testing.T) {
	entries, err := LoadPOIFile("testdata/pois.yaml")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Library", entries[0].Name)
	require.NotNil(t, entries[0].NodeID)
	assert.Equal(t, int64(1), *entries[0].NodeID)
	assert.Nil(t, entries[1].NodeID)

	src := datastructure.Source{
		Nodes: []datastructure.NodeInput{
			{ID: 1, Lat: -7.7700, Lon: 110.3770},
			{ID: 3, Lat: -7.7710, Lon: 110.3780},
		},
	}
	pois, err := ResolvePOIEntries(src, entries)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.POIInput{
		{Name: "Library", NodeID: 1},
		{Name: "Main Gate", NodeID: 3},
	}, pois)
}

func TestResolvePOIEntriesInvalid(t *testing.T) {
	lat := -7.77
	cases := []struct {
		name    string
		src     datastructure.Source
		entries []POIEntry
	}{
		{
			name:    "no location",
			src:     datastructure.Source{Nodes: []datastructure.NodeInput{{ID: 1}}},
			entries: []POIEntry{{Name: "Library"}},
		},
		{
			name:    "latitude without longitude",
			src:     datastructure.Source{Nodes: []datastructure.NodeInput{{ID: 1}}},
			entries: []POIEntry{{Name: "Library", Lat: &lat}},
		},
		{
			name:    "empty graph",
			src:     datastructure.Source{},
			entries: []POIEntry{{Name: "Library", Lat: &lat, Lon: &lat}},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePOIEntries(tt.src, tt.entries)
			assert.True(t, errors.Is(err, pkg.ErrMalformedGraphInput))
		})
	}
}

func TestLoadPOIFileMissing(t *testing.T) {
	_, err := LoadPOIFile("testdata/nope.yaml")
	assert.True(t, errors.Is(err, pkg.ErrMalformedGraphInput))
}
