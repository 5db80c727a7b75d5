package routing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lintang-b-s/campus-route/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{in: "BFS", want: BFS},
		{in: "dfs", want: DFS},
		{in: "UCS", want: UCS},
		{in: "A*", want: AStar},
		{in: "astar", want: AStar},
		{in: "A* (Euclidean)", want: AStarEuclidean},
		{in: "astar-euclidean", want: AStarEuclidean},
		{in: "a* (manhattan)", want: AStarManhattan},
		{in: " astar-combined ", want: AStarCombined},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAlgorithm("greedy")
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}

func TestAlgorithmNames(t *testing.T) {
	names := []string{}
	for _, a := range Algorithms() {
		names = append(names, a.String())
		parsed, err := ParseAlgorithm(a.ID())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, []string{"BFS", "DFS", "UCS", "A*", "A* (Euclidean)", "A* (Manhattan)", "A* (Combined)"}, names)
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}

func TestAlgorithmJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Algorithm{"algorithm": AStarCombined})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"A* (Combined)"}`, string(data))

	var decoded struct {
		Algorithm Algorithm `json:"algorithm"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"algorithm":"ucs"}`), &decoded))
	assert.Equal(t, UCS, decoded.Algorithm)

	assert.Error(t, json.Unmarshal([]byte(`{"algorithm":"nope"}`), &decoded))
}
