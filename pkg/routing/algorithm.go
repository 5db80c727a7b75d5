package routing

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/campus-route/pkg"
)

// Algorithm identifies a search strategy. The set is closed.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	UCS
	AStar
	AStarEuclidean
	AStarManhattan
	AStarCombined
)

var algorithmNames = [...]string{
	BFS:            "BFS",
	DFS:            "DFS",
	UCS:            "UCS",
	AStar:          "A*",
	AStarEuclidean: "A* (Euclidean)",
	AStarManhattan: "A* (Manhattan)",
	AStarCombined:  "A* (Combined)",
}

var algorithmIDs = [...]string{
	BFS:            "bfs",
	DFS:            "dfs",
	UCS:            "ucs",
	AStar:          "astar",
	AStarEuclidean: "astar-euclidean",
	AStarManhattan: "astar-manhattan",
	AStarCombined:  "astar-combined",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, AStar, AStarEuclidean, AStarManhattan, AStarCombined}
}

func (a Algorithm) Valid() bool {
	return a >= BFS && a <= AStarCombined
}

// String returns the display name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ID returns the short identifier used on the command line and in metrics labels.
func (a Algorithm) ID() string {
	if !a.Valid() {
		return "unknown"
	}
	return algorithmIDs[a]
}

// ParseAlgorithm accepts a display name or a short id, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	for _, a := range Algorithms() {
		if strings.EqualFold(s, algorithmNames[a]) || strings.EqualFold(s, algorithmIDs[a]) {
			return a, nil
		}
	}
	return 0, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown algorithm %q", s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
