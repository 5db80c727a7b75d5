package comparator

import (
	"sort"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"golang.org/x/exp/rand"
)

// Pair is an origin/destination query by POI name.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AllPairs returns every unordered pair of distinct POIs with names in sorted
// order: (names[i], names[j]) for i < j.
func AllPairs(g *datastructure.Graph) []Pair {
	names := g.POINames()
	pairs := make([]Pair, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, Pair{From: names[i], To: names[j]})
		}
	}
	return pairs
}

// SamplePairs returns n pairs of AllPairs chosen by a shuffle seeded with seed,
// kept in AllPairs order. n <= 0 or n >= len(AllPairs) returns every pair.
func SamplePairs(g *datastructure.Graph, n int, seed uint64) []Pair {
	return samplePairs(AllPairs(g), n, seed)
}

func samplePairs(all []Pair, n int, seed uint64) []Pair {
	if n <= 0 || n >= len(all) {
		return all
	}

	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(len(all))[:n]
	sort.Ints(picked)

	sample := make([]Pair, n)
	for i, idx := range picked {
		sample[i] = all[idx]
	}
	return sample
}
