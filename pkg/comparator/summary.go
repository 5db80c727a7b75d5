package comparator

import (
	"github.com/lintang-b-s/campus-route/pkg/routing"
)

// Summary model info
// @Description which algorithm stood out in a comparison.
type Summary struct {
	ShortestPath  routing.Algorithm `json:"shortest_path"`
	MostEfficient routing.Algorithm `json:"most_efficient"`
	MostThorough  routing.Algorithm `json:"most_thorough"`
}

// Summarize picks the algorithm with the lowest average distance, the one with the
// fewest average expansions and the one with the most. Records without a single
// successful run are ignored; ties go to the earlier record. ok is false when no
// record qualifies.
func Summarize(records []ComparisonRecord) (summary Summary, ok bool) {
	var shortest, efficient, thorough *ComparisonRecord
	for i := range records {
		r := &records[i]
		if r.Successes == 0 {
			continue
		}
		if shortest == nil || r.AvgDistance < shortest.AvgDistance {
			shortest = r
		}
		if efficient == nil || r.AvgNodesExplored < efficient.AvgNodesExplored {
			efficient = r
		}
		if thorough == nil || r.AvgNodesExplored > thorough.AvgNodesExplored {
			thorough = r
		}
	}
	if shortest == nil {
		return Summary{}, false
	}
	return Summary{
		ShortestPath:  shortest.Algorithm,
		MostEfficient: efficient.Algorithm,
		MostThorough:  thorough.Algorithm,
	}, true
}
