package routing

import (
	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

// DefaultWalkingSpeed is an average walking pace in meters per minute (about 1.4 m/s).
const DefaultWalkingSpeed = 84.0

// RouteMetrics model info
// @Description summary of a computed route. Distance in meters, Time in minutes.
type RouteMetrics struct {
	Start         datastructure.NodeID `json:"start"`
	End           datastructure.NodeID `json:"end"`
	StartName     string               `json:"start_name,omitempty"`
	EndName       string               `json:"end_name,omitempty"`
	Distance      float64              `json:"distance_m"`
	Time          float64              `json:"time_min"`
	NodesExplored int                  `json:"nodes_explored"`
	Status        Status               `json:"status"`
}

// Metrics derives distance and walking time from a search result. The distance is
// recomputed from the graph so it does not depend on how the searcher accumulated it.
func Metrics(g *datastructure.Graph, result PathResult, speed float64) (RouteMetrics, error) {
	if speed <= 0 {
		return RouteMetrics{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "walking speed must be positive, got %v", speed)
	}

	m := RouteMetrics{
		Start:         result.Start,
		End:           result.End,
		NodesExplored: result.Explored,
		Status:        result.Status,
	}
	if n, err := g.Node(result.Start); err == nil {
		m.StartName = n.Name
	}
	if n, err := g.Node(result.End); err == nil {
		m.EndName = n.Name
	}

	prev := datastructure.InvalidIndex
	for i, id := range result.Path {
		idx, ok := g.IndexOf(id)
		if !ok {
			return RouteMetrics{}, pkg.WrapErrorf(nil, pkg.ErrMalformedGraphInput, "path step %d: node %d is not in the graph", i, id)
		}
		if prev != datastructure.InvalidIndex {
			w, ok := g.EdgeWeight(prev, idx)
			if !ok {
				return RouteMetrics{}, pkg.WrapErrorf(nil, pkg.ErrMalformedGraphInput,
					"path step %d: nodes %d and %d are not adjacent", i, g.NodeAt(prev).ID, id)
			}
			m.Distance += w
		}
		prev = idx
	}

	m.Time = m.Distance / speed
	return m, nil
}
