package geo

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

type OSMWay struct {
	ID      int64
	NodeIDs []int64
	TagMap  map[string]string
}

func NewOSMWay(id int64, nodeIDs []int64, tagMap map[string]string) OSMWay {
	return OSMWay{
		ID:      id,
		NodeIDs: nodeIDs,
		TagMap:  tagMap,
	}
}

type OSMNode struct {
	ID     int64
	Lat    float64
	Lon    float64
	TagMap map[string]string
}

func NewOSMNode(id int64, lat float64, lon float64, tagMap map[string]string) OSMNode {
	return OSMNode{
		ID:     id,
		Lat:    lat,
		Lon:    lon,
		TagMap: tagMap,
	}
}

// poiCandidate is a named feature waiting to be snapped to the walkable network.
type poiCandidate struct {
	osmID int64
	name  string
	lat   float64
	lon   float64
}

type ParseOptions struct {
	// ShowProgress renders a progress bar on stdout.
	ShowProgress bool
}

// NearestNode returns the node closest to (lat, lon). Ties go to the earlier node.
// ok is false when nodes is empty.
func NearestNode(nodes []datastructure.NodeInput, lat, lon float64) (id datastructure.NodeID, dist float64, ok bool) {
	for i, n := range nodes {
		d := HaversineDistance(lat, lon, n.Lat, n.Lon)
		if i == 0 || d < dist {
			id, dist, ok = n.ID, d, true
		}
	}
	return id, dist, ok
}
