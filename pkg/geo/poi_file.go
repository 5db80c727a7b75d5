package geo

import (
	"os"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"gopkg.in/yaml.v3"
)

// POIEntry is one line of a POI file. Either NodeID or both Lat and Lon must be set.
type POIEntry struct {
	Name   string   `yaml:"name"`
	NodeID *int64   `yaml:"node_id,omitempty"`
	Lat    *float64 `yaml:"lat,omitempty"`
	Lon    *float64 `yaml:"lon,omitempty"`
}

// LoadPOIFile reads a yaml list of POI entries.
func LoadPOIFile(path string) ([]POIEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrMalformedGraphInput, "error when reading poi file %s", path)
	}

	var entries []POIEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrMalformedGraphInput, "error when decoding poi file %s", path)
	}
	return entries, nil
}

// ResolvePOIEntries maps entries onto nodes of src. Coordinate entries snap to the
// nearest node; node ids are checked later by datastructure.Load.
func ResolvePOIEntries(src datastructure.Source, entries []POIEntry) ([]datastructure.POIInput, error) {
	pois := make([]datastructure.POIInput, 0, len(entries))
	for i, e := range entries {
		switch {
		case e.NodeID != nil:
			pois = append(pois, datastructure.POIInput{Name: e.Name, NodeID: datastructure.NodeID(*e.NodeID)})
		case e.Lat != nil && e.Lon != nil:
			id, _, ok := NearestNode(src.Nodes, *e.Lat, *e.Lon)
			if !ok {
				return nil, pkg.WrapErrorf(nil, pkg.ErrMalformedGraphInput, "poi %q cannot be snapped: graph has no nodes", e.Name)
			}
			pois = append(pois, datastructure.POIInput{Name: e.Name, NodeID: id})
		default:
			return nil, pkg.WrapErrorf(nil, pkg.ErrMalformedGraphInput, "poi entry %d (%q) needs node_id or lat/lon", i, e.Name)
		}
	}
	return pois, nil
}
