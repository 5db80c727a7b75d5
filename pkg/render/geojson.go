package render

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const ContentTypeGeoJSON = "application/geo+json"

// GeoJSONRenderer emits a FeatureCollection with the road network
// (layer=network), the route (layer=route) and its endpoints (layer=start, layer=end).
type GeoJSONRenderer struct {
	// IncludeNetwork adds every road segment to the output.
	IncludeNetwork bool
}

func NewGeoJSONRenderer(includeNetwork bool) *GeoJSONRenderer {
	return &GeoJSONRenderer{IncludeNetwork: includeNetwork}
}

func (r *GeoJSONRenderer) Render(g *datastructure.Graph, result routing.PathResult) (routing.Artifact, error) {
	fc, err := r.FeatureCollection(g, result)
	if err != nil {
		return routing.Artifact{}, err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return routing.Artifact{}, err
	}
	return routing.Artifact{ContentType: ContentTypeGeoJSON, Data: data}, nil
}

func (r *GeoJSONRenderer) FeatureCollection(g *datastructure.Graph, result routing.PathResult) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	if r.IncludeNetwork {
		for _, e := range g.Edges() {
			from, to := g.NodeAt(e.From), g.NodeAt(e.To)
			f := geojson.NewFeature(orb.LineString{point(from), point(to)})
			f.Properties["layer"] = "network"
			f.Properties["weight"] = e.Weight
			fc.Append(f)
		}
	}

	coords, err := Coordinates(g, result.Path)
	if err != nil {
		return nil, err
	}
	if len(coords) >= 2 {
		f := geojson.NewFeature(coords)
		f.Properties["layer"] = "route"
		f.Properties["distance"] = result.Distance
		f.Properties["explored"] = result.Explored
		fc.Append(f)
	}

	if start, err := g.Node(result.Start); err == nil {
		fc.Append(endpointFeature("start", start))
	}
	if end, err := g.Node(result.End); err == nil && result.End != result.Start {
		fc.Append(endpointFeature("end", end))
	}
	return fc, nil
}

func endpointFeature(layer string, n datastructure.Node) *geojson.Feature {
	f := geojson.NewFeature(point(n))
	f.Properties["layer"] = layer
	f.Properties["node_id"] = int64(n.ID)
	if n.Name != "" {
		f.Properties["name"] = n.Name
	}
	return f
}

func point(n datastructure.Node) orb.Point {
	return orb.Point{n.Lon, n.Lat}
}

// Coordinates returns the [lon, lat] polyline of a path.
func Coordinates(g *datastructure.Graph, path []datastructure.NodeID) (orb.LineString, error) {
	ls := make(orb.LineString, 0, len(path))
	for _, id := range path {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		ls = append(ls, point(n))
	}
	return ls, nil
}
