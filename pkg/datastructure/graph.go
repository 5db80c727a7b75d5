package datastructure

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/campus-route/pkg"
)

type NodeID int64

// Index is the dense position of a node inside a Graph.
type Index int32

const InvalidIndex Index = -1

// Node model info
// @Description road network node. Name is set when the node is a registered point of interest.
type Node struct {
	ID   NodeID  `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

type Arc struct {
	To     Index
	Weight float64 // meters
}

type Neighbor struct {
	ID     NodeID  `json:"id"`
	Weight float64 `json:"weight"`
}

type Edge struct {
	From   Index
	To     Index
	Weight float64
}

type NodeInput struct {
	ID  NodeID  `msgpack:"id" yaml:"id"`
	Lat float64 `msgpack:"lat" yaml:"lat"`
	Lon float64 `msgpack:"lon" yaml:"lon"`
}

type EdgeInput struct {
	From   NodeID  `msgpack:"from"`
	To     NodeID  `msgpack:"to"`
	Weight float64 `msgpack:"w"`
}

type POIInput struct {
	Name   string `msgpack:"name"`
	NodeID NodeID `msgpack:"node"`
}

// Source is the resolved in-memory topology a Graph is built from.
type Source struct {
	Nodes []NodeInput `msgpack:"nodes"`
	Edges []EdgeInput `msgpack:"edges"`
	POIs  []POIInput  `msgpack:"pois"`
}

// Graph is an undirected weighted road network. It is read-only after Load
// and safe for concurrent readers.
type Graph struct {
	nodes []Node
	index map[NodeID]Index
	adj   [][]Arc
	edges []Edge
	pois  *POIRegistry
}

// Load builds the adjacency lists and the POI registry. Any structural
// violation aborts the whole build.
func Load(src Source) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, 0, len(src.Nodes)),
		index: make(map[NodeID]Index, len(src.Nodes)),
		edges: make([]Edge, 0, len(src.Edges)),
	}

	for _, n := range src.Nodes {
		if _, ok := g.index[n.ID]; ok {
			return nil, malformed("duplicate node %d", n.ID)
		}
		if !isFinite(n.Lat) || !isFinite(n.Lon) || math.Abs(n.Lat) > 90 || math.Abs(n.Lon) > 180 {
			return nil, malformed("node %d has invalid coordinate (%v, %v)", n.ID, n.Lat, n.Lon)
		}
		g.index[n.ID] = Index(len(g.nodes))
		g.nodes = append(g.nodes, Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon})
	}

	g.adj = make([][]Arc, len(g.nodes))
	for i, e := range src.Edges {
		u, ok := g.index[e.From]
		if !ok {
			return nil, malformed("edge %d references unknown node %d", i, e.From)
		}
		v, ok := g.index[e.To]
		if !ok {
			return nil, malformed("edge %d references unknown node %d", i, e.To)
		}
		if !isFinite(e.Weight) || e.Weight < 0 {
			return nil, malformed("edge %d (%d-%d) has invalid weight %v", i, e.From, e.To, e.Weight)
		}

		g.adj[u] = append(g.adj[u], Arc{To: v, Weight: e.Weight})
		if u != v {
			g.adj[v] = append(g.adj[v], Arc{To: u, Weight: e.Weight})
		}
		g.edges = append(g.edges, Edge{From: u, To: v, Weight: e.Weight})
	}

	pois, err := NewPOIRegistry(src.POIs, func(id NodeID) bool {
		_, ok := g.index[id]
		return ok
	})
	if err != nil {
		return nil, err
	}
	g.pois = pois
	for _, poi := range src.POIs {
		if n := &g.nodes[g.index[poi.NodeID]]; n.Name == "" {
			n.Name = poi.Name
		}
	}

	return g, nil
}

func malformed(format string, a ...interface{}) error {
	return pkg.WrapErrorf(nil, pkg.ErrMalformedGraphInput, "malformed graph input: "+format, a...)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// IndexOf returns the dense index of id.
func (g *Graph) IndexOf(id NodeID) (Index, bool) {
	idx, ok := g.index[id]
	if !ok {
		return InvalidIndex, false
	}
	return idx, true
}

func (g *Graph) NodeAt(idx Index) Node {
	return g.nodes[idx]
}

func (g *Graph) Node(id NodeID) (Node, error) {
	idx, ok := g.index[id]
	if !ok {
		return Node{}, pkg.WrapErrorf(nil, pkg.ErrUnknownLocation, "node %d is not in the graph", id)
	}
	return g.nodes[idx], nil
}

// Arcs returns the adjacency list of idx. Callers must not modify it.
func (g *Graph) Arcs(idx Index) []Arc {
	return g.adj[idx]
}

// Neighbors returns the neighbors of id in stable input order.
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	idx, ok := g.index[id]
	if !ok {
		return nil, pkg.WrapErrorf(nil, pkg.ErrUnknownLocation, "node %d is not in the graph", id)
	}
	neighbors := make([]Neighbor, len(g.adj[idx]))
	for i, arc := range g.adj[idx] {
		neighbors[i] = Neighbor{ID: g.nodes[arc.To].ID, Weight: arc.Weight}
	}
	return neighbors, nil
}

// EdgeWeight returns the lightest arc weight between a and b.
func (g *Graph) EdgeWeight(a, b Index) (float64, bool) {
	best, found := math.Inf(1), false
	for _, arc := range g.adj[a] {
		if arc.To == b && arc.Weight < best {
			best, found = arc.Weight, true
		}
	}
	return best, found
}

// Edges returns every undirected edge once, in input order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) POIs() *POIRegistry {
	return g.pois
}

// Resolve maps a POI name to its node.
func (g *Graph) Resolve(name string) (NodeID, error) {
	return g.pois.Resolve(name)
}

// Location model info
// @Description a registered point of interest.
type Location struct {
	Name   string  `json:"name"`
	NodeID NodeID  `json:"node_id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// POINames returns every registered POI name in sorted order.
func (g *Graph) POINames() []string {
	return g.pois.Names()
}

// Suggest returns registered names close to name, for "did you mean" replies.
func (g *Graph) Suggest(name string, maxEdits int) ([]string, error) {
	return g.pois.Suggest(name, maxEdits)
}

func (g *Graph) Location(name string) (Location, error) {
	id, err := g.pois.Resolve(name)
	if err != nil {
		return Location{}, err
	}
	n := g.nodes[g.index[id]]
	return Location{Name: g.pois.DisplayName(name), NodeID: id, Lat: n.Lat, Lon: n.Lon}, nil
}

// Locations returns every POI ordered by name.
func (g *Graph) Locations() []Location {
	locations := make([]Location, 0, g.pois.Len())
	g.pois.Scan(func(name string, id NodeID) bool {
		n := g.nodes[g.index[id]]
		locations = append(locations, Location{Name: name, NodeID: id, Lat: n.Lat, Lon: n.Lon})
		return true
	})
	return locations
}

// Source converts the graph back into its input form.
func (g *Graph) Source() Source {
	src := Source{
		Nodes: make([]NodeInput, len(g.nodes)),
		Edges: make([]EdgeInput, len(g.edges)),
		POIs:  make([]POIInput, 0, g.pois.Len()),
	}
	for i, n := range g.nodes {
		src.Nodes[i] = NodeInput{ID: n.ID, Lat: n.Lat, Lon: n.Lon}
	}
	for i, e := range g.edges {
		src.Edges[i] = EdgeInput{From: g.nodes[e.From].ID, To: g.nodes[e.To].ID, Weight: e.Weight}
	}
	g.pois.Scan(func(name string, id NodeID) bool {
		src.POIs = append(src.POIs, POIInput{Name: name, NodeID: id})
		return true
	})
	return src
}

type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Bounds returns the bounding box of every node. An empty graph yields the zero box.
func (g *Graph) Bounds() Bounds {
	if len(g.nodes) == 0 {
		return Bounds{}
	}
	b := Bounds{MinLat: g.nodes[0].Lat, MinLon: g.nodes[0].Lon, MaxLat: g.nodes[0].Lat, MaxLon: g.nodes[0].Lon}
	for _, n := range g.nodes[1:] {
		b.MinLat = math.Min(b.MinLat, n.Lat)
		b.MaxLat = math.Max(b.MaxLat, n.Lat)
		b.MinLon = math.Min(b.MinLon, n.Lon)
		b.MaxLon = math.Max(b.MaxLon, n.Lon)
	}
	return b
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph{nodes: %d, edges: %d, pois: %d}", len(g.nodes), len(g.edges), g.pois.Len())
}
