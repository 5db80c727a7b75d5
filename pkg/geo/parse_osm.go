package geo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/schollz/progressbar/v3"
)

type osmScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

func newScanner(ctx context.Context, mapfile string, r io.Reader) osmScanner {
	if strings.EqualFold(filepath.Ext(mapfile), ".pbf") {
		return osmpbf.New(ctx, r, 1)
	}
	return osmxml.New(ctx, r)
}

// ParseOSM reads an .osm or .osm.pbf extract and returns the walkable network with
// its named points of interest. Ways are read on the first pass and nodes on the second.
func ParseOSM(ctx context.Context, mapfile string, opts ParseOptions) (datastructure.Source, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return datastructure.Source{}, pkg.WrapErrorf(err, pkg.ErrMalformedGraphInput, "error when opening map file %s", mapfile)
	}
	defer f.Close()

	bar := NewProgressBar(opts.ShowProgress, 4, "[cyan][1/2]Parsing osm objects...")
	bar.Add(1)

	// pass 1: ways
	wayNodesMap := make(map[int64]bool)
	ways := []OSMWay{}
	poiWays := []OSMWay{}

	scanner := newScanner(ctx, mapfile, f)
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		tag := way.TagMap()

		nodeIDs := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodeIDs = append(nodeIDs, int64(node.ID))
		}

		if isWayWalkable(tag) {
			for _, id := range nodeIDs {
				wayNodesMap[id] = true
			}
			ways = append(ways, NewOSMWay(int64(way.ID), nodeIDs, tag))
		}
		if isPOI(tag) {
			for _, id := range nodeIDs {
				wayNodesMap[id] = true
			}
			poiWays = append(poiWays, NewOSMWay(int64(way.ID), nodeIDs, tag))
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return datastructure.Source{}, pkg.WrapErrorf(err, pkg.ErrMalformedGraphInput, "error when scanning osm ways")
	}
	scanner.Close()
	bar.Add(1)

	// pass 2: nodes
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return datastructure.Source{}, err
	}

	nodeCoords := make(map[int64]OSMNode, len(wayNodesMap))
	poiNodes := []OSMNode{}

	scanner = newScanner(ctx, mapfile, f)
	defer scanner.Close()
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		id := int64(node.ID)
		if wayNodesMap[id] {
			nodeCoords[id] = NewOSMNode(id, node.Lat, node.Lon, nil)
		}
		if tag := node.TagMap(); isPOI(tag) {
			poiNodes = append(poiNodes, NewOSMNode(id, node.Lat, node.Lon, tag))
		}
	}
	if err := scanner.Err(); err != nil {
		return datastructure.Source{}, pkg.WrapErrorf(err, pkg.ErrMalformedGraphInput, "error when scanning osm nodes")
	}
	bar.Add(1)

	src := buildWalkableSource(ways, nodeCoords)
	src.POIs = snapPOIs(src.Nodes, collectPOICandidates(poiNodes, poiWays, nodeCoords))
	bar.Add(1)

	return src, nil
}

// buildWalkableSource turns walkable ways into nodes and edges. Ways are processed
// in ascending id order so adjacency order does not depend on the extract layout.
func buildWalkableSource(ways []OSMWay, nodeCoords map[int64]OSMNode) datastructure.Source {
	sort.Slice(ways, func(i, j int) bool {
		return ways[i].ID < ways[j].ID
	})

	used := make(map[int64]bool)
	edges := []datastructure.EdgeInput{}
	for _, way := range ways {
		for i := 0; i+1 < len(way.NodeIDs); i++ {
			from, okFrom := nodeCoords[way.NodeIDs[i]]
			to, okTo := nodeCoords[way.NodeIDs[i+1]]
			if !okFrom || !okTo || from.ID == to.ID {
				// node outside the extract
				continue
			}
			used[from.ID] = true
			used[to.ID] = true
			edges = append(edges, datastructure.EdgeInput{
				From:   datastructure.NodeID(from.ID),
				To:     datastructure.NodeID(to.ID),
				Weight: HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon),
			})
		}
	}

	ids := make([]int64, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	nodes := make([]datastructure.NodeInput, len(ids))
	for i, id := range ids {
		n := nodeCoords[id]
		nodes[i] = datastructure.NodeInput{ID: datastructure.NodeID(id), Lat: n.Lat, Lon: n.Lon}
	}

	return datastructure.Source{Nodes: nodes, Edges: edges}
}

// collectPOICandidates orders named nodes then named ways by osm id.
func collectPOICandidates(poiNodes []OSMNode, poiWays []OSMWay, nodeCoords map[int64]OSMNode) []poiCandidate {
	sort.Slice(poiNodes, func(i, j int) bool {
		return poiNodes[i].ID < poiNodes[j].ID
	})
	sort.Slice(poiWays, func(i, j int) bool {
		return poiWays[i].ID < poiWays[j].ID
	})

	candidates := make([]poiCandidate, 0, len(poiNodes)+len(poiWays))
	for _, node := range poiNodes {
		candidates = append(candidates, poiCandidate{
			osmID: node.ID,
			name:  GetPOIName(node.TagMap),
			lat:   node.Lat,
			lon:   node.Lon,
		})
	}

	for _, way := range poiWays {
		lats, lons := []float64{}, []float64{}
		for _, id := range way.NodeIDs {
			if n, ok := nodeCoords[id]; ok {
				lats = append(lats, n.Lat)
				lons = append(lons, n.Lon)
			}
		}
		if len(lats) == 0 {
			continue
		}
		lat, lon := Centroid(lats, lons)
		candidates = append(candidates, poiCandidate{
			osmID: way.ID,
			name:  GetPOIName(way.TagMap),
			lat:   lat,
			lon:   lon,
		})
	}
	return candidates
}

// snapPOIs attaches every candidate to its nearest walkable node. The first
// candidate for a name wins.
func snapPOIs(nodes []datastructure.NodeInput, candidates []poiCandidate) []datastructure.POIInput {
	pois := []datastructure.POIInput{}
	if len(nodes) == 0 {
		return pois
	}

	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.name] {
			continue
		}
		id, _, ok := NearestNode(nodes, c.lat, c.lon)
		if !ok {
			continue
		}
		seen[c.name] = true
		pois = append(pois, datastructure.POIInput{Name: c.name, NodeID: id})
	}
	return pois
}

func GetPOIName(tag map[string]string) string {
	name := strings.TrimSpace(tag["name"])
	if shortName, ok := tag["short_name"]; ok && name != "" && shortName != "" {
		name = fmt.Sprintf("%s (%s)", name, shortName)
	}
	return name
}

func isWayWalkable(tag map[string]string) bool {
	if !walkableHighways[tag["highway"]] {
		return false
	}
	foot := tag["foot"]
	if foot == "no" {
		return false
	}
	if blockedAccess[tag["access"]] && !allowedFoot[foot] {
		return false
	}
	return true
}

func isPOI(tag map[string]string) bool {
	if GetPOIName(tag) == "" {
		return false
	}
	for k := range tag {
		if ValidPOITags[k] {
			return true
		}
	}
	return false
}

// NewProgressBar returns a coloured bar on stdout, or one writing nowhere when show is false.
func NewProgressBar(show bool, max int, description string) *progressbar.ProgressBar {
	var w io.Writer = io.Discard
	if show {
		w = ansi.NewAnsiStdout()
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
