package routing

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

// Artifact is a rendered route. The engine never looks inside Data.
type Artifact struct {
	ContentType string
	Data        []byte
}

// Renderer draws a search result on top of the road network.
type Renderer interface {
	Render(g *datastructure.Graph, result PathResult) (Artifact, error)
}
