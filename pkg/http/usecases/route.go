package usecases

import (
	"encoding/json"
	"errors"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/render"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

const MAX_SUGGESTIONS = 5

// RouteResult is a route ready to be sent to a client.
type RouteResult struct {
	Algorithm   routing.Algorithm      `json:"algorithm"`
	Status      routing.Status         `json:"status"`
	Path        []datastructure.NodeID `json:"path"`
	Coordinates orb.LineString         `json:"coordinates"`
	Metrics     routing.RouteMetrics   `json:"metrics"`
	Map         json.RawMessage        `json:"map,omitempty"`
}

type AlgorithmInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RouteService struct {
	log         *zap.Logger
	engine      Engine
	mapRenderer routing.Renderer
}

// New builds the route service. mapRenderer draws the images served by RouteMap.
func New(log *zap.Logger, engine Engine, mapRenderer routing.Renderer) *RouteService {
	return &RouteService{
		log:         log,
		engine:      engine,
		mapRenderer: mapRenderer,
	}
}

func (s *RouteService) Route(startName, endName string, alg routing.Algorithm) (RouteResult, error) {
	route, err := s.engine.Route(startName, endName, alg)
	if err != nil {
		return RouteResult{}, err
	}

	coords, err := render.Coordinates(s.engine.Graph(), route.Result.Path)
	if err != nil {
		return RouteResult{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "error when building route coordinates")
	}

	result := RouteResult{
		Algorithm:   alg,
		Status:      route.Result.Status,
		Path:        route.Result.Path,
		Coordinates: coords,
		Metrics:     route.Metrics,
	}
	if route.Artifact != nil && route.Artifact.ContentType == render.ContentTypeGeoJSON {
		result.Map = json.RawMessage(route.Artifact.Data)
	}

	s.log.Info("route served",
		zap.String("start", startName),
		zap.String("end", endName),
		zap.String("algorithm", alg.String()),
		zap.String("status", route.Result.Status.String()),
		zap.Float64("distance_m", route.Metrics.Distance))
	return result, nil
}

// RouteMap searches like Route and returns the route drawn by the map renderer.
func (s *RouteService) RouteMap(startName, endName string, alg routing.Algorithm) (routing.Artifact, error) {
	if s.mapRenderer == nil {
		return routing.Artifact{}, pkg.WrapErrorf(nil, pkg.ErrNotFound, "map rendering is not configured")
	}
	route, err := s.engine.Route(startName, endName, alg)
	if err != nil {
		return routing.Artifact{}, err
	}

	artifact, err := s.mapRenderer.Render(s.engine.Graph(), route.Result)
	if err != nil {
		return routing.Artifact{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "error when rendering route map")
	}
	return artifact, nil
}

// Location looks a name up. When it is unknown the returned suggestions list
// registered names close to it.
func (s *RouteService) Location(name string) (datastructure.Location, []string, error) {
	loc, err := s.engine.Location(name)
	if errors.Is(err, pkg.ErrUnknownLocation) {
		return datastructure.Location{}, s.engine.Suggest(name, MAX_SUGGESTIONS), err
	}
	return loc, nil, err
}

func (s *RouteService) Locations() []datastructure.Location {
	return s.engine.Locations()
}

func (s *RouteService) Algorithms() []AlgorithmInfo {
	algs := routing.Algorithms()
	infos := make([]AlgorithmInfo, 0, len(algs))
	for _, a := range algs {
		infos = append(infos, AlgorithmInfo{ID: a.ID(), Name: a.String()})
	}
	return infos
}
