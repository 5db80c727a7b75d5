package routing

import (
	"errors"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/metrics"

	"go.uber.org/zap"
)

type EngineOptions struct {
	Search Options
	// WalkingSpeed in meters per minute. 0 means DefaultWalkingSpeed.
	WalkingSpeed float64
	// Renderer is optional. When set every Route carries an Artifact.
	Renderer Renderer
}

// Route is the bundle returned for a named origin/destination query.
type Route struct {
	Algorithm Algorithm
	Result    PathResult
	Metrics   RouteMetrics
	Artifact  *Artifact
}

// Engine answers route queries against one immutable graph.
type Engine struct {
	graph     *datastructure.Graph
	opts      EngineOptions
	searchers map[Algorithm]Searcher
	log       *zap.Logger
}

func NewEngine(g *datastructure.Graph, opts EngineOptions, log *zap.Logger) (*Engine, error) {
	if opts.WalkingSpeed == 0 {
		opts.WalkingSpeed = DefaultWalkingSpeed
	}
	if opts.WalkingSpeed < 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "walking speed must be positive, got %v", opts.WalkingSpeed)
	}
	if log == nil {
		log = zap.NewNop()
	}

	searchers := make(map[Algorithm]Searcher, len(Algorithms()))
	for _, alg := range Algorithms() {
		s, err := NewSearcher(alg, opts.Search)
		if err != nil {
			return nil, err
		}
		searchers[alg] = s
	}

	metrics.GraphNodes.Set(float64(g.NodeCount()))
	return &Engine{graph: g, opts: opts, searchers: searchers, log: log}, nil
}

func (e *Engine) Graph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) WalkingSpeed() float64 {
	return e.opts.WalkingSpeed
}

// Search runs alg between two node ids.
func (e *Engine) Search(start, end datastructure.NodeID, alg Algorithm) (PathResult, error) {
	s, ok := e.searchers[alg]
	if !ok {
		return PathResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown algorithm %d", int(alg))
	}

	result, err := s.Search(e.graph, start, end)

	status := result.Status.String()
	switch {
	case errors.Is(err, pkg.ErrSearchExhausted):
		status = "exhausted"
	case err != nil:
		status = "error"
	}
	metrics.SearchesTotal.WithLabelValues(alg.ID(), status).Inc()
	if err == nil || errors.Is(err, pkg.ErrSearchExhausted) {
		metrics.NodesExplored.WithLabelValues(alg.ID()).Observe(float64(result.Explored))
	}

	e.log.Debug("search finished",
		zap.String("algorithm", alg.String()),
		zap.Int64("start", int64(start)),
		zap.Int64("end", int64(end)),
		zap.String("status", status),
		zap.Int("explored", result.Explored),
		zap.Float64("distance", result.Distance))

	return result, err
}

// Route resolves both names, searches with alg, and derives metrics. NoPath is
// reported through Result.Status, not as an error.
func (e *Engine) Route(startName, endName string, alg Algorithm) (Route, error) {
	start, err := e.graph.Resolve(startName)
	if err != nil {
		return Route{}, err
	}
	end, err := e.graph.Resolve(endName)
	if err != nil {
		return Route{}, err
	}

	result, err := e.Search(start, end, alg)
	if err != nil {
		return Route{Algorithm: alg, Result: result}, err
	}

	m, err := Metrics(e.graph, result, e.opts.WalkingSpeed)
	if err != nil {
		return Route{}, err
	}
	m.StartName = e.graph.POIs().DisplayName(startName)
	m.EndName = e.graph.POIs().DisplayName(endName)

	route := Route{Algorithm: alg, Result: result, Metrics: m}
	if e.opts.Renderer != nil {
		artifact, err := e.opts.Renderer.Render(e.graph, result)
		if err != nil {
			return Route{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "error when rendering route")
		}
		route.Artifact = &artifact
	}
	return route, nil
}

func (e *Engine) Location(name string) (datastructure.Location, error) {
	return e.graph.Location(name)
}

func (e *Engine) Locations() []datastructure.Location {
	return e.graph.Locations()
}

// Suggest returns up to limit registered names close to name.
func (e *Engine) Suggest(name string, limit int) []string {
	suggestions, err := e.graph.Suggest(name, datastructure.MAX_SUGGEST_EDIT_DISTANCE)
	if err != nil {
		e.log.Warn("error when building suggestions", zap.String("name", name), zap.Error(err))
		return []string{}
	}
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
