package engine_di

import (
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/di/config"
	"github.com/lintang-b-s/campus-route/pkg/render"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger, g *datastructure.Graph) (*routing.Engine, error) {
	return routing.NewEngine(g, routing.EngineOptions{
		Search:       routing.Options{MaxExplored: cfg.MaxExplored},
		WalkingSpeed: cfg.WalkingSpeed,
		Renderer:     render.NewGeoJSONRenderer(cfg.GeoJSONNetwork),
	}, log)
}
