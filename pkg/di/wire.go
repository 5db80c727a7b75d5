//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	comparator_di "github.com/lintang-b-s/campus-route/pkg/di/comparator"
	"github.com/lintang-b-s/campus-route/pkg/di/config"
	shortcontext "github.com/lintang-b-s/campus-route/pkg/di/context"
	engine_di "github.com/lintang-b-s/campus-route/pkg/di/engine"
	graph_di "github.com/lintang-b-s/campus-route/pkg/di/graph"
	kv_di "github.com/lintang-b-s/campus-route/pkg/di/kv"
	logger_di "github.com/lintang-b-s/campus-route/pkg/di/logger"
	routeHttp "github.com/lintang-b-s/campus-route/pkg/http"
	"github.com/lintang-b-s/campus-route/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/campus-route/pkg/http/usecases"
	"github.com/lintang-b-s/campus-route/pkg/render"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	graph_di.New,
)

var routeSet = wire.NewSet(
	defaultSet,
	engine_di.New,
	comparator_di.New,
	NewRouteService,
	NewCompareService,
	NewRouteAPIServer,
)

func NewRouteService(cfg *config.Config, log *zap.Logger, engine *routing.Engine) controllers.RouteService {
	return usecases.New(log, engine, render.NewPNGRenderer(cfg.RenderWidth, cfg.RenderHeight))
}

func NewCompareService(cfg *config.Config, log *zap.Logger, g *datastructure.Graph,
	c *comparator.Comparator) controllers.CompareService {
	return usecases.NewCompareService(log, g, c, cfg.CompareMaxPairs, cfg.CompareSeed)
}

func NewRouteAPIServer(ctx context.Context, log *zap.Logger,
	routeService controllers.RouteService, compareService controllers.CompareService) (*routeHttp.Server, error) {
	api := routeHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, routeService, compareService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeRouteService() (*routeHttp.Server, func(), error) {

	panic(wire.Build(routeSet))
}
