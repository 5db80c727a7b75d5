package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/campus-route/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/campus-route/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/campus-route/pkg/http/server"

	_ "github.com/lintang-b-s/campus-route/docs"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the full middleware chain around the API routes.
func (api *API) Handler(
	routeService controllers.RouteService,
	compareService controllers.CompareService,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	group := router_helper.NewRouteGroup(router, "/api")

	routeRoutes := controllers.New(routeService, api.log)
	routeRoutes.Routes(group)

	compareRoutes := controllers.NewCompareAPI(compareService, api.log)
	compareRoutes.Routes(group)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("/healthz"), RequestID, Logger(api.log)).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	routeService controllers.RouteService,
	compareService controllers.CompareService,
) error {
	log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(routeService, compareService), config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
