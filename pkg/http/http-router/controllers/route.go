package controllers

import (
	"net/http"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	helper "github.com/lintang-b-s/campus-route/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/campus-route/pkg/http/usecases"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type routeAPI struct {
	baseAPI
	routeService RouteService
}

func New(routeService RouteService, log *zap.Logger) *routeAPI {
	return &routeAPI{
		baseAPI:      newBaseAPI(log),
		routeService: routeService,
	}
}

func (api *routeAPI) Routes(group *helper.RouteGroup) {
	group.GET("/locations", api.locations)
	group.GET("/locations/:name", api.location)
	group.GET("/algorithms", api.algorithms)
	group.POST("/route", api.route)
	group.POST("/route/map", api.routeMap)
}

// routeRequest model info
//
//	@Description	request body for a route search between two named locations.
type routeRequest struct {
	Start     string `json:"start" validate:"required,max=200"`    // origin location name.
	End       string `json:"end" validate:"required,max=200"`      // destination location name.
	Algorithm string `json:"algorithm" validate:"required,max=50"` // algorithm id (astar, ucs, ...) or display name.
}

func (api *routeAPI) parseRouteRequest(r *http.Request) (routeRequest, routing.Algorithm, error) {
	var request routeRequest
	if err := api.readJSON(r, &request); err != nil {
		return request, 0, err
	}
	alg, err := routing.ParseAlgorithm(request.Algorithm)
	return request, alg, err
}

// routeResponse model info
//
//	@Description	route found by the selected algorithm. status is no_path when the locations are not connected.
type routeResponse struct {
	Data usecases.RouteResult `json:"data"`
}

// route godoc
// @Summary		find a walking route between two campus locations.
// @Description	find a walking route between two campus locations with the selected search algorithm. Returns the path, its coordinates, distance, walking time, explored node count and a GeoJSON map.
// @Tags			route
// @ID route
// @Param			body	body	routeRequest	true	"route request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/route [post]
// @Success		200	{object}	routeResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) route(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request, alg, err := api.parseRouteRequest(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	result, err := api.routeService.Route(request.Start, request.End, alg)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, routeResponse{Data: result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// routeMap godoc
// @Summary		draw a walking route between two campus locations.
// @Description	same search as /api/route, answered with a PNG image of the campus network with the route highlighted.
// @Tags			route
// @ID route-map
// @Param			body	body	routeRequest	true	"route request"
// @Accept			application/json
// @Produce		image/png
// @Router			/api/route/map [post]
// @Success		200	{file}	binary
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) routeMap(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request, alg, err := api.parseRouteRequest(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	artifact, err := api.routeService.RouteMap(request.Start, request.End, alg)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		api.log.Error("failed to write map response", zap.Error(err))
	}
}

type locationsResponse struct {
	Data []datastructure.Location `json:"data"`
}

// locations godoc
// @Summary		list every registered campus location.
// @Tags			locations
// @ID locations
// @Produce		application/json
// @Router			/api/locations [get]
// @Success		200	{object}	locationsResponse
func (api *routeAPI) locations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, locationsResponse{Data: api.routeService.Locations()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type locationResponse struct {
	Data datastructure.Location `json:"data"`
}

// location godoc
// @Summary		look a campus location up by name.
// @Description	names are matched case-insensitively. Unknown names answer 404 with close registered names as suggestions.
// @Tags			locations
// @ID location
// @Param			name	path	string	true	"location name"
// @Produce		application/json
// @Router			/api/locations/{name} [get]
// @Success		200	{object}	locationResponse
// @Failure		404	{object}	errorResponse
func (api *routeAPI) location(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	loc, suggestions, err := api.routeService.Location(ps.ByName("name"))
	if err != nil {
		api.errorResponse(w, r, err, suggestions)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, locationResponse{Data: loc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type algorithmsResponse struct {
	Data []usecases.AlgorithmInfo `json:"data"`
}

// algorithms godoc
// @Summary		list the available search algorithms.
// @Tags			route
// @ID algorithms
// @Produce		application/json
// @Router			/api/algorithms [get]
// @Success		200	{object}	algorithmsResponse
func (api *routeAPI) algorithms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, algorithmsResponse{Data: api.routeService.Algorithms()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
