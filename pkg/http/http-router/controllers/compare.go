package controllers

import (
	"net/http"

	helper "github.com/lintang-b-s/campus-route/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/campus-route/pkg/http/usecases"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type compareAPI struct {
	baseAPI
	compareService CompareService
}

func NewCompareAPI(compareService CompareService, log *zap.Logger) *compareAPI {
	return &compareAPI{
		baseAPI:        newBaseAPI(log),
		compareService: compareService,
	}
}

func (api *compareAPI) Routes(group *helper.RouteGroup) {
	group.POST("/compare", api.compare)
}

// compareRequest model info
//
//	@Description	request body for comparing search algorithms over pairs of campus locations.
type compareRequest struct {
	Algorithms []string `json:"algorithms" validate:"omitempty,max=16,dive,required"` // algorithms to compare, every algorithm when empty.
	MaxPairs   int      `json:"max_pairs" validate:"min=0,max=100000"`                // cap on the number of location pairs, server default when 0.
	Seed       *uint64  `json:"seed"`                                                 // sampling seed used when pairs are capped.
}

type compareResponse struct {
	Data usecases.CompareResult `json:"data"`
}

// compare godoc
// @Summary		compare search algorithms over pairs of campus locations.
// @Description	runs every requested algorithm on every location pair and reports average distance, walking time and explored nodes per algorithm.
// @Tags			compare
// @ID compare
// @Param			body	body	compareRequest	true	"compare request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/compare [post]
// @Success		200	{object}	compareResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *compareAPI) compare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request compareRequest
	if err := api.readJSON(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	algs := make([]routing.Algorithm, 0, len(request.Algorithms))
	for _, name := range request.Algorithms {
		alg, err := routing.ParseAlgorithm(name)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
		algs = append(algs, alg)
	}

	result, err := api.compareService.Compare(r.Context(), usecases.CompareQuery{
		Algorithms: algs,
		MaxPairs:   request.MaxPairs,
		Seed:       request.Seed,
	})
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, compareResponse{Data: result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
