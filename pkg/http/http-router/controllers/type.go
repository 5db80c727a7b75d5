package controllers

import (
	"context"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/http/usecases"
	"github.com/lintang-b-s/campus-route/pkg/routing"
)

type RouteService interface {
	Route(startName, endName string, alg routing.Algorithm) (usecases.RouteResult, error)
	RouteMap(startName, endName string, alg routing.Algorithm) (routing.Artifact, error)
	Location(name string) (datastructure.Location, []string, error)
	Locations() []datastructure.Location
	Algorithms() []usecases.AlgorithmInfo
}

type CompareService interface {
	Compare(ctx context.Context, q usecases.CompareQuery) (usecases.CompareResult, error)
}
