package usecases

import (
	"context"

	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"
)

type Engine interface {
	Graph() *datastructure.Graph
	Route(startName, endName string, alg routing.Algorithm) (routing.Route, error)
	Location(name string) (datastructure.Location, error)
	Locations() []datastructure.Location
	Suggest(name string, limit int) []string
}

type Comparator interface {
	CompareAll(ctx context.Context, g *datastructure.Graph, pairs []comparator.Pair,
		algorithms []routing.Algorithm) ([]comparator.ComparisonRecord, error)
}
