// Package heuristic holds remaining-cost estimators for informed search.
// Every estimator returns meters.
package heuristic

import (
	"math"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/geo"
)

// Func estimates the cost of reaching to from from.
type Func func(from, to datastructure.Node) float64

// GreatCircle is the haversine distance. Admissible when edge weights are at least
// the great-circle length of the edge.
func GreatCircle(from, to datastructure.Node) float64 {
	return geo.HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Euclidean is the straight-line distance between the two points. It never exceeds
// GreatCircle.
func Euclidean(from, to datastructure.Node) float64 {
	return geo.ChordDistance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Manhattan is the east plus north grid distance in the tangent plane at to,
// divided by sqrt(2) so it never exceeds Euclidean.
func Manhattan(from, to datastructure.Node) float64 {
	east, north := geo.LocalOffset(from.Lat, from.Lon, to.Lat, to.Lon)
	return (math.Abs(east) + math.Abs(north)) / math.Sqrt2
}

// Combined is the smaller of Euclidean and Manhattan.
func Combined(from, to datastructure.Node) float64 {
	return math.Min(Euclidean(from, to), Manhattan(from, to))
}

// Zero turns A* into uniform-cost search.
func Zero(_, _ datastructure.Node) float64 {
	return 0
}

// WeightedBlend returns w*a + (1-w)*b. w is clamped to [0, 1]. The blend is only
// admissible when both a and b are; blends of inadmissible estimators trade
// optimality for fewer expansions.
func WeightedBlend(w float64, a, b Func) Func {
	w = math.Max(0, math.Min(1, w))
	return func(from, to datastructure.Node) float64 {
		return w*a(from, to) + (1-w)*b(from, to)
	}
}
