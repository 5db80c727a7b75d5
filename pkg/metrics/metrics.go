package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_route_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_route_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// SearchesTotal counts route searches by algorithm and outcome (found, no_path, trivial, exhausted, error).
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_route_searches_total",
			Help: "Total number of route searches",
		},
		[]string{"algorithm", "status"},
	)

	NodesExplored = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_route_nodes_explored",
			Help:    "Nodes expanded per route search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"algorithm"},
	)

	GraphNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campus_route_graph_nodes",
			Help: "Number of nodes in the loaded campus graph",
		},
	)
)
