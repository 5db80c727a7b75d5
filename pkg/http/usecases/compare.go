package usecases

import (
	"context"
	"time"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"go.uber.org/zap"
)

type CompareQuery struct {
	// Algorithms defaults to every algorithm.
	Algorithms []routing.Algorithm
	// MaxPairs caps the number of location pairs. 0 means the service default.
	MaxPairs int
	Seed     *uint64
}

type CompareResult struct {
	Pairs   int                           `json:"pairs"`
	Records []comparator.ComparisonRecord `json:"records"`
	Summary *comparator.Summary           `json:"summary,omitempty"`
}

type CompareService struct {
	log        *zap.Logger
	graph      *datastructure.Graph
	comparator Comparator
	maxPairs   int
	seed       uint64
}

func NewCompareService(log *zap.Logger, g *datastructure.Graph, c Comparator, maxPairs int, seed uint64) *CompareService {
	return &CompareService{
		log:        log,
		graph:      g,
		comparator: c,
		maxPairs:   maxPairs,
		seed:       seed,
	}
}

// Pairs returns every location pair, sampled down to maxPairs when there are more.
func (s *CompareService) Pairs(maxPairs int, seed uint64) []comparator.Pair {
	all := comparator.AllPairs(s.graph)
	if maxPairs <= 0 || len(all) <= maxPairs {
		return all
	}
	return comparator.SamplePairs(s.graph, maxPairs, seed)
}

func (s *CompareService) Compare(ctx context.Context, q CompareQuery) (CompareResult, error) {
	algs := q.Algorithms
	if len(algs) == 0 {
		algs = routing.Algorithms()
	}
	maxPairs := q.MaxPairs
	if maxPairs == 0 {
		maxPairs = s.maxPairs
	}
	seed := s.seed
	if q.Seed != nil {
		seed = *q.Seed
	}

	pairs := s.Pairs(maxPairs, seed)
	if len(pairs) == 0 {
		return CompareResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "at least two registered locations are needed for a comparison")
	}

	begin := time.Now()
	records, err := s.comparator.CompareAll(ctx, s.graph, pairs, algs)
	if err != nil {
		return CompareResult{}, err
	}
	s.log.Info("comparison finished",
		zap.Int("pairs", len(pairs)),
		zap.Int("algorithms", len(algs)),
		zap.Duration("took", time.Since(begin)))

	result := CompareResult{Pairs: len(pairs), Records: records}
	if summary, ok := comparator.Summarize(records); ok {
		result.Summary = &summary
	}
	return result, nil
}
