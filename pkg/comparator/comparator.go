package comparator

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/concurrent"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// ComparisonRecord model info
// @Description averages of one algorithm over the compared pairs. Runs that found no
// @Description path or hit the exploration cap are counted but left out of the averages.
type ComparisonRecord struct {
	Algorithm        routing.Algorithm `json:"algorithm"`
	AvgDistance      float64           `json:"avg_distance_m"`
	AvgTime          float64           `json:"avg_time_min"`
	AvgNodesExplored float64           `json:"avg_nodes_explored"`
	Runs             int               `json:"runs"`
	Successes        int               `json:"successes"`
	Failures         int               `json:"failures"`
	Exhausted        int               `json:"exhausted"`
}

// ProgressFunc is told how many of total jobs have finished. Calls are serialized.
type ProgressFunc func(done, total int)

type Options struct {
	// Workers is the number of goroutines running searches. 0 means runtime.NumCPU().
	Workers int
	Search  routing.Options
	// WalkingSpeed in meters per minute. 0 means routing.DefaultWalkingSpeed.
	WalkingSpeed float64
	Progress     ProgressFunc
}

type Comparator struct {
	opts Options
	log  *zap.Logger
}

func New(opts Options, log *zap.Logger) *Comparator {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.WalkingSpeed <= 0 {
		opts.WalkingSpeed = routing.DefaultWalkingSpeed
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Comparator{opts: opts, log: log}
}

// CompareAll runs every algorithm on every pair with default options.
func CompareAll(ctx context.Context, g *datastructure.Graph, pairs []Pair, algorithms []routing.Algorithm) ([]ComparisonRecord, error) {
	return New(Options{}, nil).CompareAll(ctx, g, pairs, algorithms)
}

type job struct {
	slot       int
	searcher   routing.Searcher
	start, end datastructure.NodeID
}

type outcome struct {
	metrics   routing.RouteMetrics
	noPath    bool
	exhausted bool
	err       error
}

// CompareAll runs every algorithm on every pair and returns one record per
// algorithm in the order given. Output does not depend on the number of workers.
func (c *Comparator) CompareAll(ctx context.Context, g *datastructure.Graph, pairs []Pair,
	algorithms []routing.Algorithm) ([]ComparisonRecord, error) {
	searchers := make([]routing.Searcher, len(algorithms))
	for i, alg := range algorithms {
		s, err := routing.NewSearcher(alg, c.opts.Search)
		if err != nil {
			return nil, err
		}
		searchers[i] = s
	}

	type endpoints struct{ start, end datastructure.NodeID }
	resolved := make([]endpoints, len(pairs))
	for i, p := range pairs {
		start, err := g.Resolve(p.From)
		if err != nil {
			return nil, err
		}
		end, err := g.Resolve(p.To)
		if err != nil {
			return nil, err
		}
		resolved[i] = endpoints{start: start, end: end}
	}

	total := len(algorithms) * len(pairs)
	outcomes := make([]outcome, total)

	var progressMu sync.Mutex
	done := 0

	worker := concurrent.NewBackgroundWorker(c.opts.Workers, c.opts.Workers*2,
		func(j job) outcome {
			return c.run(g, j)
		},
		func(j job, o outcome) {
			outcomes[j.slot] = o
			if c.opts.Progress == nil {
				return
			}
			progressMu.Lock()
			done++
			c.opts.Progress(done, total)
			progressMu.Unlock()
		})
	worker.Start(ctx)

	var dispatchErr error
dispatch:
	for a := range algorithms {
		for p, e := range resolved {
			j := job{slot: a*len(pairs) + p, searcher: searchers[a], start: e.start, end: e.end}
			if err := worker.TriggerProcessing(ctx, j); err != nil {
				dispatchErr = err
				break dispatch
			}
		}
	}
	worker.Close()

	if dispatchErr != nil {
		return nil, dispatchErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]ComparisonRecord, len(algorithms))
	for a, alg := range algorithms {
		rec, err := aggregate(alg, outcomes[a*len(pairs):(a+1)*len(pairs)])
		if err != nil {
			return nil, err
		}
		records[a] = rec
	}

	c.log.Info("comparison finished",
		zap.Int("algorithms", len(algorithms)),
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", c.opts.Workers))
	return records, nil
}

func (c *Comparator) run(g *datastructure.Graph, j job) outcome {
	result, err := j.searcher.Search(g, j.start, j.end)
	if errors.Is(err, pkg.ErrSearchExhausted) {
		return outcome{exhausted: true}
	}
	if err != nil {
		return outcome{err: err}
	}
	if errors.Is(result.Err(), pkg.ErrNoPathFound) {
		return outcome{noPath: true, metrics: routing.RouteMetrics{NodesExplored: result.Explored}}
	}

	m, err := routing.Metrics(g, result, c.opts.WalkingSpeed)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{metrics: m}
}

// aggregate walks outcomes in pair order so floating point sums are reproducible.
func aggregate(alg routing.Algorithm, outcomes []outcome) (ComparisonRecord, error) {
	rec := ComparisonRecord{Algorithm: alg, Runs: len(outcomes)}

	distances := make([]float64, 0, len(outcomes))
	times := make([]float64, 0, len(outcomes))
	explored := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			return ComparisonRecord{}, pkg.WrapErrorf(o.err, pkg.ErrInternalServerError, "error when comparing %s", alg)
		case o.exhausted:
			rec.Exhausted++
		case o.noPath:
			rec.Failures++
		default:
			rec.Successes++
			distances = append(distances, o.metrics.Distance)
			times = append(times, o.metrics.Time)
			explored = append(explored, float64(o.metrics.NodesExplored))
		}
	}

	if rec.Successes > 0 {
		rec.AvgDistance = stat.Mean(distances, nil)
		rec.AvgTime = stat.Mean(times, nil)
		rec.AvgNodesExplored = stat.Mean(explored, nil)
	}
	return rec, nil
}
