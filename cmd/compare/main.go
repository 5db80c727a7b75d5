package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	graph_di "github.com/lintang-b-s/campus-route/pkg/di/graph"
	"github.com/lintang-b-s/campus-route/pkg/geo"
	"github.com/lintang-b-s/campus-route/pkg/kvdb"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	bolt "go.etcd.io/bbolt"
)

var (
	dbFile      = flag.String("db", "campus_route.db", "bbolt snapshot database")
	name        = flag.String("name", "campus", "snapshot name")
	mapFile     = flag.String("f", "", "openstreetmap file used when the snapshot does not exist")
	poiFile     = flag.String("poi", "", "optional yaml file with campus locations")
	algorithms  = flag.String("algorithms", "", "comma separated algorithm ids, every algorithm when empty")
	maxPairs    = flag.Int("max-pairs", 200, "cap on location pairs, 0 for every pair")
	seed        = flag.Uint64("seed", 42, "sampling seed used when pairs are capped")
	workers     = flag.Int("workers", 0, "search goroutines, 0 for one per cpu")
	maxExplored = flag.Int("max-explored", 0, "exploration cap per search, 0 for none")
	speed       = flag.Float64("speed", routing.DefaultWalkingSpeed, "walking speed in meters per minute")
	output      = flag.String("o", "", "write the records as json to this file")
)

func loadGraph(ctx context.Context) (*datastructure.Graph, error) {
	db, err := bolt.Open(*dbFile, 0600, nil)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	store, err := kvdb.NewKVDB(db)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	src, err := store.LoadSource(*name)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) && *mapFile != "" {
		src, err = graph_di.Build(ctx, *mapFile, *poiFile, true)
		fmt.Println()
	}
	if err != nil {
		return nil, err
	}
	return datastructure.Load(src)
}

func parseAlgorithms(s string) ([]routing.Algorithm, error) {
	if strings.TrimSpace(s) == "" {
		return routing.Algorithms(), nil
	}
	algs := []routing.Algorithm{}
	for _, part := range strings.Split(s, ",") {
		alg, err := routing.ParseAlgorithm(part)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	algs, err := parseAlgorithms(*algorithms)
	if err != nil {
		log.Fatal(err)
	}

	g, err := loadGraph(ctx)
	if err != nil {
		log.Fatal(err)
	}

	pairs := comparator.SamplePairs(g, *maxPairs, *seed)
	if len(pairs) == 0 {
		log.Fatal("at least two locations are needed for a comparison")
	}

	bar := geo.NewProgressBar(true, len(pairs)*len(algs),
		fmt.Sprintf("[cyan]Comparing %d algorithms on %d pairs...", len(algs), len(pairs)))
	c := comparator.New(comparator.Options{
		Workers:      *workers,
		Search:       routing.Options{MaxExplored: *maxExplored},
		WalkingSpeed: *speed,
		Progress: func(done, _ int) {
			_ = bar.Set(done)
		},
	}, nil)

	records, err := c.CompareAll(ctx, g, pairs, algs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tavg distance (m)\tavg time (min)\tavg explored\truns\tfound\tno path\texhausted")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%.1f\t%d\t%d\t%d\t%d\n", r.Algorithm, r.AvgDistance, r.AvgTime,
			r.AvgNodesExplored, r.Runs, r.Successes, r.Failures, r.Exhausted)
	}
	_ = tw.Flush()

	if summary, ok := comparator.Summarize(records); ok {
		fmt.Printf("\nshortest paths: %s\nmost efficient: %s\nmost thorough: %s\n",
			summary.ShortestPath, summary.MostEfficient, summary.MostThorough)
	}

	if *output != "" {
		js, err := json.MarshalIndent(records, "", "\t")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*output, js, 0644); err != nil {
			log.Fatal(err)
		}
	}
}
