package graph_di

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/di/config"
	"github.com/lintang-b-s/campus-route/pkg/geo"
	"github.com/lintang-b-s/campus-route/pkg/kvdb"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Build parses mapFile into a graph source. When poiFile is set its entries
// replace the POIs found in the map.
func Build(ctx context.Context, mapFile, poiFile string, showProgress bool) (datastructure.Source, error) {
	var (
		src     datastructure.Source
		entries []geo.POIEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		src, err = geo.ParseOSM(gctx, mapFile, geo.ParseOptions{ShowProgress: showProgress})
		return err
	})
	if poiFile != "" {
		g.Go(func() error {
			var err error
			entries, err = geo.LoadPOIFile(poiFile)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return datastructure.Source{}, err
	}

	if poiFile != "" {
		pois, err := geo.ResolvePOIEntries(src, entries)
		if err != nil {
			return datastructure.Source{}, err
		}
		src.POIs = pois
	}
	return src, nil
}

// New loads the graph from the snapshot store, building and saving it from the
// configured map file on first use.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, db *kvdb.KVDB) (*datastructure.Graph, error) {
	begin := time.Now()
	src, err := db.LoadSource(cfg.SnapshotName)
	switch {
	case errors.Is(err, kvdb.ErrorsKeyNotExists):
		log.Info("snapshot not found, building graph from map file",
			zap.String("snapshot", cfg.SnapshotName),
			zap.String("map_file", cfg.MapFile),
			zap.String("poi_file", cfg.POIFile))

		src, err = Build(ctx, cfg.MapFile, cfg.POIFile, false)
		if err != nil {
			return nil, err
		}
		if err := db.SaveSource(cfg.SnapshotName, src); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	g, err := datastructure.Load(src)
	if err != nil {
		return nil, err
	}

	log.Info("campus graph loaded",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("locations", g.POIs().Len()),
		zap.Duration("took", time.Since(begin)))
	return g, nil
}
