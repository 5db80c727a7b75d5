package comparator_di

import (
	"github.com/lintang-b-s/campus-route/pkg/comparator"
	"github.com/lintang-b-s/campus-route/pkg/di/config"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger) *comparator.Comparator {
	return comparator.New(comparator.Options{
		Workers:      cfg.CompareWorkers,
		Search:       routing.Options{MaxExplored: cfg.MaxExplored},
		WalkingSpeed: cfg.WalkingSpeed,
	}, log)
}
