package logger_di

import (
	"time"

	"github.com/lintang-b-s/campus-route/pkg/di/config"
	logConfig "github.com/lintang-b-s/campus-route/pkg/logger/config"
	myZap "github.com/lintang-b-s/campus-route/pkg/logger/zap"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the logger. It takes the loaded config so LOG_* keys from
// config.yaml are visible.
func New(_ *config.Config) (*zap.Logger, func(), error) {
	viper.SetDefault("LOG_LEVEL", logConfig.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := logConfig.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, nil, err
	}

	log, err := myZap.New(cfg)

	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
