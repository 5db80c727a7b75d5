package config

import (
	"errors"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	MapFile      string
	POIFile      string
	SnapshotDB   string
	SnapshotName string

	WalkingSpeed float64
	MaxExplored  int

	CompareWorkers  int
	CompareMaxPairs int
	CompareSeed     uint64

	RenderWidth    int
	RenderHeight   int
	GeoJSONNetwork bool
}

func setDefaults() {
	viper.SetDefault("MAP_FILE", "campus.osm")
	viper.SetDefault("POI_FILE", "")
	viper.SetDefault("SNAPSHOT_DB", "campus_route.db")
	viper.SetDefault("SNAPSHOT_NAME", "campus")
	viper.SetDefault("WALKING_SPEED", 84.0)
	viper.SetDefault("MAX_EXPLORED", 0)
	viper.SetDefault("COMPARE_WORKERS", runtime.NumCPU())
	viper.SetDefault("COMPARE_MAX_PAIRS", 200)
	viper.SetDefault("COMPARE_SEED", 42)
	viper.SetDefault("RENDER_WIDTH", 1024)
	viper.SetDefault("RENDER_HEIGHT", 768)
	viper.SetDefault("GEOJSON_NETWORK", false)
}

// New reads config.yaml from the working directory when present. Environment
// variables override file values.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{
		MapFile:         viper.GetString("MAP_FILE"),
		POIFile:         viper.GetString("POI_FILE"),
		SnapshotDB:      viper.GetString("SNAPSHOT_DB"),
		SnapshotName:    viper.GetString("SNAPSHOT_NAME"),
		WalkingSpeed:    viper.GetFloat64("WALKING_SPEED"),
		MaxExplored:     viper.GetInt("MAX_EXPLORED"),
		CompareWorkers:  viper.GetInt("COMPARE_WORKERS"),
		CompareMaxPairs: viper.GetInt("COMPARE_MAX_PAIRS"),
		CompareSeed:     viper.GetUint64("COMPARE_SEED"),
		RenderWidth:     viper.GetInt("RENDER_WIDTH"),
		RenderHeight:    viper.GetInt("RENDER_HEIGHT"),
		GeoJSONNetwork:  viper.GetBool("GEOJSON_NETWORK"),
	}
	if config.WalkingSpeed <= 0 {
		return nil, errors.New("WALKING_SPEED must be positive")
	}
	if config.MaxExplored < 0 {
		return nil, errors.New("MAX_EXPLORED must not be negative")
	}
	return config, nil
}
