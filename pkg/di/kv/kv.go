package kv_di

import (
	"time"

	"github.com/lintang-b-s/campus-route/pkg/di/config"
	"github.com/lintang-b-s/campus-route/pkg/kvdb"

	bolt "go.etcd.io/bbolt"
)

func New(cfg *config.Config) (*kvdb.KVDB, func(), error) {
	db, err := bolt.Open(cfg.SnapshotDB, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = bboltKV.Close()
		_ = db.Close()
	}

	return bboltKV, cleanup, nil
}
