package kvdb

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists    = errors.New("key not exists")
	ErrorsSnapshotVersion = errors.New("unsupported snapshot version")
)

const (
	BBOLTDB_BUCKET   = "campusRoute"
	SNAPSHOT_VERSION = 1
)

// snapshot is the stored form of a graph source.
type snapshot struct {
	Version   int                  `msgpack:"v"`
	CreatedAt int64                `msgpack:"created_at"`
	Source    datastructure.Source `msgpack:"source"`
}

// SnapshotInfo describes a stored snapshot without decoding the graph.
type SnapshotInfo struct {
	Name      string
	SizeBytes int
}

// KVDB stores compiled graph sources in bbolt, msgpack encoded and zstd compressed.
type KVDB struct {
	db  *bbolt.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating bucket %s: %w", BBOLTDB_BUCKET, err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db, enc: enc, dec: dec}, nil
}

// SaveSource stores src under name, replacing any previous snapshot.
func (db *KVDB) SaveSource(name string, src datastructure.Source) error {
	buf, err := msgpack.Marshal(&snapshot{
		Version:   SNAPSHOT_VERSION,
		CreatedAt: time.Now().Unix(),
		Source:    src,
	})
	if err != nil {
		return fmt.Errorf("error when marshalling snapshot %s: %w", name, err)
	}
	compressed := db.enc.EncodeAll(buf, make([]byte, 0, len(buf)/2))

	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		return b.Put([]byte(name), compressed)
	})
}

// LoadSource returns the snapshot stored under name or ErrorsKeyNotExists.
func (db *KVDB) LoadSource(name string) (datastructure.Source, error) {
	var compressed []byte
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrorsKeyNotExists
		}
		// v is only valid inside the transaction
		compressed = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return datastructure.Source{}, err
	}

	buf, err := db.dec.DecodeAll(compressed, nil)
	if err != nil {
		return datastructure.Source{}, fmt.Errorf("error when decompressing snapshot %s: %w", name, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(buf, &snap); err != nil {
		return datastructure.Source{}, fmt.Errorf("error when unmarshalling snapshot %s: %w", name, err)
	}
	if snap.Version != SNAPSHOT_VERSION {
		return datastructure.Source{}, fmt.Errorf("%w: %d", ErrorsSnapshotVersion, snap.Version)
	}
	return snap.Source, nil
}

// Snapshots lists stored snapshots ordered by name.
func (db *KVDB) Snapshots() ([]SnapshotInfo, error) {
	infos := []SnapshotInfo{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_BUCKET)).ForEach(func(k, v []byte) error {
			infos = append(infos, SnapshotInfo{Name: string(k), SizeBytes: len(v)})
			return nil
		})
	})
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, err
}

func (db *KVDB) Delete(name string) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_BUCKET)).Delete([]byte(name))
	})
}

// Close releases the codecs. The bbolt handle is owned by the caller.
func (db *KVDB) Close() error {
	db.dec.Close()
	return db.enc.Close()
}
