package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketEvents     = []byte("events")       // sequence key -> event JSON
	bucketEventIndex = []byte("events_index") // client_event_id -> sequence key
	bucketFiles      = []byte("files")        // sequence key -> file JSON
	bucketFileIndex  = []byte("files_index")  // file id -> sequence key
	bucketMeta       = []byte("meta")
)

// Storage represents BoltDB storage implementation for the vendor terminal.
// Events are keyed by a monotonic bucket sequence so that iteration order
// is insertion order; an index bucket maps ids to sequence keys.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketEvents, bucketEventIndex, bucketFiles, bucketFileIndex, bucketMeta}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// itob кодирует sequence number в big-endian ключ, сохраняющий порядок вставки
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
