package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketDiscs = []byte("discs")
)

// BoltStore implements Gateway using BoltDB.
type BoltStore struct {
	db     *bolt.DB
	logger *slog.Logger
	revs   revisions

	mu sync.RWMutex // Protects cache

	// Decoded rows keyed by ID, dropped on every write
	cache map[int64]Row
}

// OpenBolt opens (or creates) a BoltDB file at path.
func OpenBolt(path string, logger *slog.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDiscs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, logger: logger, revs: newRevisions()}, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Keys ===

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// === Reads ===

// ObserveAll streams every row ordered by sort title.
func (s *BoltStore) ObserveAll(ctx context.Context) (<-chan []Row, error) {
	return watch(ctx, s.revs, s.logger, func(context.Context) ([]Row, error) {
		return s.all()
	})
}

// ObserveByID streams a single row, nil while it does not exist.
func (s *BoltStore) ObserveByID(ctx context.Context, id int64) (<-chan *Row, error) {
	return watch(ctx, s.revs, s.logger, func(context.Context) (*Row, error) {
		return s.byID(id)
	})
}

func (s *BoltStore) all() ([]Row, error) {
	if rows, ok := s.cached(); ok {
		return rows, nil
	}

	rev := s.revs.current()
	rows := []Row{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDiscs).ForEach(func(_, v []byte) error {
			var r Row
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("decode row: %w", err)
			}
			rows = append(rows, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TitleSort != rows[j].TitleSort {
			return rows[i].TitleSort < rows[j].TitleSort
		}
		return rows[i].ID < rows[j].ID
	})

	s.mu.Lock()
	if s.revs.current() == rev {
		s.cache = make(map[int64]Row, len(rows))
		for _, r := range rows {
			s.cache[r.ID] = r
		}
	}
	s.mu.Unlock()

	return rows, nil
}

// cached returns the cached rows in order, if the cache is warm
func (s *BoltStore) cached() ([]Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cache == nil {
		return nil, false
	}
	rows := make([]Row, 0, len(s.cache))
	for _, r := range s.cache {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TitleSort != rows[j].TitleSort {
			return rows[i].TitleSort < rows[j].TitleSort
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, true
}

func (s *BoltStore) byID(id int64) (*Row, error) {
	s.mu.RLock()
	if s.cache != nil {
		r, ok := s.cache[id]
		s.mu.RUnlock()
		if !ok {
			return nil, nil
		}
		return &r, nil
	}
	s.mu.RUnlock()

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketDiscs).Get(idKey(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}

	var r Row
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode row %d: %w", id, err)
	}
	return &r, nil
}

// === Writes ===

// Upsert inserts or replaces a row and returns its ID.
func (s *BoltStore) Upsert(ctx context.Context, row Row) (int64, error) {
	var id int64
	err := s.update(func(b *bolt.Bucket) error {
		var err error
		id, err = putRow(b, row)
		return err
	})
	return id, err
}

// InsertBatch inserts rows in one transaction; any failure rolls back all of them.
func (s *BoltStore) InsertBatch(ctx context.Context, rows []Row) error {
	err := s.update(func(b *bolt.Bucket) error {
		for i, row := range rows {
			if _, err := putRow(b, row); err != nil {
				return fmt.Errorf("insert row %d: %w", i, err)
			}
		}
		return nil
	})
	if err == nil {
		s.logger.Debug("inserted disc batch", "count", len(rows))
	}
	return err
}

// DeleteByID removes a row. Deleting a missing row is not an error.
func (s *BoltStore) DeleteByID(ctx context.Context, id int64) error {
	return s.update(func(b *bolt.Bucket) error {
		return b.Delete(idKey(id))
	})
}

// DeleteAll removes every row.
func (s *BoltStore) DeleteAll(ctx context.Context) error {
	return s.update(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// update runs fn in a write transaction, then drops the cache and notifies observers
func (s *BoltStore) update(fn func(b *bolt.Bucket) error) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketDiscs))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = nil
	s.revs.bump()
	s.mu.Unlock()
	return nil
}

func putRow(b *bolt.Bucket, row Row) (int64, error) {
	if err := checkRow(row); err != nil {
		return 0, err
	}
	if row.ID <= 0 {
		seq, err := b.NextSequence()
		if err != nil {
			return 0, err
		}
		row.ID = int64(seq)
	} else if uint64(row.ID) > b.Sequence() {
		// Keep generated IDs ahead of explicitly assigned ones
		if err := b.SetSequence(uint64(row.ID)); err != nil {
			return 0, err
		}
	}

	data, err := json.Marshal(row)
	if err != nil {
		return 0, err
	}
	if err := b.Put(idKey(row.ID), data); err != nil {
		return 0, err
	}
	return row.ID, nil
}
