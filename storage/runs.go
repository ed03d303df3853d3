// Package storage persists census runs to a local bbolt database so
// later runs can show deltas and `azcensus history` can list them.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/yairfalse/azcensus/types"
)

// Bucket names in bbolt
var (
	bucketRuns = []byte("runs")
	bucketMeta = []byte("meta")
)

var keyCurrentSeq = []byte("current_seq")

// RunStore is an append-only history of census runs.
type RunStore struct {
	mu sync.Mutex

	db *bbolt.DB

	// Sequence number of the most recent run
	currentSeq uint64
}

// StoredRun pairs a run with its store sequence number.
type StoredRun struct {
	Seq uint64    `json:"seq"`
	Run types.Run `json:"run"`
}

// Open opens (or creates) the run store at path.
func Open(path string) (*RunStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketRuns, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &RunStore{db: db}
	store.loadSeq()

	return store, nil
}

// Close closes the store
func (s *RunStore) Close() error {
	return s.db.Close()
}

// SaveRun appends a run and returns its sequence number.
func (s *RunStore) SaveRun(run *types.Run) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentSeq++
	seq := s.currentSeq

	err := s.db.Update(func(tx *bbolt.Tx) error {
		value, err := json.Marshal(run)
		if err != nil {
			return err
		}

		bucket := tx.Bucket(bucketRuns)
		if err := bucket.Put(uint64ToBytes(seq), value); err != nil {
			return err
		}

		metaBucket := tx.Bucket(bucketMeta)
		return metaBucket.Put(keyCurrentSeq, uint64ToBytes(seq))
	})
	if err != nil {
		s.currentSeq--
		return 0, err
	}

	return seq, nil
}

// LastRun returns the most recent run, or nil when the store is empty.
func (s *RunStore) LastRun() (*types.Run, error) {
	var run *types.Run

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketRuns).Cursor()
		_, value := cursor.Last()
		if value == nil {
			return nil
		}

		run = &types.Run{}
		return json.Unmarshal(value, run)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load last run: %w", err)
	}

	return run, nil
}

// ListRuns returns up to limit runs, most recent first. A limit of 0
// returns everything.
func (s *RunStore) ListRuns(limit int) ([]StoredRun, error) {
	var runs []StoredRun

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketRuns).Cursor()
		for key, value := cursor.Last(); key != nil; key, value = cursor.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}

			var run types.Run
			if err := json.Unmarshal(value, &run); err != nil {
				return err
			}
			runs = append(runs, StoredRun{
				Seq: binary.BigEndian.Uint64(key),
				Run: run,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// loadSeq restores the sequence counter from disk.
func (s *RunStore) loadSeq() {
	_ = s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketMeta).Get(keyCurrentSeq)
		if value != nil {
			s.currentSeq = binary.BigEndian.Uint64(value)
		}
		return nil
	})
}

func uint64ToBytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}
