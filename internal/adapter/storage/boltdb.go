package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"namematch/internal/port"
)

var (
	bucketCorpus = []byte("corpus")
	keyNames     = []byte("names")
)

// BoltSource persists the corpus record in a BoltDB file. Useful when the
// corpus shares a database with other tooling state; the record layout is
// the same single names list the JSON file uses.
type BoltSource struct {
	db *bbolt.DB
}

// NewBoltSource opens (creating if needed) the database at path.
func NewBoltSource(path string) (*BoltSource, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create corpus directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCorpus)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create corpus bucket: %w", err)
	}

	return &BoltSource{db: db}, nil
}

func (s *BoltSource) Load() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCorpus).Get(keyNames)
		if data == nil {
			return port.ErrNotFound
		}
		var record namesRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to parse corpus record: %w", err)
		}
		names = record.Names
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *BoltSource) Save(names []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(namesRecord{Names: names})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketCorpus).Put(keyNames, data)
	})
}

func (s *BoltSource) Close() error {
	return s.db.Close()
}
