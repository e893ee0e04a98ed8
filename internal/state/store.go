// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"
)

// bucketRecipes keys entries by recipe uid.
const bucketRecipes = "recipes"

// ErrNotFound is returned by Get for a uid the manifest has never seen.
var ErrNotFound = errors.New("state: entry not found")

// Entry records what the last successful transfer of one recipe left on
// disk.
type Entry struct {
	Hash     string    `json:"hash"`
	Filename string    `json:"filename"`
	SyncedAt time.Time `json:"synced_at"`
}

// Store is the on-disk sync manifest. Safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open creates or opens the manifest at path, creating parent
// directories as needed. The open timeout guards against a second
// paprikasync process holding the file lock.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("state: create directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("state: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecipes))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("state: initialize %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the manifest entry for uid, or ErrNotFound.
func (s *Store) Get(uid string) (*Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketRecipes)).Get([]byte(uid))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &entry)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("state: get %s: %w", uid, err)
	}
	return &entry, nil
}

// Put records a completed transfer for uid. SyncedAt is stamped here.
func (s *Store) Put(uid string, entry Entry) error {
	entry.SyncedAt = time.Now().UTC()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("state: encode %s: %w", uid, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecipes)).Put([]byte(uid), data)
	})
}

// Delete removes the entry for uid. Deleting an absent entry is a no-op.
func (s *Store) Delete(uid string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecipes)).Delete([]byte(uid))
	})
}

// All returns every manifest entry keyed by uid.
func (s *Store) All() (map[string]Entry, error) {
	entries := make(map[string]Entry)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecipes)).ForEach(func(k, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("decode %s: %w", string(k), err)
			}
			entries[string(k)] = entry
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("state: list entries: %w", err)
	}
	return entries, nil
}
