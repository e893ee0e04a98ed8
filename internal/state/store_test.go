// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package state

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "manifest.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Get("never-seen"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	before := time.Now().UTC()
	if err := store.Put("uid-1", Entry{Hash: "abc123", Filename: "Pasta.paprikarecipe.yaml"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entry, err := store.Get("uid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Hash != "abc123" {
		t.Errorf("hash: got %q", entry.Hash)
	}
	if entry.Filename != "Pasta.paprikarecipe.yaml" {
		t.Errorf("filename: got %q", entry.Filename)
	}
	if entry.SyncedAt.Before(before) {
		t.Errorf("SyncedAt %v predates the write", entry.SyncedAt)
	}
}

func TestPutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("uid-1", Entry{Hash: "old"}); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := store.Put("uid-1", Entry{Hash: "new"}); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	entry, err := store.Get("uid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Hash != "new" {
		t.Errorf("expected overwritten hash, got %q", entry.Hash)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("uid-1", Entry{Hash: "abc"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete("uid-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("uid-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again must still succeed.
	if err := store.Delete("uid-1"); err != nil {
		t.Errorf("repeated Delete: %v", err)
	}
}

func TestAll(t *testing.T) {
	store := openTestStore(t)

	want := map[string]string{
		"uid-1": "hash1",
		"uid-2": "hash2",
		"uid-3": "hash3",
	}
	for uid, hash := range want {
		if err := store.Put(uid, Entry{Hash: hash}); err != nil {
			t.Fatalf("Put %s: %v", uid, err)
		}
	}

	entries, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for uid, hash := range want {
		if entries[uid].Hash != hash {
			t.Errorf("entry %s: got hash %q, want %q", uid, entries[uid].Hash, hash)
		}
	}
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Put("uid-1", Entry{Hash: "persisted"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entry, err := reopened.Get("uid-1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if entry.Hash != "persisted" {
		t.Errorf("hash after reopen: got %q", entry.Hash)
	}
}
