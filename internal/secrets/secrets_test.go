// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package secrets

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	if err := store.Set("user@example.com", "hunter2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	password, err := store.Get("user@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if password != "hunter2" {
		t.Errorf("password: got %q", password)
	}

	if err := store.Delete("user@example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("user@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestKeyringDeleteMissing(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	if err := store.Delete("nobody@example.com"); err != nil {
		t.Errorf("deleting an absent entry should succeed, got %v", err)
	}
}

func TestEnvOverridesKeyring(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	if err := store.Set("user@example.com", "from-keyring"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	t.Setenv(EnvPassword, "from-env")

	password, err := store.Get("user@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if password != "from-env" {
		t.Errorf("expected the environment password to win, got %q", password)
	}
}

func TestEnvWithoutKeyringEntry(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvPassword, "env-only")

	password, err := NewKeyring().Get("never-stored@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if password != "env-only" {
		t.Errorf("password: got %q", password)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if _, err := store.Get("user@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := store.Set("user@example.com", "secret"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	password, err := store.Get("user@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if password != "secret" {
		t.Errorf("password: got %q", password)
	}

	if err := store.Delete("user@example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("user@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
