// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package secrets

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// service names the keyring entry namespace; the account email is the
// entry key.
const service = "paprikasync"

// EnvPassword overrides any stored password when set.
const EnvPassword = "PAPRIKA_PASSWORD"

// ErrNotFound is returned when no password is stored for the account.
var ErrNotFound = errors.New("secrets: no stored password")

// Store holds one password per account email.
type Store interface {
	Get(email string) (string, error)
	Set(email, password string) error
	Delete(email string) error
}

// Keyring backs Store with the operating system keyring, consulting
// EnvPassword first on reads.
type Keyring struct{}

// NewKeyring returns the default password store.
func NewKeyring() *Keyring {
	return &Keyring{}
}

func (k *Keyring) Get(email string) (string, error) {
	if password := os.Getenv(EnvPassword); password != "" {
		return password, nil
	}

	password, err := keyring.Get(service, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w for %s", ErrNotFound, email)
	}
	if err != nil {
		return "", fmt.Errorf("secrets: keyring read: %w", err)
	}
	return password, nil
}

func (k *Keyring) Set(email, password string) error {
	if err := keyring.Set(service, email, password); err != nil {
		return fmt.Errorf("secrets: keyring write: %w", err)
	}
	return nil
}

func (k *Keyring) Delete(email string) error {
	err := keyring.Delete(service, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("secrets: keyring delete: %w", err)
	}
	return nil
}

// Memory is an in-process Store for tests.
type Memory struct {
	passwords map[string]string
}

func NewMemory() *Memory {
	return &Memory{passwords: make(map[string]string)}
}

func (m *Memory) Get(email string) (string, error) {
	password, ok := m.passwords[email]
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrNotFound, email)
	}
	return password, nil
}

func (m *Memory) Set(email, password string) error {
	m.passwords[email] = password
	return nil
}

func (m *Memory) Delete(email string) error {
	delete(m.passwords, email)
	return nil
}
