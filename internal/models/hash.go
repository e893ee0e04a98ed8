// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/goccy/go-json"
)

// ComputeHash returns the content digest the service uses to detect
// whether an upload actually changed anything: the sha256 of the wire
// encoding with the hash field itself emptied. The wire struct has a
// fixed field order, so the encoding is canonical.
func (r *Recipe) ComputeHash() string {
	clone := *r
	clone.Hash = ""

	// Marshal of a plain struct cannot fail.
	payload, _ := json.Marshal(&clone)

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// UpdateHash recomputes the content digest and stores it on the recipe.
// It reports whether the stored value changed, which is what callers log
// to distinguish a real edit from a no-op re-upload.
func (r *Recipe) UpdateHash() bool {
	fresh := r.ComputeHash()
	changed := r.Hash != fresh
	r.Hash = fresh
	return changed
}
