// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Package state persists the local sync manifest: for every recipe
// identifier, the content hash and filename written during the last
// successful transfer.
//
// The manifest is a cache, not a source of truth. Download compares
// remote hashes against it to skip unchanged records; Upload refreshes
// it from the server echo. Deleting the manifest file forces a full
// re-download and is always safe.
package state
