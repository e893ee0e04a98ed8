// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Package sync orchestrates recipe transfer between a local directory
// of YAML files and the remote account.
//
// Download is additive: it writes and overwrites local files but never
// deletes one, even for records the service marks trashed. Upload
// treats a bad local file as a per-record failure and keeps going;
// authentication and protocol failures abort the batch because every
// remaining record would fail the same way.
package sync
