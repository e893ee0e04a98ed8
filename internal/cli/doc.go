// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Package cli wires configuration, credentials, and the sync
// orchestrator into the paprikasync command tree.
package cli
