// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Package secrets stores the account password outside config files.
//
// The default store is the operating system keyring. PAPRIKA_PASSWORD,
// when set, takes precedence over the keyring so that headless
// environments without a keyring daemon can still authenticate.
package secrets
