// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Package config loads layered configuration: built-in defaults, then
// an optional YAML file, then PAPRIKA_* environment variables. Later
// layers win.
package config
