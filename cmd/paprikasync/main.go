// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

// Command paprikasync syncs Paprika recipes with a local directory of
// YAML files.
package main

import (
	"os"

	"github.com/tomtom215/paprikasync/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
