// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

/*
Package models defines the recipe record and its three representations:
the typed Recipe struct, the local YAML file format (unknown fields
preserved), and the service's wire JSON (optionally gzip-wrapped).

It also owns the cross-cutting record concerns that every other package
leans on: identifier generation and grammar validation, content hashing,
and filename sanitization.

The service has no hard delete; a recipe is "deleted" by setting InTrash
and uploading. The flag is ordinary record state here, not a pseudo
delete operation, so undeleting is just clearing the flag and uploading
again.
*/
package models
