// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import "strings"

// LocalExt is the extension of a local recipe file.
const LocalExt = ".paprikarecipe.yaml"

// filenameReplacer maps characters that are illegal or problematic in
// filenames on at least one supported platform. Path separators become
// "-" so "50/50 Mix" stays readable; the rest are dropped.
var filenameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"?", "",
	"*", "",
	"\x00", "",
)

// SanitizeFilename maps a recipe name to a filesystem-safe base name,
// preserving readability as much as possible. A name that sanitizes to
// nothing falls back to "recipe" so the caller never writes a dotfile.
func SanitizeFilename(name string) string {
	clean := strings.TrimSpace(filenameReplacer.Replace(name))
	if clean == "" {
		return "recipe"
	}
	return clean
}

// Filename returns the sanitized local filename for the recipe.
func (r *Recipe) Filename() string {
	return SanitizeFilename(r.Name) + LocalExt
}
