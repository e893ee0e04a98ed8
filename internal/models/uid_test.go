// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import (
	"strings"
	"testing"
)

func TestNewUIDMatchesGrammar(t *testing.T) {
	for i := 0; i < 100; i++ {
		uid := NewUID()
		if !ValidUID(uid) {
			t.Fatalf("generated uid %q does not match grammar", uid)
		}
		groups := strings.Split(uid, "-")
		checkIntEqual(t, "group count", len(groups), 7)
		checkIntEqual(t, "fifth-digit group length", len(groups[5]), 5)
		checkIntEqual(t, "hex suffix length", len(groups[6]), 16)
	}
}

func TestNewUIDNoCollisions(t *testing.T) {
	const samples = 10000

	seen := make(map[string]struct{}, samples)
	for i := 0; i < samples; i++ {
		uid := NewUID()
		if _, dup := seen[uid]; dup {
			t.Fatalf("collision after %d samples: %s", i, uid)
		}
		seen[uid] = struct{}{}
	}
}

func TestValidUID(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want bool
	}{
		{"canonical", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456-54321-FEDCBA9876543210", true},
		{"lowercase hex accepted", "d1e8a7f0-2b3c-4d5e-9f00-abcdef123456-54321-fedcba9876543210", true},
		{"bare uuid", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456", false},
		{"empty", "", false},
		{"short digit group", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456-432-FEDCBA9876543210", false},
		{"hex in digit group", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456-5432A-FEDCBA9876543210", false},
		{"short hex suffix", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456-54321-FEDCBA98765432", false},
		{"non-hex junk", "not-a-uid-at-all-nope-zzz", false},
		{"trailing garbage", "D1E8A7F0-2B3C-4D5E-9F00-ABCDEF123456-54321-FEDCBA9876543210-X", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidUID(tt.uid); got != tt.want {
				t.Errorf("ValidUID(%q) = %v, want %v", tt.uid, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"forward slash", "50/50 Mix", "50-50 Mix"},
		{"backslash", `Path\Recipe`, "Path-Recipe"},
		{"path separator in phrase", "Mac & Cheese / Family Recipe", "Mac & Cheese - Family Recipe"},
		{"colon and quotes", `Recipe: "Test" <special>`, "Recipe Test special"},
		{"plain name untouched", "Normal Recipe Name", "Normal Recipe Name"},
		{"hash sign kept", "Recipe #1", "Recipe #1"},
		{"apostrophe kept", "Mom's Cookies", "Mom's Cookies"},
		{"everything stripped", `:*?"<>|`, "recipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			checkStringEqual(t, "sanitized", got, tt.want)
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("result %q contains a path separator", got)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	r := &Recipe{Name: "Mac & Cheese / Family Recipe", UID: NewUID()}
	got := r.Filename()

	checkStringEqual(t, "filename", got, "Mac & Cheese - Family Recipe.paprikarecipe.yaml")
}
