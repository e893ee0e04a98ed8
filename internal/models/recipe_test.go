// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleRecipe() *Recipe {
	return &Recipe{
		Name:            "Test Recipe",
		UID:             NewUID(),
		Created:         "2024-03-01 18:30:00",
		Categories:      []string{"cat-uuid-1", "cat-uuid-2"},
		Rating:          4,
		Description:     "A test description",
		Ingredients:     "1 cup flour\n2 eggs",
		Directions:      "Mix well.\nBake at 350F.",
		Notes:           "Some notes here",
		NutritionalInfo: "100 calories per serving",
		Servings:        "4",
		Difficulty:      "easy",
		PrepTime:        "15 minutes",
		CookTime:        "30 minutes",
		TotalTime:       "45 minutes",
		Source:          "Test Kitchen",
		SourceURL:       "https://example.com/recipe",
	}
}

func TestValidateMinimalRecipe(t *testing.T) {
	r := &Recipe{Name: "Minimal", UID: NewUID()}
	if err := r.Validate(); err != nil {
		t.Fatalf("minimal recipe with name and uid should validate, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name      string
		recipe    *Recipe
		wantField string
	}{
		{"missing name", &Recipe{UID: NewUID()}, "name"},
		{"missing uid", &Recipe{Name: "Pasta"}, "uid"},
		{"malformed uid", &Recipe{Name: "Pasta", UID: "not-a-uid"}, "uid"},
		{"rating too high", &Recipe{Name: "Pasta", UID: NewUID(), Rating: 6}, "rating"},
		{"rating negative", &Recipe{Name: "Pasta", UID: NewUID(), Rating: -1}, "rating"},
		{"bad created stamp", &Recipe{Name: "Pasta", UID: NewUID(), Created: "yesterday"}, "created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field: expected %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestNewRecipeTemplate(t *testing.T) {
	r := NewRecipe("Pasta")

	checkStringEqual(t, "name", r.Name, "Pasta")
	checkTrue(t, "uid valid", ValidUID(r.UID))
	checkTrue(t, "categories non-nil", r.Categories != nil)
	if err := r.Validate(); err != nil {
		t.Errorf("fresh template should validate, got %v", err)
	}
}

func TestComputeHashStable(t *testing.T) {
	r := sampleRecipe()

	first := r.ComputeHash()
	second := r.ComputeHash()

	checkIntEqual(t, "hash length", len(first), 64)
	checkStringEqual(t, "hash stability", second, first)

	// The stored hash must not feed back into the digest.
	r.Hash = first
	checkStringEqual(t, "hash independent of stored hash", r.ComputeHash(), first)
}

func TestComputeHashChangesWithContent(t *testing.T) {
	r := sampleRecipe()
	before := r.ComputeHash()

	r.Ingredients += "\n1 pinch salt"
	after := r.ComputeHash()

	if before == after {
		t.Error("hash should change when content changes")
	}
}

func TestUpdateHashReportsChange(t *testing.T) {
	r := sampleRecipe()

	checkTrue(t, "first update reports change", r.UpdateHash())
	checkTrue(t, "second update is a no-op", !r.UpdateHash())

	r.Rating = 5
	checkTrue(t, "edit reports change", r.UpdateHash())
}

func TestWireArchiveRoundTrip(t *testing.T) {
	r := sampleRecipe()
	r.Notes = "日本語テスト Ελληνικά Вкусно!"

	archive, err := r.WireArchive()
	if err != nil {
		t.Fatalf("WireArchive: %v", err)
	}

	restored, err := RecipeFromArchive(archive)
	if err != nil {
		t.Fatalf("RecipeFromArchive: %v", err)
	}

	checkStringEqual(t, "name", restored.Name, r.Name)
	checkStringEqual(t, "uid", restored.UID, r.UID)
	checkStringEqual(t, "notes", restored.Notes, r.Notes)
	checkStringEqual(t, "hash", restored.Hash, r.Hash)
	if !reflect.DeepEqual(restored.Categories, r.Categories) {
		t.Errorf("categories: expected %v, got %v", r.Categories, restored.Categories)
	}
}

func TestRecipeFromWireNullCategories(t *testing.T) {
	r, err := RecipeFromWire([]byte(`{"uid":"u","name":"n","categories":null}`))
	if err != nil {
		t.Fatalf("RecipeFromWire: %v", err)
	}
	checkTrue(t, "categories normalized to empty list", r.Categories != nil && len(r.Categories) == 0)
}

func TestWirePayloadFieldNames(t *testing.T) {
	r := sampleRecipe()
	payload, err := r.MarshalWire()
	if err != nil {
		t.Fatalf("MarshalWire: %v", err)
	}

	// Wire names must match the service's observed schema exactly.
	for _, key := range []string{
		`"uid"`, `"name"`, `"nutritional_info"`, `"source_url"`,
		`"on_grocery_list"`, `"in_trash"`, `"photo_hash"`, `"hash"`,
	} {
		if !strings.Contains(string(payload), key) {
			t.Errorf("wire payload missing key %s", key)
		}
	}
}
