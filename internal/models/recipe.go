// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import (
	"fmt"
	"time"
)

// CreatedFormat is the textual timestamp format the service uses for the
// created field.
const CreatedFormat = "2006-01-02 15:04:05"

// Recipe is a single recipe record as the service models it.
//
// Field names mirror the service's wire schema byte-for-byte (json tags)
// and double as the local file schema (yaml tags). The service is an
// unofficial API, so the names are observed behavior, not a published
// contract; they must not be "cleaned up".
//
// Optional binary/photo fields and scale are pointers so that an absent
// value and a JSON null round-trip without being conflated with "".
type Recipe struct {
	Name            string   `yaml:"name" json:"name"`
	UID             string   `yaml:"uid" json:"uid"`
	Created         string   `yaml:"created" json:"created"`
	Categories      []string `yaml:"categories" json:"categories"`
	Rating          int      `yaml:"rating" json:"rating"`
	Description     string   `yaml:"description" json:"description"`
	Ingredients     string   `yaml:"ingredients" json:"ingredients"`
	Directions      string   `yaml:"directions" json:"directions"`
	Notes           string   `yaml:"notes" json:"notes"`
	NutritionalInfo string   `yaml:"nutritional_info" json:"nutritional_info"`
	Servings        string   `yaml:"servings" json:"servings"`
	Difficulty      string   `yaml:"difficulty" json:"difficulty"`
	PrepTime        string   `yaml:"prep_time" json:"prep_time"`
	CookTime        string   `yaml:"cook_time" json:"cook_time"`
	TotalTime       string   `yaml:"total_time" json:"total_time"`
	Source          string   `yaml:"source" json:"source"`
	SourceURL       string   `yaml:"source_url" json:"source_url"`
	ImageURL        *string  `yaml:"image_url,omitempty" json:"image_url"`
	OnFavorites     bool     `yaml:"on_favorites" json:"on_favorites"`
	OnGroceryList   bool     `yaml:"on_grocery_list" json:"on_grocery_list"`
	IsPinned        bool     `yaml:"is_pinned" json:"is_pinned"`
	InTrash         bool     `yaml:"in_trash" json:"in_trash"`
	Scale           *string  `yaml:"scale,omitempty" json:"scale"`
	Photo           *string  `yaml:"photo,omitempty" json:"photo"`
	PhotoHash       *string  `yaml:"photo_hash,omitempty" json:"photo_hash"`
	PhotoLarge      *string  `yaml:"photo_large,omitempty" json:"photo_large"`
	PhotoURL        *string  `yaml:"photo_url,omitempty" json:"photo_url"`
	Hash            string   `yaml:"hash" json:"hash"`

	// Extra holds local-file fields this client does not model, preserved
	// verbatim through parse/serialize round-trips for forward
	// compatibility. Never sent to the service.
	Extra map[string]any `yaml:"-" json:"-"`
}

// NewRecipe returns a recipe template for a freshly authored record: a
// generated uid, a created stamp, and an empty category list so the field
// serializes as a list rather than null.
func NewRecipe(name string) *Recipe {
	return &Recipe{
		Name:       name,
		UID:        NewUID(),
		Created:    time.Now().Format(CreatedFormat),
		Categories: []string{},
	}
}

// Validate reports whether the recipe is fit to upload. Name and uid are
// the service's hard requirements; everything else may be empty.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if r.UID == "" {
		return &ValidationError{Field: "uid", Reason: "must not be empty"}
	}
	if !ValidUID(r.UID) {
		return &ValidationError{Field: "uid", Reason: fmt.Sprintf("%q does not match the required identifier format", r.UID)}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: fmt.Sprintf("%d out of range 0-5", r.Rating)}
	}
	if r.Created != "" {
		if _, err := time.Parse(CreatedFormat, r.Created); err != nil {
			return &ValidationError{Field: "created", Reason: fmt.Sprintf("%q is not in %s form", r.Created, CreatedFormat)}
		}
	}
	return nil
}

// ValidationError describes a recipe that cannot be accepted as-is:
// malformed document, missing required field, or a value outside the
// service's constraints. Batch operations report it per record and move on.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid recipe: " + e.Reason
	}
	return fmt.Sprintf("invalid recipe: field %s: %s", e.Field, e.Reason)
}
