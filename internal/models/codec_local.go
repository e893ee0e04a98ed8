// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

/*
codec_local.go - Local recipe file codec

One YAML document per recipe. The typed fields cover everything this
client understands; keys it does not understand are carried in
Recipe.Extra and written back verbatim on serialize, so files edited by a
newer client survive a round-trip through an older one.
*/

package models

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// knownYAMLKeys is derived from the Recipe struct tags so the codec and
// the model can never drift apart.
var knownYAMLKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	t := reflect.TypeOf(Recipe{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
}()

// ParseRecipe parses a local recipe document. It fails with a
// ValidationError when the document is not well-formed YAML or carries no
// name. A blank uid is accepted here: upload fills it in before the
// record is validated against the service's requirements.
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("not a well-formed recipe document: %v", err)}
	}
	if r.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if r.Categories == nil {
		r.Categories = []string{}
	}

	// Second pass over the raw document to pick up unknown keys.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return &r, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &r, nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if _, ok := knownYAMLKeys[key]; ok {
			continue
		}
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, &ValidationError{Field: key, Reason: fmt.Sprintf("unreadable value: %v", err)}
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[key] = value
	}
	return &r, nil
}

// MarshalLocal serializes the recipe back to the local file format.
// Known fields keep the struct's order for readability; preserved unknown
// fields follow in sorted order so output is deterministic.
func (r *Recipe) MarshalLocal() ([]byte, error) {
	clone := *r
	if clone.Categories == nil {
		clone.Categories = []string{}
	}

	var root yaml.Node
	if err := root.Encode(clone); err != nil {
		return nil, fmt.Errorf("encode recipe: %w", err)
	}

	extras := make([]string, 0, len(r.Extra))
	for key := range r.Extra {
		extras = append(extras, key)
	}
	sort.Strings(extras)
	for _, key := range extras {
		var value yaml.Node
		if err := value.Encode(r.Extra[key]); err != nil {
			return nil, fmt.Errorf("encode extra field %s: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, fmt.Errorf("marshal recipe: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal recipe: %w", err)
	}
	return buf.Bytes(), nil
}
