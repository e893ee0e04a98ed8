// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

/*
codec_wire.go - Wire codec for the sync API

The service exchanges recipes as JSON objects; uploads additionally wrap
the JSON in gzip (the ".paprikarecipe" archive member format, reused as
the upload body). MarshalWire guarantees a content hash is present, since
the server uses it to decide whether an upload changed anything.
*/

package models

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// MarshalWire returns the recipe's wire JSON, computing the content hash
// first when it is absent or stale.
func (r *Recipe) MarshalWire() ([]byte, error) {
	r.UpdateHash()
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal recipe %s: %w", r.UID, err)
	}
	return payload, nil
}

// RecipeFromWire parses a wire JSON object into a Recipe.
func RecipeFromWire(payload []byte) (*Recipe, error) {
	var r Recipe
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decode wire recipe: %w", err)
	}
	if r.Categories == nil {
		r.Categories = []string{}
	}
	return &r, nil
}

// WireArchive returns the gzipped wire JSON used as the upload body and
// as the member format of exported recipe archives.
func (r *Recipe) WireArchive() ([]byte, error) {
	payload, err := r.MarshalWire()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, fmt.Errorf("compress recipe %s: %w", r.UID, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress recipe %s: %w", r.UID, err)
	}
	return buf.Bytes(), nil
}

// RecipeFromArchive parses a gzipped wire JSON document.
func RecipeFromArchive(archive []byte) (*Recipe, error) {
	zr, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("decompress recipe: %w", err)
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress recipe: %w", err)
	}
	return RecipeFromWire(payload)
}
