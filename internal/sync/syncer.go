// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package sync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomtom215/paprikasync/internal/logging"
	"github.com/tomtom215/paprikasync/internal/models"
	"github.com/tomtom215/paprikasync/internal/paprika"
	"github.com/tomtom215/paprikasync/internal/state"
)

// Client is the remote API surface the orchestrator needs.
type Client interface {
	ListRecipes(ctx context.Context) ([]paprika.RecipeListItem, error)
	FetchRecipe(ctx context.Context, uid string) (*models.Recipe, error)
	UpsertRecipe(ctx context.Context, r *models.Recipe) (*models.Recipe, error)
	Notify(ctx context.Context) error
}

// Syncer moves recipes between the local directory and the account.
type Syncer struct {
	client Client
	store  *state.Store
}

// New builds a Syncer over the given client and manifest store.
func New(client Client, store *state.Store) *Syncer {
	return &Syncer{client: client, store: store}
}

// DownloadReport summarizes one download batch.
type DownloadReport struct {
	Active  int // non-trashed records written
	Trashed int // trashed records written
	Skipped int // unchanged records left alone
	Failed  int // records that could not be fetched or written
}

// Written returns how many records reached disk.
func (r DownloadReport) Written() int { return r.Active + r.Trashed }

// UploadReport summarizes one upload batch.
type UploadReport struct {
	Uploaded int
	Failed   int
	Notified bool // whether other devices were told to re-sync
}

// Download fetches every remote recipe into dir, skipping records whose
// manifest hash matches the local sync state and whose file still
// exists. Local files are never deleted. The returned report is valid
// even when err is non-nil.
func (s *Syncer) Download(ctx context.Context, dir string) (DownloadReport, error) {
	var report DownloadReport

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, fmt.Errorf("create recipe directory: %w", err)
	}

	items, err := s.client.ListRecipes(ctx)
	if err != nil {
		return report, err
	}
	logging.Info().Int("remote", len(items)).Str("dir", dir).Msg("downloading recipes")

	for _, item := range items {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		if s.upToDate(item, dir) {
			report.Skipped++
			continue
		}

		recipe, err := s.client.FetchRecipe(ctx, item.UID)
		if err != nil {
			if abortsBatch(err) {
				return report, err
			}
			report.Failed++
			logging.Error().Err(err).Str("uid", item.UID).Msg("fetch failed")
			continue
		}

		if err := s.writeLocal(recipe, dir, item.Hash); err != nil {
			report.Failed++
			logging.Error().Err(err).Str("uid", item.UID).Msg("write failed")
			continue
		}

		if recipe.InTrash {
			report.Trashed++
		} else {
			report.Active++
		}
	}

	logging.Info().
		Int("active", report.Active).
		Int("trashed", report.Trashed).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("download complete")
	return report, nil
}

// upToDate reports whether the manifest entry matches what the last
// sync wrote and the file is still on disk.
func (s *Syncer) upToDate(item paprika.RecipeListItem, dir string) bool {
	entry, err := s.store.Get(item.UID)
	if err != nil || entry.Hash != item.Hash {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, entry.Filename))
	return err == nil
}

// writeLocal persists one recipe and records it in the manifest.
func (s *Syncer) writeLocal(recipe *models.Recipe, dir, hash string) error {
	data, err := recipe.MarshalLocal()
	if err != nil {
		return err
	}

	filename := recipe.Filename()
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return err
	}

	if err := s.store.Put(recipe.UID, state.Entry{Hash: hash, Filename: filename}); err != nil {
		// The file is written; a stale manifest only costs a refetch.
		logging.Warn().Err(err).Str("uid", recipe.UID).Msg("manifest update failed")
	}

	logging.Debug().Str("uid", recipe.UID).Str("file", filename).Msg("recipe written")
	return nil
}

// Upload pushes the given local files to the account. Each file is
// parsed, given a uid when blank, upserted, and overwritten with the
// server's echo. A file that fails validation is reported and the
// batch continues. After at least one successful upsert, other devices
// are notified once.
func (s *Syncer) Upload(ctx context.Context, paths []string) (UploadReport, error) {
	var report UploadReport

	for _, path := range paths {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		err := s.uploadOne(ctx, path)
		if err == nil {
			report.Uploaded++
			continue
		}

		var verr *models.ValidationError
		if errors.As(err, &verr) {
			report.Failed++
			logging.Error().Err(verr).Str("file", path).Msg("invalid recipe file")
			continue
		}
		if abortsBatch(err) {
			return report, fmt.Errorf("%s: %w", path, err)
		}

		report.Failed++
		logging.Error().Err(err).Str("file", path).Msg("upload failed")
	}

	if report.Uploaded > 0 {
		if err := s.client.Notify(ctx); err != nil {
			logging.Warn().Err(err).Msg("device notify failed")
		} else {
			report.Notified = true
		}
	}

	logging.Info().
		Int("uploaded", report.Uploaded).
		Int("failed", report.Failed).
		Msg("upload complete")
	return report, nil
}

// uploadOne pushes a single file and writes back the server echo.
func (s *Syncer) uploadOne(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &models.ValidationError{Field: "file", Reason: err.Error()}
	}

	recipe, err := models.ParseRecipe(data)
	if err != nil {
		return err
	}
	if recipe.UID == "" {
		recipe.UID = models.NewUID()
		logging.Debug().Str("uid", recipe.UID).Str("file", path).Msg("assigned uid")
	}

	echo, err := s.client.UpsertRecipe(ctx, recipe)
	if err != nil {
		return err
	}

	// The echo is the server's canonical record; locally-kept unknown
	// fields survive the overwrite.
	echo.Extra = recipe.Extra
	out, err := echo.MarshalLocal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}

	if err := s.store.Put(echo.UID, state.Entry{Hash: echo.Hash, Filename: filepath.Base(path)}); err != nil {
		logging.Warn().Err(err).Str("uid", echo.UID).Msg("manifest update failed")
	}

	logging.Info().Str("uid", echo.UID).Str("file", path).Msg("recipe uploaded")
	return nil
}

// abortsBatch reports whether an error would doom every remaining
// record in the batch.
func abortsBatch(err error) bool {
	return errors.Is(err, paprika.ErrAuth) || errors.Is(err, paprika.ErrProtocol)
}
