// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tomtom215/paprikasync/internal/models"
	"github.com/tomtom215/paprikasync/internal/sync"
)

func (a *App) uploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload [files...]",
		Short: "Push local recipe files to the account",
		Long: `Push the named recipe files to the account. With no arguments,
every *` + models.LocalExt + ` file in the recipe directory is uploaded.

Files without a uid are assigned one; after a successful upload each
file is rewritten with the server's copy of the record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				var err error
				paths, err = localRecipeFiles(a.cfg.Sync.RecipeDir)
				if err != nil {
					return err
				}
			}
			if len(paths) == 0 {
				fmt.Fprintln(a.stdout, "No recipe files to upload")
				return nil
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			store, err := a.openState()
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := sync.New(client, store).Upload(cmd.Context(), paths)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Uploaded %d of %d recipes\n", report.Uploaded, len(paths))
			if report.Failed > 0 && report.Uploaded == 0 {
				return fmt.Errorf("all %d files failed to upload", report.Failed)
			}
			return nil
		},
	}
}

// localRecipeFiles lists the recipe files in dir in stable order.
func localRecipeFiles(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+models.LocalExt))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
