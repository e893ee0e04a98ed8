// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/paprikasync/internal/logging"
	"github.com/tomtom215/paprikasync/internal/models"
)

func (a *App) listCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List local recipe files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := localRecipeFiles(a.cfg.Sync.RecipeDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 2, 4, 2, ' ', 0)
			count := 0
			for _, path := range paths {
				data, err := os.ReadFile(path)
				if err != nil {
					logging.Warn().Err(err).Str("file", path).Msg("unreadable recipe file")
					continue
				}
				recipe, err := models.ParseRecipe(data)
				if err != nil {
					logging.Warn().Err(err).Str("file", path).Msg("unparseable recipe file")
					continue
				}
				if recipe.InTrash && !all {
					continue
				}

				marker := ""
				if recipe.InTrash {
					marker = "(trashed)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", recipe.Name, filepath.Base(path), marker)
				count++
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%d recipes\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include trashed recipes")
	return cmd
}
