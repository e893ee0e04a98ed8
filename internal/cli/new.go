// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/paprikasync/internal/models"
)

func (a *App) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a recipe file template with a fresh uid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			recipe := models.NewRecipe(name)

			if err := os.MkdirAll(a.cfg.Sync.RecipeDir, 0o755); err != nil {
				return fmt.Errorf("create recipe directory: %w", err)
			}

			path := filepath.Join(a.cfg.Sync.RecipeDir, recipe.Filename())
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			data, err := recipe.MarshalLocal()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Created %s\n", path)
			return nil
		},
	}
}
