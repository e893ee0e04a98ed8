// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/paprikasync/internal/sync"
)

func (a *App) downloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Fetch every remote recipe into the local recipe directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			store, err := a.openState()
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := sync.New(client, store).Download(cmd.Context(), a.cfg.Sync.RecipeDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Downloaded %d recipes (%d trashed), %d unchanged, %d failed\n",
				report.Active, report.Trashed, report.Skipped, report.Failed)
			if report.Failed > 0 && report.Written() == 0 && report.Skipped == 0 {
				return fmt.Errorf("all %d records failed to download", report.Failed)
			}
			return nil
		},
	}
}
