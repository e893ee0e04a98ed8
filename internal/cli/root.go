// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/paprikasync/internal/config"
	"github.com/tomtom215/paprikasync/internal/logging"
	"github.com/tomtom215/paprikasync/internal/paprika"
	"github.com/tomtom215/paprikasync/internal/secrets"
	"github.com/tomtom215/paprikasync/internal/state"
	"github.com/tomtom215/paprikasync/internal/sync"
)

// Version is stamped at build time.
var Version = "dev"

// App carries the dependencies every command shares. Tests replace the
// credential store and client factory with in-memory fakes.
type App struct {
	cfg     *config.Config
	secrets secrets.Store
	stdout  io.Writer

	// newClient builds the API client once credentials are known.
	newClient func(email, password string) sync.Client

	configPath string
}

// NewApp wires the production dependencies.
func NewApp() *App {
	app := &App{
		secrets: secrets.NewKeyring(),
		stdout:  os.Stdout,
	}
	app.newClient = app.defaultClient
	return app
}

func (a *App) defaultClient(email, password string) sync.Client {
	return paprika.NewClient(paprika.Options{
		BaseURL:            a.cfg.API.BaseURL,
		Email:              email,
		Password:           password,
		MinRequestInterval: a.cfg.API.MinRequestInterval,
		Timeout:            a.cfg.API.Timeout,
		MaxAttempts:        a.cfg.Retry.MaxAttempts,
		RateLimitBackoff:   a.cfg.Retry.RateLimitBackoff,
	})
}

// Command builds the root command tree.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:     "paprikasync",
		Short:   "Sync Paprika recipes with local YAML files",
		Version: Version,
		Long: `paprikasync mirrors the recipes of a Paprika account into a local
directory of editable YAML files and pushes local edits back up.

Store the account password once with "paprikasync auth store"; every
other command reads it from the system keyring (or PAPRIKA_PASSWORD).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Init(logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"config file (default: paprikasync.yaml, then the user config dir)")

	root.AddCommand(
		a.authCommand(),
		a.downloadCommand(),
		a.uploadCommand(),
		a.newCommand(),
		a.listCommand(),
	)
	return root
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewApp().Command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "paprikasync: %v\n", err)
		return 1
	}
	return 0
}

// client resolves credentials and builds an API client, pointing the
// user at "auth store" when no password is available.
func (a *App) client() (sync.Client, error) {
	email := a.cfg.Account.Email
	if email == "" {
		return nil, fmt.Errorf("no account email configured; set account.email or PAPRIKA_ACCOUNT_EMAIL")
	}

	password, err := a.secrets.Get(email)
	if err != nil {
		return nil, fmt.Errorf("%w; run \"paprikasync auth store\" or set %s",
			err, secrets.EnvPassword)
	}
	return a.newClient(email, password), nil
}

// openState opens the sync manifest for the configured account.
func (a *App) openState() (*state.Store, error) {
	return state.Open(a.cfg.Sync.StatePath)
}
