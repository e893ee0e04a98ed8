// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *App) authCommand() *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored account password",
	}

	store := &cobra.Command{
		Use:   "store",
		Short: "Prompt for the account password and save it to the system keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := a.cfg.Account.Email
			if email == "" {
				return fmt.Errorf("no account email configured; set account.email or PAPRIKA_ACCOUNT_EMAIL")
			}

			password, err := readPassword(cmd, email)
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("empty password not stored")
			}

			if err := a.secrets.Set(email, password); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Password stored for %s\n", email)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := a.cfg.Account.Email
			if email == "" {
				return fmt.Errorf("no account email configured; set account.email or PAPRIKA_ACCOUNT_EMAIL")
			}
			if err := a.secrets.Delete(email); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Password removed for %s\n", email)
			return nil
		},
	}

	auth.AddCommand(store, remove)
	return auth
}

// readPassword prompts on a terminal without echo, or reads one line
// from piped stdin.
func readPassword(cmd *cobra.Command, email string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Paprika password for %s: ", email)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
