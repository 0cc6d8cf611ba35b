// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/spf13/cobra"
)

type cli struct {
	opts    options
	connect connectFunc
}

// newRootCommand assembles userctl. connect opens the user API for every
// subcommand run.
func newRootCommand(connect connectFunc) *cobra.Command {
	c := &cli{connect: connect}

	root := &cobra.Command{
		Use:   "userctl",
		Short: "Manage user records",
		Long: `Manage user records stored by sample-app.

By default userctl opens the database configured through the usual
environment variables and .env file. With --server it talks to a running
server over HTTP instead.

Examples:
  userctl add John john@example.com
  userctl list --dsn data/app.db
  userctl get John --server localhost:8000`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.server, "server", "", "Address of a running server (host:port or URL); empty uses the local database")
	flags.StringVar(&c.opts.dsn, "dsn", "", "Database DSN or SQLite file path (overrides STORAGE_DB_DSN)")
	flags.StringVar(&c.opts.driver, "driver", "", "Database driver: sqlite3, pgx or mysql (overrides STORAGE_DB_DRIVER)")
	flags.DurationVar(&c.opts.timeout, "timeout", config.DefaultRequestTimeout, "Request timeout when using --server")
	flags.BoolVar(&c.opts.debug, "debug", false, "Write debug logs to stderr")

	root.AddCommand(
		c.newAddCommand(),
		c.newGetCommand(),
		c.newFindEmailCommand(),
		c.newUpdateCommand(),
		c.newDeleteCommand(),
		c.newListCommand(),
		c.newSeedCommand(),
		c.newExportCommand(),
		c.newImportCommand(),
		c.newVersionCommand(),
	)

	return root
}

// run opens a session for the duration of fn and always releases it.
func (c *cli) run(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logger.NewLoggerWithLevel(cmd.ErrOrStderr(), "userctl", c.opts.debug)

		s, err := c.connect(cmd.Context(), c.opts, log)
		if err != nil {
			return fmt.Errorf("%w: %w", errConnecting, err)
		}
		defer func() {
			if closeErr := s.close(); closeErr != nil {
				log.Err(closeErr).Msg("error closing user store")
			}
		}()

		return fn(cmd, args, s)
	}
}
