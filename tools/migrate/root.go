package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/soccervitae/soccerapp/internal/migrations"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the story database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(
		newDBCommand("up", "Apply all pending migrations", goose.UpContext),
		newDBCommand("down", "Roll back the latest migration", goose.DownContext),
		newDBCommand("status", "Print the state of every migration", goose.StatusContext),
		newDBCommand("reset", "Roll back every migration", goose.ResetContext),
		newCreateCommand(),
	)

	return rootCmd
}

type migrateFunc func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error

func newDBCommand(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := migrations.Open(cfg.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(cmd.Context(), db, migrations.Dir); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", use)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new Go migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Creating migration in: %s\n", dir)
			return goose.Create(nil, dir, args[0], "go")
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "internal/migrations", "Directory holding the migrations")

	return cmd
}
