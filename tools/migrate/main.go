package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"

	"github.com/orgball2608/pixelfed-scraper/internal/migrations"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func withDB(fn func(ctx context.Context, db *sql.DB) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.PostgresEnabled() {
			return fmt.Errorf("POSTGRES_HOST is not set")
		}

		db, err := migrations.Open(cfg.GetDSN())
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd.Context(), db)
	}
}

func main() {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the run history schema",
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.UpContext(ctx, db, "."); err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.DownContext(ctx, db, "."); err != nil {
					return fmt.Errorf("failed to rollback migration: %w", err)
				}
				fmt.Println("Migration rollback successful")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down-to <version>",
			Short: "Roll back to a specific version",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return withDB(func(ctx context.Context, db *sql.DB) error {
					return goose.DownToContext(ctx, db, ".", version)
				})(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the status of all migrations",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				return goose.StatusContext(ctx, db, ".")
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Roll back all migrations",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.ResetContext(ctx, db, "."); err != nil {
					return fmt.Errorf("failed to reset migrations: %w", err)
				}
				fmt.Println("All migrations have been rolled back")
				return nil
			}),
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
