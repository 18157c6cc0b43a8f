package main

import (
	"fmt"
	"strconv"

	"github.com/best-life-api/internal/database"
	"github.com/spf13/cobra"
)

var migrationsPath string

// migrateCmd groups the schema migration commands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *database.DB, path string) error {
			return db.RunMigrations(path)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *database.DB, path string) error {
			return db.MigrateDown(path)
		})
	},
}

var migrateGotoCmd = &cobra.Command{
	Use:   "goto VERSION",
	Short: "Migrate up or down to VERSION",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		return withDB(func(db *database.DB, path string) error {
			return db.MigrateToVersion(path, uint(version))
		})
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "Migrations directory (default MIGRATIONS_PATH)")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateGotoCmd)
}

func withDB(fn func(db *database.DB, path string) error) error {
	cfg, log, err := setup("best-life-migrate")
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	path := migrationsPath
	if path == "" {
		path = cfg.Server.MigrationsPath
	}
	return fn(db, path)
}
