package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/config"
	"github.com/paisera/paisera/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run cache database migrations",
		Long: `Initialize or update the local cache schema to the latest version.

The cache is created automatically on first sync; this command exists
for upgrading in place and for troubleshooting.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbPath, err := config.CachePath()
	if err != nil {
		return err
	}

	slog.Info("Running cache migrations", "database", dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Cache schema is at version %d.", storage.ExpectedSchemaVersion)))
	return nil
}
