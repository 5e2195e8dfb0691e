package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/paisera/paisera/internal/api"
	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/config"
	"github.com/paisera/paisera/internal/storage"
)

// initStorage opens the local cache and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := config.CachePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newAPIClient builds an authenticated backend client from config.
func newAPIClient() (*api.Client, error) {
	token := config.APIToken()
	if token == "" {
		return nil, common.NewUserError(
			"No session token configured. Run 'paisera login' first.",
			common.ErrMissingConfig,
		)
	}

	return api.NewClient(viper.GetString("api.base_url"), token)
}
