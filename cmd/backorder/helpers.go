package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/qwicdev/backorder-analyzer/internal/catalog"
	"github.com/qwicdev/backorder-analyzer/internal/config"
	"github.com/qwicdev/backorder-analyzer/internal/storage"
)

// openStore opens the category/link store at the configured directory.
func openStore() (*catalog.Store, error) {
	dir := config.ExpandPath(viper.GetString("store.dir"))
	store, err := catalog.Open(dir, viper.GetInt("categories.default"))
	if err != nil {
		return nil, fmt.Errorf("failed to open category store: %w", err)
	}
	return store, nil
}

// openHistory opens the run-history database at the configured path.
func openHistory() (*storage.SQLiteStorage, error) {
	path := config.ExpandPath(viper.GetString("history.path"))
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	return store, nil
}
