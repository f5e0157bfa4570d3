// Package testutil opens throwaway sqlite databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/justsurfingit/job-board-api/internal/config"
	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewDB returns a migrated sqlite database living in t's temp dir.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "jobboard.db")
	cfg.Database.LogLevel = "silent"
	// a single connection keeps sqlite writers from tripping over each other
	cfg.Database.MaxOpenConns = 1

	db, err := database.Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// NewStore wraps NewDB in a Store.
func NewStore(t *testing.T) *database.Store {
	t.Helper()
	return database.NewStore(NewDB(t))
}
