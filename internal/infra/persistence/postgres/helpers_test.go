package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens an in-memory SQLite database limited to one connection so
// every session shares the same schema and pool usage is observable.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = configure(db, newDiscardLogger(), nil)
	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func inUseConnections(t *testing.T, db *gorm.DB) int {
	t.Helper()

	sqlDB, err := db.DB()
	require.NoError(t, err)

	return sqlDB.Stats().InUse
}
