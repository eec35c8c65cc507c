// Package fixtures provides test helpers shared across packages.
package fixtures

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/invochain/infra"
	infrarepo "github.com/amirasaad/invochain/infra/repository"
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DiscardLogger drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SQLiteConfig points at a private in-memory database.
func SQLiteConfig() *config.DB {
	return &config.DB{
		Driver:      config.DriverSQLite,
		Url:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		AutoMigrate: true,
	}
}

// NewSQLiteDB returns a migrated in-memory database closed at test end.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := SQLiteConfig()
	db, err := infra.NewDBConnection(cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	require.NoError(t, infra.Migrate(db, cfg, DiscardLogger()))
	return db
}

// NewSQLiteUoW returns a unit of work over a fresh in-memory database.
func NewSQLiteUoW(t testing.TB) (*infrarepo.UoW, *gorm.DB) {
	t.Helper()
	db := NewSQLiteDB(t)
	return infrarepo.NewUoW(db), db
}
