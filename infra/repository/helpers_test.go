package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/invochain/infra"
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newSQLiteDB returns a migrated, private in-memory database.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.DB{
		Driver: config.DriverSQLite,
		Url:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := infra.NewDBConnection(cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, infra.Migrate(db, cfg, logger))
	return db
}

func ptr[T any](v T) *T { return &v }

func seedUser(t *testing.T, db *gorm.DB, username string) *dto.UserRead {
	t.Helper()
	u, err := NewUserRepository(db).Create(context.Background(), &dto.UserCreate{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$04$notarealhashbutlongenoughforthecolumn",
		Role:     user.RoleInvestor,
	})
	require.NoError(t, err)
	return u
}
