package infra

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate brings the schema for the configured driver up to date.
//
// PostgreSQL migrations run on a dedicated handle so that closing the
// migrator does not close the application pool. SQLite is pinned to a
// single connection, so its migrator shares db and is left open.
func Migrate(db *gorm.DB, cnf *config.DB, logger *slog.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/"+cnf.Driver)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	var m *migrate.Migrate
	switch cnf.Driver {
	case config.DriverPostgres:
		pgDB, err := sql.Open("pgx", cnf.Url)
		if err != nil {
			return err
		}
		driver, err := migratepostgres.WithInstance(pgDB, &migratepostgres.Config{})
		if err != nil {
			_ = pgDB.Close()
			return err
		}
		m, err = migrate.NewWithInstance("iofs", src, "postgres", driver)
		if err != nil {
			_ = pgDB.Close()
			return err
		}
		defer func() {
			if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
				logger.Warn("Failed to close migrator", "source_error", srcErr, "db_error", dbErr)
			}
		}()
	case config.DriverSQLite:
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if err != nil {
			return err
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cnf.Driver)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Info("Database schema up to date", "driver", cnf.Driver, "version", version, "dirty", dirty)
	return nil
}
