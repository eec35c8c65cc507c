package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/invochain/infra"
	infrarepo "github.com/amirasaad/invochain/infra/repository"
	"github.com/amirasaad/invochain/pkg/app"
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/utils"
)

// InitializeDependencies opens storage, applies the schema and builds the
// shared resources. The caller owns deps.DB and must close it.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logger := setupLogger(cfg.Log)
	return initialize(cfg, logger)
}

func initialize(cfg *config.App, logger *slog.Logger) (*app.Deps, error) {
	deps := &app.Deps{Logger: logger}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "driver", cfg.DB.Driver, "error", err)
		return nil, err
	}
	logger.Info("Database connected", "driver", cfg.DB.Driver)

	if cfg.DB.AutoMigrate {
		if err := infra.Migrate(db, cfg.DB, logger); err != nil {
			_ = infra.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	deps.DB = db
	deps.Uow = infrarepo.NewUoW(db)
	deps.Hasher = utils.NewHasher(cfg.Auth.BcryptCost, cfg.Auth.MaxConcurrentHashes)
	return deps, nil
}
