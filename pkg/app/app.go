// Package app wires the services that the HTTP surface and the CLI share.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/repository"
	"github.com/amirasaad/invochain/pkg/service/auth"
	"github.com/amirasaad/invochain/pkg/service/investment"
	"github.com/amirasaad/invochain/pkg/service/invoice"
	"github.com/amirasaad/invochain/pkg/service/portfolio"
	"github.com/amirasaad/invochain/pkg/service/transaction"
	"github.com/amirasaad/invochain/pkg/service/user"
	"github.com/amirasaad/invochain/pkg/utils"
	"gorm.io/gorm"
)

// Deps contains the process-wide resources built once at start-up.
type Deps struct {
	Uow    repository.UnitOfWork
	DB     *gorm.DB
	Hasher *utils.Hasher
	Logger *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	UserService        *user.Service
	InvestmentService  *investment.Service
	InvoiceService     *invoice.Service
	TransactionService *transaction.Service
	PortfolioService   *portfolio.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.NewWithJWT(deps.Uow, deps.Hasher, cfg.Auth.Jwt, deps.Logger),
		UserService:        user.New(deps.Uow, deps.Hasher, deps.Logger),
		InvestmentService:  investment.New(deps.Uow, deps.Logger),
		InvoiceService:     invoice.New(deps.Uow, deps.Logger),
		TransactionService: transaction.New(deps.Uow, deps.Logger),
		PortfolioService:   portfolio.New(deps.Uow, deps.Logger),
	}
}

// Bootstrap runs the optional start-up data tasks.
func (a *App) Bootstrap(ctx context.Context) error {
	if a.Config.DB == nil || !a.Config.DB.SeedDemo {
		return nil
	}
	n, err := a.UserService.SeedDemoUsers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		a.Deps.Logger.Info("Demo users seeded", "count", n)
	}
	return nil
}
