package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/invochain/pkg/repository/investment"
	"github.com/amirasaad/invochain/pkg/repository/invoice"
	"github.com/amirasaad/invochain/pkg/repository/portfolio"
	"github.com/amirasaad/invochain/pkg/repository/transaction"
	"github.com/amirasaad/invochain/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access.
//
// Every repository handed out inside Do is bound to the same session, so
// writes made through different repositories commit or roll back together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error,
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current session.
	//   repoAny, err := uow.GetRepository(reflect.TypeOf((*user.Repository)(nil)).Elem())
	GetRepository(repoType reflect.Type) (any, error)

	UserRepository() (user.Repository, error)
	InvestmentRepository() (investment.Repository, error)
	InvoiceRepository() (invoice.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	PortfolioRepository() (portfolio.Repository, error)
}
