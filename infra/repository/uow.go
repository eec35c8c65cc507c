package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/invochain/pkg/repository"
	"github.com/amirasaad/invochain/pkg/repository/investment"
	"github.com/amirasaad/invochain/pkg/repository/invoice"
	"github.com/amirasaad/invochain/pkg/repository/portfolio"
	"github.com/amirasaad/invochain/pkg/repository/transaction"
	"github.com/amirasaad/invochain/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// The same implementation serves PostgreSQL and SQLite; only the dialector
// behind db differs.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*user.Repository)(nil)).Elem():        func(db *gorm.DB) any { return NewUserRepository(db) },
			reflect.TypeOf((*investment.Repository)(nil)).Elem():  func(db *gorm.DB) any { return NewInvestmentRepository(db) },
			reflect.TypeOf((*invoice.Repository)(nil)).Elem():     func(db *gorm.DB) any { return NewInvoiceRepository(db) },
			reflect.TypeOf((*transaction.Repository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
			reflect.TypeOf((*portfolio.Repository)(nil)).Elem():   func(db *gorm.DB) any { return NewPortfolioRepository(db) },
		},
	}
}

// Do runs fn in a transaction boundary. A Do nested inside another Do
// becomes a savepoint on the outer transaction rather than a second
// connection, which would deadlock a single-connection SQLite pool.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	base := u.db
	if u.tx != nil {
		base = u.tx
	}
	return base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns a repository bound to the current transaction, or
// to the pool when called outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return getTyped[user.Repository](u)
}

func (u *UoW) InvestmentRepository() (investment.Repository, error) {
	return getTyped[investment.Repository](u)
}

func (u *UoW) InvoiceRepository() (invoice.Repository, error) {
	return getTyped[invoice.Repository](u)
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return getTyped[transaction.Repository](u)
}

func (u *UoW) PortfolioRepository() (portfolio.Repository, error) {
	return getTyped[portfolio.Repository](u)
}

func getTyped[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
