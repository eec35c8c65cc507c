// Package mocks holds testify mocks for the repository contracts.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/invochain/pkg/repository"
	"github.com/amirasaad/invochain/pkg/repository/investment"
	"github.com/amirasaad/invochain/pkg/repository/invoice"
	"github.com/amirasaad/invochain/pkg/repository/portfolio"
	"github.com/amirasaad/invochain/pkg/repository/transaction"
	"github.com/amirasaad/invochain/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock implementation of repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a mock whose expectations are asserted when
// the test ends.
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Do returns the configured error, or delegates to a configured
// func(ctx, fn) error.
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

// RunInline makes Do call fn with the mock itself, as a real unit of work
// would with its transaction-bound copy.
func (m *MockUnitOfWork) RunInline() *mock.Call {
	return m.On("Do", mock.Anything, mock.Anything).Return(
		func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(m)
		},
	)
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

func (m *MockUnitOfWork) UserRepository() (user.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(user.Repository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) InvestmentRepository() (investment.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(investment.Repository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) InvoiceRepository() (invoice.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(invoice.Repository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) TransactionRepository() (transaction.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(transaction.Repository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) PortfolioRepository() (portfolio.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(portfolio.Repository)
	return repo, args.Error(1)
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)
