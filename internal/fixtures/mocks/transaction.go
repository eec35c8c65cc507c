package mocks

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/transaction"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository/portfolio"
	"github.com/amirasaad/invochain/pkg/repository/transaction"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of transaction.Repository.
type MockTransactionRepository struct {
	mock.Mock
}

func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*dto.TransactionRead)
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) Get(ctx context.Context, id uint) (*dto.TransactionRead, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*dto.TransactionRead)
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*dto.TransactionRead)
	return list, args.Error(1)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.TransactionRead, error) {
	args := m.Called(ctx, id, status)
	tx, _ := args.Get(0).(*dto.TransactionRead)
	return tx, args.Error(1)
}

// MockPortfolioRepository is a mock implementation of portfolio.Repository.
type MockPortfolioRepository struct {
	mock.Mock
}

func NewMockPortfolioRepository(t testingT) *MockPortfolioRepository {
	m := &MockPortfolioRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPortfolioRepository) ListByUser(ctx context.Context, userID uint) ([]*dto.PortfolioRead, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*dto.PortfolioRead)
	return list, args.Error(1)
}

var (
	_ transaction.Repository = (*MockTransactionRepository)(nil)
	_ portfolio.Repository   = (*MockPortfolioRepository)(nil)
)
