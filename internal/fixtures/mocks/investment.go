package mocks

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository/investment"
	"github.com/stretchr/testify/mock"
)

// MockInvestmentRepository is a mock implementation of investment.Repository.
type MockInvestmentRepository struct {
	mock.Mock
}

func NewMockInvestmentRepository(t testingT) *MockInvestmentRepository {
	m := &MockInvestmentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInvestmentRepository) Create(ctx context.Context, userID uint, create *dto.InvestmentCreate) (*dto.InvestmentRead, error) {
	args := m.Called(ctx, userID, create)
	inv, _ := args.Get(0).(*dto.InvestmentRead)
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) Get(ctx context.Context, id uint) (*dto.InvestmentRead, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*dto.InvestmentRead)
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) ListByUser(ctx context.Context, userID uint) ([]*dto.InvestmentRead, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*dto.InvestmentRead)
	return list, args.Error(1)
}

func (m *MockInvestmentRepository) ListActive(ctx context.Context, limit int) ([]*dto.InvestmentRead, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*dto.InvestmentRead)
	return list, args.Error(1)
}

func (m *MockInvestmentRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.InvestmentRead, error) {
	args := m.Called(ctx, id, status)
	inv, _ := args.Get(0).(*dto.InvestmentRead)
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) TotalForUser(ctx context.Context, userID uint) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

var _ investment.Repository = (*MockInvestmentRepository)(nil)
