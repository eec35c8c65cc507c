package mocks

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/invoice"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository/invoice"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock implementation of invoice.Repository.
type MockInvoiceRepository struct {
	mock.Mock
}

func NewMockInvoiceRepository(t testingT) *MockInvoiceRepository {
	m := &MockInvoiceRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInvoiceRepository) Create(ctx context.Context, userID uint, create *dto.InvoiceCreate) (*dto.InvoiceRead, error) {
	args := m.Called(ctx, userID, create)
	inv, _ := args.Get(0).(*dto.InvoiceRead)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id uint) (*dto.InvoiceRead, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*dto.InvoiceRead)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, number string) (*dto.InvoiceRead, error) {
	args := m.Called(ctx, number)
	inv, _ := args.Get(0).(*dto.InvoiceRead)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) ListByUser(ctx context.Context, userID uint) ([]*dto.InvoiceRead, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*dto.InvoiceRead)
	return list, args.Error(1)
}

func (m *MockInvoiceRepository) ListPending(ctx context.Context, limit int) ([]*dto.InvoiceRead, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*dto.InvoiceRead)
	return list, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.InvoiceRead, error) {
	args := m.Called(ctx, id, status)
	inv, _ := args.Get(0).(*dto.InvoiceRead)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Verify(ctx context.Context, id uint) (*dto.InvoiceRead, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*dto.InvoiceRead)
	return inv, args.Error(1)
}

var _ invoice.Repository = (*MockInvoiceRepository)(nil)
