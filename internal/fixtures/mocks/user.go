package mocks

import (
	"context"

	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	args := m.Called(ctx, create)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id uint) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*dto.UserCredentials, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*dto.UserCredentials)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserCredentials, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*dto.UserCredentials)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, update *dto.UserUpdate) (*dto.UserRead, error) {
	args := m.Called(ctx, id, update)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*dto.UserRead, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]*dto.UserRead)
	return users, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

var _ user.Repository = (*MockUserRepository)(nil)
