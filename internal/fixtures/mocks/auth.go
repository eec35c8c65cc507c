package mocks

import (
	"context"

	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockAuthStrategy is a mock implementation of auth.Strategy.
type MockAuthStrategy struct {
	mock.Mock
}

func NewMockAuthStrategy(t testingT) *MockAuthStrategy {
	m := &MockAuthStrategy{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthStrategy) Login(ctx context.Context, identity, password string) (*dto.UserRead, error) {
	args := m.Called(ctx, identity, password)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockAuthStrategy) GenerateToken(ctx context.Context, u *dto.UserRead) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockAuthStrategy) Identity(token *jwt.Token) (*auth.Identity, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(*auth.Identity)
	return id, args.Error(1)
}

var _ auth.Strategy = (*MockAuthStrategy)(nil)
