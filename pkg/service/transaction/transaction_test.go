package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/invochain/internal/fixtures"
	"github.com/amirasaad/invochain/internal/fixtures/mocks"
	"github.com/amirasaad/invochain/pkg/domain/transaction"
	"github.com/amirasaad/invochain/pkg/dto"
	transactionsvc "github.com/amirasaad/invochain/pkg/service/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionServiceWithMocks(t *testing.T) (*transactionsvc.Service, *mocks.MockTransactionRepository) {
	repo := mocks.NewMockTransactionRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.On("TransactionRepository").Return(repo, nil).Maybe()
	uow.RunInline().Maybe()
	return transactionsvc.New(uow, fixtures.DiscardLogger()), repo
}

func TestListUserTransactions(t *testing.T) {
	t.Parallel()
	svc, repo := newTransactionServiceWithMocks(t)
	repo.On("ListByUser", mock.Anything, uint(1)).
		Return([]*dto.TransactionRead{{ID: 2, UserID: 1}, {ID: 1, UserID: 1}}, nil).Once()
	repo.On("ListByUser", mock.Anything, uint(2)).Return(nil, errors.New("db error")).Once()

	list, err := svc.ListUserTransactions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListUserTransactions(context.Background(), 2)
	require.Error(t, err)
}

func TestGetTransaction(t *testing.T) {
	t.Parallel()

	t.Run("own entry", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTransactionServiceWithMocks(t)
		repo.On("Get", mock.Anything, uint(5)).Return(&dto.TransactionRead{ID: 5, UserID: 1}, nil)
		tx, err := svc.GetTransaction(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), tx.ID)
	})

	t.Run("someone else's entry", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTransactionServiceWithMocks(t)
		repo.On("Get", mock.Anything, uint(5)).Return(&dto.TransactionRead{ID: 5, UserID: 2}, nil)
		tx, err := svc.GetTransaction(context.Background(), 1, 5)
		require.ErrorIs(t, err, transaction.ErrTransactionNotFound)
		assert.Nil(t, tx)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTransactionServiceWithMocks(t)
		repo.On("Get", mock.Anything, uint(5)).Return(nil, nil)
		_, err := svc.GetTransaction(context.Background(), 1, 5)
		require.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	})
}
