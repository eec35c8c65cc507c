// Package transaction exposes the per-user ledger.
package transaction

import (
	"context"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/domain/transaction"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// ListUserTransactions returns the user's ledger, newest first.
func (s *Service) ListUserTransactions(
	ctx context.Context,
	userID uint,
) (list []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("ListUserTransactions failed", "userID", userID, "error", err)
	}
	return
}

// GetTransaction returns one of the user's ledger entries. Entries owned
// by someone else are reported as not found.
func (s *Service) GetTransaction(
	ctx context.Context,
	userID, id uint,
) (tx *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.Get(ctx, id)
		if err == nil && (tx == nil || tx.UserID != userID) {
			err = transaction.ErrTransactionNotFound
		}
		return err
	})
	if err != nil {
		tx = nil
	}
	return
}
