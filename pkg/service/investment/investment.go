// Package investment provides business logic for capital commitments.
package investment

import (
	"context"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/domain/investment"
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

// CreateInvestment stores the investment and records a pending ledger
// entry pointing at it. Both rows commit together.
func (s *Service) CreateInvestment(
	ctx context.Context,
	userID uint,
	create *dto.InvestmentCreate,
) (inv *dto.InvestmentRead, err error) {
	log := s.logger.With("context", "CreateInvestment", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		inv, err = repo.Create(ctx, userID, create)
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		_, err = txRepo.Create(ctx, &dto.TransactionCreate{
			UserID:    userID,
			Type:      transaction.TypeInvestment,
			Amount:    inv.Amount,
			Status:    transaction.StatusPending,
			Reference: transaction.InvestmentRef(inv.ID),
		})
		return err
	})
	if err != nil {
		log.Error("CreateInvestment failed", "error", err)
		return nil, err
	}
	log.Info("Investment created", "investmentID", inv.ID, "amount", inv.Amount)
	return inv, nil
}

func (s *Service) GetInvestment(
	ctx context.Context,
	id uint,
) (inv *dto.InvestmentRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		inv, err = repo.Get(ctx, id)
		if err == nil && inv == nil {
			err = investment.ErrInvestmentNotFound
		}
		return err
	})
	if err != nil {
		inv = nil
	}
	return
}

// ListUserInvestments returns the user's investments, newest first.
func (s *Service) ListUserInvestments(
	ctx context.Context,
	userID uint,
) (list []*dto.InvestmentRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	return
}

// ListActive is the marketplace listing. limit <= 0 uses the default cap.
func (s *Service) ListActive(
	ctx context.Context,
	limit int,
) (list []*dto.InvestmentRead, err error) {
	if limit <= 0 {
		limit = investment.DefaultListLimit
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListActive(ctx, limit)
		return err
	})
	return
}

// UpdateStatus moves an investment to any status in the enumerated set.
// Only the owner may change it.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID, id uint,
	status investment.Status,
) (inv *dto.InvestmentRead, err error) {
	if !status.Valid() {
		return nil, investment.ErrInvalidStatus
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return investment.ErrInvestmentNotFound
		}
		if current.UserID != userID {
			return investment.ErrNotOwner
		}
		inv, err = repo.UpdateStatus(ctx, id, status)
		if err == nil && inv == nil {
			err = investment.ErrInvestmentNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Investment status updated", "investmentID", id, "status", status)
	return inv, nil
}

// TotalInvested sums the user's active and completed investments.
func (s *Service) TotalInvested(
	ctx context.Context,
	userID uint,
) (total float64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		total, err = repo.TotalForUser(ctx, userID)
		return err
	})
	return
}
