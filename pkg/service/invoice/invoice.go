// Package invoice provides business logic for receivables submitted for
// financing.
package invoice

import (
	"context"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/domain/invoice"
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

// CreateInvoice fails with invoice.ErrInvoiceNumberExists when the number
// is already taken by any user.
func (s *Service) CreateInvoice(
	ctx context.Context,
	userID uint,
	create *dto.InvoiceCreate,
) (inv *dto.InvoiceRead, err error) {
	log := s.logger.With("context", "CreateInvoice", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		inv, err = repo.Create(ctx, userID, create)
		return err
	})
	if err != nil {
		log.Warn("CreateInvoice failed", "invoiceNumber", create.InvoiceNumber, "error", err)
		return nil, err
	}
	log.Info("Invoice created", "invoiceID", inv.ID)
	return inv, nil
}

func (s *Service) GetInvoice(
	ctx context.Context,
	id uint,
) (inv *dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		inv, err = repo.Get(ctx, id)
		if err == nil && inv == nil {
			err = invoice.ErrInvoiceNotFound
		}
		return err
	})
	if err != nil {
		inv = nil
	}
	return
}

func (s *Service) GetInvoiceByNumber(
	ctx context.Context,
	number string,
) (inv *dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		inv, err = repo.GetByNumber(ctx, number)
		if err == nil && inv == nil {
			err = invoice.ErrInvoiceNotFound
		}
		return err
	})
	if err != nil {
		inv = nil
	}
	return
}

func (s *Service) ListUserInvoices(
	ctx context.Context,
	userID uint,
) (list []*dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	return
}

// ListPending is the marketplace listing. limit <= 0 uses the default cap.
func (s *Service) ListPending(
	ctx context.Context,
	limit int,
) (list []*dto.InvoiceRead, err error) {
	if limit <= 0 {
		limit = invoice.DefaultListLimit
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListPending(ctx, limit)
		return err
	})
	return
}

// Verify marks an invoice verified. Any authenticated user may verify, as
// verification is done by the financing side, not the submitter.
func (s *Service) Verify(
	ctx context.Context,
	id uint,
) (inv *dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		inv, err = repo.Verify(ctx, id)
		if err == nil && inv == nil {
			err = invoice.ErrInvoiceNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoice verified", "invoiceID", id)
	return inv, nil
}

// UpdateStatus moves an invoice to any lifecycle status in the enumerated
// set. Only the owner may change it.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID, id uint,
	status invoice.Status,
) (inv *dto.InvoiceRead, err error) {
	if !status.Valid() {
		return nil, invoice.ErrInvalidStatus
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return invoice.ErrInvoiceNotFound
		}
		if current.UserID != userID {
			return invoice.ErrNotOwner
		}
		inv, err = repo.UpdateStatus(ctx, id, status)
		if err == nil && inv == nil {
			err = invoice.ErrInvoiceNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoice status updated", "invoiceID", id, "status", status)
	return inv, nil
}
