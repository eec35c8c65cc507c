package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/domain/invoice"
	"github.com/amirasaad/invochain/pkg/dto"
	repoinvoice "github.com/amirasaad/invochain/pkg/repository/invoice"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) repoinvoice.Repository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(
	ctx context.Context,
	userID uint,
	create *dto.InvoiceCreate,
) (*dto.InvoiceRead, error) {
	inv := &Invoice{
		UserID:             userID,
		InvoiceNumber:      create.InvoiceNumber,
		BuyerCompany:       create.BuyerCompany,
		InvoiceAmount:      create.InvoiceAmount,
		DueDate:            create.DueDate,
		Status:             string(invoice.StatusPending),
		VerificationStatus: string(invoice.VerificationUnverified),
		Description:        create.Description,
	}
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(inv).Error
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// invoice_number is the only unique column on invoices.
		return nil, invoice.ErrInvoiceNumberExists
	}
	if err != nil {
		return nil, err
	}
	return mapInvoiceToDTO(inv), nil
}

func (r *invoiceRepository) Get(
	ctx context.Context,
	id uint,
) (*dto.InvoiceRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *invoiceRepository) GetByNumber(
	ctx context.Context,
	number string,
) (*dto.InvoiceRead, error) {
	return r.first(ctx, "invoice_number = ?", number)
}

func (r *invoiceRepository) first(
	ctx context.Context,
	query string,
	arg any,
) (*dto.InvoiceRead, error) {
	var inv Invoice
	if err := r.db.WithContext(ctx).Where(query, arg).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapInvoiceToDTO(&inv), nil
}

func (r *invoiceRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*dto.InvoiceRead, error) {
	var rows []Invoice
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapInvoicesToDTO(rows), nil
}

func (r *invoiceRepository) ListPending(
	ctx context.Context,
	limit int,
) ([]*dto.InvoiceRead, error) {
	if limit <= 0 {
		limit = invoice.DefaultListLimit
	}
	var rows []Invoice
	if err := r.db.WithContext(ctx).
		Where("status = ?", invoice.StatusPending).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapInvoicesToDTO(rows), nil
}

func (r *invoiceRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status invoice.Status,
) (*dto.InvoiceRead, error) {
	updates := map[string]any{"status": string(status)}
	if status == invoice.StatusFunded {
		updates["funded_at"] = r.db.NowFunc()
	}
	return r.update(ctx, id, updates)
}

func (r *invoiceRepository) Verify(
	ctx context.Context,
	id uint,
) (*dto.InvoiceRead, error) {
	return r.update(ctx, id, map[string]any{
		"verification_status": string(invoice.VerificationVerified),
		"verified_at":         r.db.NowFunc(),
	})
}

func (r *invoiceRepository) update(
	ctx context.Context,
	id uint,
	updates map[string]any,
) (*dto.InvoiceRead, error) {
	res := r.db.WithContext(ctx).Model(&Invoice{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func mapInvoicesToDTO(rows []Invoice) []*dto.InvoiceRead {
	result := make([]*dto.InvoiceRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapInvoiceToDTO(&rows[i]))
	}
	return result
}

func mapInvoiceToDTO(inv *Invoice) *dto.InvoiceRead {
	return &dto.InvoiceRead{
		ID:                 inv.ID,
		UserID:             inv.UserID,
		InvoiceNumber:      inv.InvoiceNumber,
		BuyerCompany:       inv.BuyerCompany,
		InvoiceAmount:      inv.InvoiceAmount,
		DueDate:            inv.DueDate,
		Status:             invoice.Status(inv.Status),
		VerificationStatus: invoice.VerificationStatus(inv.VerificationStatus),
		BlockchainTxHash:   inv.BlockchainTxHash,
		Description:        inv.Description,
		CreatedAt:          inv.CreatedAt,
		VerifiedAt:         inv.VerifiedAt,
		FundedAt:           inv.FundedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

var _ repoinvoice.Repository = (*invoiceRepository)(nil)
