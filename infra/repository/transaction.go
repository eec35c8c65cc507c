package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/domain/transaction"
	"github.com/amirasaad/invochain/pkg/dto"
	repotransaction "github.com/amirasaad/invochain/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) repotransaction.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	status := create.Status
	if status == "" {
		status = transaction.StatusPending
	}
	tx := &Transaction{
		UserID:           create.UserID,
		TransactionType:  string(create.Type),
		Amount:           create.Amount,
		BlockchainTxHash: create.BlockchainTxHash,
		Status:           string(status),
	}
	if ref := create.Reference; ref != nil {
		id, typ := ref.ID, string(ref.Type)
		tx.ReferenceID, tx.ReferenceType = &id, &typ
	}
	if status == transaction.StatusConfirmed {
		now := r.db.NowFunc()
		tx.ConfirmedAt = &now
	}
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(tx).Error
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, transaction.ErrTxHashExists
	}
	if err != nil {
		return nil, err
	}
	return mapTransactionToDTO(tx), nil
}

func (r *transactionRepository) Get(
	ctx context.Context,
	id uint,
) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapTransactionToDTO(&tx), nil
}

func (r *transactionRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*dto.TransactionRead, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapTransactionToDTO(&rows[i]))
	}
	return result, nil
}

func (r *transactionRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status transaction.Status,
) (*dto.TransactionRead, error) {
	updates := map[string]any{"status": string(status)}
	if status == transaction.StatusConfirmed {
		updates["confirmed_at"] = r.db.NowFunc()
	}
	res := r.db.WithContext(ctx).Model(&Transaction{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func mapTransactionToDTO(tx *Transaction) *dto.TransactionRead {
	out := &dto.TransactionRead{
		ID:               tx.ID,
		UserID:           tx.UserID,
		Type:             transaction.Type(tx.TransactionType),
		Amount:           tx.Amount,
		BlockchainTxHash: tx.BlockchainTxHash,
		Status:           transaction.Status(tx.Status),
		CreatedAt:        tx.CreatedAt,
		ConfirmedAt:      tx.ConfirmedAt,
	}
	if tx.ReferenceID != nil && tx.ReferenceType != nil {
		out.Reference = &transaction.Reference{
			Type: transaction.ReferenceType(*tx.ReferenceType),
			ID:   *tx.ReferenceID,
		}
	}
	return out
}

var _ repotransaction.Repository = (*transactionRepository)(nil)
