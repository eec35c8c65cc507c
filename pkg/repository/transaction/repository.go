package transaction

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/transaction"
	"github.com/amirasaad/invochain/pkg/dto"
)

// Repository defines data access for ledger entries.
type Repository interface {
	Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error)

	// Get returns nil, nil when no entry has the id.
	Get(ctx context.Context, id uint) (*dto.TransactionRead, error)

	// ListByUser returns the user's ledger, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*dto.TransactionRead, error)

	// UpdateStatus stamps confirmed_at when moving to confirmed.
	UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.TransactionRead, error)
}
