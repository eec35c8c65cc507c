package invoice

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/invoice"
	"github.com/amirasaad/invochain/pkg/dto"
)

// Repository defines data access for invoices. Listings are newest first.
type Repository interface {
	// Create fails with invoice.ErrInvoiceNumberExists on a duplicate number.
	Create(ctx context.Context, userID uint, create *dto.InvoiceCreate) (*dto.InvoiceRead, error)

	// Get returns nil, nil when no invoice has the id.
	Get(ctx context.Context, id uint) (*dto.InvoiceRead, error)
	GetByNumber(ctx context.Context, number string) (*dto.InvoiceRead, error)

	ListByUser(ctx context.Context, userID uint) ([]*dto.InvoiceRead, error)

	// ListPending is the cross-user marketplace listing of pending invoices.
	ListPending(ctx context.Context, limit int) ([]*dto.InvoiceRead, error)

	// UpdateStatus stamps funded_at when moving to funded.
	UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.InvoiceRead, error)

	// Verify marks the invoice verified and stamps verified_at. The
	// lifecycle status is left alone.
	Verify(ctx context.Context, id uint) (*dto.InvoiceRead, error)
}
