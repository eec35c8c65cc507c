package investment

import (
	"context"

	domain "github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/dto"
)

// Repository defines data access for investments.
type Repository interface {
	// Create persists an investment with status active, dated now.
	Create(ctx context.Context, userID uint, create *dto.InvestmentCreate) (*dto.InvestmentRead, error)

	// Get returns nil, nil when no investment has the id.
	Get(ctx context.Context, id uint) (*dto.InvestmentRead, error)

	// ListByUser returns the user's investments, newest investment_date first.
	ListByUser(ctx context.Context, userID uint) ([]*dto.InvestmentRead, error)

	// ListActive is the cross-user marketplace listing of active investments.
	ListActive(ctx context.Context, limit int) ([]*dto.InvestmentRead, error)

	// UpdateStatus returns nil, nil when no investment has the id.
	UpdateStatus(ctx context.Context, id uint, status domain.Status) (*dto.InvestmentRead, error)

	// TotalForUser sums amounts of active and completed investments; 0 when none.
	TotalForUser(ctx context.Context, userID uint) (float64, error)
}
