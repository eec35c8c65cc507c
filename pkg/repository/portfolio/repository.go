package portfolio

import (
	"context"

	"github.com/amirasaad/invochain/pkg/dto"
)

// Repository reads portfolio snapshots. Rows are maintained outside this
// service, so there are no write operations.
type Repository interface {
	ListByUser(ctx context.Context, userID uint) ([]*dto.PortfolioRead, error)
}
