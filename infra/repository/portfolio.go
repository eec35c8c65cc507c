package repository

import (
	"context"

	"github.com/amirasaad/invochain/pkg/dto"
	repoportfolio "github.com/amirasaad/invochain/pkg/repository/portfolio"
	"gorm.io/gorm"
)

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) repoportfolio.Repository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*dto.PortfolioRead, error) {
	var rows []Portfolio
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.PortfolioRead, 0, len(rows))
	for _, p := range rows {
		result = append(result, &dto.PortfolioRead{
			ID:               p.ID,
			UserID:           p.UserID,
			InvestmentID:     p.InvestmentID,
			CurrentValue:     p.CurrentValue,
			ProfitLoss:       p.ProfitLoss,
			ReturnPercentage: p.ReturnPercentage,
			UpdatedAt:        p.UpdatedAt,
		})
	}
	return result, nil
}

var _ repoportfolio.Repository = (*portfolioRepository)(nil)
