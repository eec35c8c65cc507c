package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/dto"
	repoinvestment "github.com/amirasaad/invochain/pkg/repository/investment"
	"gorm.io/gorm"
)

type investmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) repoinvestment.Repository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(
	ctx context.Context,
	userID uint,
	create *dto.InvestmentCreate,
) (*dto.InvestmentRead, error) {
	inv := &Investment{
		UserID:         userID,
		CompanyName:    create.CompanyName,
		Amount:         create.Amount,
		ExpectedReturn: create.ExpectedReturn,
		Status:         string(investment.StatusActive),
		InvestmentDate: r.db.NowFunc(),
		MaturityDate:   create.MaturityDate,
		Description:    create.Description,
	}
	if create.RiskLevel != nil {
		rl := string(*create.RiskLevel)
		inv.RiskLevel = &rl
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(inv).Error
	}); err != nil {
		return nil, err
	}
	return mapInvestmentToDTO(inv), nil
}

func (r *investmentRepository) Get(
	ctx context.Context,
	id uint,
) (*dto.InvestmentRead, error) {
	var inv Investment
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapInvestmentToDTO(&inv), nil
}

func (r *investmentRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*dto.InvestmentRead, error) {
	var rows []Investment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("investment_date DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapInvestmentsToDTO(rows), nil
}

func (r *investmentRepository) ListActive(
	ctx context.Context,
	limit int,
) ([]*dto.InvestmentRead, error) {
	if limit <= 0 {
		limit = investment.DefaultListLimit
	}
	var rows []Investment
	if err := r.db.WithContext(ctx).
		Where("status = ?", investment.StatusActive).
		Order("investment_date DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapInvestmentsToDTO(rows), nil
}

func (r *investmentRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status investment.Status,
) (*dto.InvestmentRead, error) {
	res := r.db.WithContext(ctx).Model(&Investment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *investmentRepository) TotalForUser(
	ctx context.Context,
	userID uint,
) (float64, error) {
	statuses := make([]string, 0, len(investment.CountedStatuses))
	for _, s := range investment.CountedStatuses {
		statuses = append(statuses, string(s))
	}
	var total float64
	err := r.db.WithContext(ctx).Model(&Investment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status IN ?", userID, statuses).
		Scan(&total).Error
	return total, err
}

func mapInvestmentsToDTO(rows []Investment) []*dto.InvestmentRead {
	result := make([]*dto.InvestmentRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapInvestmentToDTO(&rows[i]))
	}
	return result
}

func mapInvestmentToDTO(inv *Investment) *dto.InvestmentRead {
	out := &dto.InvestmentRead{
		ID:               inv.ID,
		UserID:           inv.UserID,
		CompanyName:      inv.CompanyName,
		Amount:           inv.Amount,
		ExpectedReturn:   inv.ExpectedReturn,
		Status:           investment.Status(inv.Status),
		InvestmentDate:   inv.InvestmentDate,
		MaturityDate:     inv.MaturityDate,
		BlockchainTxHash: inv.BlockchainTxHash,
		Description:      inv.Description,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
	if inv.RiskLevel != nil {
		rl := investment.RiskLevel(*inv.RiskLevel)
		out.RiskLevel = &rl
	}
	return out
}

var _ repoinvestment.Repository = (*investmentRepository)(nil)
