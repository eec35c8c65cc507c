package dto

import (
	"time"

	"github.com/amirasaad/invochain/pkg/domain/investment"
)

// InvestmentCreate carries a validated investment submission.
type InvestmentCreate struct {
	CompanyName    string                `json:"company_name"`
	Amount         float64               `json:"amount"`
	ExpectedReturn *float64              `json:"expected_return,omitempty"`
	RiskLevel      *investment.RiskLevel `json:"risk_level,omitempty"`
	MaturityDate   *time.Time            `json:"maturity_date,omitempty"`
	Description    *string               `json:"description,omitempty"`
}

type InvestmentRead struct {
	ID               uint                  `json:"id"`
	UserID           uint                  `json:"user_id"`
	CompanyName      string                `json:"company_name"`
	Amount           float64               `json:"amount"`
	ExpectedReturn   *float64              `json:"expected_return"`
	RiskLevel        *investment.RiskLevel `json:"risk_level"`
	Status           investment.Status     `json:"status"`
	InvestmentDate   time.Time             `json:"investment_date"`
	MaturityDate     *time.Time            `json:"maturity_date"`
	BlockchainTxHash *string               `json:"blockchain_tx_hash"`
	Description      *string               `json:"description"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
