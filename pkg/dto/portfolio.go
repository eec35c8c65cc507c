package dto

import "time"

// PortfolioRead is one valuation snapshot for a (user, investment) pair.
type PortfolioRead struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	InvestmentID     uint      `json:"investment_id"`
	CurrentValue     *float64  `json:"current_value"`
	ProfitLoss       *float64  `json:"profit_loss"`
	ReturnPercentage *float64  `json:"return_percentage"`
	UpdatedAt        time.Time `json:"updated_at"`
}
