package investment

import (
	"strings"

	"github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/webapi/common"
)

// CreateInvestmentInput represents the request body for a new investment.
type CreateInvestmentInput struct {
	CompanyName    string        `json:"company_name" validate:"required,max=255"`
	Amount         common.Number `json:"amount" validate:"gte=0.01"`
	ExpectedReturn common.Number `json:"expected_return" validate:"omitempty,gte=0,lte=100"`
	RiskLevel      *string       `json:"risk_level" validate:"omitempty,oneof=low medium high"`
	MaturityDate   *string       `json:"maturity_date" validate:"omitempty,iso8601"`
	Description    *string       `json:"description"`
}

func (in *CreateInvestmentInput) Normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
}

func (in *CreateInvestmentInput) toDTO() *dto.InvestmentCreate {
	amount, _ := in.Amount.Float64()
	out := &dto.InvestmentCreate{
		CompanyName:    in.CompanyName,
		Amount:         amount,
		ExpectedReturn: in.ExpectedReturn.Ptr(),
		Description:    in.Description,
	}
	if in.RiskLevel != nil {
		rl := investment.RiskLevel(*in.RiskLevel)
		out.RiskLevel = &rl
	}
	if in.MaturityDate != nil {
		if d, err := common.ParseDate(*in.MaturityDate); err == nil {
			out.MaturityDate = &d
		}
	}
	return out
}

// UpdateStatusInput represents the request body for a status change.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active completed defaulted pending"`
}
