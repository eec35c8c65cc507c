package invoice

import (
	"strings"

	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/webapi/common"
)

// CreateInvoiceInput represents the request body for a new invoice.
type CreateInvoiceInput struct {
	InvoiceNumber string        `json:"invoice_number" validate:"required,max=100"`
	BuyerCompany  string        `json:"buyer_company" validate:"required,max=255"`
	InvoiceAmount common.Number `json:"invoice_amount" validate:"gte=0.01"`
	DueDate       string        `json:"due_date" validate:"required,iso8601"`
	Description   *string       `json:"description"`
}

func (in *CreateInvoiceInput) Normalize() {
	in.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)
	in.BuyerCompany = strings.TrimSpace(in.BuyerCompany)
}

// toDTO assumes the input passed validation.
func (in *CreateInvoiceInput) toDTO() *dto.InvoiceCreate {
	amount, _ := in.InvoiceAmount.Float64()
	due, _ := common.ParseDate(in.DueDate)
	return &dto.InvoiceCreate{
		InvoiceNumber: in.InvoiceNumber,
		BuyerCompany:  in.BuyerCompany,
		InvoiceAmount: amount,
		DueDate:       due,
		Description:   in.Description,
	}
}

// UpdateStatusInput represents the request body for a lifecycle change.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending verified funded paid rejected"`
}
