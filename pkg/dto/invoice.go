package dto

import (
	"time"

	"github.com/amirasaad/invochain/pkg/domain/invoice"
)

// InvoiceCreate carries a validated invoice submission.
type InvoiceCreate struct {
	InvoiceNumber string    `json:"invoice_number"`
	BuyerCompany  string    `json:"buyer_company"`
	InvoiceAmount float64   `json:"invoice_amount"`
	DueDate       time.Time `json:"due_date"`
	Description   *string   `json:"description,omitempty"`
}

type InvoiceRead struct {
	ID                 uint                       `json:"id"`
	UserID             uint                       `json:"user_id"`
	InvoiceNumber      string                     `json:"invoice_number"`
	BuyerCompany       string                     `json:"buyer_company"`
	InvoiceAmount      float64                    `json:"invoice_amount"`
	DueDate            time.Time                  `json:"due_date"`
	Status             invoice.Status             `json:"status"`
	VerificationStatus invoice.VerificationStatus `json:"verification_status"`
	BlockchainTxHash   *string                    `json:"blockchain_tx_hash"`
	Description        *string                    `json:"description"`
	CreatedAt          time.Time                  `json:"created_at"`
	VerifiedAt         *time.Time                 `json:"verified_at"`
	FundedAt           *time.Time                 `json:"funded_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}
