package dto

import (
	"time"

	"github.com/amirasaad/invochain/pkg/domain/transaction"
)

// TransactionCreate represents a new ledger entry.
type TransactionCreate struct {
	UserID           uint                   `json:"user_id"`
	Type             transaction.Type       `json:"transaction_type"`
	Amount           float64                `json:"amount"`
	BlockchainTxHash *string                `json:"blockchain_tx_hash,omitempty"`
	Status           transaction.Status     `json:"status"`
	Reference        *transaction.Reference `json:"reference,omitempty"`
}

type TransactionRead struct {
	ID               uint                   `json:"id"`
	UserID           uint                   `json:"user_id"`
	Type             transaction.Type       `json:"transaction_type"`
	Amount           float64                `json:"amount"`
	BlockchainTxHash *string                `json:"blockchain_tx_hash"`
	Status           transaction.Status     `json:"status"`
	Reference        *transaction.Reference `json:"reference"`
	CreatedAt        time.Time              `json:"created_at"`
	ConfirmedAt      *time.Time             `json:"confirmed_at"`
}
