// Package transaction models ledger entries recording monetary events.
package transaction

import (
	"github.com/amirasaad/invochain/pkg/domain"
)

var (
	ErrTransactionNotFound = domain.Wrap(domain.ErrNotFound, "Transaction not found")
	ErrTxHashExists        = domain.Wrap(domain.ErrAlreadyExists, "Transaction hash already exists")
	ErrInvalidStatus       = domain.Wrap(domain.ErrValidation, "Invalid transaction status")
)

type Type string

const (
	TypeInvestment Type = "investment"
	TypePayment    Type = "payment"
	TypeWithdrawal Type = "withdrawal"
	TypeDeposit    Type = "deposit"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInvestment, TypePayment, TypeWithdrawal, TypeDeposit:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

// ReferenceType discriminates what a ledger entry points at.
type ReferenceType string

const (
	RefInvestment ReferenceType = "investment"
	RefInvoice    ReferenceType = "invoice"
)

// Reference is a loose pointer to the entity that caused a ledger entry.
// It is not checked against the referenced table: a dangling reference
// never blocks creating the entry.
type Reference struct {
	Type ReferenceType `json:"type"`
	ID   uint          `json:"id"`
}

func InvestmentRef(id uint) *Reference {
	return &Reference{Type: RefInvestment, ID: id}
}

func InvoiceRef(id uint) *Reference {
	return &Reference{Type: RefInvoice, ID: id}
}
