package invoice

import "github.com/amirasaad/invochain/pkg/domain"

var (
	ErrInvoiceNotFound     = domain.Wrap(domain.ErrNotFound, "Invoice not found")
	ErrInvoiceNumberExists = domain.Wrap(domain.ErrAlreadyExists, "Invoice number already exists")
	ErrInvalidStatus       = domain.Wrap(domain.ErrValidation, "Invalid invoice status")
	ErrNotOwner            = domain.Wrap(domain.ErrForbidden, "Not allowed to modify this invoice")
)

// Status is the financing lifecycle of an invoice. It is independent of
// VerificationStatus.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusFunded   Status = "funded"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusFunded, StatusPaid, StatusRejected:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationUnverified, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

const DefaultListLimit = 50
