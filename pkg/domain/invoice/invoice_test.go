package invoice

import (
	"testing"

	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{StatusPending, StatusVerified, StatusFunded, StatusPaid, StatusRejected} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("overdue").Valid())
}

func TestVerificationStatusValid(t *testing.T) {
	t.Parallel()
	for _, v := range []VerificationStatus{VerificationUnverified, VerificationVerified, VerificationRejected} {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, VerificationStatus("pending").Valid())
}

func TestConflictMessage(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, ErrInvoiceNumberExists, domain.ErrAlreadyExists)
	assert.Equal(t, "Invoice number already exists", ErrInvoiceNumberExists.Error())
}
