package investment

import "github.com/amirasaad/invochain/pkg/domain"

var (
	ErrInvestmentNotFound = domain.Wrap(domain.ErrNotFound, "Investment not found")
	ErrInvalidStatus      = domain.Wrap(domain.ErrValidation, "Invalid investment status")
	ErrNotOwner           = domain.Wrap(domain.ErrForbidden, "Not allowed to modify this investment")
)

// Status is the investment lifecycle. Any status may move to any other;
// only membership in the set is enforced.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
	StatusPending   Status = "pending"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusDefaulted, StatusPending:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// CountedStatuses are the statuses included in a user's invested total.
var CountedStatuses = []Status{StatusActive, StatusCompleted}

// DefaultListLimit caps marketplace listings when no limit is given.
const DefaultListLimit = 50
