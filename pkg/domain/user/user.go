// Package user holds the account identity model shared by the auth and user services.
package user

import (
	"github.com/amirasaad/invochain/pkg/domain"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = domain.Wrap(domain.ErrNotFound, "User not found")
	// ErrUserUnauthorized is returned when credentials do not match.
	ErrUserUnauthorized = domain.Wrap(domain.ErrUnauthorized, "Invalid credentials")
	// ErrUsernameExists is returned on a duplicate username.
	ErrUsernameExists = domain.Wrap(domain.ErrAlreadyExists, "Username already exists")
	// ErrEmailExists is returned on a duplicate email.
	ErrEmailExists = domain.Wrap(domain.ErrAlreadyExists, "Email already exists")
	// ErrUserExists is returned when the storage engine rejects the insert
	// as a duplicate without telling which column collided.
	ErrUserExists = domain.Wrap(domain.ErrAlreadyExists, "User already exists")
	// ErrInvalidRole is returned for a role outside investor/sme.
	ErrInvalidRole = domain.Wrap(domain.ErrValidation, "Invalid user type")
	// ErrPasswordTooLong is returned for a password over bcrypt's 72 bytes.
	ErrPasswordTooLong = domain.Wrap(domain.ErrValidation, "Password must be at most 72 bytes")
)

// Role is the fixed account type chosen at signup.
type Role string

const (
	RoleInvestor Role = "investor"
	RoleSME      Role = "sme"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleInvestor, RoleSME:
		return true
	}
	return false
}

// ParseRole defaults an empty role to investor.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleInvestor, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
