package dto

import (
	"time"

	"github.com/amirasaad/invochain/pkg/domain/user"
)

// UserCreate represents the data needed to create a new user.
// Password must already be hashed when it reaches a repository.
type UserCreate struct {
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	FullName    *string   `json:"full_name,omitempty"`
	Role        user.Role `json:"user_type"`
	Phone       *string   `json:"phone,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
}

// UserUpdate carries profile fields to change. A nil field keeps its stored value.
type UserUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// UserRead is the credential-free projection of a user.
type UserRead struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name"`
	Role        user.Role  `json:"user_type"`
	Phone       *string    `json:"phone"`
	CompanyName *string    `json:"company_name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLogin   *time.Time `json:"last_login"`
}

// UserCredentials is the full row, hash included. Only the login path
// reads users through this projection.
type UserCredentials struct {
	UserRead
	PasswordHash string `json:"-"`
}
