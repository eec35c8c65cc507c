package auth

import (
	"strings"

	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
)

// SignupInput represents the request body for account creation.
type SignupInput struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,bcryptlen"`
	FullName    *string `json:"full_name" validate:"omitempty,max=255"`
	UserType    string  `json:"user_type" validate:"omitempty,oneof=investor sme"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
}

func (in *SignupInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
}

func (in *SignupInput) toDTO() dto.UserCreate {
	return dto.UserCreate{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		FullName:    in.FullName,
		Role:        user.Role(in.UserType),
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
	}
}

// LoginInput represents the request body for user authentication. Identity
// is a username or an email; the email and username keys are accepted as
// aliases.
type LoginInput struct {
	Identity string `json:"identity" validate:"required"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Normalize() {
	in.Identity = strings.TrimSpace(in.Identity)
	if in.Identity == "" {
		in.Identity = strings.TrimSpace(in.Email)
	}
	if in.Identity == "" {
		in.Identity = strings.TrimSpace(in.Username)
	}
}

// UpdateProfileInput represents the request body for a coalescing profile
// update. Omitted fields stay unchanged.
type UpdateProfileInput struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
}
