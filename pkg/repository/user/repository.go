package user

import (
	"context"

	"github.com/amirasaad/invochain/pkg/dto"
)

// Repository defines data access for user accounts.
//
// Get and List return the credential-free projection. Only GetByUsername and
// GetByEmail expose the password hash, for the login path.
type Repository interface {
	// Create inserts a user. create.Password must already be hashed.
	Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error)

	// Get returns nil, nil when no user has the id.
	Get(ctx context.Context, id uint) (*dto.UserRead, error)

	GetByUsername(ctx context.Context, username string) (*dto.UserCredentials, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserCredentials, error)

	// Update applies the non-nil fields of update and returns the fresh row.
	Update(ctx context.Context, id uint, update *dto.UserUpdate) (*dto.UserRead, error)

	UpdateLastLogin(ctx context.Context, id uint) error

	// Delete removes the user and, through the foreign keys, everything it owns.
	Delete(ctx context.Context, id uint) error

	// List returns users newest first.
	List(ctx context.Context, limit, offset int) ([]*dto.UserRead, error)
	Count(ctx context.Context) (int64, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
