// Package user provides business logic for user management operations.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository"
	"github.com/amirasaad/invochain/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Service provides business logic for user operations including creation,
// profile updates and deletion.
type Service struct {
	uow    repository.UnitOfWork
	hasher *utils.Hasher
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork, password hasher and logger.
func New(
	uow repository.UnitOfWork,
	hasher *utils.Hasher,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		hasher: hasher,
		logger: logger,
	}
}

// CreateUser hashes create.Password and stores the account. The plaintext
// never reaches the repository.
func (s *Service) CreateUser(
	ctx context.Context,
	create dto.UserCreate,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "CreateUser", "username", create.Username)
	if create.Role == "" {
		create.Role = user.RoleInvestor
	}
	if !create.Role.Valid() {
		return nil, user.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(ctx, create.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, user.ErrPasswordTooLong
	}
	if err != nil {
		log.Error("Failed to hash password", "error", err)
		return nil, err
	}
	create.Password = hash

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		// Checked up front so the caller learns which field collided. The
		// unique constraints still catch a racing insert.
		if exists, err := repo.ExistsByUsername(ctx, create.Username); err != nil {
			return err
		} else if exists {
			return user.ErrUsernameExists
		}
		if exists, err := repo.ExistsByEmail(ctx, create.Email); err != nil {
			return err
		} else if exists {
			return user.ErrEmailExists
		}
		u, err = repo.Create(ctx, &create)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return user.ErrUserExists
		}
		return err
	})
	if err != nil {
		log.Warn("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("User created", "userID", u.ID)
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uint,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

// UpdateUser applies a coalescing profile update and returns the result.
func (s *Service) UpdateUser(
	ctx context.Context,
	userID uint,
	update *dto.UserUpdate,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Update(ctx, userID, update)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdateUser failed", "userID", userID, "error", err)
		u = nil
	}
	return
}

// DeleteUser deletes a user and everything the user owns.
func (s *Service) DeleteUser(
	ctx context.Context,
	userID uint,
) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return repo.Delete(ctx, userID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("User deleted", "userID", userID)
	return nil
}

// ListUsers returns users newest first.
func (s *Service) ListUsers(
	ctx context.Context,
	limit, offset int,
) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.List(ctx, limit, offset)
		return err
	})
	return
}

func (s *Service) CountUsers(ctx context.Context) (count int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		count, err = repo.Count(ctx)
		return err
	})
	return
}

// VerifyCredential reports whether password matches hash. It never errors.
func (s *Service) VerifyCredential(ctx context.Context, password, hash string) bool {
	return s.hasher.Compare(ctx, password, hash)
}
