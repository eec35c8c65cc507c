package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
	repouser "github.com/amirasaad/invochain/pkg/repository/user"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repouser.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) (*dto.UserRead, error) {
	role := create.Role
	if role == "" {
		role = user.RoleInvestor
	}
	u := &User{
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: create.Password,
		FullName:     create.FullName,
		UserType:     string(role),
		Phone:        create.Phone,
		CompanyName:  create.CompanyName,
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	}); err != nil {
		return nil, err
	}
	return mapUserToDTO(u), nil
}

func (r *userRepository) Get(
	ctx context.Context,
	id uint,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserCredentials, error) {
	return r.getCredentials(ctx, "username = ?", username)
}

func (r *userRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserCredentials, error) {
	return r.getCredentials(ctx, "email = ?", email)
}

func (r *userRepository) getCredentials(
	ctx context.Context,
	query string,
	arg any,
) (*dto.UserCredentials, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.UserCredentials{
		UserRead:     *mapUserToDTO(&u),
		PasswordHash: u.PasswordHash,
	}, nil
}

func (r *userRepository) Update(
	ctx context.Context,
	id uint,
	uu *dto.UserUpdate,
) (*dto.UserRead, error) {
	updates := make(map[string]any)

	// Only include non-nil fields in the update
	if uu.FullName != nil {
		updates["full_name"] = *uu.FullName
	}
	if uu.Phone != nil {
		updates["phone"] = *uu.Phone
	}
	if uu.CompanyName != nil {
		updates["company_name"] = *uu.CompanyName
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, MapGormErrorToDomain(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.Get(ctx, id)
}

func (r *userRepository) UpdateLastLogin(
	ctx context.Context,
	id uint,
) error {
	now := r.db.NowFunc()
	res := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_login": now, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(
	ctx context.Context,
	limit, offset int,
) ([]*dto.UserRead, error) {
	var users []User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapUserToDTO(&users[i]))
	}
	return result, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapUserToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        user.Role(u.UserType),
		Phone:       u.Phone,
		CompanyName: u.CompanyName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLogin:   u.LastLogin,
	}
}

var _ repouser.Repository = (*userRepository)(nil)
