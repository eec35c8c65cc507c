package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/repository"
	"github.com/amirasaad/invochain/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the authentication gate attaches to a request.
type Identity struct {
	UserID uint
	Role   user.Role
}

type Strategy interface {
	Login(ctx context.Context, identity, password string) (*dto.UserRead, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
	Identity(token *jwt.Token) (*Identity, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{strategy: strategy, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	hasher *utils.Hasher,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(uow, hasher, cfg, logger), logger)
}

func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "identity", identity)
	u, err = s.strategy.Login(ctx, identity, password)
	if err == nil && u == nil {
		err = user.ErrUserUnauthorized
	}
	if err != nil {
		log.Warn("Login failed", "identity", identity, "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// Identity resolves a verified token to the caller's identity.
func (s *Service) Identity(token *jwt.Token) (*Identity, error) {
	return s.strategy.Identity(token)
}

// JWTStrategy issues and reads HS256 tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	hasher *utils.Hasher
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	hasher *utils.Hasher,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, hasher: hasher, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID
	claims["username"] = u.Username
	claims["email"] = u.Email
	claims["role"] = string(u.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// dummyHash is compared against when the identity is unknown so that a
// miss costs as much as a wrong password.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Login looks the user up by email or username, verifies the password and
// stamps last_login. An identity shaped like an email that matches no email
// is retried as a username, since usernames may contain '@'. The bcrypt comparison runs outside any transaction.
func (s *JWTStrategy) Login(
	ctx context.Context,
	identity, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "Login", "identity", identity)

	var creds *dto.UserCredentials
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		if utils.IsEmail(identity) {
			creds, err = repo.GetByEmail(ctx, identity)
			if err != nil || creds != nil {
				return err
			}
		}
		creds, err = repo.GetByUsername(ctx, identity)
		return err
	})
	if err != nil {
		return nil, err
	}

	if creds == nil {
		_ = s.hasher.Compare(ctx, password, dummyHash)
		log.Debug("Unknown identity")
		return nil, user.ErrUserUnauthorized
	}
	if !s.hasher.Compare(ctx, password, creds.PasswordHash) {
		log.Debug("Password mismatch", "userID", creds.ID)
		return nil, user.ErrUserUnauthorized
	}

	var u *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if err := repo.UpdateLastLogin(ctx, creds.ID); err != nil {
			return err
		}
		u, err = repo.Get(ctx, creds.ID)
		if err == nil && u == nil {
			err = user.ErrUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Identity reads user_id and role from a token already verified by the
// gate. Tokens without them are rejected.
func (s *JWTStrategy) Identity(token *jwt.Token) (*Identity, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	return IdentityFromClaims(claims)
}

// IdentityFromClaims extracts the identity from decoded token claims.
func IdentityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	id, err := claimUint(claims["user_id"])
	if err != nil || id == 0 {
		return nil, user.ErrUserUnauthorized
	}
	roleRaw, _ := claims["role"].(string)
	role := user.Role(roleRaw)
	if !role.Valid() {
		return nil, user.ErrUserUnauthorized
	}
	return &Identity{UserID: id, Role: role}, nil
}

func claimUint(v any) (uint, error) {
	switch n := v.(type) {
	case float64:
		if n < 1 || n != float64(uint(n)) {
			return 0, fmt.Errorf("invalid id %v", n)
		}
		return uint(n), nil
	case json.Number:
		i, err := strconv.ParseUint(n.String(), 10, 0)
		return uint(i), err
	case string:
		i, err := strconv.ParseUint(n, 10, 0)
		return uint(i), err
	default:
		return 0, fmt.Errorf("unexpected id claim type %T", v)
	}
}
