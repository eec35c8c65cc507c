// Package middleware holds the fiber handlers shared by every protected route.
package middleware

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey    = "user"
	identityKey = "identity"
)

// JwtProtected verifies the bearer token and stores the caller's
// auth.Identity in the request locals.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:     tokenKey,
		ErrorHandler:   jwtError,
		SuccessHandler: resolveIdentity,
	})
}

func resolveIdentity(c *fiber.Ctx) error {
	token, ok := c.Locals(tokenKey).(*jwt.Token)
	if !ok {
		return jwtError(c, jwtware.ErrJWTMissingOrMalformed)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwtError(c, jwt.ErrTokenInvalidClaims)
	}
	identity, err := auth.IdentityFromClaims(claims)
	if err != nil {
		return jwtError(c, err)
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// Missing, malformed and expired tokens are all reported as 401.
func jwtError(c *fiber.Ctx, err error) error {
	msg := "Invalid or expired token"
	if err.Error() == jwtware.ErrJWTMissingOrMalformed.Error() {
		msg = "Missing or malformed token"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// CurrentIdentity returns the identity resolved by JwtProtected.
func CurrentIdentity(c *fiber.Ctx) (*auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(*auth.Identity)
	return identity, ok && identity != nil
}
