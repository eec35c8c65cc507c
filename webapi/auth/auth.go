package auth

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/amirasaad/invochain/pkg/middleware"
	authsvc "github.com/amirasaad/invochain/pkg/service/auth"
	investmentsvc "github.com/amirasaad/invochain/pkg/service/investment"
	usersvc "github.com/amirasaad/invochain/pkg/service/user"
	"github.com/amirasaad/invochain/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	app *fiber.App,
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	investmentSvc *investmentsvc.Service,
	cfg *config.App,
) {
	r := app.Group("/api/auth")
	r.Post("/signup", Signup(userSvc, authSvc))
	r.Post("/login", Login(authSvc))
	r.Get("/me", middleware.JwtProtected(cfg.Auth.Jwt), Me(userSvc, investmentSvc))
	r.Put("/me", middleware.JwtProtected(cfg.Auth.Jwt), UpdateMe(userSvc))
}

// Signup creates an account and logs it in.
// @Summary Create an account
// @Description Create an investor or SME account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupInput true "Account data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /api/auth/signup [post]
func Signup(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if err != nil {
			return err
		}
		u, err := userSvc.CreateUser(c.UserContext(), input.toDTO())
		if err != nil {
			return err
		}
		token, err := authSvc.GenerateToken(c.UserContext(), u)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created successfully", fiber.Map{
			"user":  u,
			"token": token,
		})
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate user with identity (username or email) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if err != nil {
			return err
		}
		u, err := authSvc.Login(c.UserContext(), input.Identity, input.Password)
		if err != nil {
			return err
		}
		token, err := authSvc.GenerateToken(c.UserContext(), u)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{
			"user":  u,
			"token": token,
		})
	}
}

// Me returns the caller's profile and invested total.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/auth/me [get]
// @Security Bearer
func Me(userSvc *usersvc.Service, investmentSvc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		u, err := userSvc.GetUser(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		total, err := investmentSvc.TotalInvested(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{
			"user":           u,
			"total_invested": total,
		})
	}
}

// UpdateMe applies a partial profile update.
// @Summary Update current user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileInput true "Profile fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/auth/me [put]
// @Security Bearer
func UpdateMe(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		input, err := common.BindAndValidate[UpdateProfileInput](c)
		if err != nil {
			return err
		}
		u, err := userSvc.UpdateUser(c.UserContext(), identity.UserID, &dto.UserUpdate{
			FullName:    input.FullName,
			Phone:       input.Phone,
			CompanyName: input.CompanyName,
		})
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", fiber.Map{"user": u})
	}
}
