package investment

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/middleware"
	investmentsvc "github.com/amirasaad/invochain/pkg/service/investment"
	"github.com/amirasaad/invochain/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *investmentsvc.Service, cfg *config.App) {
	r := app.Group("/api/investments", middleware.JwtProtected(cfg.Auth.Jwt))
	r.Get("/", ListInvestments(svc))
	r.Post("/", CreateInvestment(svc))
	r.Get("/active", ListActive(svc))
	r.Get("/summary", Summary(svc))
	r.Get("/:id", GetInvestment(svc))
	r.Put("/:id/status", UpdateStatus(svc))
}

// ListInvestments returns the caller's investments, newest first.
// @Summary List my investments
// @Tags investments
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/investments [get]
// @Security Bearer
func ListInvestments(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		list, err := svc.ListUserInvestments(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"investments": list})
	}
}

// CreateInvestment records a capital commitment for the caller.
// @Summary Create an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param request body CreateInvestmentInput true "Investment"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/investments [post]
// @Security Bearer
func CreateInvestment(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		input, err := common.BindAndValidate[CreateInvestmentInput](c)
		if err != nil {
			return err
		}
		inv, err := svc.CreateInvestment(c.UserContext(), identity.UserID, input.toDTO())
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Investment created", fiber.Map{"investment": inv})
	}
}

// ListActive is the marketplace of active investments across all users.
// @Summary Active investments
// @Tags investments
// @Produce json
// @Param limit query int false "Maximum number of results (default 50)"
// @Success 200 {object} map[string]any
// @Router /api/investments/active [get]
// @Security Bearer
func ListActive(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := common.QueryLimit(c)
		if err != nil {
			return err
		}
		list, err := svc.ListActive(c.UserContext(), limit)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"investments": list})
	}
}

// Summary returns the caller's invested total over active and completed
// investments.
// @Summary Investment total
// @Tags investments
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/investments/summary [get]
// @Security Bearer
func Summary(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		total, err := svc.TotalInvested(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"total": total})
	}
}

// GetInvestment fetches one investment by id.
// @Summary Get an investment
// @Tags investments
// @Produce json
// @Param id path int true "Investment ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/investments/{id} [get]
// @Security Bearer
func GetInvestment(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		inv, err := svc.GetInvestment(c.UserContext(), id)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"investment": inv})
	}
}

// UpdateStatus moves one of the caller's investments to another status.
// @Summary Change investment status
// @Tags investments
// @Accept json
// @Produce json
// @Param id path int true "Investment ID"
// @Param request body UpdateStatusInput true "New status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/investments/{id}/status [put]
// @Security Bearer
func UpdateStatus(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[UpdateStatusInput](c)
		if err != nil {
			return err
		}
		inv, err := svc.UpdateStatus(c.UserContext(), identity.UserID, id, investment.Status(input.Status))
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment status updated", fiber.Map{"investment": inv})
	}
}
