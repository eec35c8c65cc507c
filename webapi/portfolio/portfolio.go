package portfolio

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/middleware"
	portfoliosvc "github.com/amirasaad/invochain/pkg/service/portfolio"
	"github.com/amirasaad/invochain/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *portfoliosvc.Service, cfg *config.App) {
	app.Get("/api/portfolio", middleware.JwtProtected(cfg.Auth.Jwt), GetPortfolio(svc))
}

// GetPortfolio returns the caller's valuation snapshots.
// @Summary My portfolio
// @Tags portfolio
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/portfolio [get]
// @Security Bearer
func GetPortfolio(svc *portfoliosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		list, err := svc.ListUserPortfolio(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"portfolio": list})
	}
}
