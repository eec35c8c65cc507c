package transaction

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/middleware"
	transactionsvc "github.com/amirasaad/invochain/pkg/service/transaction"
	"github.com/amirasaad/invochain/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *transactionsvc.Service, cfg *config.App) {
	r := app.Group("/api/transactions", middleware.JwtProtected(cfg.Auth.Jwt))
	r.Get("/", ListTransactions(svc))
	r.Get("/:id", GetTransaction(svc))
}

// ListTransactions returns the caller's ledger, newest first.
// @Summary My transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/transactions [get]
// @Security Bearer
func ListTransactions(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		list, err := svc.ListUserTransactions(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"transactions": list})
	}
}

// GetTransaction returns one entry of the caller's ledger.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/transactions/{id} [get]
// @Security Bearer
func GetTransaction(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		tx, err := svc.GetTransaction(c.UserContext(), identity.UserID, id)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"transaction": tx})
	}
}
