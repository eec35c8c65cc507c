package invoice

import (
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/amirasaad/invochain/pkg/domain/invoice"
	"github.com/amirasaad/invochain/pkg/middleware"
	invoicesvc "github.com/amirasaad/invochain/pkg/service/invoice"
	"github.com/amirasaad/invochain/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *invoicesvc.Service, cfg *config.App) {
	r := app.Group("/api/invoices", middleware.JwtProtected(cfg.Auth.Jwt))
	r.Get("/", ListInvoices(svc))
	r.Post("/", CreateInvoice(svc))
	r.Get("/pending", ListPending(svc))
	r.Get("/:id", GetInvoice(svc))
	r.Put("/:id/verify", Verify(svc))
	r.Put("/:id/status", UpdateStatus(svc))
}

// ListInvoices returns the caller's invoices, newest first.
// @Summary List my invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/invoices [get]
// @Security Bearer
func ListInvoices(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		list, err := svc.ListUserInvoices(c.UserContext(), identity.UserID)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"invoices": list})
	}
}

// CreateInvoice submits a receivable for financing.
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceInput true "Invoice"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /api/invoices [post]
// @Security Bearer
func CreateInvoice(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return domain.ErrUnauthorized
		}
		input, err := common.BindAndValidate[CreateInvoiceInput](c)
		if err != nil {
			return err
		}
		inv, err := svc.CreateInvoice(c.UserContext(), identity.UserID, input.toDTO())
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Invoice created", fiber.Map{"invoice": inv})
	}
}

// ListPending is the marketplace of pending invoices across all users.
// @Summary Pending invoices
// @Tags invoices
// @Produce json
// @Param limit query int false "Maximum number of results (default 50)"
// @Success 200 {object} map[string]any
// @Router /api/invoices/pending [get]
// @Security Bearer
func ListPending(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := common.QueryLimit(c)
		if err != nil {
			return err
		}
		list, err := svc.ListPending(c.UserContext(), limit)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"invoices": list})
	}
}

// GetInvoice fetches one invoice by id.
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/invoices/{id} [get]
// @Security Bearer
func GetInvoice(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		inv, err := svc.GetInvoice(c.UserContext(), id)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "", fiber.Map{"invoice": inv})
	}
}

// Verify marks an invoice as verified.
// @Summary Verify an invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/invoices/{id}/verify [put]
// @Security Bearer
func Verify(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		inv, err := svc.Verify(c.UserContext(), id)
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice verified", fiber.Map{"invoice": inv})
	}
}

// UpdateStatus moves one of the caller's invoices through its lifecycle.
// @Summary Change invoice status
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param request body UpdateStatusInput true "New status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/invoices/{id}/status [put]
// @Security Bearer
func UpdateStatus(svc *invoicesvc.Service) fiber.Handler {
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
		inv, err := svc.UpdateStatus(c.UserContext(), identity.UserID, id, invoice.Status(input.Status))
		if err != nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice status updated", fiber.Map{"invoice": inv})
	}
}
