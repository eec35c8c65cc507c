package common

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/invochain/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// ErrorToStatusCode maps domain error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error a handler returns. Domain errors carry
// client-safe messages; anything else is logged and reported as a generic
// 500 whose detail is only exposed when exposeDetail is set.
func ErrorHandler(logger *slog.Logger, exposeDetail bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs})
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) && ferr.Code != fiber.StatusInternalServerError {
			if ferr.Code == fiber.StatusNotFound {
				return ErrorResponseJSON(c, ferr.Code, "Route not found")
			}
			return ErrorResponseJSON(c, ferr.Code, ferr.Message)
		}

		if status := ErrorToStatusCode(err); status != fiber.StatusInternalServerError {
			return ErrorResponseJSON(c, status, err.Error())
		}

		logger.Error("Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"requestID", c.Locals("requestid"),
			"error", err,
		)
		body := fiber.Map{"error": "Internal server error"}
		if exposeDetail {
			body["message"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
