package common

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseID reads a positive integer path parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 0)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// QueryLimit reads ?limit=, returning 0 (service default) when absent.
func QueryLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid limit")
	}
	return limit, nil
}
