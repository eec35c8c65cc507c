// Package common holds the request/response contract shared by every
// resource in the HTTP surface.
package common

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponseJSON writes payload with an optional human-readable
// message. Payload keys name the resource, e.g. "investment".
func SuccessResponseJSON(
	c *fiber.Ctx,
	status int,
	message string,
	payload fiber.Map,
) error {
	body := fiber.Map{}
	for k, v := range payload {
		body[k] = v
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// ErrorResponseJSON writes {"error": msg}.
func ErrorResponseJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
