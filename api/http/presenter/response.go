package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Rejected is the single failure envelope for registration: validation
// and persistence failures are indistinguishable upstream, so there is
// exactly one message for both.
func Rejected(c *fiber.Ctx) error {
	return Error(c, fiber.StatusBadRequest, "registration rejected")
}
