package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/caviar95/usersvc/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready: readiness check over all registered dependency checkers, with
// the per-dependency breakdown in the response body.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	report := h.svc.Report(ctx)
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": report,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ready",
		"details": report,
	})
}
