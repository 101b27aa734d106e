package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caviar95/usersvc/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, users *handlers.UserHandler, health *handlers.HealthHandler, math *handlers.MathHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	u := v1.Group("/users")
	u.Post("/register", users.Register)

	v1.Get("/factorial/:n", math.Factorial)
}
