package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/caviar95/usersvc/api/http/presenter"
	"github.com/caviar95/usersvc/pkg/mathx"
)

// MathHandler exposes the factorial demo endpoint.
type MathHandler struct{}

func NewMathHandler() *MathHandler { return &MathHandler{} }

// Factorial computes n! for the :n path parameter. Negative inputs are
// answered with 1, same as the library policy.
func (h *MathHandler) Factorial(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("n"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "n must be an integer")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"n":         n,
		"factorial": mathx.Factorial(n),
	})
}
