package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/caviar95/usersvc/api/http/presenter"
	"github.com/caviar95/usersvc/pkg/user"
)

type UserHandler struct {
	useCase user.UserUseCase
}

func NewUserHandler(useCase user.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type registerRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Register handles user registration. The usecase reports only a
// boolean, so every rejection — bad input or failed save — maps to the
// same 400 response.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if !h.useCase.RegisterUser(c.Context(), req.Name, req.Age) {
		return presenter.Rejected(c)
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"name":       req.Name,
		"age":        req.Age,
		"registered": true,
	})
}
