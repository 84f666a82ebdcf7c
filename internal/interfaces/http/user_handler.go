package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/application/users"
)

// UserHandler expone la administración de cuentas.
type UserHandler struct {
	userUC *users.UserUseCase
}

func NewUserHandler(userUC *users.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := queryLimit(c, 50)
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.userUC.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update aplica cambios parciales sobre una cuenta, incluido el rol.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	user, err := h.userUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
