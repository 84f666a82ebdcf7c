package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/auth"
	"github.com/flotanet/logistica-api/internal/application/dto"
)

// AuthHandler expone registro y login.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register crea una cuenta nueva. Sin rol explícito se asigna driver.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	user, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login valida credenciales y emite el token JWT con el rol embebido.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	res, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Me devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return unauthenticated(c, "UNAUTHORIZED", "sesión requerida")
	}
	res := auth.ToUserResponse(user)
	return c.JSON(res)
}
