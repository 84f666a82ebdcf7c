package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/rbac"
	"github.com/flotanet/logistica-api/pkg/jwt"
)

// localUser key del usuario resuelto en Fiber Locals.
const localUser = "auth_user"

// userResolver contrato mínimo para resolver el usuario del token.
// Lo implementa repository.UserRepository; la interfaz local evita acoplar
// el middleware al puerto completo.
type userResolver interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware es la puerta de autenticación: valida el Bearer Token JWT,
// resuelve el usuario en DB y lo deja en c.Locals.
//
// Toda falla de autenticación responde 401, sin distinguir token ausente de
// expirado. El flag is_active se re-verifica en cada request: una sesión
// vigente de una cuenta desactivada deja de servir de inmediato.
func AuthMiddleware(jwtSecret string, users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c, "MISSING_TOKEN", "token vacío")
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthenticated(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AUTH_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		if user == nil || !user.IsActive {
			return unauthenticated(c, "UNAUTHORIZED", "sesión no válida")
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

// RequireCapability autoriza por capacidad según la política RBAC.
// Debe usarse DESPUÉS de AuthMiddleware. Usuario sin la capacidad → 403.
func RequireCapability(cap rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return unauthenticated(c, "UNAUTHORIZED", "sesión requerida")
		}
		if !rbac.Allow(user.Role, cap) {
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequireRole autoriza por pertenencia a un conjunto explícito de roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return unauthenticated(c, "UNAUTHORIZED", "sesión requerida")
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return forbidden(c)
	}
}

// GetUser devuelve el usuario resuelto por AuthMiddleware, o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(localUser).(*entity.User)
	return u
}

func unauthenticated(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code: "FORBIDDEN", Message: "permisos insuficientes",
	})
}
