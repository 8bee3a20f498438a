package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Authorization header requerido", ""))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("formato: Bearer <token>", ""))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token vacío", ""))
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token inválido o expirado", ""))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, entity.ParseRole(role))
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := GetRole(c)
		for _, r := range roles {
			if current == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Rol sin permisos para esta operación", ""))
	}
}

// RequirePrivileged corta con 403 si el rol no es admin ni root.
func RequirePrivileged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetRole(c).CanSeeAllInstitutions() {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("Rol sin permisos para esta operación", ""))
		}
		return c.Next()
	}
}

// AuthorizeSelfOrAdmin corta con 403 salvo que el :id de la ruta sea el
// propio usuario o el rol sea privilegiado.
func AuthorizeSelfOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c).CanSeeAllInstitutions() {
			return c.Next()
		}
		id, err := c.ParamsInt("id")
		if err == nil && int64(id) == GetUserID(c) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Solo puede operar sobre su propio usuario", ""))
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	r, _ := v.(entity.Role)
	return r
}
