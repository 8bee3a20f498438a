package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/auth"
	"github.com/SantosRojas/inventory-api/internal/application/dto"
)

// AuthHandler maneja registro, login y cambio de contraseña.
type AuthHandler struct {
	uc *auth.UseCase
	em *errorMapper
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, em *errorMapper) *AuthHandler {
	return &AuthHandler{uc: uc, em: em}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		return badRequest(c, "firstName, email y password son requeridos")
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return badRequest(c, "currentPassword y newPassword son requeridos")
	}
	if err := h.uc.ChangePassword(c.UserContext(), GetUserID(c), in.CurrentPassword, in.NewPassword); err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Contraseña actualizada"})
}
