package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
)

// respondError traduce un error del dominio a la respuesta HTTP estándar.
// Los *AppError traen su propio status y mensaje público; el detalle de la
// causa solo se expone en development.
func (h *errorMapper) respond(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		detail := ""
		if h.development {
			detail = appErr.Detail()
		}
		return c.Status(appErr.StatusCode).JSON(dto.Error(appErr.Message, detail))
	}

	status, message := fiber.StatusInternalServerError, "Error interno del servidor"
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = fiber.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrNotFound):
		status, message = fiber.StatusNotFound, "Recurso no encontrado"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, message = fiber.StatusConflict, "El email ya está registrado"
	case errors.Is(err, domain.ErrDuplicate):
		status, message = fiber.StatusConflict, "El registro ya existe"
	case errors.Is(err, domain.ErrForeignKey):
		status, message = fiber.StatusConflict, "Referencia inválida o registro en uso"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, "Datos de entrada inválidos"
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, "Credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, message = fiber.StatusForbidden, "Operación no permitida"
	}

	detail := ""
	if h.development {
		detail = err.Error()
	}
	return c.Status(status).JSON(dto.Error(message, detail))
}

// errorMapper estado compartido de los handlers para responder errores.
type errorMapper struct {
	development bool
}

func newErrorMapper(development bool) *errorMapper {
	return &errorMapper{development: development}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Error(message, ""))
}
