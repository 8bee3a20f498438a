package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
)

// InventoryTimeHandler sesiones cronometradas de toma de inventario.
type InventoryTimeHandler struct {
	uc *usecase.InventoryTimeUseCase
	em *errorMapper
}

// NewInventoryTimeHandler construye el handler.
func NewInventoryTimeHandler(uc *usecase.InventoryTimeUseCase, em *errorMapper) *InventoryTimeHandler {
	return &InventoryTimeHandler{uc: uc, em: em}
}

// List lista todas las sesiones.
func (h *InventoryTimeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID obtiene una sesión por ID.
func (h *InventoryTimeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByUser sesiones de un usuario.
func (h *InventoryTimeHandler) ListByUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return badRequest(c, "userId inválido")
	}
	out, err := h.uc.GetByUser(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// StatsByUser estadísticas de tiempos del usuario.
func (h *InventoryTimeHandler) StatsByUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return badRequest(c, "userId inválido")
	}
	out, err := h.uc.GetStatsByUser(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Create registra una sesión. Si userId no viene, se toma del token.
func (h *InventoryTimeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryTimeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update aplica un parche parcial.
func (h *InventoryTimeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateInventoryTimeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Delete elimina una sesión.
func (h *InventoryTimeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Sesión eliminada"})
}
