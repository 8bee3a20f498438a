package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP del inventario de bombas.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
	em *errorMapper
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, em *errorMapper) *InventoryHandler {
	return &InventoryHandler{uc: uc, em: em}
}

// List godoc
// @Summary      Listar inventario completo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del registro"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
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

// GetBySerial godoc
// @Summary      Buscar por número de serie
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/inventory/serial/{serial} [get]
func (h *InventoryHandler) GetBySerial(c *fiber.Ctx) error {
	serial := c.Params("serial")
	if serial == "" {
		return badRequest(c, "serial es requerido")
	}
	out, err := h.uc.GetBySerialNumber(c.UserContext(), serial)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByQR godoc
// @Summary      Buscar por código QR
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        qr  path  string  true  "Código QR"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/inventory/qr/{qr} [get]
func (h *InventoryHandler) GetByQR(c *fiber.Ctx) error {
	qr := c.Params("qr")
	if qr == "" {
		return badRequest(c, "qr es requerido")
	}
	out, err := h.uc.GetByQRCode(c.UserContext(), qr)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByModel registros de un modelo.
func (h *InventoryHandler) ListByModel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("modelId")
	if err != nil {
		return badRequest(c, "modelId inválido")
	}
	out, err := h.uc.GetByModel(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByInstitution registros de una institución.
func (h *InventoryHandler) ListByInstitution(c *fiber.Ctx) error {
	id, err := c.ParamsInt("institutionId")
	if err != nil {
		return badRequest(c, "institutionId inválido")
	}
	out, err := h.uc.GetByInstitution(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByService registros de un servicio; acepta ?institutionId= para
// acotar a una institución.
func (h *InventoryHandler) ListByService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("serviceId")
	if err != nil {
		return badRequest(c, "serviceId inválido")
	}
	if institutionID := c.QueryInt("institutionId", 0); institutionID > 0 {
		out, err := h.uc.GetByServiceAndInstitution(c.UserContext(), int64(id), int64(institutionID))
		if err != nil {
			return h.em.respond(c, err)
		}
		return c.JSON(dto.Success(out))
	}
	out, err := h.uc.GetByService(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByStatus registros con un estado dado.
func (h *InventoryHandler) ListByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if status == "" {
		return badRequest(c, "status es requerido")
	}
	out, err := h.uc.GetByStatus(c.UserContext(), status)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListByTaker registros inventariados por un usuario.
func (h *InventoryHandler) ListByTaker(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return badRequest(c, "userId inválido")
	}
	out, err := h.uc.GetByTaker(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListLatestByUser últimos registros del usuario autenticado.
func (h *InventoryHandler) ListLatestByUser(c *fiber.Ctx) error {
	out, err := h.uc.GetLatestByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListCurrentYear registros de la institución inventariados este año.
func (h *InventoryHandler) ListCurrentYear(c *fiber.Ctx) error {
	id, err := c.ParamsInt("institutionId")
	if err != nil {
		return badRequest(c, "institutionId inválido")
	}
	out, err := h.uc.GetCurrentYearByInstitution(c.UserContext(), int64(id), time.Now().Year())
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListNotInventoried bombas de la institución sin inventariar este año.
func (h *InventoryHandler) ListNotInventoried(c *fiber.Ctx) error {
	id, err := c.ParamsInt("institutionId")
	if err != nil {
		return badRequest(c, "institutionId inválido")
	}
	out, err := h.uc.GetNotInventoriedThisYear(c.UserContext(), int64(id), time.Now().Year())
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListOverdue bombas de la institución con mantenimiento vencido.
func (h *InventoryHandler) ListOverdue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("institutionId")
	if err != nil {
		return badRequest(c, "institutionId inválido")
	}
	out, err := h.uc.GetOverdueByInstitution(c.UserContext(), int64(id))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Create godoc
// @Summary      Dar de alta un registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del registro"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// BulkCreate godoc
// @Summary      Alta masiva de registros
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCreateInventoryRequest  true  "Lote de registros"
// @Success      201   {object}  dto.SuccessResponse
// @Router       /api/inventory/bulk [post]
func (h *InventoryHandler) BulkCreate(c *fiber.Ctx) error {
	var in dto.BulkCreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	n, err := h.uc.BulkCreate(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"inserted": n}))
}

// Update godoc
// @Summary      Actualizar un registro
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Delete godoc
// @Summary      Eliminar un registro
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  int  true  "ID del registro"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Registro eliminado"})
}
