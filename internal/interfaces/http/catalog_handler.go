package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
	"github.com/SantosRojas/inventory-api/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP de un catálogo plano
// (instituciones, modelos o servicios). Se monta una instancia por grupo
// de rutas.
type CatalogHandler struct {
	uc       *usecase.CatalogUseCase
	em       *errorMapper
	notFound string
}

// NewCatalogHandler construye el handler con el mensaje de 404 del recurso.
func NewCatalogHandler(uc *usecase.CatalogUseCase, em *errorMapper, notFound string) *CatalogHandler {
	return &CatalogHandler{uc: uc, em: em, notFound: notFound}
}

func (h *CatalogHandler) respond(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(h.notFound, ""))
	}
	return h.em.respond(c, err)
}

// List lista el catálogo completo.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID obtiene un elemento por ID.
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByName obtiene un elemento por nombre exacto.
func (h *CatalogHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "name es requerido")
	}
	out, err := h.uc.GetByName(c.UserContext(), name)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Create da de alta un elemento.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update renombra un elemento.
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Delete elimina un elemento.
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Elemento eliminado"})
}

// RoleHandler maneja las peticiones HTTP de roles (solo privilegiados).
type RoleHandler struct {
	uc *usecase.RoleUseCase
	em *errorMapper
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase, em *errorMapper) *RoleHandler {
	return &RoleHandler{uc: uc, em: em}
}

// List lista los roles.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID obtiene un rol por ID.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
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

// Create da de alta un rol.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update renombra un rol.
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Delete elimina un rol.
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Rol eliminado"})
}
