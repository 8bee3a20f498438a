package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/application/dto"
)

// DashboardHandler expone los reportes agregados del dashboard. Todos los
// endpoints derivan usuario y rol del token; no aceptan parámetros de
// alcance del cliente.
type DashboardHandler struct {
	uc  *dashboard.UseCase
	pdf dashboard.OverdueReportGenerator
	em  *errorMapper
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, pdf dashboard.OverdueReportGenerator, em *errorMapper) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf, em: em}
}

// Summary godoc
// @Summary      Resumen general del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ModelDistribution godoc
// @Summary      Distribución de bombas por modelo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/model-distribution [get]
func (h *DashboardHandler) ModelDistribution(c *fiber.Ctx) error {
	out, err := h.uc.GetModelDistribution(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ModelDistributionByInstitution godoc
// @Summary      Distribución de modelos por institución (pivote)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/model-distribution-by-institution [get]
func (h *DashboardHandler) ModelDistributionByInstitution(c *fiber.Ctx) error {
	out, err := h.uc.GetModelDistributionByInstitution(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// InventoryProgressByInstitution godoc
// @Summary      Progreso de inventario anual por institución
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/inventory-progress-by-institution [get]
func (h *DashboardHandler) InventoryProgressByInstitution(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryProgressByInstitution(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// InventoryProgressByService godoc
// @Summary      Progreso de inventario anual por servicio
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/inventory-progress-by-service [get]
func (h *DashboardHandler) InventoryProgressByService(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryProgressByService(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// StateByService godoc
// @Summary      Estado de bombas por servicio
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/state-by-service [get]
func (h *DashboardHandler) StateByService(c *fiber.Ctx) error {
	out, err := h.uc.GetStateByService(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// StateByModel godoc
// @Summary      Estado de bombas por modelo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/state-by-model [get]
func (h *DashboardHandler) StateByModel(c *fiber.Ctx) error {
	out, err := h.uc.GetStateByModel(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// TopInventoryTakers godoc
// @Summary      Ranking anual de inventariadores
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/top-inventory-takers [get]
func (h *DashboardHandler) TopInventoryTakers(c *fiber.Ctx) error {
	out, err := h.uc.GetTopInventoryTakers(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// OverdueMaintenanceSummary godoc
// @Summary      Resumen de mantenimientos vencidos por institución
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/dashboard/overdue-maintenance-summary [get]
func (h *DashboardHandler) OverdueMaintenanceSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetOverdueMaintenanceSummary(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	return c.JSON(dto.Success(out))
}

// OverdueMaintenancePDF godoc
// @Summary      Exportar el resumen de mantenimientos vencidos en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overdue-maintenance-summary/pdf [get]
func (h *DashboardHandler) OverdueMaintenancePDF(c *fiber.Ctx) error {
	ctx := c.UserContext()
	summary, err := h.uc.GetOverdueMaintenanceSummary(ctx, GetUserID(c), GetRole(c))
	if err != nil {
		return h.em.respond(c, err)
	}
	now := time.Now()
	doc, err := h.pdf.GenerateOverdueReport(ctx, *summary, c.Query("requestedBy"), now)
	if err != nil {
		return h.em.respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="mantenimientos-vencidos-%s.pdf"`, now.Format("2006-01-02")))
	return c.Send(doc)
}
