package dto

// DTOs del dashboard. Los campos públicos van en camelCase: las columnas
// snake_case de la DB se traducen en el borde de infraestructura.

// AdminDataDTO métricas administrativas globales, solo para roles
// privilegiados. No se filtran por alcance (visión de todo el sistema).
type AdminDataDTO struct {
	TotalInventoryTakers int `json:"totalInventoryTakers"`
	TotalInstitutions    int `json:"totalInstitutions"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary; la identidad
// sale del token.
type DashboardSummaryDTO struct {
	TotalPumps               int           `json:"totalPumps"`
	InventoriedPumpsThisYear int           `json:"inventoriedPumpsThisYear"`
	OperativePumps           int           `json:"operativePumps"`
	OverduePumpsMaintenance  int           `json:"overduePumpsMaintenance"`
	AdminData                *AdminDataDTO `json:"adminData,omitempty"`
}

// ModelCountDTO conteo de bombas de un modelo.
type ModelCountDTO struct {
	ModelName string `json:"modelName"`
	Count     int    `json:"count"`
}

// ModelDistributionDTO distribución por modelos, ordenada por conteo desc.
type ModelDistributionDTO struct {
	Models []ModelCountDTO `json:"models"`
}

// ModelDistributionByInstitutionDTO pivot institución × modelo.
// Cada entrada de Data lleva institutionName, total y una clave por modelo
// con su conteo; Models es la lista de columnas en orden de aparición.
type ModelDistributionByInstitutionDTO struct {
	TotalPumps int              `json:"totalPumps"`
	Models     []string         `json:"models"`
	Data       []map[string]any `json:"data"`
}

// InstitutionProgressDTO progreso anual de una institución.
type InstitutionProgressDTO struct {
	InstitutionName          string `json:"institutionName"`
	PumpsInventoriedThisYear int    `json:"pumpsInventoriedThisYear"`
	TotalPumps               int    `json:"totalPumps"`
}

// InventoryProgressByInstitutionDTO progreso por institución.
type InventoryProgressByInstitutionDTO struct {
	Institutions []InstitutionProgressDTO `json:"institutions"`
}

// ServiceProgressDTO progreso anual de un servicio.
type ServiceProgressDTO struct {
	ServiceID                int64  `json:"serviceId"`
	ServiceName              string `json:"serviceName"`
	PumpsInventoriedThisYear int    `json:"pumpsInventoriedThisYear"`
	TotalPumps               int    `json:"totalPumps"`
}

// InstitutionServicesProgressDTO institución con sus servicios anidados.
type InstitutionServicesProgressDTO struct {
	InstitutionID   int64                `json:"institutionId"`
	InstitutionName string               `json:"institutionName"`
	Services        []ServiceProgressDTO `json:"services"`
}

// InventoryProgressByServiceDTO progreso por servicio, anidado por institución.
type InventoryProgressByServiceDTO struct {
	Institutions []InstitutionServicesProgressDTO `json:"institutions"`
}

// ServiceStateDTO estado de un servicio: inoperativas vs total.
type ServiceStateDTO struct {
	ServiceID             int64  `json:"serviceId"`
	ServiceName           string `json:"serviceName"`
	InoperativePumpsCount int    `json:"inoperativePumpsCount"`
	TotalPumps            int    `json:"totalPumps"`
}

// InstitutionServicesStateDTO institución con el estado de sus servicios.
type InstitutionServicesStateDTO struct {
	InstitutionID   int64             `json:"institutionId"`
	InstitutionName string            `json:"institutionName"`
	Services        []ServiceStateDTO `json:"services"`
}

// StateByServiceDTO estado por servicio, anidado por institución.
type StateByServiceDTO struct {
	Institutions []InstitutionServicesStateDTO `json:"institutions"`
}

// ModelStateDTO estado de un modelo.
type ModelStateDTO struct {
	ModelName        string `json:"modelName"`
	InoperativePumps int    `json:"inoperativePumps"`
	TotalPumps       int    `json:"totalPumps"`
}

// StateByModelDTO estado por modelo, ordenado por inoperativas desc.
type StateByModelDTO struct {
	Models []ModelStateDTO `json:"models"`
}

// InventoryTakerDTO una fila del ranking de inventariadores.
type InventoryTakerDTO struct {
	UserID                   int64  `json:"userId"`
	InventoryTakerName       string `json:"inventoryTakerName"`
	PumpsInventoriedThisYear int    `json:"pumpsInventoriedThisYear"`
}

// TopInventoryTakersDTO ranking anual de inventariadores.
type TopInventoryTakersDTO struct {
	TopInventoryTakers []InventoryTakerDTO `json:"topInventoryTakers"`
	Year               int                 `json:"year"`
}

// OverdueInstitutionDTO institución con mantenimientos vencidos.
type OverdueInstitutionDTO struct {
	InstitutionName         string `json:"institutionName"`
	OverdueMaintenanceCount int    `json:"overdueMaintenanceCount"`
}

// OverdueMaintenanceSummaryDTO resumen de mantenimientos vencidos.
// Solo aparecen instituciones con al menos un vencido, ordenadas por nombre.
type OverdueMaintenanceSummaryDTO struct {
	TotalOverduePumps int                     `json:"totalOverduePumps"`
	Institutions      []OverdueInstitutionDTO `json:"institutions"`
}
