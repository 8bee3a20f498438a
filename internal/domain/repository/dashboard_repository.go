package repository

import "context"

// ── Filas crudas de agregación ────────────────────────────────────────────────
// Las produce la DB (una fila por grupo); el shaper del dashboard las
// convierte en las estructuras anidadas de cada reporte.

// SummaryRow conteos generales sobre el alcance del usuario.
type SummaryRow struct {
	TotalPumps               int
	InventoriedPumpsThisYear int
	OperativePumps           int
	OverduePumpsMaintenance  int
}

// AdminTotalsRow métricas administrativas globales (sin filtrar por alcance).
type AdminTotalsRow struct {
	TotalInventoryTakers int
	TotalInstitutions    int
}

// ModelCountRow conteo de bombas por modelo.
type ModelCountRow struct {
	ModelName string
	Count     int
}

// InstitutionModelCountRow tripleta (institución, modelo, conteo) para el
// pivot de distribución de modelos por institución.
type InstitutionModelCountRow struct {
	InstitutionName string
	ModelName       string
	Count           int
}

// InstitutionProgressRow progreso de inventario anual de una institución.
type InstitutionProgressRow struct {
	InstitutionName          string
	PumpsInventoriedThisYear int
	TotalPumps               int
}

// ServiceProgressRow fila (institución, servicio) con progreso anual.
type ServiceProgressRow struct {
	InstitutionID            int64
	InstitutionName          string
	ServiceID                int64
	ServiceName              string
	PumpsInventoriedThisYear int
	TotalPumps               int
}

// ServiceStateRow fila (institución, servicio) con bombas inoperativas.
type ServiceStateRow struct {
	InstitutionID         int64
	InstitutionName       string
	ServiceID             int64
	ServiceName           string
	InoperativePumpsCount int
	TotalPumps            int
}

// ModelStateRow estado por modelo: inoperativas vs total.
type ModelStateRow struct {
	ModelName        string
	InoperativePumps int
	TotalPumps       int
}

// TakerRankRow conteo anual de registros por inventariador.
type TakerRankRow struct {
	UserID                   int64
	InventoryTakerName       string
	PumpsInventoriedThisYear int
}

// OverdueInstitutionRow institución con conteo de mantenimientos vencidos.
type OverdueInstitutionRow struct {
	InstitutionName         string
	OverdueMaintenanceCount int
}

// DashboardRepository consultas de solo lectura del motor de agregación del
// dashboard. Todas las operaciones con parámetro institutionIDs computan
// únicamente sobre registros cuyo institution_id pertenece a ese conjunto;
// las marcadas como globales ignoran el alcance a propósito (métricas
// administrativas).
//
// La implementación ata todas las consultas de una misma petición a una sola
// conexión del pool (ver postgres.DashboardRunner).
type DashboardRepository interface {
	// AllInstitutionIDs ids de todas las instituciones registradas
	// (alcance de un rol privilegiado).
	AllInstitutionIDs(ctx context.Context) ([]int64, error)

	// InstitutionIDsByTaker ids distintos de institución donde el usuario
	// tiene actividad de inventario (alcance de un rol regular).
	InstitutionIDsByTaker(ctx context.Context, userID int64) ([]int64, error)

	// Summary conteos generales del alcance para el año dado.
	Summary(ctx context.Context, institutionIDs []int64, year int) (SummaryRow, error)

	// AdminTotals inventariadores e instituciones distintos sobre TODO el
	// inventario. Global por diseño (visión administrativa).
	AdminTotals(ctx context.Context) (AdminTotalsRow, error)

	// ModelDistribution conteo por modelo, ordenado por conteo descendente.
	ModelDistribution(ctx context.Context, institutionIDs []int64) ([]ModelCountRow, error)

	// ModelDistributionByInstitution tripletas ordenadas por nombre de
	// institución y conteo descendente.
	ModelDistributionByInstitution(ctx context.Context, institutionIDs []int64) ([]InstitutionModelCountRow, error)

	// TotalPumps total de bombas dentro del alcance.
	TotalPumps(ctx context.Context, institutionIDs []int64) (int, error)

	// InventoryProgressByInstitution progreso anual por institución,
	// ordenado por nombre de institución.
	InventoryProgressByInstitution(ctx context.Context, institutionIDs []int64, year int) ([]InstitutionProgressRow, error)

	// InventoryProgressByService filas (institución, servicio) ordenadas por
	// nombre de institución y nombre de servicio.
	InventoryProgressByService(ctx context.Context, institutionIDs []int64, year int) ([]ServiceProgressRow, error)

	// StateByService filas (institución, servicio) con inoperativas,
	// mismo orden que InventoryProgressByService.
	StateByService(ctx context.Context, institutionIDs []int64) ([]ServiceStateRow, error)

	// StateByModel estado por modelo, ordenado por inoperativas descendente
	// y nombre de modelo.
	StateByModel(ctx context.Context, institutionIDs []int64) ([]ModelStateRow, error)

	// TopInventoryTakers ranking global del año, ordenado por conteo
	// descendente y nombre. Solo para roles privilegiados.
	TopInventoryTakers(ctx context.Context, year int) ([]TakerRankRow, error)

	// InventoryTakerRank la fila del propio usuario en el año (a lo sumo una).
	InventoryTakerRank(ctx context.Context, year int, userID int64) ([]TakerRankRow, error)

	// OverdueMaintenanceByInstitution instituciones con al menos un registro
	// con mantenimiento vencido (>2 años o nulo), ordenadas por nombre.
	// takerID nil = sin filtrar por inventariador (roles privilegiados).
	OverdueMaintenanceByInstitution(ctx context.Context, takerID *int64) ([]OverdueInstitutionRow, error)
}
