package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// QueryRunner ejecuta fn con un DashboardRepository atado a una única
// conexión del pool, liberada al terminar fn (éxito o fallo). Cada reporte
// del dashboard usa una sola conexión para toda su secuencia de consultas.
type QueryRunner interface {
	Run(ctx context.Context, fn func(q repository.DashboardRepository) error) error
}

// Mensajes de error por reporte.
const (
	msgSummary         = "Error al obtener resumen del dashboard"
	msgModelDist       = "Error al obtener distribución por modelos"
	msgModelDistByInst = "Error al obtener distribución de modelos por institución"
	msgProgressByInst  = "Error al obtener progreso por institución"
	msgProgressBySvc   = "Error al obtener progreso por servicio"
	msgTopTakers       = "Error al obtener inventariadores top"
	msgStateBySvc      = "Error al obtener estado por servicio"
	msgStateByModel    = "Error al obtener estado por modelo"
	msgOverdue         = "Error al obtener el resumen de mantenimientos vencidos"
)

// UseCase fachada del dashboard: resuelve alcance, ejecuta las agregaciones
// y arma los reportes. Un fallo nunca devuelve un reporte parcial: se corta
// la operación completa y se envuelve en un AppError con el mensaje del
// reporte. Las operaciones son de solo lectura y sin estado compartido.
type UseCase struct {
	runner QueryRunner
}

// NewUseCase construye la fachada.
func NewUseCase(runner QueryRunner) *UseCase {
	return &UseCase{runner: runner}
}

// wrap envuelve cualquier fallo en el AppError del reporte. Si el error ya
// es un AppError (p.ej. el del resolver de alcance) se respeta tal cual.
func wrap(message string, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.NewAppError(message, http.StatusInternalServerError, err)
}

// GetSummary resumen general: totales del alcance del usuario más, para
// roles privilegiados, las métricas administrativas globales (sin filtrar
// por alcance, por diseño).
func (uc *UseCase) GetSummary(ctx context.Context, userID int64, role entity.Role) (*dto.DashboardSummaryDTO, error) {
	var out *dto.DashboardSummaryDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}

		result := &dto.DashboardSummaryDTO{}
		if len(scope) > 0 {
			row, err := q.Summary(ctx, scope, time.Now().Year())
			if err != nil {
				return err
			}
			result.TotalPumps = row.TotalPumps
			result.InventoriedPumpsThisYear = row.InventoriedPumpsThisYear
			result.OperativePumps = row.OperativePumps
			result.OverduePumpsMaintenance = row.OverduePumpsMaintenance
		}

		if role.CanSeeAllInstitutions() {
			admin := &dto.AdminDataDTO{}
			// Alcance vacío: dashboard en cero, sin más consultas.
			if len(scope) > 0 {
				totals, err := q.AdminTotals(ctx)
				if err != nil {
					return err
				}
				admin.TotalInventoryTakers = totals.TotalInventoryTakers
				admin.TotalInstitutions = totals.TotalInstitutions
			}
			result.AdminData = admin
		}

		out = result
		return nil
	})
	if err != nil {
		return nil, wrap(msgSummary, err)
	}
	return out, nil
}

// GetModelDistribution distribución de bombas por modelo dentro del alcance,
// ordenada por conteo descendente.
func (uc *UseCase) GetModelDistribution(ctx context.Context, userID int64, role entity.Role) (*dto.ModelDistributionDTO, error) {
	var out *dto.ModelDistributionDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		result := &dto.ModelDistributionDTO{Models: []dto.ModelCountDTO{}}
		if len(scope) == 0 {
			out = result
			return nil
		}
		rows, err := q.ModelDistribution(ctx, scope)
		if err != nil {
			return err
		}
		for _, r := range rows {
			result.Models = append(result.Models, dto.ModelCountDTO{ModelName: r.ModelName, Count: r.Count})
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, wrap(msgModelDist, err)
	}
	return out, nil
}

// GetModelDistributionByInstitution pivot institución × modelo: una fila por
// institución con una clave por modelo y su total, más el total global del
// alcance y la lista de modelos (columnas) en orden de aparición.
func (uc *UseCase) GetModelDistributionByInstitution(ctx context.Context, userID int64, role entity.Role) (*dto.ModelDistributionByInstitutionDTO, error) {
	var out *dto.ModelDistributionByInstitutionDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		if len(scope) == 0 {
			out = &dto.ModelDistributionByInstitutionDTO{
				TotalPumps: 0,
				Models:     []string{},
				Data:       []map[string]any{},
			}
			return nil
		}

		// Ambas consultas van en secuencia sobre la misma conexión de la
		// petición (una conexión pgx no admite consultas concurrentes).
		rows, err := q.ModelDistributionByInstitution(ctx, scope)
		if err != nil {
			return err
		}
		total, err := q.TotalPumps(ctx, scope)
		if err != nil {
			return err
		}

		models, data := pivotModelsByInstitution(rows)
		out = &dto.ModelDistributionByInstitutionDTO{
			TotalPumps: total,
			Models:     models,
			Data:       data,
		}
		return nil
	})
	if err != nil {
		return nil, wrap(msgModelDistByInst, err)
	}
	return out, nil
}

// GetInventoryProgressByInstitution progreso anual (inventariadas este año
// vs total) por institución del alcance.
func (uc *UseCase) GetInventoryProgressByInstitution(ctx context.Context, userID int64, role entity.Role) (*dto.InventoryProgressByInstitutionDTO, error) {
	var out *dto.InventoryProgressByInstitutionDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		result := &dto.InventoryProgressByInstitutionDTO{Institutions: []dto.InstitutionProgressDTO{}}
		if len(scope) == 0 {
			out = result
			return nil
		}
		rows, err := q.InventoryProgressByInstitution(ctx, scope, time.Now().Year())
		if err != nil {
			return err
		}
		for _, r := range rows {
			result.Institutions = append(result.Institutions, dto.InstitutionProgressDTO{
				InstitutionName:          r.InstitutionName,
				PumpsInventoriedThisYear: r.PumpsInventoriedThisYear,
				TotalPumps:               r.TotalPumps,
			})
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, wrap(msgProgressByInst, err)
	}
	return out, nil
}

// GetInventoryProgressByService progreso anual por servicio, anidado por
// institución en orden de llegada de las filas.
func (uc *UseCase) GetInventoryProgressByService(ctx context.Context, userID int64, role entity.Role) (*dto.InventoryProgressByServiceDTO, error) {
	var out *dto.InventoryProgressByServiceDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		if len(scope) == 0 {
			out = &dto.InventoryProgressByServiceDTO{Institutions: []dto.InstitutionServicesProgressDTO{}}
			return nil
		}
		rows, err := q.InventoryProgressByService(ctx, scope, time.Now().Year())
		if err != nil {
			return err
		}
		out = &dto.InventoryProgressByServiceDTO{Institutions: groupProgressByInstitution(rows)}
		return nil
	})
	if err != nil {
		return nil, wrap(msgProgressBySvc, err)
	}
	return out, nil
}

// GetStateByService bombas inoperativas por servicio, anidado por institución.
func (uc *UseCase) GetStateByService(ctx context.Context, userID int64, role entity.Role) (*dto.StateByServiceDTO, error) {
	var out *dto.StateByServiceDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		if len(scope) == 0 {
			out = &dto.StateByServiceDTO{Institutions: []dto.InstitutionServicesStateDTO{}}
			return nil
		}
		rows, err := q.StateByService(ctx, scope)
		if err != nil {
			return err
		}
		out = &dto.StateByServiceDTO{Institutions: groupStateByInstitution(rows)}
		return nil
	})
	if err != nil {
		return nil, wrap(msgStateBySvc, err)
	}
	return out, nil
}

// GetStateByModel bombas inoperativas por modelo, ordenado por inoperativas
// descendente y nombre de modelo.
func (uc *UseCase) GetStateByModel(ctx context.Context, userID int64, role entity.Role) (*dto.StateByModelDTO, error) {
	var out *dto.StateByModelDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		scope, err := ResolveScope(ctx, q, userID, role)
		if err != nil {
			return err
		}
		result := &dto.StateByModelDTO{Models: []dto.ModelStateDTO{}}
		if len(scope) == 0 {
			out = result
			return nil
		}
		rows, err := q.StateByModel(ctx, scope)
		if err != nil {
			return err
		}
		for _, r := range rows {
			result.Models = append(result.Models, dto.ModelStateDTO{
				ModelName:        r.ModelName,
				InoperativePumps: r.InoperativePumps,
				TotalPumps:       r.TotalPumps,
			})
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, wrap(msgStateByModel, err)
	}
	return out, nil
}

// GetTopInventoryTakers ranking anual de inventariadores. Roles privilegiados
// ven el ranking completo; un rol regular solo su propia fila. No usa el
// alcance de instituciones: el ranking es por inventariador.
func (uc *UseCase) GetTopInventoryTakers(ctx context.Context, userID int64, role entity.Role) (*dto.TopInventoryTakersDTO, error) {
	var out *dto.TopInventoryTakersDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		year := time.Now().Year()

		var (
			rows []repository.TakerRankRow
			err  error
		)
		if role.CanSeeAllInstitutions() {
			rows, err = q.TopInventoryTakers(ctx, year)
		} else {
			rows, err = q.InventoryTakerRank(ctx, year, userID)
		}
		if err != nil {
			return err
		}

		takers := []dto.InventoryTakerDTO{}
		for _, r := range rows {
			takers = append(takers, dto.InventoryTakerDTO{
				UserID:                   r.UserID,
				InventoryTakerName:       r.InventoryTakerName,
				PumpsInventoriedThisYear: r.PumpsInventoriedThisYear,
			})
		}
		out = &dto.TopInventoryTakersDTO{TopInventoryTakers: takers, Year: year}
		return nil
	})
	if err != nil {
		return nil, wrap(msgTopTakers, err)
	}
	return out, nil
}

// GetOverdueMaintenanceSummary instituciones con mantenimientos vencidos
// (más de 2 años o nunca registrados), ordenadas por nombre. Para un rol
// regular se filtra por su propia actividad; para roles privilegiados la
// consulta es global.
func (uc *UseCase) GetOverdueMaintenanceSummary(ctx context.Context, userID int64, role entity.Role) (*dto.OverdueMaintenanceSummaryDTO, error) {
	var out *dto.OverdueMaintenanceSummaryDTO
	err := uc.runner.Run(ctx, func(q repository.DashboardRepository) error {
		var takerID *int64
		if !role.CanSeeAllInstitutions() {
			takerID = &userID
		}
		rows, err := q.OverdueMaintenanceByInstitution(ctx, takerID)
		if err != nil {
			return err
		}
		institutions := []dto.OverdueInstitutionDTO{}
		total := 0
		for _, r := range rows {
			institutions = append(institutions, dto.OverdueInstitutionDTO{
				InstitutionName:         r.InstitutionName,
				OverdueMaintenanceCount: r.OverdueMaintenanceCount,
			})
			total += r.OverdueMaintenanceCount
		}
		out = &dto.OverdueMaintenanceSummaryDTO{TotalOverduePumps: total, Institutions: institutions}
		return nil
	})
	if err != nil {
		return nil, wrap(msgOverdue, err)
	}
	return out, nil
}
