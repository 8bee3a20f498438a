package postgres

import (
	"context"
	"fmt"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura del dashboard.
// Se ata a un Querier: normalmente la conexión de la petición que entrega
// DashboardRunner, para que toda la secuencia de consultas de un reporte
// use la misma conexión del pool.
type DashboardRepo struct {
	db Querier
}

// NewDashboardRepository construye el adaptador de agregación.
func NewDashboardRepository(db Querier) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// AllInstitutionIDs ids de todas las instituciones (alcance privilegiado).
func (r *DashboardRepo) AllInstitutionIDs(ctx context.Context) ([]int64, error) {
	const query = `SELECT id FROM institutions`
	return r.scanIDs(ctx, "dashboard.AllInstitutionIDs", query)
}

// InstitutionIDsByTaker instituciones donde el usuario tiene actividad.
func (r *DashboardRepo) InstitutionIDsByTaker(ctx context.Context, userID int64) ([]int64, error) {
	const query = `
	SELECT DISTINCT institution_id
	FROM inventory
	WHERE inventory_taker_id = $1`
	return r.scanIDs(ctx, "dashboard.InstitutionIDsByTaker", query, userID)
}

func (r *DashboardRepo) scanIDs(ctx context.Context, op, query string, args ...any) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Summary conteos generales sobre el alcance: total, inventariadas en el
// año, operativas y con mantenimiento vencido (>2 años o nulo).
func (r *DashboardRepo) Summary(ctx context.Context, institutionIDs []int64, year int) (repository.SummaryRow, error) {
	const query = `
	SELECT
	    COUNT(*)                                                            AS total_pumps,
	    COUNT(CASE WHEN EXTRACT(YEAR FROM i.inventory_date) = $2 THEN 1 END) AS inventoried_pumps_this_year,
	    COUNT(CASE WHEN i.status = 'Operativo' THEN 1 END)                  AS operative_pumps,
	    COUNT(CASE WHEN i.last_maintenance_date < NOW() - INTERVAL '2 years'
	               OR i.last_maintenance_date IS NULL THEN 1 END)           AS overdue_pumps_maintenance
	FROM inventory i
	WHERE i.institution_id = ANY($1)`

	var row repository.SummaryRow
	err := r.db.QueryRow(ctx, query, institutionIDs, year).Scan(
		&row.TotalPumps,
		&row.InventoriedPumpsThisYear,
		&row.OperativePumps,
		&row.OverduePumpsMaintenance,
	)
	if err != nil {
		return repository.SummaryRow{}, fmt.Errorf("dashboard.Summary: %w", err)
	}
	return row, nil
}

// AdminTotals métricas administrativas sobre TODO el inventario, sin filtrar
// por alcance (visión global para admin/root).
func (r *DashboardRepo) AdminTotals(ctx context.Context) (repository.AdminTotalsRow, error) {
	const query = `
	SELECT
	    COUNT(DISTINCT inventory_taker_id) AS total_inventory_takers,
	    COUNT(DISTINCT institution_id)     AS total_institutions
	FROM inventory`

	var row repository.AdminTotalsRow
	err := r.db.QueryRow(ctx, query).Scan(&row.TotalInventoryTakers, &row.TotalInstitutions)
	if err != nil {
		return repository.AdminTotalsRow{}, fmt.Errorf("dashboard.AdminTotals: %w", err)
	}
	return row, nil
}

// ModelDistribution conteo por modelo, de mayor a menor.
func (r *DashboardRepo) ModelDistribution(ctx context.Context, institutionIDs []int64) ([]repository.ModelCountRow, error) {
	const query = `
	SELECT
	    m.name   AS model_name,
	    COUNT(*) AS count
	FROM inventory i
	JOIN models m ON i.model_id = m.id
	WHERE i.institution_id = ANY($1)
	GROUP BY m.id, m.name
	ORDER BY COUNT(*) DESC`

	rows, err := r.db.Query(ctx, query, institutionIDs)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ModelDistribution: %w", err)
	}
	defer rows.Close()

	var results []repository.ModelCountRow
	for rows.Next() {
		var row repository.ModelCountRow
		if err := rows.Scan(&row.ModelName, &row.Count); err != nil {
			return nil, fmt.Errorf("dashboard.ModelDistribution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ModelDistributionByInstitution tripletas (institución, modelo, conteo)
// ordenadas por nombre de institución y conteo descendente; el shaper las
// pivota en una fila por institución.
func (r *DashboardRepo) ModelDistributionByInstitution(ctx context.Context, institutionIDs []int64) ([]repository.InstitutionModelCountRow, error) {
	const query = `
	SELECT
	    ins.name AS institution_name,
	    m.name   AS model_name,
	    COUNT(*) AS count
	FROM inventory i
	JOIN institutions ins ON i.institution_id = ins.id
	JOIN models m         ON i.model_id       = m.id
	WHERE i.institution_id = ANY($1)
	GROUP BY ins.id, ins.name, m.id, m.name
	ORDER BY ins.name, COUNT(*) DESC`

	rows, err := r.db.Query(ctx, query, institutionIDs)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ModelDistributionByInstitution: %w", err)
	}
	defer rows.Close()

	var results []repository.InstitutionModelCountRow
	for rows.Next() {
		var row repository.InstitutionModelCountRow
		if err := rows.Scan(&row.InstitutionName, &row.ModelName, &row.Count); err != nil {
			return nil, fmt.Errorf("dashboard.ModelDistributionByInstitution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalPumps total de bombas dentro del alcance.
func (r *DashboardRepo) TotalPumps(ctx context.Context, institutionIDs []int64) (int, error) {
	const query = `SELECT COUNT(*) FROM inventory WHERE institution_id = ANY($1)`

	var total int
	if err := r.db.QueryRow(ctx, query, institutionIDs).Scan(&total); err != nil {
		return 0, fmt.Errorf("dashboard.TotalPumps: %w", err)
	}
	return total, nil
}

// InventoryProgressByInstitution progreso anual por institución, por nombre.
func (r *DashboardRepo) InventoryProgressByInstitution(ctx context.Context, institutionIDs []int64, year int) ([]repository.InstitutionProgressRow, error) {
	const query = `
	SELECT
	    ins.name AS institution_name,
	    COUNT(CASE WHEN EXTRACT(YEAR FROM i.inventory_date) = $2 THEN 1 END) AS pumps_inventoried_this_year,
	    COUNT(*) AS total_pumps
	FROM inventory i
	JOIN institutions ins ON i.institution_id = ins.id
	WHERE i.institution_id = ANY($1)
	GROUP BY ins.id, ins.name
	ORDER BY ins.name`

	rows, err := r.db.Query(ctx, query, institutionIDs, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard.InventoryProgressByInstitution: %w", err)
	}
	defer rows.Close()

	var results []repository.InstitutionProgressRow
	for rows.Next() {
		var row repository.InstitutionProgressRow
		if err := rows.Scan(&row.InstitutionName, &row.PumpsInventoriedThisYear, &row.TotalPumps); err != nil {
			return nil, fmt.Errorf("dashboard.InventoryProgressByInstitution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InventoryProgressByService filas (institución, servicio) con progreso
// anual, ordenadas por institución y servicio para la agrupación posterior.
func (r *DashboardRepo) InventoryProgressByService(ctx context.Context, institutionIDs []int64, year int) ([]repository.ServiceProgressRow, error) {
	const query = `
	SELECT
	    ins.id   AS institution_id,
	    ins.name AS institution_name,
	    s.id     AS service_id,
	    s.name   AS service_name,
	    COUNT(CASE WHEN EXTRACT(YEAR FROM i.inventory_date) = $2 THEN 1 END) AS pumps_inventoried_this_year,
	    COUNT(*) AS total_pumps
	FROM inventory i
	JOIN institutions ins ON i.institution_id = ins.id
	JOIN services s       ON i.service_id     = s.id
	WHERE i.institution_id = ANY($1)
	GROUP BY ins.id, ins.name, s.id, s.name
	ORDER BY ins.name, s.name`

	rows, err := r.db.Query(ctx, query, institutionIDs, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard.InventoryProgressByService: %w", err)
	}
	defer rows.Close()

	var results []repository.ServiceProgressRow
	for rows.Next() {
		var row repository.ServiceProgressRow
		if err := rows.Scan(
			&row.InstitutionID,
			&row.InstitutionName,
			&row.ServiceID,
			&row.ServiceName,
			&row.PumpsInventoriedThisYear,
			&row.TotalPumps,
		); err != nil {
			return nil, fmt.Errorf("dashboard.InventoryProgressByService scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StateByService bombas inoperativas por (institución, servicio).
func (r *DashboardRepo) StateByService(ctx context.Context, institutionIDs []int64) ([]repository.ServiceStateRow, error) {
	const query = `
	SELECT
	    ins.id   AS institution_id,
	    ins.name AS institution_name,
	    s.id     AS service_id,
	    s.name   AS service_name,
	    COUNT(CASE WHEN i.status = ANY($2) THEN 1 END) AS inoperative_pumps_count,
	    COUNT(*) AS total_pumps
	FROM inventory i
	JOIN institutions ins ON i.institution_id = ins.id
	JOIN services s       ON i.service_id     = s.id
	WHERE i.institution_id = ANY($1)
	GROUP BY ins.id, ins.name, s.id, s.name
	ORDER BY ins.name, s.name`

	rows, err := r.db.Query(ctx, query, institutionIDs, entity.InoperativeStatuses)
	if err != nil {
		return nil, fmt.Errorf("dashboard.StateByService: %w", err)
	}
	defer rows.Close()

	var results []repository.ServiceStateRow
	for rows.Next() {
		var row repository.ServiceStateRow
		if err := rows.Scan(
			&row.InstitutionID,
			&row.InstitutionName,
			&row.ServiceID,
			&row.ServiceName,
			&row.InoperativePumpsCount,
			&row.TotalPumps,
		); err != nil {
			return nil, fmt.Errorf("dashboard.StateByService scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StateByModel bombas inoperativas por modelo, de más a menos inoperativas.
func (r *DashboardRepo) StateByModel(ctx context.Context, institutionIDs []int64) ([]repository.ModelStateRow, error) {
	const query = `
	SELECT
	    m.name AS model_name,
	    COUNT(CASE WHEN i.status = ANY($2) THEN 1 END) AS inoperative_pumps,
	    COUNT(*) AS total_pumps
	FROM inventory i
	JOIN models m ON i.model_id = m.id
	WHERE i.institution_id = ANY($1)
	GROUP BY m.id, m.name
	ORDER BY inoperative_pumps DESC, m.name`

	rows, err := r.db.Query(ctx, query, institutionIDs, entity.InoperativeStatuses)
	if err != nil {
		return nil, fmt.Errorf("dashboard.StateByModel: %w", err)
	}
	defer rows.Close()

	var results []repository.ModelStateRow
	for rows.Next() {
		var row repository.ModelStateRow
		if err := rows.Scan(&row.ModelName, &row.InoperativePumps, &row.TotalPumps); err != nil {
			return nil, fmt.Errorf("dashboard.StateByModel scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopInventoryTakers ranking global del año (roles privilegiados).
func (r *DashboardRepo) TopInventoryTakers(ctx context.Context, year int) ([]repository.TakerRankRow, error) {
	const query = `
	SELECT
	    u.id                               AS user_id,
	    u.first_name || ' ' || u.last_name AS inventory_taker_name,
	    COUNT(*)                           AS pumps_inventoried_this_year
	FROM inventory i
	JOIN users u ON i.inventory_taker_id = u.id
	WHERE EXTRACT(YEAR FROM i.inventory_date) = $1
	GROUP BY u.id, u.first_name, u.last_name
	ORDER BY pumps_inventoried_this_year DESC, u.first_name, u.last_name`

	return r.scanTakerRows(ctx, "dashboard.TopInventoryTakers", query, year)
}

// InventoryTakerRank la fila del propio usuario en el año (a lo sumo una).
func (r *DashboardRepo) InventoryTakerRank(ctx context.Context, year int, userID int64) ([]repository.TakerRankRow, error) {
	const query = `
	SELECT
	    u.id                               AS user_id,
	    u.first_name || ' ' || u.last_name AS inventory_taker_name,
	    COUNT(*)                           AS pumps_inventoried_this_year
	FROM inventory i
	JOIN users u ON i.inventory_taker_id = u.id
	WHERE EXTRACT(YEAR FROM i.inventory_date) = $1 AND u.id = $2
	GROUP BY u.id, u.first_name, u.last_name`

	return r.scanTakerRows(ctx, "dashboard.InventoryTakerRank", query, year, userID)
}

func (r *DashboardRepo) scanTakerRows(ctx context.Context, op, query string, args ...any) ([]repository.TakerRankRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.TakerRankRow
	for rows.Next() {
		var row repository.TakerRankRow
		if err := rows.Scan(&row.UserID, &row.InventoryTakerName, &row.PumpsInventoriedThisYear); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OverdueMaintenanceByInstitution instituciones con al menos un registro con
// mantenimiento vencido (más de 2 años o nulo), ordenadas por nombre.
// takerID nil = consulta global (roles privilegiados).
func (r *DashboardRepo) OverdueMaintenanceByInstitution(ctx context.Context, takerID *int64) ([]repository.OverdueInstitutionRow, error) {
	const query = `
	SELECT
	    ins.name AS institution_name,
	    COUNT(CASE WHEN i.last_maintenance_date < NOW() - INTERVAL '2 years'
	               OR i.last_maintenance_date IS NULL THEN 1 END) AS overdue_maintenance_count
	FROM inventory i
	JOIN institutions ins ON i.institution_id = ins.id
	WHERE $1::BIGINT IS NULL OR i.inventory_taker_id = $1::BIGINT
	GROUP BY ins.id, ins.name
	HAVING COUNT(CASE WHEN i.last_maintenance_date < NOW() - INTERVAL '2 years'
	             OR i.last_maintenance_date IS NULL THEN 1 END) > 0
	ORDER BY ins.name`

	rows, err := r.db.Query(ctx, query, takerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.OverdueMaintenanceByInstitution: %w", err)
	}
	defer rows.Close()

	var results []repository.OverdueInstitutionRow
	for rows.Next() {
		var row repository.OverdueInstitutionRow
		if err := rows.Scan(&row.InstitutionName, &row.OverdueMaintenanceCount); err != nil {
			return nil, fmt.Errorf("dashboard.OverdueMaintenanceByInstitution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
