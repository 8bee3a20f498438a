package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// columnas de la vista de detalle, con los nombres resueltos por JOIN.
const inventorySelect = `
	SELECT
	    i.id, i.serial_number, i.qr_code,
	    m.name   AS model,
	    ins.name AS institution,
	    s.name   AS service,
	    u.first_name || ' ' || u.last_name AS inventory_manager,
	    i.inventory_date, i.status, i.last_maintenance_date, i.manufacture_date,
	    i.created_at
	FROM inventory i
	JOIN models m         ON i.model_id           = m.id
	JOIN institutions ins ON i.institution_id     = ins.id
	JOIN services s       ON i.service_id         = s.id
	JOIN users u          ON i.inventory_taker_id = u.id`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia del inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) queryDetails(ctx context.Context, op, where string, args ...any) ([]entity.InventoryDetail, error) {
	rows, err := r.q.Query(ctx, inventorySelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []entity.InventoryDetail
	for rows.Next() {
		var d entity.InventoryDetail
		if err := rows.Scan(
			&d.ID, &d.SerialNumber, &d.QRCode, &d.Model, &d.Institution, &d.Service,
			&d.InventoryManager, &d.InventoryDate, &d.Status,
			&d.LastMaintenanceDate, &d.ManufactureDate, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// FindAll lista todo el inventario ordenado por fecha de creación.
func (r *InventoryRepo) FindAll(ctx context.Context) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory", ` ORDER BY i.created_at DESC`)
}

// GetByID obtiene un registro por ID. Devuelve nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryDetail, error) {
	list, err := r.queryDetails(ctx, "get inventory", ` WHERE i.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// GetBySerialNumber busca por número de serie exacto.
func (r *InventoryRepo) GetBySerialNumber(ctx context.Context, serial string) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "get inventory by serial", ` WHERE i.serial_number = $1`, serial)
}

// GetByQRCode busca por código QR exacto.
func (r *InventoryRepo) GetByQRCode(ctx context.Context, qrCode string) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "get inventory by qr", ` WHERE i.qr_code = $1`, qrCode)
}

// FindByModelID registros de un modelo.
func (r *InventoryRepo) FindByModelID(ctx context.Context, modelID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by model", ` WHERE i.model_id = $1 ORDER BY i.created_at DESC`, modelID)
}

// FindByInstitutionID registros de una institución.
func (r *InventoryRepo) FindByInstitutionID(ctx context.Context, institutionID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by institution", ` WHERE i.institution_id = $1 ORDER BY i.created_at DESC`, institutionID)
}

// FindByServiceID registros de un servicio.
func (r *InventoryRepo) FindByServiceID(ctx context.Context, serviceID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by service", ` WHERE i.service_id = $1 ORDER BY i.created_at DESC`, serviceID)
}

// FindByServiceAndInstitution registros de un servicio dentro de una institución.
func (r *InventoryRepo) FindByServiceAndInstitution(ctx context.Context, serviceID, institutionID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by service and institution",
		` WHERE i.service_id = $1 AND i.institution_id = $2 ORDER BY i.created_at DESC`, serviceID, institutionID)
}

// FindByStatus registros con un estado dado.
func (r *InventoryRepo) FindByStatus(ctx context.Context, status string) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by status", ` WHERE i.status = $1 ORDER BY i.created_at DESC`, status)
}

// FindByTakerID registros inventariados por un usuario.
func (r *InventoryRepo) FindByTakerID(ctx context.Context, takerID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory by taker", ` WHERE i.inventory_taker_id = $1 ORDER BY i.inventory_date DESC`, takerID)
}

// FindLatestByUser últimos registros del usuario, más recientes primero.
func (r *InventoryRepo) FindLatestByUser(ctx context.Context, userID int64, limit int) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list latest inventory by user",
		` WHERE i.inventory_taker_id = $1 ORDER BY i.inventory_date DESC LIMIT $2`, userID, limit)
}

// FindCurrentYearByInstitution registros de la institución inventariados en el año.
func (r *InventoryRepo) FindCurrentYearByInstitution(ctx context.Context, institutionID int64, year int) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory current year",
		` WHERE i.institution_id = $1 AND EXTRACT(YEAR FROM i.inventory_date) = $2 ORDER BY i.inventory_date DESC`,
		institutionID, year)
}

// FindNotInventoriedThisYear bombas de la institución sin inventariar en el año.
func (r *InventoryRepo) FindNotInventoriedThisYear(ctx context.Context, institutionID int64, year int) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list inventory not inventoried",
		` WHERE i.institution_id = $1 AND EXTRACT(YEAR FROM i.inventory_date) <> $2 ORDER BY i.inventory_date`,
		institutionID, year)
}

// FindOverdueByInstitution bombas con mantenimiento vencido (>2 años o nulo).
func (r *InventoryRepo) FindOverdueByInstitution(ctx context.Context, institutionID int64) ([]entity.InventoryDetail, error) {
	return r.queryDetails(ctx, "list overdue inventory",
		` WHERE i.institution_id = $1
	      AND (i.last_maintenance_date < NOW() - INTERVAL '2 years' OR i.last_maintenance_date IS NULL)
	    ORDER BY i.last_maintenance_date NULLS FIRST`,
		institutionID)
}

// Create inserta un registro y devuelve su ID generado.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) (int64, error) {
	const query = `
	INSERT INTO inventory (serial_number, qr_code, model_id, institution_id, service_id,
	    inventory_taker_id, inventory_date, status, last_maintenance_date, manufacture_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`

	var id int64
	err := r.q.QueryRow(ctx, query,
		inv.SerialNumber, inv.QRCode, inv.ModelID, inv.InstitutionID, inv.ServiceID,
		inv.InventoryTakerID, inv.InventoryDate, inv.Status, inv.LastMaintenanceDate, inv.ManufactureDate,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("insert inventory: %w", err)
	}
	return id, nil
}

// BulkCreate inserta un lote de registros en una sola sentencia y devuelve
// cuántos se insertaron.
func (r *InventoryRepo) BulkCreate(ctx context.Context, items []entity.Inventory) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`INSERT INTO inventory (serial_number, qr_code, model_id, institution_id, service_id,
	    inventory_taker_id, inventory_date, status, last_maintenance_date, manufacture_date) VALUES `)
	for i, inv := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 10
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10))
		args = append(args,
			inv.SerialNumber, inv.QRCode, inv.ModelID, inv.InstitutionID, inv.ServiceID,
			inv.InventoryTakerID, inv.InventoryDate, inv.Status, inv.LastMaintenanceDate, inv.ManufactureDate,
		)
	}

	cmd, err := r.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("bulk insert inventory: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Update aplica un parche parcial y devuelve el detalle actualizado.
// Devuelve nil si el registro no existe.
func (r *InventoryRepo) Update(ctx context.Context, id int64, upd repository.InventoryUpdate) (*entity.InventoryDetail, error) {
	var (
		sets []string
		args = []any{id}
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.QRCode != nil {
		add("qr_code", *upd.QRCode)
	}
	if upd.InstitutionID != nil {
		add("institution_id", *upd.InstitutionID)
	}
	if upd.ServiceID != nil {
		add("service_id", *upd.ServiceID)
	}
	if upd.InventoryTakerID != nil {
		add("inventory_taker_id", *upd.InventoryTakerID)
	}
	if upd.InventoryDate != nil {
		add("inventory_date", *upd.InventoryDate)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.LastMaintenanceDate != nil {
		add("last_maintenance_date", *upd.LastMaintenanceDate)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE inventory SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrForeignKey
		}
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete elimina un registro. Devuelve cuántas filas se borraron (0 o 1).
func (r *InventoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete inventory: %w", err)
	}
	return cmd.RowsAffected(), nil
}
