package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

var _ repository.InventoryTimeRepository = (*InventoryTimeRepo)(nil)

const inventoryTimeSelect = `
	SELECT id, user_id, inventory_id, start_time, end_time, duration_seconds, success, created_at
	FROM inventory_times`

// InventoryTimeRepo implementación del puerto InventoryTimeRepository.
type InventoryTimeRepo struct {
	q Querier
}

// NewInventoryTimeRepository construye el adaptador de sesiones cronometradas.
func NewInventoryTimeRepository(q Querier) *InventoryTimeRepo {
	return &InventoryTimeRepo{q: q}
}

func scanInventoryTime(row pgx.Row) (*entity.InventoryTime, error) {
	var it entity.InventoryTime
	err := row.Scan(
		&it.ID, &it.UserID, &it.InventoryID, &it.StartTime, &it.EndTime,
		&it.DurationSeconds, &it.Success, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// FindAll lista todas las sesiones, más recientes primero.
func (r *InventoryTimeRepo) FindAll(ctx context.Context) ([]entity.InventoryTime, error) {
	return r.list(ctx, "list inventory times", ` ORDER BY start_time DESC`)
}

// FindByUserID sesiones de un usuario, más recientes primero.
func (r *InventoryTimeRepo) FindByUserID(ctx context.Context, userID int64) ([]entity.InventoryTime, error) {
	return r.list(ctx, "list inventory times by user", ` WHERE user_id = $1 ORDER BY start_time DESC`, userID)
}

func (r *InventoryTimeRepo) list(ctx context.Context, op, where string, args ...any) ([]entity.InventoryTime, error) {
	rows, err := r.q.Query(ctx, inventoryTimeSelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []entity.InventoryTime
	for rows.Next() {
		it, err := scanInventoryTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, *it)
	}
	return list, rows.Err()
}

// GetByID obtiene una sesión por ID. Devuelve nil si no existe.
func (r *InventoryTimeRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryTime, error) {
	it, err := scanInventoryTime(r.q.QueryRow(ctx, inventoryTimeSelect+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory time: %w", err)
	}
	return it, nil
}

// Create registra una sesión y devuelve su ID generado.
func (r *InventoryTimeRepo) Create(ctx context.Context, it *entity.InventoryTime) (int64, error) {
	const query = `
	INSERT INTO inventory_times (user_id, inventory_id, start_time, end_time, duration_seconds, success)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64
	err := r.q.QueryRow(ctx, query,
		it.UserID, it.InventoryID, it.StartTime, it.EndTime, it.DurationSeconds, it.Success,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("insert inventory time: %w", err)
	}
	return id, nil
}

// Update aplica un parche parcial. Devuelve cuántas filas cambiaron.
func (r *InventoryTimeRepo) Update(ctx context.Context, id int64, upd repository.InventoryTimeUpdate) (int64, error) {
	var (
		sets []string
		args = []any{id}
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.InventoryID != nil {
		add("inventory_id", *upd.InventoryID)
	}
	if upd.StartTime != nil {
		add("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		add("end_time", *upd.EndTime)
	}
	if upd.DurationSeconds != nil {
		add("duration_seconds", *upd.DurationSeconds)
	}
	if upd.Success != nil {
		add("success", *upd.Success)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`UPDATE inventory_times SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("update inventory time: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina una sesión. Devuelve cuántas filas se borraron.
func (r *InventoryTimeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_times WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete inventory time: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByUser total de sesiones y sesiones exitosas del usuario.
func (r *InventoryTimeRepo) CountByUser(ctx context.Context, userID int64) (sessions, successful int, err error) {
	const query = `
	SELECT COUNT(*), COUNT(CASE WHEN success THEN 1 END)
	FROM inventory_times
	WHERE user_id = $1`

	if err := r.q.QueryRow(ctx, query, userID).Scan(&sessions, &successful); err != nil {
		return 0, 0, fmt.Errorf("count inventory times: %w", err)
	}
	return sessions, successful, nil
}

// AverageDurationByUser promedio de duración de las sesiones exitosas.
// COALESCE a 0 para usuarios sin sesiones exitosas.
func (r *InventoryTimeRepo) AverageDurationByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(AVG(duration_seconds), 0)
	FROM inventory_times
	WHERE user_id = $1 AND success`

	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query, userID).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("average inventory time: %w", err)
	}
	return avg, nil
}
