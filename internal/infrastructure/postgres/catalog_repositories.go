package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

var (
	_ repository.InstitutionRepository = (*InstitutionRepo)(nil)
	_ repository.ModelRepository       = (*ModelRepo)(nil)
	_ repository.ServiceRepository     = (*ServiceRepo)(nil)
	_ repository.RoleRepository        = (*RoleRepo)(nil)
)

// nameCatalog acceso compartido para los catálogos planos (id, name,
// created_at, updated_at). Las tres tablas de catálogo son idénticas en
// forma; solo cambia el nombre de tabla.
type nameCatalog struct {
	q     Querier
	table string
}

type catalogRow struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c nameCatalog) findAll(ctx context.Context) ([]catalogRow, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM %s ORDER BY name`, c.table)
	rows, err := c.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	defer rows.Close()

	var list []catalogRow
	for rows.Next() {
		var row catalogRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (c nameCatalog) getByID(ctx context.Context, id int64) (*catalogRow, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM %s WHERE id = $1`, c.table)
	var row catalogRow
	err := c.q.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", c.table, err)
	}
	return &row, nil
}

func (c nameCatalog) getByName(ctx context.Context, name string) (*catalogRow, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM %s WHERE name = $1`, c.table)
	var row catalogRow
	err := c.q.QueryRow(ctx, query, name).Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by name: %w", c.table, err)
	}
	return &row, nil
}

func (c nameCatalog) create(ctx context.Context, name string) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, c.table)
	var id int64
	if err := c.q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert %s: %w", c.table, err)
	}
	return id, nil
}

func (c nameCatalog) update(ctx context.Context, id int64, name string) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET name = $2, updated_at = NOW() WHERE id = $1`, c.table)
	cmd, err := c.q.Exec(ctx, query, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update %s: %w", c.table, err)
	}
	return cmd.RowsAffected(), nil
}

func (c nameCatalog) delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)
	cmd, err := c.q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("delete %s: %w", c.table, err)
	}
	return cmd.RowsAffected(), nil
}

// ── Instituciones ──────────────────────────────────────────────────────

// InstitutionRepo implementación del puerto InstitutionRepository.
type InstitutionRepo struct{ c nameCatalog }

// NewInstitutionRepository construye el adaptador de instituciones.
func NewInstitutionRepository(q Querier) *InstitutionRepo {
	return &InstitutionRepo{c: nameCatalog{q: q, table: "institutions"}}
}

func (r *InstitutionRepo) FindAll(ctx context.Context) ([]entity.Institution, error) {
	rows, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]entity.Institution, 0, len(rows))
	for _, row := range rows {
		list = append(list, entity.Institution(row))
	}
	return list, nil
}

func (r *InstitutionRepo) GetByID(ctx context.Context, id int64) (*entity.Institution, error) {
	row, err := r.c.getByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	ins := entity.Institution(*row)
	return &ins, nil
}

func (r *InstitutionRepo) GetByName(ctx context.Context, name string) (*entity.Institution, error) {
	row, err := r.c.getByName(ctx, name)
	if err != nil || row == nil {
		return nil, err
	}
	ins := entity.Institution(*row)
	return &ins, nil
}

func (r *InstitutionRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.c.create(ctx, name)
}

func (r *InstitutionRepo) Update(ctx context.Context, id int64, name string) (int64, error) {
	return r.c.update(ctx, id, name)
}

func (r *InstitutionRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.c.delete(ctx, id)
}

// ── Modelos ────────────────────────────────────────────────────────────

// ModelRepo implementación del puerto ModelRepository.
type ModelRepo struct{ c nameCatalog }

// NewModelRepository construye el adaptador del catálogo de modelos.
func NewModelRepository(q Querier) *ModelRepo {
	return &ModelRepo{c: nameCatalog{q: q, table: "models"}}
}

func (r *ModelRepo) FindAll(ctx context.Context) ([]entity.Model, error) {
	rows, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]entity.Model, 0, len(rows))
	for _, row := range rows {
		list = append(list, entity.Model(row))
	}
	return list, nil
}

func (r *ModelRepo) GetByID(ctx context.Context, id int64) (*entity.Model, error) {
	row, err := r.c.getByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	m := entity.Model(*row)
	return &m, nil
}

func (r *ModelRepo) GetByName(ctx context.Context, name string) (*entity.Model, error) {
	row, err := r.c.getByName(ctx, name)
	if err != nil || row == nil {
		return nil, err
	}
	m := entity.Model(*row)
	return &m, nil
}

func (r *ModelRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.c.create(ctx, name)
}

func (r *ModelRepo) Update(ctx context.Context, id int64, name string) (int64, error) {
	return r.c.update(ctx, id, name)
}

func (r *ModelRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.c.delete(ctx, id)
}

// ── Servicios ──────────────────────────────────────────────────────────

// ServiceRepo implementación del puerto ServiceRepository.
type ServiceRepo struct{ c nameCatalog }

// NewServiceRepository construye el adaptador de servicios hospitalarios.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{c: nameCatalog{q: q, table: "services"}}
}

func (r *ServiceRepo) FindAll(ctx context.Context) ([]entity.Service, error) {
	rows, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		list = append(list, entity.Service(row))
	}
	return list, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*entity.Service, error) {
	row, err := r.c.getByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	s := entity.Service(*row)
	return &s, nil
}

func (r *ServiceRepo) GetByName(ctx context.Context, name string) (*entity.Service, error) {
	row, err := r.c.getByName(ctx, name)
	if err != nil || row == nil {
		return nil, err
	}
	s := entity.Service(*row)
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.c.create(ctx, name)
}

func (r *ServiceRepo) Update(ctx context.Context, id int64, name string) (int64, error) {
	return r.c.update(ctx, id, name)
}

func (r *ServiceRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.c.delete(ctx, id)
}

// ── Roles ──────────────────────────────────────────────────────────────

// RoleRepo implementación del puerto RoleRepository.
type RoleRepo struct{ c nameCatalog }

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{c: nameCatalog{q: q, table: "roles"}}
}

func (r *RoleRepo) FindAll(ctx context.Context) ([]entity.RoleRecord, error) {
	rows, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]entity.RoleRecord, 0, len(rows))
	for _, row := range rows {
		list = append(list, entity.RoleRecord(row))
	}
	return list, nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.RoleRecord, error) {
	row, err := r.c.getByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	role := entity.RoleRecord(*row)
	return &role, nil
}

func (r *RoleRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.c.create(ctx, name)
}

func (r *RoleRepo) Update(ctx context.Context, id int64, name string) (int64, error) {
	return r.c.update(ctx, id, name)
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.c.delete(ctx, id)
}
