package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userSelect = `
	SELECT u.id, u.first_name, u.last_name, u.cell_phone, u.email, u.password,
	       u.role_id, r.name AS role, u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON u.role_id = r.id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las lecturas resuelven el nombre del rol por JOIN.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.CellPhone, &u.Email, &u.PasswordHash,
		&u.RoleID, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = entity.ParseRole(role)
	return &u, nil
}

// FindAll lista todos los usuarios con su rol resuelto.
func (r *UserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	rows, err := r.q.Query(ctx, userSelect+` ORDER BY u.first_name, u.last_name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, *u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail obtiene un usuario por email. Devuelve nil si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.email = $1`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Create registra un usuario y devuelve su ID generado.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	const query = `
	INSERT INTO users (first_name, last_name, cell_phone, email, password, role_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64
	err := r.q.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.CellPhone, u.Email, u.PasswordHash, u.RoleID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// Update aplica un parche parcial. Devuelve cuántas filas cambiaron.
func (r *UserRepo) Update(ctx context.Context, id int64, upd repository.UserUpdate) (int64, error) {
	var (
		sets []string
		args = []any{id}
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.CellPhone != nil {
		add("cell_phone", *upd.CellPhone)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.RoleID != nil {
		add("role_id", *upd.RoleID)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("update user: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("update user password: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un usuario. Devuelve cuántas filas se borraron.
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrForeignKey
		}
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return cmd.RowsAffected(), nil
}
