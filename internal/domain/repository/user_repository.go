package repository

import (
	"context"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

// UserUpdate campos actualizables de un usuario. Punteros nil = sin cambios.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	CellPhone *string
	Email     *string
	RoleID    *int64
}

// UserRepository puerto de persistencia de usuarios.
// Las lecturas resuelven el nombre del rol por JOIN con la tabla roles.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) (int64, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
