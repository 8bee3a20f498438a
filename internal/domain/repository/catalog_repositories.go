package repository

import (
	"context"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

// InstitutionRepository puerto de persistencia de instituciones.
type InstitutionRepository interface {
	FindAll(ctx context.Context) ([]entity.Institution, error)
	GetByID(ctx context.Context, id int64) (*entity.Institution, error)
	GetByName(ctx context.Context, name string) (*entity.Institution, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ModelRepository puerto de persistencia del catálogo de modelos.
type ModelRepository interface {
	FindAll(ctx context.Context) ([]entity.Model, error)
	GetByID(ctx context.Context, id int64) (*entity.Model, error)
	GetByName(ctx context.Context, name string) (*entity.Model, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ServiceRepository puerto de persistencia de servicios hospitalarios.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]entity.Service, error)
	GetByID(ctx context.Context, id int64) (*entity.Service, error)
	GetByName(ctx context.Context, name string) (*entity.Service, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// RoleRepository puerto de persistencia de roles.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]entity.RoleRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.RoleRecord, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
