package usecase

import (
	"context"
	"strings"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// CatalogUseCase operaciones CRUD sobre los catálogos planos: instituciones,
// modelos y servicios. Los tres comparten la misma lógica; el repositorio
// inyectado decide la tabla.
type CatalogUseCase struct {
	findAll   func(ctx context.Context) ([]dto.CatalogItemResponse, error)
	getByID   func(ctx context.Context, id int64) (*dto.CatalogItemResponse, error)
	getByName func(ctx context.Context, name string) (*dto.CatalogItemResponse, error)
	create    func(ctx context.Context, name string) (int64, error)
	update    func(ctx context.Context, id int64, name string) (int64, error)
	delete    func(ctx context.Context, id int64) (int64, error)
}

// NewInstitutionUseCase caso de uso del catálogo de instituciones.
func NewInstitutionUseCase(repo repository.InstitutionRepository) *CatalogUseCase {
	return &CatalogUseCase{
		findAll: func(ctx context.Context) ([]dto.CatalogItemResponse, error) {
			list, err := repo.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]dto.CatalogItemResponse, 0, len(list))
			for _, it := range list {
				items = append(items, dto.CatalogItemResponse(it))
			}
			return items, nil
		},
		getByID: func(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByID(ctx, id)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		getByName: func(ctx context.Context, name string) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByName(ctx, name)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		create: repo.Create,
		update: repo.Update,
		delete: repo.Delete,
	}
}

// NewModelUseCase caso de uso del catálogo de modelos de bomba.
func NewModelUseCase(repo repository.ModelRepository) *CatalogUseCase {
	return &CatalogUseCase{
		findAll: func(ctx context.Context) ([]dto.CatalogItemResponse, error) {
			list, err := repo.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]dto.CatalogItemResponse, 0, len(list))
			for _, it := range list {
				items = append(items, dto.CatalogItemResponse(it))
			}
			return items, nil
		},
		getByID: func(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByID(ctx, id)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		getByName: func(ctx context.Context, name string) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByName(ctx, name)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		create: repo.Create,
		update: repo.Update,
		delete: repo.Delete,
	}
}

// NewServiceUseCase caso de uso del catálogo de servicios hospitalarios.
func NewServiceUseCase(repo repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{
		findAll: func(ctx context.Context) ([]dto.CatalogItemResponse, error) {
			list, err := repo.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]dto.CatalogItemResponse, 0, len(list))
			for _, it := range list {
				items = append(items, dto.CatalogItemResponse(it))
			}
			return items, nil
		},
		getByID: func(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByID(ctx, id)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		getByName: func(ctx context.Context, name string) (*dto.CatalogItemResponse, error) {
			it, err := repo.GetByName(ctx, name)
			if err != nil || it == nil {
				return nil, err
			}
			item := dto.CatalogItemResponse(*it)
			return &item, nil
		},
		create: repo.Create,
		update: repo.Update,
		delete: repo.Delete,
	}
}

// GetAll lista el catálogo completo ordenado por nombre.
func (uc *CatalogUseCase) GetAll(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	return uc.findAll(ctx)
}

// GetByID obtiene un elemento por ID.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
	item, err := uc.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// GetByName obtiene un elemento por nombre exacto.
func (uc *CatalogUseCase) GetByName(ctx context.Context, name string) (*dto.CatalogItemResponse, error) {
	item, err := uc.getByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create da de alta un elemento y lo devuelve.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.NameRequest) (*dto.CatalogItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.create(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Update renombra un elemento y devuelve la versión actualizada.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.NameRequest) (*dto.CatalogItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	n, err := uc.update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un elemento por ID.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RoleUseCase operaciones CRUD sobre roles. Separado de los catálogos
// porque los roles no se consultan por nombre desde la API y su borrado
// está restringido a los roles no esenciales.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// GetAll lista los roles.
func (uc *RoleUseCase) GetAll(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.CatalogItemResponse(r))
	}
	return items, nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	item := dto.CatalogItemResponse(*r)
	return &item, nil
}

// Create da de alta un rol.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.NameRequest) (*dto.CatalogItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Update renombra un rol. Los roles privilegiados no se pueden renombrar.
func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.NameRequest) (*dto.CatalogItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if entity.ParseRole(current.Name).CanSeeAllInstitutions() {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.repo.Update(ctx, id, name); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un rol no privilegiado.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if entity.ParseRole(current.Name).CanSeeAllInstitutions() {
		return domain.ErrForbidden
	}
	_, err = uc.repo.Delete(ctx, id)
	return err
}
