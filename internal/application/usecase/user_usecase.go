package usecase

import (
	"context"

	"github.com/SantosRojas/inventory-api/internal/application/auth"
	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// UserUseCase administración de usuarios. El registro y las credenciales
// viven en el caso de uso de auth; aquí solo lecturas y mantenimiento.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetAll lista todos los usuarios.
func (uc *UserUseCase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		result = append(result, *auth.ToUserResponse(&list[i]))
	}
	return result, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(u), nil
}

// Update aplica un parche parcial y devuelve el usuario actualizado.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	upd := repository.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CellPhone: in.CellPhone,
		Email:     in.Email,
		RoleID:    in.RoleID,
	}
	if upd == (repository.UserUpdate{}) {
		return uc.GetByID(ctx, id)
	}
	n, err := uc.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrUserNotFound
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
