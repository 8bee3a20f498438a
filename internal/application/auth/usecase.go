package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
	"github.com/SantosRojas/inventory-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login y cambio de clave.
type UseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt, persiste y
// devuelve token + usuario (sesión iniciada desde el registro). Sin roleId
// explícito el usuario entra como invitado. Devuelve ErrEmailAlreadyExists
// si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	roleID := in.RoleID
	if roleID == 0 {
		guest, err := uc.guestRoleID(ctx)
		if err != nil {
			return nil, err
		}
		roleID = guest
	}
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrForeignKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CellPhone:    in.CellPhone,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       roleID,
	}
	id, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, created.ID, string(created.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *ToUserResponse(created),
	}, nil
}

// Login verifica email/contraseña, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
func (uc *UseCase) ChangePassword(ctx context.Context, userID int64, current, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = uc.userRepo.UpdatePassword(ctx, userID, string(hash))
	return err
}

func (uc *UseCase) guestRoleID(ctx context.Context) (int64, error) {
	roles, err := uc.roleRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, r := range roles {
		if entity.ParseRole(r.Name) == entity.RoleGuest {
			return r.ID, nil
		}
	}
	return 0, domain.ErrNotFound
}

// ToUserResponse proyección pública del usuario, sin credenciales.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CellPhone: u.CellPhone,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
