package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SantosRojas/inventory-api/internal/application/auth"
	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
	pkgjwt "github.com/SantosRojas/inventory-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "inventory-api-test"
	testExpMin = 60
)

// stubUserRepo guarda el usuario creado en memoria y lo devuelve en GetByID
// con el nombre de rol ya resuelto.
type stubUserRepo struct {
	repository.UserRepository

	byEmail *entity.User
	nextID  int64
	created *entity.User
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.byEmail, nil
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	s.created = u
	return s.nextID, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if s.created == nil {
		return nil, nil
	}
	u := *s.created
	u.ID = id
	u.Role = entity.RoleGuest
	return &u, nil
}

type stubRoleRepo struct {
	repository.RoleRepository

	roles []entity.RoleRecord
}

func (s *stubRoleRepo) FindAll(ctx context.Context) ([]entity.RoleRecord, error) {
	return s.roles, nil
}

func (s *stubRoleRepo) GetByID(ctx context.Context, id int64) (*entity.RoleRecord, error) {
	for _, r := range s.roles {
		if r.ID == id {
			rr := r
			return &rr, nil
		}
	}
	return nil, nil
}

func buildAuthUseCase(users *stubUserRepo) *auth.UseCase {
	roles := &stubRoleRepo{roles: []entity.RoleRecord{
		{ID: 1, Name: "admin"},
		{ID: 4, Name: "guest"},
	}}
	return auth.NewUseCase(users, roles, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DevuelveTokenYUsuario(t *testing.T) {
	users := &stubUserRepo{nextID: 10}
	uc := buildAuthUseCase(users)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Rosa",
		LastName:  "Flores",
		Email:     "rosa@example.com",
		Password:  "secreta123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(10), out.User.ID)
	assert.Equal(t, "rosa@example.com", out.User.Email)

	require.NotEmpty(t, out.Token, "el registro debe iniciar sesión y devolver un token")
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token del registro debe ser un JWT válido")
	assert.Equal(t, int64(10), userID)
	assert.Equal(t, "guest", role)
}

func TestRegister_SinRolEntraComoGuest(t *testing.T) {
	users := &stubUserRepo{nextID: 11}
	uc := buildAuthUseCase(users)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Luis",
		Email:     "luis@example.com",
		Password:  "secreta123",
	})
	require.NoError(t, err)

	require.NotNil(t, users.created)
	assert.Equal(t, int64(4), users.created.RoleID, "sin roleId explícito debe asignarse el rol guest")
	assert.NotEqual(t, "secreta123", users.created.PasswordHash, "la contraseña nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("secreta123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users := &stubUserRepo{byEmail: &entity.User{ID: 1, Email: "rosa@example.com"}}
	uc := buildAuthUseCase(users)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Rosa",
		Email:     "rosa@example.com",
		Password:  "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInexistente(t *testing.T) {
	users := &stubUserRepo{nextID: 12}
	uc := buildAuthUseCase(users)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "secreta123",
		RoleID:    99,
	})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &stubUserRepo{byEmail: &entity.User{
		ID:           7,
		Email:        "rosa@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}}
	uc := buildAuthUseCase(users)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "rosa@example.com", Password: "secreta123"})
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "admin", role)
	assert.Equal(t, "rosa@example.com", out.User.Email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &stubUserRepo{byEmail: &entity.User{ID: 7, PasswordHash: string(hash)}}
	uc := buildAuthUseCase(users)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "rosa@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUseCase(&stubUserRepo{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
