package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de test: repositorio de inventario en memoria, solo de los métodos
// que ejercitan los tests. El resto retorna cero.
// ──────────────────────────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	repository.InventoryRepository

	created     *entity.Inventory
	createID    int64
	createErr   error
	detail      *entity.InventoryDetail
	detailErr   error
	updated     *repository.InventoryUpdate
	deletedRows int64
	bulkItems   []entity.Inventory
	bulkCount   int64
}

func (s *stubInventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubInventoryRepo) Create(ctx context.Context, inv *entity.Inventory) (int64, error) {
	s.created = inv
	return s.createID, s.createErr
}

func (s *stubInventoryRepo) BulkCreate(ctx context.Context, items []entity.Inventory) (int64, error) {
	s.bulkItems = items
	return s.bulkCount, nil
}

func (s *stubInventoryRepo) Update(ctx context.Context, id int64, upd repository.InventoryUpdate) (*entity.InventoryDetail, error) {
	s.updated = &upd
	return s.detail, s.detailErr
}

func (s *stubInventoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deletedRows, nil
}

func validCreateRequest() dto.CreateInventoryRequest {
	return dto.CreateInventoryRequest{
		SerialNumber:     "SN-001",
		ModelID:          1,
		InstitutionID:    2,
		ServiceID:        3,
		InventoryTakerID: 4,
		InventoryDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_AutogeneraQRYEstado(t *testing.T) {
	repo := &stubInventoryRepo{
		createID: 77,
		detail:   &entity.InventoryDetail{ID: 77, SerialNumber: "SN-001"},
	}
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(77), out.ID)

	require.NotNil(t, repo.created)
	assert.Equal(t, entity.StatusOperativo, repo.created.Status,
		"sin estado explícito debe asumirse Operativo")

	_, parseErr := uuid.Parse(repo.created.QRCode)
	assert.NoError(t, parseErr, "el QR autogenerado debe ser un UUID válido")
}

func TestInventoryCreate_RespetaQRYEstadoExplicitos(t *testing.T) {
	repo := &stubInventoryRepo{
		createID: 1,
		detail:   &entity.InventoryDetail{ID: 1},
	}
	uc := usecase.NewInventoryUseCase(repo)

	req := validCreateRequest()
	req.QRCode = "QR-PROPIO"
	req.Status = "Inoperativo"

	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "QR-PROPIO", repo.created.QRCode)
	assert.Equal(t, "Inoperativo", repo.created.Status)
}

func TestInventoryCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{})

	casos := []struct {
		nombre string
		mutate func(*dto.CreateInventoryRequest)
	}{
		{"sin serial", func(r *dto.CreateInventoryRequest) { r.SerialNumber = "" }},
		{"sin modelo", func(r *dto.CreateInventoryRequest) { r.ModelID = 0 }},
		{"sin institución", func(r *dto.CreateInventoryRequest) { r.InstitutionID = 0 }},
		{"sin servicio", func(r *dto.CreateInventoryRequest) { r.ServiceID = 0 }},
		{"sin inventariador", func(r *dto.CreateInventoryRequest) { r.InventoryTakerID = 0 }},
	}
	for _, c := range casos {
		req := validCreateRequest()
		c.mutate(&req)

		_, err := uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %q debe rechazarse", c.nombre)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BulkCreate
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryBulkCreate_LoteVacioRechazado(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{})

	_, err := uc.BulkCreate(context.Background(), dto.BulkCreateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryBulkCreate_ItemInvalidoRechazaElLote(t *testing.T) {
	repo := &stubInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)

	malo := validCreateRequest()
	malo.SerialNumber = ""
	in := dto.BulkCreateInventoryRequest{Items: []dto.CreateInventoryRequest{validCreateRequest(), malo}}

	_, err := uc.BulkCreate(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, repo.bulkItems, "un item inválido debe cortar antes de tocar el repositorio")
}

func TestInventoryBulkCreate_InsertaElLoteCompleto(t *testing.T) {
	repo := &stubInventoryRepo{bulkCount: 2}
	uc := usecase.NewInventoryUseCase(repo)

	in := dto.BulkCreateInventoryRequest{Items: []dto.CreateInventoryRequest{validCreateRequest(), validCreateRequest()}}
	n, err := uc.BulkCreate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Len(t, repo.bulkItems, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / Delete — convención not found
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{detail: nil})

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryGetByID_PropagaErrorDelRepositorio(t *testing.T) {
	cause := errors.New("conexión perdida")
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{detailErr: cause})

	_, err := uc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, cause)
}

func TestInventoryUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{detail: nil})

	_, err := uc.Update(context.Background(), 999, dto.UpdateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryUpdate_MapeaElParche(t *testing.T) {
	repo := &stubInventoryRepo{detail: &entity.InventoryDetail{ID: 5}}
	uc := usecase.NewInventoryUseCase(repo)

	status := "Inoperativo"
	inst := int64(8)
	_, err := uc.Update(context.Background(), 5, dto.UpdateInventoryRequest{Status: &status, InstitutionID: &inst})
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	require.NotNil(t, repo.updated.Status)
	assert.Equal(t, "Inoperativo", *repo.updated.Status)
	require.NotNil(t, repo.updated.InstitutionID)
	assert.Equal(t, int64(8), *repo.updated.InstitutionID)
	assert.Nil(t, repo.updated.QRCode, "los campos no enviados deben quedar sin cambios")
}

func TestInventoryDelete_NoExiste(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{deletedRows: 0})

	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryDelete_Existente(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&stubInventoryRepo{deletedRows: 1})

	err := uc.Delete(context.Background(), 5)
	assert.NoError(t, err)
}
