package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// InventoryUseCase operaciones CRUD y de búsqueda sobre el inventario de
// bombas. Las búsquedas devuelven listas (posiblemente vacías); los gets
// por ID devuelven ErrNotFound si el registro no existe.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// GetAll lista todo el inventario.
func (uc *InventoryUseCase) GetAll(ctx context.Context) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByID obtiene un registro por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id int64) (*dto.InventoryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryResponse(*d)
	return &resp, nil
}

// GetBySerialNumber busca por número de serie.
func (uc *InventoryUseCase) GetBySerialNumber(ctx context.Context, serial string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.GetBySerialNumber(ctx, serial)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByQRCode busca por código QR.
func (uc *InventoryUseCase) GetByQRCode(ctx context.Context, qrCode string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.GetByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByModel registros de un modelo.
func (uc *InventoryUseCase) GetByModel(ctx context.Context, modelID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByModelID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByInstitution registros de una institución.
func (uc *InventoryUseCase) GetByInstitution(ctx context.Context, institutionID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByInstitutionID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByService registros de un servicio.
func (uc *InventoryUseCase) GetByService(ctx context.Context, serviceID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByServiceAndInstitution registros de un servicio en una institución.
func (uc *InventoryUseCase) GetByServiceAndInstitution(ctx context.Context, serviceID, institutionID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByServiceAndInstitution(ctx, serviceID, institutionID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByStatus registros con un estado dado.
func (uc *InventoryUseCase) GetByStatus(ctx context.Context, status string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByTaker registros inventariados por un usuario.
func (uc *InventoryUseCase) GetByTaker(ctx context.Context, takerID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByTakerID(ctx, takerID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetLatestByUser últimos registros del usuario (tope 10).
func (uc *InventoryUseCase) GetLatestByUser(ctx context.Context, userID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindLatestByUser(ctx, userID, 10)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetCurrentYearByInstitution registros inventariados este año.
func (uc *InventoryUseCase) GetCurrentYearByInstitution(ctx context.Context, institutionID int64, year int) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindCurrentYearByInstitution(ctx, institutionID, year)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetNotInventoriedThisYear bombas sin inventariar este año.
func (uc *InventoryUseCase) GetNotInventoriedThisYear(ctx context.Context, institutionID int64, year int) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindNotInventoriedThisYear(ctx, institutionID, year)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetOverdueByInstitution bombas con mantenimiento vencido.
func (uc *InventoryUseCase) GetOverdueByInstitution(ctx context.Context, institutionID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindOverdueByInstitution(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// Create da de alta un registro. Autogenera el QR (UUID) si viene vacío.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := inventoryFromRequest(in)
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Create(ctx, inv)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// BulkCreate alta masiva. Todo el lote entra en una sola sentencia; un
// duplicado en el lote rechaza el lote completo.
func (uc *InventoryUseCase) BulkCreate(ctx context.Context, in dto.BulkCreateInventoryRequest) (int64, error) {
	if len(in.Items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	items := make([]entity.Inventory, 0, len(in.Items))
	for _, req := range in.Items {
		inv, err := inventoryFromRequest(req)
		if err != nil {
			return 0, err
		}
		items = append(items, *inv)
	}
	return uc.repo.BulkCreate(ctx, items)
}

// Update aplica un parche parcial y devuelve el registro actualizado.
func (uc *InventoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	upd := repository.InventoryUpdate{
		QRCode:              in.QRCode,
		InstitutionID:       in.InstitutionID,
		ServiceID:           in.ServiceID,
		InventoryTakerID:    in.InventoryTakerID,
		InventoryDate:       in.InventoryDate,
		Status:              in.Status,
		LastMaintenanceDate: in.LastMaintenanceDate,
	}
	d, err := uc.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryResponse(*d)
	return &resp, nil
}

// Delete elimina un registro por ID.
func (uc *InventoryUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func inventoryFromRequest(in dto.CreateInventoryRequest) (*entity.Inventory, error) {
	if in.SerialNumber == "" || in.ModelID == 0 || in.InstitutionID == 0 || in.ServiceID == 0 || in.InventoryTakerID == 0 {
		return nil, fmt.Errorf("%w: serialNumber, modelId, institutionId, serviceId e inventoryTakerId son obligatorios",
			domain.ErrInvalidInput)
	}
	qr := in.QRCode
	if qr == "" {
		qr = uuid.New().String()
	}
	status := in.Status
	if status == "" {
		status = entity.StatusOperativo
	}
	return &entity.Inventory{
		SerialNumber:        in.SerialNumber,
		QRCode:              qr,
		ModelID:             in.ModelID,
		InstitutionID:       in.InstitutionID,
		ServiceID:           in.ServiceID,
		InventoryTakerID:    in.InventoryTakerID,
		InventoryDate:       in.InventoryDate,
		Status:              status,
		LastMaintenanceDate: in.LastMaintenanceDate,
		ManufactureDate:     in.ManufactureDate,
	}, nil
}

func toInventoryResponse(d entity.InventoryDetail) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:                  d.ID,
		SerialNumber:        d.SerialNumber,
		QRCode:              d.QRCode,
		Model:               d.Model,
		Institution:         d.Institution,
		Service:             d.Service,
		InventoryManager:    d.InventoryManager,
		InventoryDate:       d.InventoryDate,
		Status:              d.Status,
		LastMaintenanceDate: d.LastMaintenanceDate,
		ManufactureDate:     d.ManufactureDate,
		CreatedAt:           d.CreatedAt,
	}
}

func toInventoryResponses(list []entity.InventoryDetail) []dto.InventoryResponse {
	result := make([]dto.InventoryResponse, 0, len(list))
	for _, d := range list {
		result = append(result, toInventoryResponse(d))
	}
	return result
}
