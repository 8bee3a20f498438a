package repository

import (
	"context"
	"time"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

// InventoryUpdate campos actualizables de un registro de inventario.
// Punteros nil = campo sin cambios. SerialNumber y ModelID son inmutables.
type InventoryUpdate struct {
	QRCode              *string
	InstitutionID       *int64
	ServiceID           *int64
	InventoryTakerID    *int64
	InventoryDate       *time.Time
	Status              *string
	LastMaintenanceDate *time.Time
}

// InventoryRepository puerto de persistencia del inventario de bombas.
type InventoryRepository interface {
	FindAll(ctx context.Context) ([]entity.InventoryDetail, error)
	GetByID(ctx context.Context, id int64) (*entity.InventoryDetail, error)
	GetBySerialNumber(ctx context.Context, serial string) ([]entity.InventoryDetail, error)
	GetByQRCode(ctx context.Context, qrCode string) ([]entity.InventoryDetail, error)
	FindByModelID(ctx context.Context, modelID int64) ([]entity.InventoryDetail, error)
	FindByInstitutionID(ctx context.Context, institutionID int64) ([]entity.InventoryDetail, error)
	FindByServiceID(ctx context.Context, serviceID int64) ([]entity.InventoryDetail, error)
	FindByServiceAndInstitution(ctx context.Context, serviceID, institutionID int64) ([]entity.InventoryDetail, error)
	FindByStatus(ctx context.Context, status string) ([]entity.InventoryDetail, error)
	FindByTakerID(ctx context.Context, takerID int64) ([]entity.InventoryDetail, error)

	// FindLatestByUser últimos registros del usuario por fecha de inventario.
	FindLatestByUser(ctx context.Context, userID int64, limit int) ([]entity.InventoryDetail, error)

	// FindCurrentYearByInstitution registros inventariados este año.
	FindCurrentYearByInstitution(ctx context.Context, institutionID int64, year int) ([]entity.InventoryDetail, error)

	// FindNotInventoriedThisYear bombas de la institución sin inventariar este año.
	FindNotInventoriedThisYear(ctx context.Context, institutionID int64, year int) ([]entity.InventoryDetail, error)

	// FindOverdueByInstitution bombas con mantenimiento vencido (>2 años o nulo).
	FindOverdueByInstitution(ctx context.Context, institutionID int64) ([]entity.InventoryDetail, error)

	Create(ctx context.Context, inv *entity.Inventory) (int64, error)
	BulkCreate(ctx context.Context, items []entity.Inventory) (int64, error)
	Update(ctx context.Context, id int64, upd InventoryUpdate) (*entity.InventoryDetail, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
