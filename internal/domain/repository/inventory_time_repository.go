package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

// InventoryTimeUpdate campos actualizables de una sesión cronometrada.
type InventoryTimeUpdate struct {
	InventoryID     *int64
	StartTime       *time.Time
	EndTime         *time.Time
	DurationSeconds *int
	Success         *bool
}

// TakerTimeStats estadísticas de tiempos de un inventariador.
// AverageDuration llega como NUMERIC de la DB (codec shopspring).
type TakerTimeStats struct {
	Sessions        int
	Successful      int
	AverageDuration decimal.Decimal // segundos, promedio de sesiones exitosas
}

// InventoryTimeRepository puerto de persistencia de sesiones cronometradas.
type InventoryTimeRepository interface {
	FindAll(ctx context.Context) ([]entity.InventoryTime, error)
	GetByID(ctx context.Context, id int64) (*entity.InventoryTime, error)
	FindByUserID(ctx context.Context, userID int64) ([]entity.InventoryTime, error)
	Create(ctx context.Context, it *entity.InventoryTime) (int64, error)
	Update(ctx context.Context, id int64, upd InventoryTimeUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)

	// CountByUser total de sesiones y exitosas del usuario.
	CountByUser(ctx context.Context, userID int64) (sessions, successful int, err error)

	// AverageDurationByUser promedio de duración (segundos) de las sesiones
	// exitosas del usuario; cero si no tiene.
	AverageDurationByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}
