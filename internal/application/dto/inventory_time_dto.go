package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTimeResponse sesión cronometrada de toma de inventario.
type InventoryTimeResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	InventoryID     *int64    `json:"inventoryId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationSeconds int       `json:"durationSeconds"`
	Success         bool      `json:"success"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateInventoryTimeRequest alta de sesión.
type CreateInventoryTimeRequest struct {
	UserID          int64     `json:"userId"`
	InventoryID     *int64    `json:"inventoryId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationSeconds int       `json:"durationSeconds"`
	Success         bool      `json:"success"`
}

// UpdateInventoryTimeRequest actualización parcial de sesión.
type UpdateInventoryTimeRequest struct {
	InventoryID     *int64     `json:"inventoryId"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationSeconds *int       `json:"durationSeconds"`
	Success         *bool      `json:"success"`
}

// TakerTimeStatsDTO estadísticas de tiempos de un inventariador.
type TakerTimeStatsDTO struct {
	UserID                 int64           `json:"userId"`
	Sessions               int             `json:"sessions"`
	Successful             int             `json:"successful"`
	AverageDurationSeconds decimal.Decimal `json:"averageDurationSeconds"`
}
