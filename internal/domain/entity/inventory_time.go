package entity

import "time"

// InventoryTime sesión cronometrada de toma de inventario: cuánto tardó un
// usuario en inventariar una bomba (o en intentarlo, si Success es false).
type InventoryTime struct {
	ID              int64
	UserID          int64
	InventoryID     *int64 // nil si la sesión no terminó en un registro
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
	Success         bool
	CreatedAt       time.Time
}
