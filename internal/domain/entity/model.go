package entity

import "time"

// Model modelo de bomba de infusión (catálogo).
type Model struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
