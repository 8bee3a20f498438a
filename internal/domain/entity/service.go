package entity

import "time"

// Service servicio hospitalario (UCI, Emergencia, Pediatría, etc.) donde se
// ubica una bomba dentro de la institución.
type Service struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
