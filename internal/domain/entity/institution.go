package entity

import "time"

// Institution institución de salud (hospital, clínica) dueña de bombas.
type Institution struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
