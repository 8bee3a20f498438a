package dto

import "time"

// CatalogItemResponse elemento de catálogo (institución, modelo, servicio o rol).
type CatalogItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NameRequest alta o renombre de un elemento de catálogo.
type NameRequest struct {
	Name string `json:"name"`
}
