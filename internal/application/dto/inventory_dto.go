package dto

import "time"

// InventoryResponse registro de inventario con nombres resueltos por JOIN.
type InventoryResponse struct {
	ID                  int64      `json:"id"`
	SerialNumber        string     `json:"serialNumber"`
	QRCode              string     `json:"qrCode"`
	Model               string     `json:"model"`
	Institution         string     `json:"institution"`
	Service             string     `json:"service"`
	InventoryManager    string     `json:"inventoryManager"`
	InventoryDate       time.Time  `json:"inventoryDate"`
	Status              string     `json:"status"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	ManufactureDate     *time.Time `json:"manufactureDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// CreateInventoryRequest alta de un registro de inventario.
// Si qrCode viene vacío se autogenera un UUID.
type CreateInventoryRequest struct {
	SerialNumber        string     `json:"serialNumber"`
	QRCode              string     `json:"qrCode"`
	ModelID             int64      `json:"modelId"`
	InstitutionID       int64      `json:"institutionId"`
	ServiceID           int64      `json:"serviceId"`
	InventoryTakerID    int64      `json:"inventoryTakerId"`
	InventoryDate       time.Time  `json:"inventoryDate"`
	Status              string     `json:"status"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	ManufactureDate     *time.Time `json:"manufactureDate"`
}

// UpdateInventoryRequest actualización parcial. serialNumber y modelId no
// se pueden modificar (identidad física de la bomba).
type UpdateInventoryRequest struct {
	QRCode              *string    `json:"qrCode"`
	InstitutionID       *int64     `json:"institutionId"`
	ServiceID           *int64     `json:"serviceId"`
	InventoryTakerID    *int64     `json:"inventoryTakerId"`
	InventoryDate       *time.Time `json:"inventoryDate"`
	Status              *string    `json:"status"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
}

// BulkCreateInventoryRequest alta masiva.
type BulkCreateInventoryRequest struct {
	Items []CreateInventoryRequest `json:"items"`
}
