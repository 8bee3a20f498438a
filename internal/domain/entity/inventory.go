package entity

import "time"

// Estados conocidos de una bomba. El conjunto es abierto (la DB guarda el
// string tal cual), pero el dashboard clasifica sobre estos valores.
const (
	StatusOperativo       = "Operativo"
	StatusInoperativo     = "Inoperativo"
	StatusEnReparacion    = "En reparación"
	StatusFueraDeServicio = "Fuera de servicio"
	StatusDanado          = "Dañado"
)

// InoperativeStatuses estados que cuentan como bomba inoperativa en los
// reportes de estado por servicio y por modelo.
var InoperativeStatuses = []string{
	StatusInoperativo,
	StatusEnReparacion,
	StatusFueraDeServicio,
	StatusDanado,
}

// Inventory registro de inventario de una bomba física.
// Cada registro pertenece a exactamente una institución, un modelo y un
// servicio, y referencia al usuario que lo inventarió.
type Inventory struct {
	ID                  int64
	SerialNumber        string
	QRCode              string
	ModelID             int64
	InstitutionID       int64
	ServiceID           int64
	InventoryTakerID    int64
	InventoryDate       time.Time
	Status              string
	LastMaintenanceDate *time.Time // nil = sin mantenimiento registrado
	ManufactureDate     *time.Time
	CreatedAt           time.Time
}

// InventoryDetail vista de lectura con los nombres ya resueltos por JOIN
// (modelo, institución, servicio, inventariador). Es lo que consume la API.
type InventoryDetail struct {
	ID                  int64
	SerialNumber        string
	QRCode              string
	Model               string
	Institution         string
	Service             string
	InventoryManager    string
	InventoryDate       time.Time
	Status              string
	LastMaintenanceDate *time.Time
	ManufactureDate     *time.Time
	CreatedAt           time.Time
}
