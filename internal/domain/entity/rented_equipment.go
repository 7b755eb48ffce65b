package entity

import "time"

// Estados de un equipo alquilado.
const (
	EquipmentStatusActive   = "ACTIVE"
	EquipmentStatusReturned = "RETURNED"
)

// RentedEquipment representa un equipo alquilado a un proveedor dentro de una obra,
// con registro fotográfico de entrada y salida (referencias, no binarios).
type RentedEquipment struct {
	ID          string
	SiteID      string
	Name        string
	Supplier    string
	Description string
	EntryDate   time.Time
	EntryPhotos []string
	ExitDate    *time.Time
	ExitPhotos  []string
	Status      string // ACTIVE, RETURNED
	UpdatedAt   time.Time
}
