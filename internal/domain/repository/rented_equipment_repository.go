package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// RentedEquipmentRepository define el puerto de persistencia para equipos alquilados (DIP).
type RentedEquipmentRepository interface {
	Create(equipment *entity.RentedEquipment) error
	GetByID(siteID, equipmentID string) (*entity.RentedEquipment, error)
	Update(equipment *entity.RentedEquipment) error
	// ListBySite devuelve los equipos ordenados por entry_date descendente.
	ListBySite(siteID string) ([]*entity.RentedEquipment, error)
}
