package dto

import "time"

// RegisterEntryRequest body para POST /api/sites/:siteId/rented-equipment.
type RegisterEntryRequest struct {
	Name        string    `json:"name" validate:"required,min=2"`
	Supplier    string    `json:"supplier" validate:"required"`
	Description string    `json:"description,omitempty"`
	EntryDate   time.Time `json:"entry_date" validate:"required"`
	EntryPhotos []string  `json:"entry_photos,omitempty"`
}

// RegisterExitRequest body para POST /api/sites/:siteId/rented-equipment/:equipmentId/exit.
type RegisterExitRequest struct {
	ExitDate   time.Time `json:"exit_date" validate:"required"`
	ExitPhotos []string  `json:"exit_photos,omitempty"`
}

// RentedEquipmentResponse representación de un equipo alquilado.
type RentedEquipmentResponse struct {
	ID          string     `json:"id"`
	SiteID      string     `json:"site_id"`
	Name        string     `json:"name"`
	Supplier    string     `json:"supplier"`
	Description string     `json:"description,omitempty"`
	EntryDate   time.Time  `json:"entry_date"`
	EntryPhotos []string   `json:"entry_photos,omitempty"`
	ExitDate    *time.Time `json:"exit_date,omitempty"`
	ExitPhotos  []string   `json:"exit_photos,omitempty"`
	Status      string     `json:"status"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
