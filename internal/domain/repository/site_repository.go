package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// SiteRepository define el puerto de persistencia para ConstructionSite (DIP).
type SiteRepository interface {
	Create(site *entity.ConstructionSite) error
	GetByID(id string) (*entity.ConstructionSite, error)
	Update(site *entity.ConstructionSite) error
	List() ([]*entity.ConstructionSite, error)
	Delete(id string) error
}
