package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// CatalogRepository define el puerto de persistencia para el catálogo global de insumos (DIP).
type CatalogRepository interface {
	Create(item *entity.CatalogItem) error
	GetByID(id string) (*entity.CatalogItem, error)
	Update(item *entity.CatalogItem) error
	List() ([]*entity.CatalogItem, error)
	Delete(id string) error
}
