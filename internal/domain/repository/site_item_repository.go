package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// SiteItemRepository define el puerto de persistencia para el inventario de una obra (DIP).
// GetForUpdate bloquea la fila del ítem dentro de la transacción en curso; solo el
// libro de movimientos debe usarlo para mutar Quantity.
type SiteItemRepository interface {
	Create(item *entity.SiteItem) error
	GetByID(siteID, itemID string) (*entity.SiteItem, error)
	GetForUpdate(siteID, itemID string) (*entity.SiteItem, error)
	// UpdateQuantity actualiza cantidad y updated_at; reservado al libro de movimientos.
	UpdateQuantity(item *entity.SiteItem) error
	// UpdateMetadata actualiza los campos descriptivos sin tocar la cantidad.
	UpdateMetadata(item *entity.SiteItem) error
	ListBySite(siteID string) ([]*entity.SiteItem, error)
	Delete(siteID, itemID string) error
}
