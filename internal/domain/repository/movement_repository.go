package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByItem devuelve el historial de un ítem ordenado por date descendente.
	ListByItem(siteID, itemID string) ([]*entity.Movement, error)
}
