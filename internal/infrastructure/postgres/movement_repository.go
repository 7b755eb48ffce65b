package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE de movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, site_id, site_item_id, type, quantity, date, reason, user_id, user_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.SiteID, movement.SiteItemID, movement.Type,
		movement.Quantity, movement.Date, movement.Reason, movement.UserID, movement.UserName,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial de un ítem ordenado por date descendente.
func (r *MovementRepo) ListByItem(siteID, itemID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, site_id, site_item_id, type, quantity, date, reason, user_id, user_name
		FROM movements WHERE site_id = $1 AND site_item_id = $2
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, siteID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.SiteID, &m.SiteItemID, &m.Type,
			&m.Quantity, &m.Date, &m.Reason, &m.UserID, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
