package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

var _ repository.SiteItemRepository = (*SiteItemRepo)(nil)

// SiteItemRepo implementación de SiteItemRepository sobre PostgreSQL (usable con pool o tx).
// La tabla lleva CHECK (quantity >= 0) como segunda línea de defensa; la regla
// de negocio se valida antes, en el libro de movimientos.
type SiteItemRepo struct {
	q Querier
}

// NewSiteItemRepository construye el adaptador de inventario de obra. Pasar pool o tx (Querier).
func NewSiteItemRepository(q Querier) *SiteItemRepo {
	return &SiteItemRepo{q: q}
}

const siteItemColumns = `id, site_id, original_item_id, name, unit, category, quantity, average_price, min_threshold, is_tool, updated_at`

// Create persiste un ítem de inventario de obra.
func (r *SiteItemRepo) Create(item *entity.SiteItem) error {
	query := `
		INSERT INTO site_items (` + siteItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SiteID, item.OriginalItemID, item.Name, item.Unit, item.Category,
		item.Quantity, item.AveragePrice, item.MinThreshold, item.IsTool, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create site item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem del inventario de una obra. Retorna (nil, nil) si no existe.
func (r *SiteItemRepo) GetByID(siteID, itemID string) (*entity.SiteItem, error) {
	query := `SELECT ` + siteItemColumns + ` FROM site_items WHERE site_id = $1 AND id = $2`
	item, err := scanSiteItem(r.q.QueryRow(context.Background(), query, siteID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; el libro de movimientos lo usa
// para serializar los cambios de cantidad por ítem.
func (r *SiteItemRepo) GetForUpdate(siteID, itemID string) (*entity.SiteItem, error) {
	query := `
		SELECT ` + siteItemColumns + `
		FROM site_items WHERE site_id = $1 AND id = $2
		FOR UPDATE`
	item, err := scanSiteItem(r.q.QueryRow(context.Background(), query, siteID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site item for update: %w", err)
	}
	return item, nil
}

// UpdateQuantity actualiza cantidad y updated_at. Reservado al libro de movimientos.
func (r *SiteItemRepo) UpdateQuantity(item *entity.SiteItem) error {
	query := `
		UPDATE site_items SET quantity = $3, updated_at = $4
		WHERE site_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		item.SiteID, item.ID, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update site item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateMetadata actualiza los campos descriptivos sin tocar la cantidad.
func (r *SiteItemRepo) UpdateMetadata(item *entity.SiteItem) error {
	query := `
		UPDATE site_items
		SET name = $3, unit = $4, category = $5, average_price = $6,
		    min_threshold = $7, is_tool = $8, updated_at = $9
		WHERE site_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		item.SiteID, item.ID, item.Name, item.Unit, item.Category,
		item.AveragePrice, item.MinThreshold, item.IsTool, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update site item metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySite lista el inventario de una obra ordenado por nombre.
func (r *SiteItemRepo) ListBySite(siteID string) ([]*entity.SiteItem, error) {
	query := `SELECT ` + siteItemColumns + ` FROM site_items WHERE site_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, siteID)
	if err != nil {
		return nil, fmt.Errorf("list site items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SiteItem
	for rows.Next() {
		item, err := scanSiteItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan site item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina un ítem del inventario. Los movimientos históricos quedan huérfanos a propósito.
func (r *SiteItemRepo) Delete(siteID, itemID string) error {
	query := `DELETE FROM site_items WHERE site_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, siteID, itemID)
	if err != nil {
		return fmt.Errorf("delete site item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSiteItem(row pgx.Row) (*entity.SiteItem, error) {
	var item entity.SiteItem
	err := row.Scan(
		&item.ID, &item.SiteID, &item.OriginalItemID, &item.Name, &item.Unit, &item.Category,
		&item.Quantity, &item.AveragePrice, &item.MinThreshold, &item.IsTool, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
