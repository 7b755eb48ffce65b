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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

const catalogColumns = `id, code, name, quantity, unit, category, cost_type, unit_value, stock_control, min_threshold, updated_at`

// Create persiste un ítem del catálogo. Retorna ErrDuplicate si el código ya existe.
func (r *CatalogRepo) Create(item *entity.CatalogItem) error {
	query := `
		INSERT INTO catalog_items (` + catalogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Quantity, item.Unit, item.Category,
		item.CostType, item.UnitValue, item.StockControl, item.MinThreshold, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create catalog item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem del catálogo por ID. Retorna (nil, nil) si no existe.
func (r *CatalogRepo) GetByID(id string) (*entity.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE id = $1`
	item, err := scanCatalogItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return item, nil
}

// Update actualiza todos los campos de un ítem del catálogo.
func (r *CatalogRepo) Update(item *entity.CatalogItem) error {
	query := `
		UPDATE catalog_items
		SET code = $2, name = $3, quantity = $4, unit = $5, category = $6,
		    cost_type = $7, unit_value = $8, stock_control = $9, min_threshold = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Quantity, item.Unit, item.Category,
		item.CostType, item.UnitValue, item.StockControl, item.MinThreshold, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *CatalogRepo) List() ([]*entity.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina un ítem del catálogo por ID.
func (r *CatalogRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCatalogItem(row pgx.Row) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := row.Scan(
		&item.ID, &item.Code, &item.Name, &item.Quantity, &item.Unit, &item.Category,
		&item.CostType, &item.UnitValue, &item.StockControl, &item.MinThreshold, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
