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

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación de SiteRepository sobre PostgreSQL (usable con pool o tx).
type SiteRepo struct {
	q Querier
}

// NewSiteRepository construye el adaptador de obras. Pasar pool o tx (Querier).
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

// Create persiste una obra.
func (r *SiteRepo) Create(site *entity.ConstructionSite) error {
	query := `
		INSERT INTO construction_sites (id, name, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, site.ID, site.Name, site.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create site: %w", err)
	}
	return nil
}

// GetByID obtiene una obra por ID. Retorna (nil, nil) si no existe.
func (r *SiteRepo) GetByID(id string) (*entity.ConstructionSite, error) {
	query := `
		SELECT id, name, created_at
		FROM construction_sites WHERE id = $1`
	var s entity.ConstructionSite
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &s, nil
}

// Update actualiza el nombre de una obra.
func (r *SiteRepo) Update(site *entity.ConstructionSite) error {
	query := `UPDATE construction_sites SET name = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, site.ID, site.Name)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las obras ordenadas por fecha de creación descendente.
func (r *SiteRepo) List() ([]*entity.ConstructionSite, error) {
	query := `
		SELECT id, name, created_at
		FROM construction_sites ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConstructionSite
	for rows.Next() {
		var s entity.ConstructionSite
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una obra por ID.
func (r *SiteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM construction_sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
