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

var _ repository.AccessProfileRepository = (*AccessProfileRepo)(nil)

// AccessProfileRepo implementación de AccessProfileRepository sobre PostgreSQL
// (usable con pool o tx). Permisos y obras permitidas se guardan como text[].
type AccessProfileRepo struct {
	q Querier
}

// NewAccessProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewAccessProfileRepository(q Querier) *AccessProfileRepo {
	return &AccessProfileRepo{q: q}
}

// Create persiste un perfil de acceso.
func (r *AccessProfileRepo) Create(profile *entity.AccessProfile) error {
	query := `
		INSERT INTO access_profiles (id, name, permissions, all_sites, allowed_sites)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.Permissions, profile.AllSites, profile.AllowedSites,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create access profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. Retorna (nil, nil) si no existe.
func (r *AccessProfileRepo) GetByID(id string) (*entity.AccessProfile, error) {
	query := `
		SELECT id, name, permissions, all_sites, allowed_sites
		FROM access_profiles WHERE id = $1`
	var p entity.AccessProfile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Permissions, &p.AllSites, &p.AllowedSites,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access profile: %w", err)
	}
	return &p, nil
}

// Update actualiza un perfil de acceso.
func (r *AccessProfileRepo) Update(profile *entity.AccessProfile) error {
	query := `
		UPDATE access_profiles
		SET name = $2, permissions = $3, all_sites = $4, allowed_sites = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.Permissions, profile.AllSites, profile.AllowedSites,
	)
	if err != nil {
		return fmt.Errorf("update access profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los perfiles ordenados por nombre.
func (r *AccessProfileRepo) List() ([]*entity.AccessProfile, error) {
	query := `
		SELECT id, name, permissions, all_sites, allowed_sites
		FROM access_profiles ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list access profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccessProfile
	for rows.Next() {
		var p entity.AccessProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Permissions, &p.AllSites, &p.AllowedSites); err != nil {
			return nil, fmt.Errorf("scan access profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un perfil por ID.
func (r *AccessProfileRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM access_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete access profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
