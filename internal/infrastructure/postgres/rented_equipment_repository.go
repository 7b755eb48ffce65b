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

var _ repository.RentedEquipmentRepository = (*RentedEquipmentRepo)(nil)

// RentedEquipmentRepo implementación de RentedEquipmentRepository sobre PostgreSQL
// (usable con pool o tx). Las fotos se guardan como text[] de referencias.
type RentedEquipmentRepo struct {
	q Querier
}

// NewRentedEquipmentRepository construye el adaptador de equipos alquilados. Pasar pool o tx (Querier).
func NewRentedEquipmentRepository(q Querier) *RentedEquipmentRepo {
	return &RentedEquipmentRepo{q: q}
}

const rentedColumns = `id, site_id, name, supplier, description, entry_date, entry_photos, exit_date, exit_photos, status, updated_at`

// Create persiste un equipo alquilado.
func (r *RentedEquipmentRepo) Create(equipment *entity.RentedEquipment) error {
	query := `
		INSERT INTO rented_equipment (` + rentedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.SiteID, equipment.Name, equipment.Supplier, equipment.Description,
		equipment.EntryDate, equipment.EntryPhotos, equipment.ExitDate, equipment.ExitPhotos,
		equipment.Status, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create rented equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo alquilado de una obra. Retorna (nil, nil) si no existe.
func (r *RentedEquipmentRepo) GetByID(siteID, equipmentID string) (*entity.RentedEquipment, error) {
	query := `SELECT ` + rentedColumns + ` FROM rented_equipment WHERE site_id = $1 AND id = $2`
	equipment, err := scanRentedEquipment(r.q.QueryRow(context.Background(), query, siteID, equipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rented equipment: %w", err)
	}
	return equipment, nil
}

// Update actualiza estado, salida y fotos de salida de un equipo alquilado.
func (r *RentedEquipmentRepo) Update(equipment *entity.RentedEquipment) error {
	query := `
		UPDATE rented_equipment
		SET name = $3, supplier = $4, description = $5, exit_date = $6,
		    exit_photos = $7, status = $8, updated_at = $9
		WHERE site_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		equipment.SiteID, equipment.ID, equipment.Name, equipment.Supplier, equipment.Description,
		equipment.ExitDate, equipment.ExitPhotos, equipment.Status, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rented equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySite lista los equipos de una obra ordenados por entry_date descendente.
func (r *RentedEquipmentRepo) ListBySite(siteID string) ([]*entity.RentedEquipment, error) {
	query := `SELECT ` + rentedColumns + ` FROM rented_equipment WHERE site_id = $1 ORDER BY entry_date DESC`
	rows, err := r.q.Query(context.Background(), query, siteID)
	if err != nil {
		return nil, fmt.Errorf("list rented equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.RentedEquipment
	for rows.Next() {
		equipment, err := scanRentedEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rented equipment: %w", err)
		}
		list = append(list, equipment)
	}
	return list, rows.Err()
}

func scanRentedEquipment(row pgx.Row) (*entity.RentedEquipment, error) {
	var e entity.RentedEquipment
	err := row.Scan(
		&e.ID, &e.SiteID, &e.Name, &e.Supplier, &e.Description,
		&e.EntryDate, &e.EntryPhotos, &e.ExitDate, &e.ExitPhotos, &e.Status, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
