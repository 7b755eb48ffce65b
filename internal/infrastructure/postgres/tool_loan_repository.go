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

var _ repository.ToolLoanRepository = (*ToolLoanRepo)(nil)

// ToolLoanRepo implementación de ToolLoanRepository sobre PostgreSQL (usable con pool o tx).
type ToolLoanRepo struct {
	q Querier
}

// NewToolLoanRepository construye el adaptador de préstamos. Pasar pool o tx (Querier).
func NewToolLoanRepository(q Querier) *ToolLoanRepo {
	return &ToolLoanRepo{q: q}
}

const toolLoanColumns = `id, site_id, site_item_id, item_name, worker_name, quantity, loan_date, return_date, status, notes, updated_at`

// Create persiste un préstamo de herramienta.
func (r *ToolLoanRepo) Create(loan *entity.ToolLoan) error {
	query := `
		INSERT INTO tool_loans (` + toolLoanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		loan.ID, loan.SiteID, loan.SiteItemID, loan.ItemName, loan.WorkerName,
		loan.Quantity, loan.LoanDate, loan.ReturnDate, loan.Status, loan.Notes, loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create tool loan: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo de una obra. Retorna (nil, nil) si no existe.
func (r *ToolLoanRepo) GetByID(siteID, loanID string) (*entity.ToolLoan, error) {
	query := `SELECT ` + toolLoanColumns + ` FROM tool_loans WHERE site_id = $1 AND id = $2`
	loan, err := scanToolLoan(r.q.QueryRow(context.Background(), query, siteID, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool loan: %w", err)
	}
	return loan, nil
}

// Update actualiza estado, fecha de devolución y notas de un préstamo.
func (r *ToolLoanRepo) Update(loan *entity.ToolLoan) error {
	query := `
		UPDATE tool_loans
		SET return_date = $3, status = $4, notes = $5, updated_at = $6
		WHERE site_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		loan.SiteID, loan.ID, loan.ReturnDate, loan.Status, loan.Notes, loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tool loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySite lista los préstamos de una obra ordenados por fecha de préstamo descendente.
func (r *ToolLoanRepo) ListBySite(siteID string) ([]*entity.ToolLoan, error) {
	query := `SELECT ` + toolLoanColumns + ` FROM tool_loans WHERE site_id = $1 ORDER BY loan_date DESC`
	rows, err := r.q.Query(context.Background(), query, siteID)
	if err != nil {
		return nil, fmt.Errorf("list tool loans: %w", err)
	}
	defer rows.Close()
	var list []*entity.ToolLoan
	for rows.Next() {
		loan, err := scanToolLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool loan: %w", err)
		}
		list = append(list, loan)
	}
	return list, rows.Err()
}

func scanToolLoan(row pgx.Row) (*entity.ToolLoan, error) {
	var loan entity.ToolLoan
	err := row.Scan(
		&loan.ID, &loan.SiteID, &loan.SiteItemID, &loan.ItemName, &loan.WorkerName,
		&loan.Quantity, &loan.LoanDate, &loan.ReturnDate, &loan.Status, &loan.Notes, &loan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}
