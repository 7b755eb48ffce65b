package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// ToolLoanRepository define el puerto de persistencia para préstamos de herramientas (DIP).
type ToolLoanRepository interface {
	Create(loan *entity.ToolLoan) error
	GetByID(siteID, loanID string) (*entity.ToolLoan, error)
	Update(loan *entity.ToolLoan) error
	ListBySite(siteID string) ([]*entity.ToolLoan, error)
}
