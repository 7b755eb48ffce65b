package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LendToolRequest body para POST /api/sites/:siteId/loans.
type LendToolRequest struct {
	SiteItemID string          `json:"site_item_id" validate:"required"`
	WorkerName string          `json:"worker_name" validate:"required,min=2"`
	Quantity   decimal.Decimal `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
}

// ToolLoanResponse representación de un préstamo de herramienta.
type ToolLoanResponse struct {
	ID         string          `json:"id"`
	SiteID     string          `json:"site_id"`
	SiteItemID string          `json:"site_item_id"`
	ItemName   string          `json:"item_name"`
	WorkerName string          `json:"worker_name"`
	Quantity   decimal.Decimal `json:"quantity"`
	LoanDate   time.Time       `json:"loan_date"`
	ReturnDate *time.Time      `json:"return_date,omitempty"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
