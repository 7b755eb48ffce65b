package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un préstamo de herramienta.
const (
	LoanStatusOpen     = "OPEN"
	LoanStatusReturned = "RETURNED"
)

// ToolLoan representa el préstamo de una herramienta del inventario de una obra
// a un trabajador. El préstamo descuenta stock vía movimiento OUT y la devolución
// lo repone vía movimiento IN.
type ToolLoan struct {
	ID         string
	SiteID     string
	SiteItemID string
	ItemName   string
	WorkerName string
	Quantity   decimal.Decimal
	LoanDate   time.Time
	ReturnDate *time.Time
	Status     string // OPEN, RETURNED
	Notes      string
	UpdatedAt  time.Time
}
