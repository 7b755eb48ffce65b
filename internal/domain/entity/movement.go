package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement representa un movimiento de stock de un ítem de obra (registro append-only).
// Date lo asigna el servidor al confirmar la transacción; una vez persistido el
// movimiento nunca se modifica ni se elimina.
type Movement struct {
	ID         string
	SiteID     string
	SiteItemID string
	Type       string // IN, OUT
	Quantity   decimal.Decimal
	Date       time.Time
	Reason     string
	UserID     string
	UserName   string
}

// SiteMovement es un movimiento anotado con nombre y unidad del ítem dueño,
// usado en el agregado de movimientos por obra.
type SiteMovement struct {
	Movement
	ItemName string
	ItemUnit string
}
