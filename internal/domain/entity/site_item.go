package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SiteItem representa el stock local de un insumo dentro de una obra.
// Name, Unit y Category son copias del catálogo al momento de adoptar el insumo; no se sincronizan.
// Quantity solo se muta a través del libro de movimientos (RegisterMovement); nunca puede ser negativa.
type SiteItem struct {
	ID             string
	SiteID         string
	OriginalItemID string
	Name           string
	Unit           string
	Category       string
	Quantity       decimal.Decimal
	AveragePrice   decimal.Decimal
	MinThreshold   decimal.Decimal
	IsTool         bool
	UpdatedAt      time.Time
}
