package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem representa un insumo del catálogo global.
// Las obras lo adoptan copiando sus campos descriptivos a su inventario local (snapshot desnormalizado).
type CatalogItem struct {
	ID           string
	Code         string
	Name         string
	Quantity     decimal.Decimal
	Unit         string
	Category     string
	CostType     string
	UnitValue    decimal.Decimal
	StockControl bool
	MinThreshold decimal.Decimal
	UpdatedAt    time.Time
}
