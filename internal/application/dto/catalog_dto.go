package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCatalogItemRequest body para POST /api/catalog.
type CreateCatalogItemRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name" validate:"required,min=2"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	CostType     string          `json:"cost_type"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	StockControl *bool           `json:"stock_control,omitempty"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
}

// UpdateCatalogItemRequest body para PUT /api/catalog/:id. Campos nil no se tocan.
type UpdateCatalogItemRequest struct {
	Code         *string          `json:"code,omitempty"`
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=2"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	Category     *string          `json:"category,omitempty"`
	CostType     *string          `json:"cost_type,omitempty"`
	UnitValue    *decimal.Decimal `json:"unit_value,omitempty"`
	StockControl *bool            `json:"stock_control,omitempty"`
	MinThreshold *decimal.Decimal `json:"min_threshold,omitempty"`
}

// CatalogItemResponse representación de un insumo del catálogo global.
type CatalogItemResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code,omitempty"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
	CostType     string          `json:"cost_type,omitempty"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	StockControl bool            `json:"stock_control"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
