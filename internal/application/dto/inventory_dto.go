package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddSiteItemRequest body para POST /api/sites/:siteId/inventory.
// Copia el snapshot del catálogo con una cantidad inicial dada por el operador.
type AddSiteItemRequest struct {
	OriginalItemID  string          `json:"original_item_id" validate:"required"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	MinThreshold    decimal.Decimal `json:"min_threshold"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	IsTool          bool            `json:"is_tool"`
}

// UpdateSiteItemRequest body para PUT /api/sites/:siteId/inventory/:itemId.
// Solo metadatos: la cantidad se muta únicamente vía movimientos.
type UpdateSiteItemRequest struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=2"`
	Unit         *string          `json:"unit,omitempty"`
	Category     *string          `json:"category,omitempty"`
	AveragePrice *decimal.Decimal `json:"average_price,omitempty"`
	MinThreshold *decimal.Decimal `json:"min_threshold,omitempty"`
	IsTool       *bool            `json:"is_tool,omitempty"`
}

// SiteItemResponse representación de un ítem del inventario de una obra.
type SiteItemResponse struct {
	ID             string          `json:"id"`
	SiteID         string          `json:"site_id"`
	OriginalItemID string          `json:"original_item_id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	Quantity       decimal.Decimal `json:"quantity"`
	AveragePrice   decimal.Decimal `json:"average_price"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	IsTool         bool            `json:"is_tool"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RegisterMovementRequest body para POST /api/sites/:siteId/inventory/:itemId/movements.
type RegisterMovementRequest struct {
	Type     string          `json:"type" validate:"required,oneof=IN OUT"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason,omitempty"`
}

// MovementResponse representación de un movimiento de stock.
type MovementResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     time.Time       `json:"date"`
	Reason   string          `json:"reason,omitempty"`
	UserID   string          `json:"user_id,omitempty"`
	UserName string          `json:"user_name,omitempty"`
}

// SiteMovementResponse movimiento anotado con el ítem dueño (agregado por obra).
type SiteMovementResponse struct {
	MovementResponse
	ItemName string `json:"item_name"`
	ItemUnit string `json:"item_unit"`
}
