package dto

import "time"

// CreateSiteRequest body para POST /api/sites.
type CreateSiteRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// UpdateSiteRequest body para PUT /api/sites/:siteId. Campos nil no se tocan.
type UpdateSiteRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2"`
}

// SiteResponse representación de una obra.
type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
