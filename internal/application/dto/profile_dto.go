package dto

// CreateProfileRequest body para POST /api/profiles.
type CreateProfileRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Permissions  []string `json:"permissions" validate:"dive,contains=:"`
	AllSites     bool     `json:"all_sites"`
	AllowedSites []string `json:"allowed_sites,omitempty"`
}

// UpdateProfileRequest body para PUT /api/profiles/:id. Campos nil no se tocan.
type UpdateProfileRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=2"`
	Permissions  *[]string `json:"permissions,omitempty" validate:"omitempty,dive,contains=:"`
	AllSites     *bool     `json:"all_sites,omitempty"`
	AllowedSites *[]string `json:"allowed_sites,omitempty"`
}

// ProfileResponse representación de un perfil de acceso.
type ProfileResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Permissions  []string `json:"permissions"`
	AllSites     bool     `json:"all_sites"`
	AllowedSites []string `json:"allowed_sites"`
}
