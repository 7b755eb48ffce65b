package dto

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin almoxarife operario"`
	ProfileID string `json:"profile_id,omitempty"`
}

// UpdateUserRequest body para PUT /api/users/:id. Campos nil no se tocan.
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin almoxarife operario"`
	ProfileID *string `json:"profile_id,omitempty"`
}
