package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleAlmoxarife = "almoxarife" // encargado de almacén
	RoleOperario   = "operario"
)

// User representa un usuario del sistema. ProfileID referencia el perfil de acceso
// que determina sus permisos; los admin tienen acceso total sin perfil.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, almoxarife, operario
	ProfileID    string
	CreatedAt    time.Time
}
