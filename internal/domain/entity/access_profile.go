package entity

// PermissionAdminFull otorga acceso total, equivalente al rol admin.
const PermissionAdminFull = "admin:full"

// AccessProfile representa un perfil de acceso: conjunto de permisos "modulo:accion"
// más el alcance de obras. AllSites=true da acceso a todas; en false solo a AllowedSites.
type AccessProfile struct {
	ID           string
	Name         string
	Permissions  []string
	AllSites     bool
	AllowedSites []string
}
