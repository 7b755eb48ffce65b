// Package access evalúa permisos por perfil y rol: cadenas "modulo:accion" más
// alcance de obras (todas o una lista explícita). El rol admin y el permiso
// admin:full otorgan acceso total.
package access

import (
	"slices"
	"strings"

	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

// Permissions es el resultado de evaluar rol + perfil de un usuario.
type Permissions struct {
	isAdmin      bool
	permissions  []string
	allSites     bool
	allowedSites []string
}

// Evaluate combina el rol del usuario con su perfil de acceso (puede ser nil).
// Un rol admin no necesita perfil; un perfil con admin:full equivale a admin.
func Evaluate(role string, profile *entity.AccessProfile) Permissions {
	if role == entity.RoleAdmin {
		return Permissions{isAdmin: true, allSites: true}
	}
	if profile == nil {
		return Permissions{}
	}
	return Permissions{
		isAdmin:      slices.Contains(profile.Permissions, entity.PermissionAdminFull),
		permissions:  profile.Permissions,
		allSites:     profile.AllSites,
		allowedSites: profile.AllowedSites,
	}
}

// IsAdmin indica acceso total.
func (p Permissions) IsAdmin() bool { return p.isAdmin }

// Has verifica el permiso modulo:accion. Si siteID no es vacío, primero valida
// el alcance de obras: allSites o pertenencia a la lista permitida.
func (p Permissions) Has(module, action, siteID string) bool {
	if p.isAdmin {
		return true
	}
	if siteID != "" && !p.allSites && !slices.Contains(p.allowedSites, siteID) {
		return false
	}
	return slices.Contains(p.permissions, module+":"+action) ||
		slices.Contains(p.permissions, module+":full")
}

// CanAccessAny verifica si alguno de los permisos "modulo:accion" aplica.
// Sin acción explícita se asume "view".
func (p Permissions) CanAccessAny(perms []string) bool {
	if p.isAdmin {
		return true
	}
	for _, perm := range perms {
		module, action, ok := strings.Cut(perm, ":")
		if !ok || action == "" {
			action = "view"
		}
		if p.Has(module, action, "") {
			return true
		}
	}
	return false
}

// CanAccessSite verifica solo el alcance de obras, sin mirar módulo/acción.
func (p Permissions) CanAccessSite(siteID string) bool {
	if p.isAdmin || p.allSites {
		return true
	}
	return slices.Contains(p.allowedSites, siteID)
}
