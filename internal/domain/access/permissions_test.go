package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedrolucasmota/obralog-api/internal/domain/access"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

func almoxarifeProfile() *entity.AccessProfile {
	return &entity.AccessProfile{
		ID:           "perfil-1",
		Name:         "Almoxarife obra norte",
		Permissions:  []string{"inventory:view", "inventory:move", "loans:full"},
		AllSites:     false,
		AllowedSites: []string{"obra-1", "obra-2"},
	}
}

func TestEvaluate_RolAdminAccesoTotal(t *testing.T) {
	p := access.Evaluate(entity.RoleAdmin, nil)

	assert.True(t, p.IsAdmin())
	assert.True(t, p.Has("inventory", "delete", "obra-99"))
	assert.True(t, p.CanAccessSite("cualquiera"))
	assert.True(t, p.CanAccessAny([]string{"users:view"}))
}

func TestEvaluate_PerfilConAdminFull(t *testing.T) {
	profile := &entity.AccessProfile{Permissions: []string{entity.PermissionAdminFull}}
	p := access.Evaluate(entity.RoleOperario, profile)

	assert.True(t, p.IsAdmin())
	assert.True(t, p.Has("rented", "edit", "obra-3"))
}

func TestEvaluate_SinPerfilSinPermisos(t *testing.T) {
	p := access.Evaluate(entity.RoleOperario, nil)

	assert.False(t, p.IsAdmin())
	assert.False(t, p.Has("inventory", "view", ""))
	assert.False(t, p.CanAccessSite("obra-1"))
}

func TestHas_PermisoExplicito(t *testing.T) {
	p := access.Evaluate(entity.RoleAlmoxarife, almoxarifeProfile())

	assert.True(t, p.Has("inventory", "view", ""))
	assert.True(t, p.Has("inventory", "move", "obra-1"))
	assert.False(t, p.Has("inventory", "delete", "obra-1"),
		"acción no otorgada debe negarse")
	assert.False(t, p.Has("users", "view", ""),
		"módulo no otorgado debe negarse")
}

func TestHas_ModuloFullCubreCualquierAccion(t *testing.T) {
	p := access.Evaluate(entity.RoleAlmoxarife, almoxarifeProfile())

	assert.True(t, p.Has("loans", "create", "obra-2"))
	assert.True(t, p.Has("loans", "return", "obra-1"))
}

func TestHas_AlcanceDeObrasPrimero(t *testing.T) {
	p := access.Evaluate(entity.RoleAlmoxarife, almoxarifeProfile())

	// Permiso correcto pero obra fuera de la lista: se niega
	assert.False(t, p.Has("inventory", "view", "obra-99"))
	// Sin obra en el chequeo, el permiso del módulo alcanza
	assert.True(t, p.Has("inventory", "view", ""))
}

func TestHas_AllSitesIgnoraLaLista(t *testing.T) {
	profile := almoxarifeProfile()
	profile.AllSites = true
	profile.AllowedSites = nil
	p := access.Evaluate(entity.RoleAlmoxarife, profile)

	assert.True(t, p.Has("inventory", "view", "obra-99"))
	assert.True(t, p.CanAccessSite("obra-99"))
}

func TestCanAccessAny(t *testing.T) {
	p := access.Evaluate(entity.RoleAlmoxarife, almoxarifeProfile())

	assert.True(t, p.CanAccessAny([]string{"users:view", "inventory:move"}))
	assert.False(t, p.CanAccessAny([]string{"users:view", "reports:view"}))
	// Sin acción explícita se asume view
	assert.True(t, p.CanAccessAny([]string{"inventory"}))
}
