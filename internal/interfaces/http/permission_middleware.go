package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain/access"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

// profileGetter es el contrato mínimo que necesita el middleware para resolver
// el perfil del token. Lo implementa repository.AccessProfileRepository; el uso
// de interfaz evita acoplar el middleware a la capa de persistencia completa.
type profileGetter interface {
	GetByID(id string) (*entity.AccessProfile, error)
}

// RequirePermission devuelve un middleware Fiber que verifica el permiso
// "modulo:accion" del usuario del token. Debe usarse DESPUÉS de AuthMiddleware.
// Si la ruta tiene :siteId, también se valida el alcance de obras del perfil.
//
// Comportamiento:
//   - 403 Forbidden → sin el permiso o fuera del alcance de obras.
//   - 503 Service Unavailable → fallo de infraestructura al consultar el perfil.
func RequirePermission(module, action string, profiles profileGetter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role no encontrado en el token",
			})
		}

		var profile *entity.AccessProfile
		if profileID := GetProfileID(c); profileID != "" && role != entity.RoleAdmin {
			var err error
			profile, err = profiles.GetByID(profileID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "PERMISSION_CHECK_FAILED",
					Message: "no se pudo verificar el perfil, intente más tarde",
				})
			}
		}

		perms := access.Evaluate(role, profile)
		if !perms.Has(module, action, c.Params("siteId")) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "permiso '" + module + ":" + action + "' requerido",
			})
		}

		return c.Next()
	}
}
