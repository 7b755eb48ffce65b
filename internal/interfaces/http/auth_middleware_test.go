package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	apphttp "github.com/pedrolucasmota/obralog-api/internal/interfaces/http"
	pkgjwt "github.com/pedrolucasmota/obralog-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "obralog-test"
	testExpMin    = 60
)

// fakeProfiles implementación en memoria del resolvedor de perfiles del middleware.
type fakeProfiles map[string]*entity.AccessProfile

func (f fakeProfiles) GetByID(id string) (*entity.AccessProfile, error) {
	return f[id], nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(module, action string, profiles fakeProfiles) *fiber.App {
	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":   true,
			"role": apphttp.GetRole(c),
		})
	}
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(module, action, profiles),
		handler,
	)
	// Variante con :siteId para probar el alcance de obras
	app.Get("/sites/:siteId/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(module, action, profiles),
		handler,
	)
	return app
}

// tokenFor genera un JWT con rol y perfil indicados.
func tokenFor(t *testing.T, role, profileID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, profileID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: rol admin accede a cualquier ruta sin perfil → HTTP 200.
func TestRequirePermission_AdminAccedeSinPerfil(t *testing.T) {
	app := buildTestApp("inventory", "movements", fakeProfiles{})
	resp := doRequest(t, app, "/protected", tokenFor(t, entity.RoleAdmin, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe acceder sin perfil de acceso")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 2: perfil con el permiso explícito → HTTP 200.
func TestRequirePermission_PerfilConPermiso(t *testing.T) {
	profiles := fakeProfiles{
		"p1": {ID: "p1", Name: "Almacén", Permissions: []string{"inventory:movements"}, AllSites: true},
	}
	app := buildTestApp("inventory", "movements", profiles)
	resp := doRequest(t, app, "/protected", tokenFor(t, entity.RoleAlmoxarife, "p1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: perfil sin el permiso → HTTP 403 FORBIDDEN.
func TestRequirePermission_PerfilSinPermiso(t *testing.T) {
	profiles := fakeProfiles{
		"p1": {ID: "p1", Name: "Solo lectura", Permissions: []string{"inventory:view"}, AllSites: true},
	}
	app := buildTestApp("inventory", "movements", profiles)
	resp := doRequest(t, app, "/protected", tokenFor(t, entity.RoleOperario, "p1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operario sin el permiso no debe acceder")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 4: alcance de obras. El perfil permite solo la obra "obra-1":
// acceder a obra-1 pasa, acceder a obra-2 da 403.
func TestRequirePermission_AlcanceDeObras(t *testing.T) {
	profiles := fakeProfiles{
		"p1": {
			ID: "p1", Name: "Obra 1",
			Permissions:  []string{"inventory:view"},
			AllSites:     false,
			AllowedSites: []string{"obra-1"},
		},
	}
	app := buildTestApp("inventory", "view", profiles)
	token := tokenFor(t, entity.RoleOperario, "p1")

	resp := doRequest(t, app, "/sites/obra-1/protected", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "obra permitida debe pasar")

	resp = doRequest(t, app, "/sites/obra-2/protected", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "obra fuera del alcance debe dar 403")
}

// Caso 5: sin perfil y sin rol admin → HTTP 403.
func TestRequirePermission_SinPerfil(t *testing.T) {
	app := buildTestApp("inventory", "view", fakeProfiles{})
	resp := doRequest(t, app, "/protected", tokenFor(t, entity.RoleOperario, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 6: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("inventory", "view", fakeProfiles{})
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 7: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("inventory", "view", fakeProfiles{})
	resp := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"role":       apphttp.GetRole(c),
			"profile_id": apphttp.GetProfileID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleAlmoxarife, "perfil-7"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleAlmoxarife, body["role"])
	assert.Equal(t, "perfil-7", body["profile_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg: integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAlmoxarife, "p9", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, profileID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleAlmoxarife, role)
	assert.Equal(t, "p9", profileID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, "", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
