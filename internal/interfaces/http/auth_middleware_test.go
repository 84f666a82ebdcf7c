package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/rbac"
	apphttp "github.com/flotanet/logistica-api/internal/interfaces/http"
	pkgjwt "github.com/flotanet/logistica-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "logistica-api-test"
	testExpMin    = 60
)

// fakeUserStore resolver en memoria para el middleware.
type fakeUserStore struct {
	users map[string]*entity.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func newStoreWith(users ...*entity.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func activeUser(id string, role entity.Role) *entity.User {
	return &entity.User{ID: id, Username: "u-" + id, Role: role, IsActive: true}
}

// buildTestApp construye una aplicación Fiber mínima con la cadena real de
// guardas: AuthMiddleware y después RequireCapability.
func buildTestApp(store *fakeUserStore, cap rbac.Capability) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireCapability(cap),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": string(apphttp.GetUser(c).Role),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para un usuario con el rol indicado.
func tokenFor(t *testing.T, userID string, role entity.Role) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, string(role), testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — puerta de autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ViewDashboardStats)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ViewDashboardStats)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ViewDashboardStats)
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleAdmin))
	app := buildTestApp(store, rbac.ViewDashboardStats)

	tok, err := pkgjwt.Generate(testJWTSecret, "u1", "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token expirado debe retornar 401")
}

// Token válido pero la cuenta ya no existe en DB → 401.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ViewDashboardStats)
	resp := doRequest(t, app, tokenFor(t, "fantasma", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token vigente pero cuenta desactivada → 401 en cada request.
func TestAuthMiddleware_CuentaDesactivada_Retorna401(t *testing.T) {
	inactive := activeUser("u1", entity.RoleAdmin)
	inactive.IsActive = false
	app := buildTestApp(newStoreWith(inactive), rbac.ViewDashboardStats)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una sesión de cuenta desactivada deja de servir de inmediato")
}

func TestAuthMiddleware_TokenValido_CargaUsuarioEnLocals(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleManager))
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, store), func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		return c.JSON(fiber.Map{"user_id": u.ID, "role": string(u.Role)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "u1", entity.RoleManager))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "manager", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability — autorización por política
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCapability_RolConPermiso_Accede(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleAdmin))
	app := buildTestApp(store, rbac.ManageUsers)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta de administración de usuarios")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireCapability_RolSinPermiso_Retorna403(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleDriver))
	app := buildTestApp(store, rbac.ViewAllOrders)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleDriver))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"driver no tiene visión global de pedidos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireCapability_BodegaBloqueadaEnUsuarios_Retorna403(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleWarehouse))
	app := buildTestApp(store, rbac.ManageUsers)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleWarehouse))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// La autenticación se evalúa antes que la autorización: sin token la
// respuesta es 401 aunque la ruta además exija una capacidad.
func TestGuardas_SinToken_401AntesQue403(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ManageUsers)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin credenciales la respuesta es 401, nunca 403")
}

func TestGuardas_TokenInvalido_401AntesQue403(t *testing.T) {
	app := buildTestApp(newStoreWith(), rbac.ManageUsers)
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El rol efectivo es el de la base de datos, no el del claim: si el rol
// cambió después de emitir el token, manda el estado actual.
func TestGuardas_RolDelClaimDesactualizado_MandaLaDB(t *testing.T) {
	// El token dice admin pero la cuenta fue degradada a driver.
	store := newStoreWith(activeUser("u1", entity.RoleDriver))
	app := buildTestApp(store, rbac.ManageUsers)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el permiso se evalúa con el rol vigente en DB")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole — autorización por conjunto de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolIncluido_Accede(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleWarehouse))
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(entity.RoleAdmin, entity.RoleWarehouse),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleWarehouse))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolExcluido_Retorna403(t *testing.T) {
	store := newStoreWith(activeUser("u1", entity.RoleDriver))
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(entity.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp := doRequest(t, app, tokenFor(t, "u1", entity.RoleDriver))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
