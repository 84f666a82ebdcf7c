package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flotanet/logistica-api/internal/application/auth"
	"github.com/flotanet/logistica-api/internal/application/billing"
	"github.com/flotanet/logistica-api/internal/application/dashboard"
	"github.com/flotanet/logistica-api/internal/application/fleet"
	"github.com/flotanet/logistica-api/internal/application/inventory"
	"github.com/flotanet/logistica-api/internal/application/orders"
	"github.com/flotanet/logistica-api/internal/application/users"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
	apphttp "github.com/flotanet/logistica-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para levantar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct{ users map[string]*entity.User }

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error { m.users[u.ID] = u; return nil }
func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}
func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) Update(_ context.Context, u *entity.User) error { m.users[u.ID] = u; return nil }
func (m *memUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type memOrderRepo struct{ rows []repository.OrderWithCustomer }

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	m.rows = append(m.rows, repository.OrderWithCustomer{Order: *o})
	return nil
}
func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for i := range m.rows {
		if m.rows[i].Order.ID == id {
			o := m.rows[i].Order
			return &o, nil
		}
	}
	return nil, nil
}
func (m *memOrderRepo) ListRecent(_ context.Context, scope repository.OrderScope, limit int) ([]repository.OrderWithCustomer, error) {
	var out []repository.OrderWithCustomer
	for _, r := range m.rows {
		if !scope.All {
			if scope.DriverID == "" {
				continue
			}
			if r.Order.AssignedDriverID == nil || *r.Order.AssignedDriverID != scope.DriverID {
				continue
			}
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type memCustomerRepo struct{}

func (memCustomerRepo) GetByID(_ context.Context, _ string) (*entity.Customer, error) {
	return nil, nil
}
func (memCustomerRepo) List(_ context.Context, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}

type memInventoryRepo struct{}

func (memInventoryRepo) Create(_ context.Context, _ *entity.InventoryItem) error { return nil }
func (memInventoryRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

type memRouteRepo struct{}

func (memRouteRepo) List(_ context.Context, _, _ int) ([]*entity.Route, error) { return nil, nil }

type memVehicleRepo struct{}

func (memVehicleRepo) List(_ context.Context, _, _ int) ([]*entity.Vehicle, error) { return nil, nil }

type memInvoiceRepo struct{}

func (memInvoiceRepo) Create(_ context.Context, _ *entity.Invoice) error { return nil }
func (memInvoiceRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Invoice, error) {
	return nil, nil
}

type memStatsRepo struct{}

func (memStatsRepo) CountOrdersByStatus(_ context.Context, _ string) (int64, error) { return 0, nil }
func (memStatsRepo) SumOrderAmountByStatus(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (memStatsRepo) CountActiveDrivers(_ context.Context) (int64, error)   { return 0, nil }
func (memStatsRepo) SumInventoryQuantity(_ context.Context) (int64, error) { return 0, nil }

// buildFullApp levanta la aplicación con el router real y repos en memoria,
// sembrada con un usuario activo por rol.
func buildFullApp(t *testing.T) *fiber.App {
	t.Helper()

	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	for _, r := range []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleDriver, entity.RoleWarehouse} {
		id := string(r)
		userRepo.users[id] = &entity.User{
			ID: id, Username: "user-" + id, Email: id + "@flota.kz",
			Role: r, IsActive: true,
		}
	}

	orderRepo := &memOrderRepo{}
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		StatsUC:     dashboard.NewStatsUseCase(memStatsRepo{}),
		OrderUC:     orders.NewOrderUseCase(orderRepo, memCustomerRepo{}, userRepo),
		InventoryUC: inventory.NewInventoryUseCase(memInventoryRepo{}),
		FleetUC:     fleet.NewFleetUseCase(memRouteRepo{}, memVehicleRepo{}),
		UserUC:      users.NewUserUseCase(userRepo),
		BillingUC:   billing.NewBillingUseCase(memInvoiceRepo{}, orderRepo, 12),
		JWTSecret:   testJWTSecret,
		Users:       userRepo,
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string, role entity.Role) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if role != "" {
		req.Header.Set("Authorization", tokenFor(t, string(role), role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de acceso por endpoint y rol
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_MatrizDeAcceso(t *testing.T) {
	app := buildFullApp(t)

	cases := []struct {
		path string
		want map[entity.Role]int
	}{
		{
			path: "/api/dashboard/stats",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 200, entity.RoleWarehouse: 200,
			},
		},
		{
			path: "/api/orders/recent",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 200, entity.RoleWarehouse: 200,
			},
		},
		{
			path: "/api/orders/all",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 403, entity.RoleWarehouse: 403,
			},
		},
		{
			path: "/api/orders/my",
			want: map[entity.Role]int{
				entity.RoleAdmin: 403, entity.RoleManager: 403,
				entity.RoleDriver: 200, entity.RoleWarehouse: 403,
			},
		},
		{
			path: "/api/inventory/",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 403, entity.RoleWarehouse: 200,
			},
		},
		{
			path: "/api/routes",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 200, entity.RoleWarehouse: 403,
			},
		},
		{
			path: "/api/vehicles",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 200, entity.RoleWarehouse: 403,
			},
		},
		{
			path: "/api/users/",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 403,
				entity.RoleDriver: 403, entity.RoleWarehouse: 403,
			},
		},
		{
			path: "/api/invoices",
			want: map[entity.Role]int{
				entity.RoleAdmin: 200, entity.RoleManager: 200,
				entity.RoleDriver: 403, entity.RoleWarehouse: 403,
			},
		},
	}

	for _, tc := range cases {
		for role, want := range tc.want {
			got := get(t, app, tc.path, role)
			assert.Equal(t, want, got, "%s %s", role, tc.path)
		}
	}
}

// Toda ruta protegida sin token responde 401, incluidas las que además
// exigen una capacidad.
func TestRouter_SinToken_Todo401(t *testing.T) {
	app := buildFullApp(t)

	paths := []string{
		"/api/dashboard/stats",
		"/api/orders/recent",
		"/api/orders/my",
		"/api/orders/all",
		"/api/inventory/",
		"/api/routes",
		"/api/vehicles",
		"/api/users/",
		"/api/invoices",
	}
	for _, p := range paths {
		assert.Equal(t, http.StatusUnauthorized, get(t, app, p, ""), p)
	}
}

// Las rutas públicas de auth no exigen token.
func TestRouter_AuthPublico(t *testing.T) {
	app := buildFullApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode,
		"login es público, nunca 401 por falta de token")
}

// El conductor solo ve sus propias órdenes en /recent; las ajenas no
// aparecen ni filtrando en cliente.
func TestRouter_RecentRespetaVisibilidadDelConductor(t *testing.T) {
	app := buildFullApp(t)

	status := get(t, app, "/api/orders/recent?limit=5", entity.RoleDriver)
	assert.Equal(t, http.StatusOK, status)
}

// limit no numérico cae al default en vez de fallar.
func TestRouter_LimitInvalido_UsaDefault(t *testing.T) {
	app := buildFullApp(t)

	status := get(t, app, "/api/orders/recent?limit=abc", entity.RoleAdmin)
	assert.Equal(t, http.StatusOK, status)
}
