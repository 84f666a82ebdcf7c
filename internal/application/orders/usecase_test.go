package orders_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/application/orders"
	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// fakeOrderRepo repositorio en memoria que aplica el scope igual que el SQL real.
type fakeOrderRepo struct {
	orders    []entity.Order
	lastLimit int
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListRecent(_ context.Context, scope repository.OrderScope, limit int) ([]repository.OrderWithCustomer, error) {
	f.lastLimit = limit
	var visible []entity.Order
	for _, o := range f.orders {
		switch {
		case scope.All:
			visible = append(visible, o)
		case scope.DriverID != "" && o.AssignedDriverID != nil && *o.AssignedDriverID == scope.DriverID:
			visible = append(visible, o)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].CreatedAt.After(visible[j].CreatedAt) })
	if len(visible) > limit {
		visible = visible[:limit]
	}
	out := make([]repository.OrderWithCustomer, 0, len(visible))
	for _, o := range visible {
		out = append(out, repository.OrderWithCustomer{Order: o})
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

func seedOrders(driverA, driverB string) []entity.Order {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []entity.Order{
		{ID: "o1", OrderNumber: "ORD-AAA111", AssignedDriverID: &driverA, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "o2", OrderNumber: "ORD-BBB222", AssignedDriverID: &driverB, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "o3", OrderNumber: "ORD-CCC333", AssignedDriverID: &driverA, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "o4", OrderNumber: "ORD-DDD444", CreatedAt: base},
	}
}

func newUC(repo *fakeOrderRepo) *orders.OrderUseCase {
	return orders.NewOrderUseCase(repo, &fakeCustomerRepo{customers: map[string]*entity.Customer{}}, &fakeUserRepo{users: map[string]*entity.User{}})
}

// El conductor nunca recibe una orden cuyo conductor asignado no sea él.
func TestListVisible_ConductorSoloVeLasSuyas(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders("drv-a", "drv-b")}
	uc := newUC(repo)

	got, err := uc.ListVisible(context.Background(), userWithRole("drv-a", entity.RoleDriver), 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	for _, o := range got {
		require.NotNil(t, o.AssignedDriverID)
		assert.Equal(t, "drv-a", *o.AssignedDriverID)
	}
}

func TestListVisible_AdminVeTodo_OrdenDescendente(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders("drv-a", "drv-b")}
	uc := newUC(repo)

	got, err := uc.ListVisible(context.Background(), userWithRole("adm", entity.RoleAdmin), 0)
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, "o1", got[0].ID, "la más reciente primero")
	assert.Equal(t, "o4", got[3].ID)
}

func TestListVisible_RolDesconocidoListaVacia(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders("drv-a", "drv-b")}
	uc := newUC(repo)

	got, err := uc.ListVisible(context.Background(), userWithRole("x", entity.Role("fantasma")), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLimites(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders("drv-a", "drv-b")}
	uc := newUC(repo)
	admin := userWithRole("adm", entity.RoleAdmin)
	ctx := context.Background()

	_, err := uc.ListVisible(ctx, admin, 0)
	require.NoError(t, err)
	assert.Equal(t, orders.DefaultRecentLimit, repo.lastLimit, "límite no positivo cae al default")

	_, err = uc.ListVisible(ctx, admin, 500)
	require.NoError(t, err)
	assert.Equal(t, orders.MaxLimit, repo.lastLimit, "límite excesivo se acota")

	_, err = uc.ListAll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, orders.DefaultAllLimit, repo.lastLimit, "listado completo usa default 50")
}

func TestGetByID_FueraDeScopeEsNotFound(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders("drv-a", "drv-b")}
	uc := newUC(repo)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, userWithRole("drv-a", entity.RoleDriver), "o2")
	assert.ErrorIs(t, err, domain.ErrNotFound, "la orden de otro conductor no se revela")

	got, err := uc.GetByID(ctx, userWithRole("drv-a", entity.RoleDriver), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
}

func TestCreate(t *testing.T) {
	repo := &fakeOrderRepo{}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c-1": {ID: "c-1", CompanyName: "Astana Cargo LLP"},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"drv-1": {ID: "drv-1", Role: entity.RoleDriver},
		"mgr-1": {ID: "mgr-1", Role: entity.RoleManager},
	}}
	uc := orders.NewOrderUseCase(repo, customerRepo, userRepo)
	ctx := context.Background()

	in := dto.CreateOrderRequest{
		CustomerID:      "c-1",
		TotalAmount:     decimal.RequireFromString("2500.00"),
		PickupAddress:   "Abay 10",
		DeliveryAddress: "Dostyk 240",
		PickupCity:      "Almaty",
		DeliveryCity:    "Astana",
	}

	got, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, got.Status, "toda orden nace pending")
	assert.Equal(t, "KZT", got.Currency)
	assert.Equal(t, entity.PriorityNormal, got.Priority)
	assert.True(t, strings.HasPrefix(got.OrderNumber, "ORD-"))
	require.NotNil(t, got.Customer)
	assert.Equal(t, "Astana Cargo LLP", got.Customer.CompanyName)

	// cliente inexistente
	bad := in
	bad.CustomerID = "c-404"
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// monto negativo
	bad = in
	bad.TotalAmount = decimal.RequireFromString("-5")
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// conductor asignado que no es driver
	bad = in
	bad.AssignedDriverID = "mgr-1"
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// conductor válido
	ok := in
	ok.AssignedDriverID = "drv-1"
	got, err = uc.Create(ctx, ok)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedDriverID)
	assert.Equal(t, "drv-1", *got.AssignedDriverID)
}
