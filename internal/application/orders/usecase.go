// Package orders contiene los casos de uso de órdenes de transporte y el
// resolver de visibilidad por rol.
package orders

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// Límites de listado.
const (
	DefaultRecentLimit = 10
	DefaultAllLimit    = 50
	MaxLimit           = 100
)

// defaultCurrency moneda por defecto de la operación (tenge kazajo).
const defaultCurrency = "KZT"

// OrderUseCase casos de uso de órdenes: listados con scope y creación.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, userRepo repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, customerRepo: customerRepo, userRepo: userRepo}
}

// ListVisible lista las órdenes recientes dentro del scope del usuario,
// con su cliente, ordenadas por fecha de creación descendente.
func (uc *OrderUseCase) ListVisible(ctx context.Context, user *entity.User, limit int) ([]dto.OrderResponse, error) {
	limit = clampLimit(limit, DefaultRecentLimit)
	scope := ScopeFor(user)
	rows, err := uc.orderRepo.ListRecent(ctx, scope, limit)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	return toOrderResponses(rows), nil
}

// ListOwn lista las órdenes asignadas al conductor que consulta.
func (uc *OrderUseCase) ListOwn(ctx context.Context, driverID string, limit int) ([]dto.OrderResponse, error) {
	limit = clampLimit(limit, DefaultRecentLimit)
	rows, err := uc.orderRepo.ListRecent(ctx, repository.OrderScope{DriverID: driverID}, limit)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes propias: %w", err)
	}
	return toOrderResponses(rows), nil
}

// ListAll lista todas las órdenes de la red (solo admin/manager; el guard
// HTTP ya lo garantiza, aquí no se vuelve a comprobar el rol).
func (uc *OrderUseCase) ListAll(ctx context.Context, limit int) ([]dto.OrderResponse, error) {
	limit = clampLimit(limit, DefaultAllLimit)
	rows, err := uc.orderRepo.ListRecent(ctx, repository.OrderScope{All: true}, limit)
	if err != nil {
		return nil, fmt.Errorf("listar todas las órdenes: %w", err)
	}
	return toOrderResponses(rows), nil
}

// GetByID devuelve una orden si existe y cae dentro del scope del usuario.
// Fuera de scope se responde como no encontrada para no revelar existencia.
func (uc *OrderUseCase) GetByID(ctx context.Context, user *entity.User, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener orden: %w", err)
	}
	if order == nil || !CanSee(user, order) {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(repository.OrderWithCustomer{Order: *order})
	if customer, err := uc.customerRepo.GetByID(ctx, order.CustomerID); err == nil && customer != nil {
		resp.Customer = toCustomerResponse(customer)
	}
	return &resp, nil
}

// Create crea una orden en estado pending con número generado.
// Escritura única todo-o-nada; sin transacción multi-registro.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var driverID *string
	if in.AssignedDriverID != "" {
		driver, err := uc.userRepo.GetByID(ctx, in.AssignedDriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil || driver.Role != entity.RoleDriver {
			return nil, domain.ErrInvalidInput
		}
		driverID = &in.AssignedDriverID
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	now := time.Now()
	order := &entity.Order{
		ID:               uuid.New().String(),
		OrderNumber:      newOrderNumber(),
		CustomerID:       in.CustomerID,
		Status:           entity.OrderPending,
		TotalAmount:      in.TotalAmount,
		Currency:         currency,
		Priority:         priority,
		PickupAddress:    in.PickupAddress,
		DeliveryAddress:  in.DeliveryAddress,
		PickupCity:       in.PickupCity,
		DeliveryCity:     in.DeliveryCity,
		AssignedDriverID: driverID,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(repository.OrderWithCustomer{Order: *order, Customer: customer})
	return &resp, nil
}

// newOrderNumber genera un número de orden legible, ej: ORD-4F9A2C.
func newOrderNumber() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return "ORD-" + string(buf)
}

// clampLimit normaliza el límite: no positivo → def, mayor que MaxLimit → MaxLimit.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func toOrderResponses(rows []repository.OrderWithCustomer) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrderResponse(row))
	}
	return out
}

func toOrderResponse(row repository.OrderWithCustomer) dto.OrderResponse {
	o := row.Order
	resp := dto.OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerID:       o.CustomerID,
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		Currency:         o.Currency,
		Priority:         o.Priority,
		PickupAddress:    o.PickupAddress,
		DeliveryAddress:  o.DeliveryAddress,
		PickupCity:       o.PickupCity,
		DeliveryCity:     o.DeliveryCity,
		AssignedDriverID: o.AssignedDriverID,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if row.Customer != nil {
		resp.Customer = toCustomerResponse(row.Customer)
	}
	return resp
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		City:          c.City,
		BIN:           c.BIN,
	}
}
