package repository

import (
	"context"

	"github.com/flotanet/logistica-api/internal/domain/entity"
)

// OrderScope delimita qué órdenes son visibles para un usuario.
// Lo produce el resolver de visibilidad (application/orders); el repositorio
// solo lo traduce a un predicado SQL.
//
// All=true → sin filtro. All=false con DriverID → solo órdenes asignadas a
// ese conductor. All=false sin DriverID → conjunto vacío (rol desconocido).
type OrderScope struct {
	All      bool
	DriverID string
}

// OrderWithCustomer una orden junto con su cliente (LEFT JOIN: el cliente
// puede ser nil si la referencia quedó huérfana).
type OrderWithCustomer struct {
	Order    entity.Order
	Customer *entity.Customer
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListRecent devuelve órdenes dentro del scope, con su cliente,
	// ordenadas por fecha de creación descendente y acotadas por limit.
	ListRecent(ctx context.Context, scope OrderScope, limit int) ([]OrderWithCustomer, error)
}
