package orders

import (
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// ScopeFor resuelve qué órdenes puede ver el usuario según su rol:
//
//   - admin y manager → todas las órdenes de la red.
//   - warehouse → todas (el flujo de bodega no restringe el listado de órdenes
//     recientes; si el producto define un join por operaciones de bodega, solo
//     cambia este punto).
//   - driver → únicamente las órdenes con AssignedDriverID = su propio ID.
//   - rol desconocido → conjunto vacío (nada visible).
func ScopeFor(user *entity.User) repository.OrderScope {
	switch user.Role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleWarehouse:
		return repository.OrderScope{All: true}
	case entity.RoleDriver:
		return repository.OrderScope{DriverID: user.ID}
	default:
		return repository.OrderScope{}
	}
}

// CanSee indica si una orden concreta cae dentro del scope del usuario.
// Se usa en GET /api/orders/:id para no filtrar en SQL una sola fila.
func CanSee(user *entity.User, order *entity.Order) bool {
	scope := ScopeFor(user)
	if scope.All {
		return true
	}
	if scope.DriverID == "" {
		return false
	}
	return order.AssignedDriverID != nil && *order.AssignedDriverID == scope.DriverID
}
