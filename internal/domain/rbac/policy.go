// Package rbac define la política de autorización por roles.
//
// La tabla de permisos es una constante de proceso: se carga al compilar y es
// inmutable. Todo par (rol, capacidad) que no esté concedido explícitamente se
// niega (default-deny, fail-closed).
package rbac

import "github.com/flotanet/logistica-api/internal/domain/entity"

// Capability una capacidad nombrada que la política consulta.
type Capability string

// Capacidades del sistema (conjunto cerrado).
const (
	ViewDashboardStats Capability = "view-dashboard-stats"
	ViewRecentOrders   Capability = "view-recent-orders"
	ViewAllOrders      Capability = "view-all-orders"
	ViewOwnOrders      Capability = "view-own-orders"
	ManageInventory    Capability = "manage-inventory"
	ManageRoutes       Capability = "manage-routes"
	ManageUsers        Capability = "manage-users"
)

// grants tabla de concesiones. Nota: ViewRecentOrders incluye al conductor,
// pero su alcance se restringe a sus propias órdenes vía el resolver de
// visibilidad; la política solo decide el acceso al endpoint.
var grants = map[Capability]map[entity.Role]struct{}{
	ViewDashboardStats: allow(entity.RoleAdmin, entity.RoleManager, entity.RoleDriver, entity.RoleWarehouse),
	ViewRecentOrders:   allow(entity.RoleAdmin, entity.RoleManager, entity.RoleDriver, entity.RoleWarehouse),
	ViewAllOrders:      allow(entity.RoleAdmin, entity.RoleManager),
	ViewOwnOrders:      allow(entity.RoleDriver),
	ManageInventory:    allow(entity.RoleAdmin, entity.RoleManager, entity.RoleWarehouse),
	ManageRoutes:       allow(entity.RoleAdmin, entity.RoleManager, entity.RoleDriver),
	ManageUsers:        allow(entity.RoleAdmin),
}

func allow(roles ...entity.Role) map[entity.Role]struct{} {
	m := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return m
}

// Allow decide si el rol tiene la capacidad. Función total y determinista:
// rol desconocido o capacidad desconocida → deny.
func Allow(role entity.Role, cap Capability) bool {
	roles, ok := grants[cap]
	if !ok {
		return false
	}
	_, ok = roles[role]
	return ok
}

// Capabilities devuelve las capacidades concedidas al rol, útil para
// exponer al frontend qué secciones mostrar.
func Capabilities(role entity.Role) []Capability {
	var caps []Capability
	for _, c := range []Capability{
		ViewDashboardStats, ViewRecentOrders, ViewAllOrders,
		ViewOwnOrders, ManageInventory, ManageRoutes, ManageUsers,
	} {
		if Allow(role, c) {
			caps = append(caps, c)
		}
	}
	return caps
}
