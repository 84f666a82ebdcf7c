package entity

import "time"

// Role rol de un usuario. Dominio cerrado: cualquier valor fuera de las
// cuatro constantes se trata como desconocido y la política RBAC lo niega todo.
type Role string

// Roles válidos para User.
const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDriver    Role = "driver"
	RoleWarehouse Role = "warehouse"
)

// IsValid indica si el rol pertenece al dominio cerrado.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDriver, RoleWarehouse:
		return true
	}
	return false
}

// User representa un usuario del sistema (despachador, conductor, operador de bodega...).
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         Role
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
