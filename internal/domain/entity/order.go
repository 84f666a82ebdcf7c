package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de transporte. No hay máquina de estados: cualquier
// estado puede asignarse directamente; solo se valida pertenencia al dominio.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderInTransit  = "in_transit"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Prioridades de una orden.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidOrderStatus indica si el estado pertenece al dominio cerrado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order representa una orden de transporte de carga.
// AssignedDriverID es opcional: nil mientras no se asigne conductor.
type Order struct {
	ID               string
	OrderNumber      string // único, ej: ORD-8F2K1A
	CustomerID       string
	Status           string
	TotalAmount      decimal.Decimal // monto no negativo
	Currency         string          // ISO 4217, por defecto KZT
	Priority         string
	PickupAddress    string
	DeliveryAddress  string
	PickupCity       string
	DeliveryCity     string
	AssignedDriverID *string // User con role=driver
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
