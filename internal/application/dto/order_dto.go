package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden de transporte.
type CreateOrderRequest struct {
	CustomerID       string          `json:"customerId" validate:"required,uuid"`
	TotalAmount      decimal.Decimal `json:"totalAmount" validate:"required"`
	Currency         string          `json:"currency" validate:"omitempty,len=3"`
	Priority         string          `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	PickupAddress    string          `json:"pickupAddress" validate:"required"`
	DeliveryAddress  string          `json:"deliveryAddress" validate:"required"`
	PickupCity       string          `json:"pickupCity" validate:"required"`
	DeliveryCity     string          `json:"deliveryCity" validate:"required"`
	AssignedDriverID string          `json:"assignedDriverId" validate:"omitempty,uuid"`
	Notes            string          `json:"notes"`
}

// CustomerResponse cliente embebido en la respuesta de órdenes.
type CustomerResponse struct {
	ID            string `json:"id"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	BIN           string `json:"bin,omitempty"`
}

// OrderResponse salida de una orden, con el cliente embebido si existe.
type OrderResponse struct {
	ID               string            `json:"id"`
	OrderNumber      string            `json:"orderNumber"`
	CustomerID       string            `json:"customerId"`
	Status           string            `json:"status"`
	TotalAmount      decimal.Decimal   `json:"totalAmount"`
	Currency         string            `json:"currency"`
	Priority         string            `json:"priority"`
	PickupAddress    string            `json:"pickupAddress"`
	DeliveryAddress  string            `json:"deliveryAddress"`
	PickupCity       string            `json:"pickupCity"`
	DeliveryCity     string            `json:"deliveryCity"`
	AssignedDriverID *string           `json:"assignedDriverId,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	Customer         *CustomerResponse `json:"customer,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
