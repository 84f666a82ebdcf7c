package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	OrderID       string          `json:"orderId"`
	CustomerID    string          `json:"customerId"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateInvoiceRequest entrada para emitir una factura sobre una orden.
// DueDate nil = plazo por defecto.
type CreateInvoiceRequest struct {
	OrderID string     `json:"orderId" validate:"required,uuid4"`
	DueDate *time.Time `json:"dueDate"`
}

// VATCalcRequest entrada del widget de cálculo de IVA.
// Mode "net" (por defecto): Amount es el neto. Mode "gross": Amount incluye IVA.
type VATCalcRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Mode   string          `json:"mode" validate:"omitempty,oneof=net gross"`
}

// VATCalcResponse desglose del cálculo de IVA.
type VATCalcResponse struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	RatePercent int             `json:"ratePercent"`
}
