package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// Invoice representa una factura emitida sobre una orden.
// VATAmount es el IVA kazajo (12%) sobre el subtotal; TotalAmount = Subtotal + VATAmount.
type Invoice struct {
	ID            string
	InvoiceNumber string // único
	OrderID       string
	CustomerID    string
	Subtotal      decimal.Decimal
	VATAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	DueDate       time.Time
	PaidDate      *time.Time
	CreatedAt     time.Time
}
