// Package billing contiene facturación: listados de facturas y el
// cálculo de IVA del widget del dashboard.
package billing

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
	"github.com/flotanet/logistica-api/internal/domain/vat"
)

// defaultDueDays plazo de pago por defecto desde la emisión.
const defaultDueDays = 14

// BillingUseCase facturas y cálculo de IVA.
type BillingUseCase struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	ratePercent int
}

// NewBillingUseCase construye el caso de uso con la tasa de IVA configurada.
func NewBillingUseCase(invoiceRepo repository.InvoiceRepository, orderRepo repository.OrderRepository, ratePercent int) *BillingUseCase {
	if ratePercent <= 0 {
		ratePercent = vat.DefaultRatePercent
	}
	return &BillingUseCase{invoiceRepo: invoiceRepo, orderRepo: orderRepo, ratePercent: ratePercent}
}

// ListInvoices devuelve facturas filtradas por estado (vacío = todas).
func (uc *BillingUseCase) ListInvoices(ctx context.Context, status string, limit, offset int) ([]dto.InvoiceResponse, error) {
	if status != "" && !validInvoiceStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.InvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			OrderID:       inv.OrderID,
			CustomerID:    inv.CustomerID,
			Subtotal:      inv.Subtotal,
			VATAmount:     inv.VATAmount,
			TotalAmount:   inv.TotalAmount,
			Status:        inv.Status,
			DueDate:       inv.DueDate,
			PaidDate:      inv.PaidDate,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out, nil
}

// CreateFromOrder emite una factura en borrador sobre una orden existente.
// El monto de la orden se trata como bruto: el subtotal sale del desglose
// inverso con la tasa configurada y TotalAmount conserva el monto original.
func (uc *BillingUseCase) CreateFromOrder(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("obtener orden: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	b, err := vat.FromGross(order.TotalAmount, uc.ratePercent)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	due := now.AddDate(0, 0, defaultDueDays)
	if in.DueDate != nil {
		due = *in.DueDate
	}
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: newInvoiceNumber(),
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		Subtotal:      b.Subtotal,
		VATAmount:     b.VATAmount,
		TotalAmount:   b.TotalAmount,
		Status:        entity.InvoiceDraft,
		DueDate:       due,
		CreatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       inv.OrderID,
		CustomerID:    inv.CustomerID,
		Subtotal:      inv.Subtotal,
		VATAmount:     inv.VATAmount,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
	}, nil
}

// newInvoiceNumber genera un número de factura legible, ej: INV-7C2M9K.
func newInvoiceNumber() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return "INV-" + string(buf)
}

// CalculateVAT desglosa un monto según el modo: "net" (por defecto, el monto
// no incluye IVA) o "gross" (el monto ya incluye IVA).
func (uc *BillingUseCase) CalculateVAT(in dto.VATCalcRequest) (*dto.VATCalcResponse, error) {
	var (
		b   vat.Breakdown
		err error
	)
	switch in.Mode {
	case "", "net":
		b, err = vat.FromNet(in.Amount, uc.ratePercent)
	case "gross":
		b, err = vat.FromGross(in.Amount, uc.ratePercent)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	return &dto.VATCalcResponse{
		Subtotal:    b.Subtotal,
		VATAmount:   b.VATAmount,
		TotalAmount: b.TotalAmount,
		RatePercent: b.RatePercent,
	}, nil
}

func validInvoiceStatus(s string) bool {
	switch s {
	case entity.InvoiceDraft, entity.InvoiceSent, entity.InvoicePaid, entity.InvoiceOverdue, entity.InvoiceCancelled:
		return true
	}
	return false
}
