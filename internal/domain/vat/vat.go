// Package vat implementa el cálculo de IVA (Kazajistán, 12% estándar)
// con aritmética decimal exacta.
package vat

import (
	"github.com/shopspring/decimal"

	"github.com/flotanet/logistica-api/internal/domain"
)

// DefaultRatePercent tasa estándar de IVA en Kazajistán.
const DefaultRatePercent = 12

var hundred = decimal.NewFromInt(100)

// Breakdown desglose de un monto en neto, IVA y total. Todos redondeados a 2 decimales.
type Breakdown struct {
	Subtotal    decimal.Decimal
	VATAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	RatePercent int
}

// FromNet calcula el desglose a partir del monto neto (sin IVA).
// VATAmount = neto × tasa/100; TotalAmount = Subtotal + VATAmount, de modo que
// el desglose siempre cuadra tras el redondeo.
func FromNet(net decimal.Decimal, ratePercent int) (Breakdown, error) {
	if net.IsNegative() || ratePercent < 0 {
		return Breakdown{}, domain.ErrInvalidInput
	}
	subtotal := net.Round(2)
	vat := subtotal.Mul(decimal.NewFromInt(int64(ratePercent))).Div(hundred).Round(2)
	return Breakdown{
		Subtotal:    subtotal,
		VATAmount:   vat,
		TotalAmount: subtotal.Add(vat),
		RatePercent: ratePercent,
	}, nil
}

// FromGross calcula el desglose a partir del monto total (IVA incluido):
// Subtotal = total / (1 + tasa/100), VATAmount = total - Subtotal.
// Se usa al facturar órdenes cuyo TotalAmount ya incluye el impuesto.
func FromGross(gross decimal.Decimal, ratePercent int) (Breakdown, error) {
	if gross.IsNegative() || ratePercent < 0 {
		return Breakdown{}, domain.ErrInvalidInput
	}
	total := gross.Round(2)
	divisor := hundred.Add(decimal.NewFromInt(int64(ratePercent)))
	subtotal := total.Mul(hundred).Div(divisor).Round(2)
	return Breakdown{
		Subtotal:    subtotal,
		VATAmount:   total.Sub(subtotal),
		TotalAmount: total,
		RatePercent: ratePercent,
	}, nil
}
