package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/billing"
	"github.com/flotanet/logistica-api/internal/application/dto"
)

// BillingHandler expone facturas y el cálculo de IVA.
type BillingHandler struct {
	billingUC *billing.BillingUseCase
}

func NewBillingHandler(billingUC *billing.BillingUseCase) *BillingHandler {
	return &BillingHandler{billingUC: billingUC}
}

func (h *BillingHandler) Invoices(c *fiber.Ctx) error {
	limit := queryLimit(c, 50)
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.billingUC.ListInvoices(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateInvoice emite una factura en borrador a partir de una orden.
func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	inv, err := h.billingUC.CreateFromOrder(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// CalculateVAT descompone un monto en base, IVA y total según el modo.
func (h *BillingHandler) CalculateVAT(c *fiber.Ctx) error {
	var req dto.VATCalcRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	res, err := h.billingUC.CalculateVAT(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
