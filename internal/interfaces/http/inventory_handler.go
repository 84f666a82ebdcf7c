package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/application/inventory"
)

// InventoryHandler expone el catálogo de bodega.
type InventoryHandler struct {
	inventoryUC *inventory.InventoryUseCase
}

func NewInventoryHandler(inventoryUC *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{inventoryUC: inventoryUC}
}

func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit := queryLimit(c, 50)
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.inventoryUC.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	item, err := h.inventoryUC.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
