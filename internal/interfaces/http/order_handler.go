package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/application/orders"
)

// OrderHandler expone las operaciones de pedidos. La visibilidad por rol la
// resuelve el caso de uso; aquí solo se traduce HTTP.
type OrderHandler struct {
	orderUC *orders.OrderUseCase
}

func NewOrderHandler(orderUC *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Recent lista los pedidos recientes visibles para el usuario autenticado.
func (h *OrderHandler) Recent(c *fiber.Ctx) error {
	user := GetUser(c)
	limit := queryLimit(c, orders.DefaultRecentLimit)
	list, err := h.orderUC.ListVisible(c.Context(), user, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// My lista únicamente los pedidos asignados al conductor autenticado.
func (h *OrderHandler) My(c *fiber.Ctx) error {
	user := GetUser(c)
	limit := queryLimit(c, orders.DefaultAllLimit)
	list, err := h.orderUC.ListOwn(c.Context(), user.ID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// All lista todos los pedidos. Requiere capacidad de visión global.
func (h *OrderHandler) All(c *fiber.Ctx) error {
	limit := queryLimit(c, orders.DefaultAllLimit)
	list, err := h.orderUC.ListAll(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID devuelve un pedido si está dentro del alcance del usuario.
// Un pedido fuera de alcance responde 404, no 403: no se revela existencia.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	user := GetUser(c)
	order, err := h.orderUC.GetByID(c.Context(), user, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Create registra un pedido nuevo en estado pending.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	order, err := h.orderUC.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
