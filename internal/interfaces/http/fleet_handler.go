package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/fleet"
)

// FleetHandler expone rutas y vehículos de la flota.
type FleetHandler struct {
	fleetUC *fleet.FleetUseCase
}

func NewFleetHandler(fleetUC *fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

func (h *FleetHandler) Routes(c *fiber.Ctx) error {
	limit := queryLimit(c, 50)
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.fleetUC.ListRoutes(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *FleetHandler) Vehicles(c *fiber.Ctx) error {
	limit := queryLimit(c, 50)
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.fleetUC.ListVehicles(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
