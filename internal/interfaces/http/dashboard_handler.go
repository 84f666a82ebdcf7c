package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/dashboard"
)

// DashboardHandler expone los indicadores agregados del panel.
type DashboardHandler struct {
	statsUC *dashboard.StatsUseCase
}

func NewDashboardHandler(statsUC *dashboard.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

// Stats devuelve los cuatro indicadores en una sola respuesta.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
