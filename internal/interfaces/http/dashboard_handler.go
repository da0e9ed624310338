package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockScan-api/internal/application/catalog"
	"github.com/jhoicas/StockScan-api/internal/application/dto"
)

// DashboardHandler expone las estadísticas agregadas del catálogo.
type DashboardHandler struct {
	uc *catalog.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *catalog.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Estadísticas del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
