package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Mrco45/FLEXFINAL/internal/services"
)

// DashboardHandler serves the aggregated revenue and order-count metrics.
type DashboardHandler struct {
	store *services.OrderStore
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(store *services.OrderStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Metrics recomputes the dashboard aggregates over the current order list.
// Nothing is persisted; "today" is an exact calendar-date match.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	orders, err := h.store.List(c.Context())
	if err != nil {
		return err
	}

	metrics := services.ComputeMetrics(orders, time.Now().Format("2006-01-02"))

	return c.JSON(fiber.Map{"success": true, "data": metrics})
}
