package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
)

// DashboardHandler serves the home screen figures.
type DashboardHandler struct {
	base
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(d *dispatch.Dispatcher) *DashboardHandler {
	return &DashboardHandler{base{dispatcher: d}}
}

// Stats godoc
// @Summary Dashboard counts and recent products
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=model.DashboardStats}
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	return h.invoke(c, "dashboard:stats", nil)
}
