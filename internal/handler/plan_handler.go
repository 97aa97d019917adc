package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
)

// PlanHandler bundles the pricing plan endpoints.
type PlanHandler struct {
	base
}

// NewPlanHandler creates a pricing plan handler.
func NewPlanHandler(d *dispatch.Dispatcher) *PlanHandler {
	return &PlanHandler{base{dispatcher: d}}
}

// List godoc
// @Summary List the pricing plans of a product
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=[]model.PricingPlan}
// @Router /products/{id}/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "pricing-plans:get-for-product", dispatch.ProductParams{ProductID: id})
}

// Create godoc
// @Summary Add a pricing plan to a product
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param plan body service.PlanInput true "Plan payload"
// @Success 201 {object} dispatch.Envelope{data=model.PricingPlan}
// @Failure 400 {object} dispatch.Envelope
// @Router /products/{id}/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.PlanCreateParams
	if err := c.Bind(&p.PlanInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ProductID = id
	return h.invoke(c, "pricing-plans:create", p)
}

// Update godoc
// @Summary Update a pricing plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param plan body service.PlanInput true "Plan payload"
// @Success 200 {object} dispatch.Envelope{data=model.PricingPlan}
// @Failure 400 {object} dispatch.Envelope
// @Router /plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.PlanUpdateParams
	if err := c.Bind(&p.PlanInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "pricing-plans:update", p)
}

// Delete godoc
// @Summary Delete a pricing plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "pricing-plans:delete", dispatch.IDParams{ID: id})
}
