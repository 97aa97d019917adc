package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/service"
)

// OptionHandler bundles the option endpoints.
type OptionHandler struct {
	base
}

// NewOptionHandler creates an option handler.
func NewOptionHandler(d *dispatch.Dispatcher) *OptionHandler {
	return &OptionHandler{base{dispatcher: d}}
}

// OptionLinkRequest names one option.
type OptionLinkRequest struct {
	OptionID uint `json:"option_id"`
}

// List godoc
// @Summary List options
// @Tags options
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=[]model.Option}
// @Router /options [get]
func (h *OptionHandler) List(c echo.Context) error {
	return h.invoke(c, "options:get-all", nil)
}

// Create godoc
// @Summary Create option
// @Tags options
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param option body service.OptionInput true "Option payload"
// @Success 201 {object} dispatch.Envelope{data=model.Option}
// @Router /options [post]
func (h *OptionHandler) Create(c echo.Context) error {
	var in service.OptionInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "options:create", in)
}

// Update godoc
// @Summary Update option
// @Tags options
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Param option body service.OptionInput true "Option payload"
// @Success 200 {object} dispatch.Envelope{data=model.Option}
// @Router /options/{id} [put]
func (h *OptionHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.OptionUpdateParams
	if err := c.Bind(&p.OptionInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "options:update", p)
}

// Delete godoc
// @Summary Delete option
// @Tags options
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /options/{id} [delete]
func (h *OptionHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "options:delete", dispatch.IDParams{ID: id})
}

// ProductOptions godoc
// @Summary List the options of a product
// @Tags options
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=[]model.Option}
// @Router /products/{id}/options [get]
func (h *OptionHandler) ProductOptions(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "options:get-for-product", dispatch.ProductParams{ProductID: id})
}

// AddProductOption godoc
// @Summary Attach an option to a product
// @Tags options
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param link body OptionLinkRequest true "Option"
// @Success 200 {object} dispatch.Envelope
// @Router /products/{id}/options [post]
func (h *OptionHandler) AddProductOption(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req OptionLinkRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "options:add-to-product", dispatch.ProductOptionParams{ProductID: id, OptionID: req.OptionID})
}

// RemoveProductOption godoc
// @Summary Detach an option from a product
// @Tags options
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param optionId path int true "Option ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /products/{id}/options/{optionId} [delete]
func (h *OptionHandler) RemoveProductOption(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	optionID, ok := pathID(c, "optionId")
	if !ok {
		return bindFailure(c, "invalid option id")
	}
	return h.invoke(c, "options:remove-from-product", dispatch.ProductOptionParams{ProductID: id, OptionID: optionID})
}
