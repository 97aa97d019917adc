package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/service"
)

// CategoryHandler bundles the category endpoints.
type CategoryHandler struct {
	base
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(d *dispatch.Dispatcher) *CategoryHandler {
	return &CategoryHandler{base{dispatcher: d}}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=[]model.Category}
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	return h.invoke(c, "categories:get-all", nil)
}

// Create godoc
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body service.CategoryInput true "Category payload"
// @Success 201 {object} dispatch.Envelope{data=model.Category}
// @Failure 400 {object} dispatch.Envelope
// @Failure 500 {object} dispatch.Envelope
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var in service.CategoryInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "categories:create", in)
}

// Update godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body service.CategoryInput true "Category payload"
// @Success 200 {object} dispatch.Envelope{data=model.Category}
// @Failure 400 {object} dispatch.Envelope
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.CategoryUpdateParams
	if err := c.Bind(&p.CategoryInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "categories:update", p)
}

// Delete godoc
// @Summary Delete category
// @Description Services of the category are kept without a category.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "categories:delete", dispatch.IDParams{ID: id})
}
