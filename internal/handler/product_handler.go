package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/listing"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

// ProductHandler bundles the product endpoints, including the service bundle.
type ProductHandler struct {
	base
}

// NewProductHandler creates a product handler.
func NewProductHandler(d *dispatch.Dispatcher) *ProductHandler {
	return &ProductHandler{base{dispatcher: d}}
}

// ServiceLinkRequest adds one service to a product.
type ServiceLinkRequest struct {
	ServiceID uint `json:"service_id"`
	Quantity  int  `json:"quantity"`
}

// ServicesSyncRequest is the desired service bundle.
type ServicesSyncRequest struct {
	Services []model.ServiceQuantity `json:"services"`
}

// List godoc
// @Summary List products with services, tags and categories
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring"
// @Param tag_ids query []int false "Any of these tags"
// @Param category_ids query []int false "Any of these categories"
// @Param sort_by query string false "id, name, price, created_at or updated_at"
// @Param desc query bool false "Descending order"
// @Success 200 {object} dispatch.Envelope{data=[]model.ProductDetail}
// @Failure 400 {object} dispatch.Envelope
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listing.Query
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return bindFailure(c, "invalid query")
	}
	return h.invoke(c, "products:list", q)
}

// Showcase godoc
// @Summary Showcase sections
// @Description Carousel and top products, plus the remaining products filtered and sorted by the query.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring"
// @Param tag_ids query []int false "Any of these tags"
// @Param sort_by query string false "Sort key"
// @Param desc query bool false "Descending order"
// @Success 200 {object} dispatch.Envelope{data=model.Showcase}
// @Router /showcase [get]
func (h *ProductHandler) Showcase(c echo.Context) error {
	var q listing.Query
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return bindFailure(c, "invalid query")
	}
	return h.invoke(c, "products:showcase", q)
}

// Get godoc
// @Summary Get product detail
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=model.ProductDetail}
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "products:get-by-id", dispatch.IDParams{ID: id})
}

// Create godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body service.ProductInput true "Product payload"
// @Success 201 {object} dispatch.Envelope{data=model.Product}
// @Failure 400 {object} dispatch.Envelope
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var in service.ProductInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "products:create", in)
}

// Update godoc
// @Summary Update product fields
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body service.ProductInput true "Product payload"
// @Success 200 {object} dispatch.Envelope{data=model.Product}
// @Failure 400 {object} dispatch.Envelope
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.ProductUpdateParams
	if err := c.Bind(&p.ProductInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "products:update", p)
}

// Delete godoc
// @Summary Delete product
// @Description Removes its plans and links as well.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "products:delete", dispatch.IDParams{ID: id})
}

// Save godoc
// @Summary Create or update a product with its service bundle
// @Description Fields, service links and inherited tags are written in one transaction.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body dispatch.ProductSaveParams true "Product form"
// @Success 200 {object} dispatch.Envelope{data=model.ProductDetail}
// @Failure 400 {object} dispatch.Envelope
// @Router /products/save [post]
func (h *ProductHandler) Save(c echo.Context) error {
	var p dispatch.ProductSaveParams
	if err := c.Bind(&p); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "products:save", p)
}

// ToggleTop godoc
// @Summary Flip the top product flag
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope
// @Router /products/{id}/toggle-top [post]
func (h *ProductHandler) ToggleTop(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "products:toggle-top", dispatch.IDParams{ID: id})
}

// ToggleCarousel godoc
// @Summary Flip the carousel flag
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope
// @Failure 400 {object} dispatch.Envelope "carousel full"
// @Router /products/{id}/toggle-carousel [post]
func (h *ProductHandler) ToggleCarousel(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "products:toggle-carousel", dispatch.IDParams{ID: id})
}

// Services godoc
// @Summary List the services of a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=[]model.ProductServiceLine}
// @Router /products/{id}/services [get]
func (h *ProductHandler) Services(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "products:get-services", dispatch.ProductParams{ProductID: id})
}

// AddService godoc
// @Summary Add a service to a product
// @Description Quantity 0 means 1. An existing link gets the new quantity.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param link body ServiceLinkRequest true "Service and quantity"
// @Success 200 {object} dispatch.Envelope
// @Failure 400 {object} dispatch.Envelope
// @Router /products/{id}/services [post]
func (h *ProductHandler) AddService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req ServiceLinkRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "products:add-service", dispatch.ProductServiceParams{
		ProductID: id,
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
	})
}

// RemoveService godoc
// @Summary Remove a service from a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param serviceId path int true "Service ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /products/{id}/services/{serviceId} [delete]
func (h *ProductHandler) RemoveService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return bindFailure(c, "invalid service id")
	}
	return h.invoke(c, "products:remove-service", dispatch.ProductServiceParams{ProductID: id, ServiceID: serviceID})
}

// SyncServices godoc
// @Summary Replace the service bundle of a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param bundle body ServicesSyncRequest true "Desired services in display order"
// @Success 200 {object} dispatch.Envelope
// @Failure 400 {object} dispatch.Envelope
// @Router /products/{id}/services [put]
func (h *ProductHandler) SyncServices(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req ServicesSyncRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "products:sync-services", dispatch.ProductServicesSyncParams{ProductID: id, Services: req.Services})
}
