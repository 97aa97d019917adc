package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/listing"
	"backoffice/internal/service"
)

// ServiceHandler bundles the catalog service endpoints.
type ServiceHandler struct {
	base
}

// NewServiceHandler creates a catalog service handler.
func NewServiceHandler(d *dispatch.Dispatcher) *ServiceHandler {
	return &ServiceHandler{base{dispatcher: d}}
}

// List godoc
// @Summary List services with category and tags
// @Description Filters by name (case-insensitive), tags and categories; sorts by sort_by.
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring"
// @Param tag_ids query []int false "Any of these tags"
// @Param category_ids query []int false "Any of these categories"
// @Param sort_by query string false "id, name, created_at or updated_at"
// @Param desc query bool false "Descending order"
// @Success 200 {object} dispatch.Envelope{data=[]model.ServiceDetail}
// @Failure 400 {object} dispatch.Envelope
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	var q listing.Query
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return bindFailure(c, "invalid query")
	}
	return h.invoke(c, "services:list", q)
}

// Get godoc
// @Summary Get service with category and tags
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dispatch.Envelope{data=model.ServiceDetail}
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "services:get-by-id", dispatch.IDParams{ID: id})
}

// Create godoc
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service body service.ServiceInput true "Service payload"
// @Success 201 {object} dispatch.Envelope{data=model.ServiceRow}
// @Failure 400 {object} dispatch.Envelope
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var in service.ServiceInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "services:create", in)
}

// Update godoc
// @Summary Update service fields
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param service body service.ServiceInput true "Service payload"
// @Success 200 {object} dispatch.Envelope{data=model.ServiceRow}
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.ServiceUpdateParams
	if err := c.Bind(&p.ServiceInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "services:update", p)
}

// Delete godoc
// @Summary Delete service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "services:delete", dispatch.IDParams{ID: id})
}

// Save godoc
// @Summary Create or update a service together with its tag set
// @Description Creates when id is absent. Fields and tags are written in one transaction.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service body dispatch.ServiceSaveParams true "Service form"
// @Success 200 {object} dispatch.Envelope{data=model.ServiceDetail}
// @Failure 400 {object} dispatch.Envelope
// @Router /services/save [post]
func (h *ServiceHandler) Save(c echo.Context) error {
	var p dispatch.ServiceSaveParams
	if err := c.Bind(&p); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "services:save", p)
}
