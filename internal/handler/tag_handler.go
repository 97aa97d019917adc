package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/service"
)

// TagHandler bundles the tag endpoints.
type TagHandler struct {
	base
}

// NewTagHandler creates a tag handler.
func NewTagHandler(d *dispatch.Dispatcher) *TagHandler {
	return &TagHandler{base{dispatcher: d}}
}

// List godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=[]model.Tag}
// @Router /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	return h.invoke(c, "tags:get-all", nil)
}

// Create godoc
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tag body service.TagInput true "Tag payload"
// @Success 201 {object} dispatch.Envelope{data=model.Tag}
// @Failure 400 {object} dispatch.Envelope
// @Failure 500 {object} dispatch.Envelope
// @Router /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var in service.TagInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "tags:create", in)
}

// Update godoc
// @Summary Rename tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Param tag body service.TagInput true "Tag payload"
// @Success 200 {object} dispatch.Envelope{data=model.Tag}
// @Failure 400 {object} dispatch.Envelope
// @Router /tags/{id} [put]
func (h *TagHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.TagUpdateParams
	if err := c.Bind(&p.TagInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "tags:update", p)
}

// Delete godoc
// @Summary Delete tag
// @Description Removes the tag from every service and product.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "tags:delete", dispatch.IDParams{ID: id})
}

// TagLinkRequest names one tag.
type TagLinkRequest struct {
	TagID uint `json:"tag_id"`
}

// TagSetRequest is a desired tag set.
type TagSetRequest struct {
	TagIDs []uint `json:"tag_ids"`
}

// ServiceTags godoc
// @Summary List the tags of a service
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dispatch.Envelope{data=[]model.Tag}
// @Router /services/{id}/tags [get]
func (h *TagHandler) ServiceTags(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "tags:get-for-service", dispatch.ServiceParams{ServiceID: id})
}

// AddServiceTag godoc
// @Summary Tag a service
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param link body TagLinkRequest true "Tag"
// @Success 200 {object} dispatch.Envelope
// @Router /services/{id}/tags [post]
func (h *TagHandler) AddServiceTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req TagLinkRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "tags:add-to-service", dispatch.ServiceTagParams{ServiceID: id, TagID: req.TagID})
}

// RemoveServiceTag godoc
// @Summary Untag a service
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param tagId path int true "Tag ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /services/{id}/tags/{tagId} [delete]
func (h *TagHandler) RemoveServiceTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return bindFailure(c, "invalid tag id")
	}
	return h.invoke(c, "tags:remove-from-service", dispatch.ServiceTagParams{ServiceID: id, TagID: tagID})
}

// SyncServiceTags godoc
// @Summary Replace the tag set of a service
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param tags body TagSetRequest true "Desired tags"
// @Success 200 {object} dispatch.Envelope
// @Router /services/{id}/tags [put]
func (h *TagHandler) SyncServiceTags(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req TagSetRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "tags:sync-service", dispatch.ServiceTagsSyncParams{ServiceID: id, TagIDs: req.TagIDs})
}

// ProductTags godoc
// @Summary List the tags of a product
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dispatch.Envelope{data=[]model.Tag}
// @Router /products/{id}/tags [get]
func (h *TagHandler) ProductTags(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "tags:get-for-product", dispatch.ProductParams{ProductID: id})
}

// AddProductTag godoc
// @Summary Tag a product
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param link body TagLinkRequest true "Tag"
// @Success 200 {object} dispatch.Envelope
// @Router /products/{id}/tags [post]
func (h *TagHandler) AddProductTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req TagLinkRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "tags:add-to-product", dispatch.ProductTagParams{ProductID: id, TagID: req.TagID})
}

// RemoveProductTag godoc
// @Summary Untag a product
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param tagId path int true "Tag ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /products/{id}/tags/{tagId} [delete]
func (h *TagHandler) RemoveProductTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return bindFailure(c, "invalid tag id")
	}
	return h.invoke(c, "tags:remove-from-product", dispatch.ProductTagParams{ProductID: id, TagID: tagID})
}

// SyncProductTags godoc
// @Summary Replace the tag set of a product
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param tags body TagSetRequest true "Desired tags"
// @Success 200 {object} dispatch.Envelope
// @Router /products/{id}/tags [put]
func (h *TagHandler) SyncProductTags(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req TagSetRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "tags:sync-product", dispatch.ProductTagsSyncParams{ProductID: id, TagIDs: req.TagIDs})
}
