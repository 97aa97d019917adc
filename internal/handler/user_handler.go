package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/service"
)

// UserHandler bundles the user endpoints.
type UserHandler struct {
	base
}

// NewUserHandler creates a handler layer.
func NewUserHandler(d *dispatch.Dispatcher) *UserHandler {
	return &UserHandler{base{dispatcher: d}}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=[]model.User}
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	return h.invoke(c, "users:get-all", nil)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body service.UserInput true "User payload"
// @Success 201 {object} dispatch.Envelope{data=model.User}
// @Failure 400 {object} dispatch.Envelope
// @Failure 500 {object} dispatch.Envelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var in service.UserInput
	if err := c.Bind(&in); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "users:create", in)
}

// UpdateUser godoc
// @Summary Update username and role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body service.UserInput true "User payload"
// @Success 200 {object} dispatch.Envelope{data=model.User}
// @Failure 400 {object} dispatch.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var p dispatch.UserUpdateParams
	if err := c.Bind(&p.UserInput); err != nil {
		return bindFailure(c, "invalid request body")
	}
	p.ID = id
	return h.invoke(c, "users:update", p)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	return h.invoke(c, "users:delete", dispatch.IDParams{ID: id})
}

// ChangePasswordRequest carries a new password.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body ChangePasswordRequest true "New password"
// @Success 200 {object} dispatch.Envelope{data=dispatch.Changes}
// @Failure 400 {object} dispatch.Envelope
// @Router /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bindFailure(c, "invalid id")
	}
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invoke(c, "users:change-password", dispatch.PasswordParams{ID: id, Password: req.Password})
}
