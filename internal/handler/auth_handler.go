package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         *model.User `json:"user,omitempty"`
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} dispatch.Envelope{data=AuthResponse}
// @Failure 400 {object} dispatch.Envelope
// @Failure 401 {object} dispatch.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return bindFailure(c, err.Error())
	}

	tokens, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respond(c, dispatch.Failure(err))
	}
	return respond(c, dispatch.Wrap(AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil))
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} dispatch.Envelope{data=AuthResponse}
// @Failure 400 {object} dispatch.Envelope
// @Failure 401 {object} dispatch.Envelope
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return bindFailure(c, err.Error())
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respond(c, dispatch.Failure(err))
	}
	return respond(c, dispatch.Wrap(AuthResponse{AccessToken: accessToken}, nil))
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the refresh token; a bearer access token, when sent, is blacklisted until it expires.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} dispatch.Envelope
// @Failure 400 {object} dispatch.Envelope
// @Failure 401 {object} dispatch.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return bindFailure(c, err.Error())
	}

	err := h.authService.Logout(c.Request().Context(), req.RefreshToken, bearerToken(c))
	return respond(c, dispatch.Wrap(nil, err))
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
