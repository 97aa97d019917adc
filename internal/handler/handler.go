package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice/internal/dispatch"
	"backoffice/internal/errors"
)

// base turns HTTP requests into dispatcher invocations.
type base struct {
	dispatcher *dispatch.Dispatcher
}

// invoke runs channel with params and writes the envelope with its own code as
// the HTTP status.
func (b base) invoke(c echo.Context, channel string, params any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return respond(c, dispatch.Failure(err))
	}
	return b.invokeRaw(c, channel, raw)
}

func (b base) invokeRaw(c echo.Context, channel string, raw json.RawMessage) error {
	ctx := dispatch.WithRequestID(c.Request().Context(), c.Response().Header().Get(echo.HeaderXRequestID))
	return respond(c, b.dispatcher.Invoke(ctx, channel, raw))
}

func respond(c echo.Context, env dispatch.Envelope) error {
	return c.JSON(env.Code, env)
}

// bindFailure is the envelope of a request whose body or path cannot be read.
func bindFailure(c echo.Context, msg string) error {
	return respond(c, dispatch.Failure(errors.Validation(msg)))
}

func pathID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// BridgeHandler exposes the dispatcher as a single generic endpoint.
type BridgeHandler struct {
	base
}

// NewBridgeHandler creates a bridge handler.
func NewBridgeHandler(d *dispatch.Dispatcher) *BridgeHandler {
	return &BridgeHandler{base{dispatcher: d}}
}

// Invoke godoc
// @Summary Invoke a catalog channel
// @Description Runs one named operation (e.g. products:get-all) with the JSON body as params.
// @Tags bridge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param channel path string true "Channel name"
// @Param params body object false "Channel params"
// @Success 200 {object} dispatch.Envelope
// @Failure 400 {object} dispatch.Envelope
// @Failure 404 {object} dispatch.Envelope
// @Failure 500 {object} dispatch.Envelope
// @Router /invoke/{channel} [post]
func (h *BridgeHandler) Invoke(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return bindFailure(c, "invalid request body")
	}
	return h.invokeRaw(c, c.Param("channel"), body)
}

// Channels godoc
// @Summary List catalog channels
// @Tags bridge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope
// @Router /channels [get]
func (h *BridgeHandler) Channels(c echo.Context) error {
	return respond(c, dispatch.Wrap(h.dispatcher.Channels(), nil))
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
