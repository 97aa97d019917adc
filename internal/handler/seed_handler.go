package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backoffice/internal/cache"
	"backoffice/internal/dispatch"
	"backoffice/internal/repository"
	"backoffice/internal/seed"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	repos *repository.Repositories
	cache *cache.Client
	log   *zap.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(repos *repository.Repositories, cacheClient *cache.Client, log *zap.Logger) *SeedHandler {
	return &SeedHandler{repos: repos, cache: cacheClient, log: log}
}

// Seed godoc
// @Summary Insert the starter catalog
// @Description Rows whose username or name already exists are left alone.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dispatch.Envelope{data=seed.Report}
// @Failure 500 {object} dispatch.Envelope
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()
	report, err := seed.Run(ctx, h.repos, h.log)
	if err == nil && report.Total() > 0 {
		_ = h.cache.Delete(ctx, cache.KeyDashboardStats)
	}
	return respond(c, dispatch.Wrap(report, err))
}
