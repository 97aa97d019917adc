// Package app assembles the catalog host from configuration: store, cache,
// repositories, services, dispatcher and the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"backoffice/internal/auth"
	"backoffice/internal/cache"
	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/dispatch"
	"backoffice/internal/handler"
	"backoffice/internal/repository"
	"backoffice/internal/router"
	"backoffice/internal/seed"
	"backoffice/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Catalog is the in-process core shared by the server and the CLI.
type Catalog struct {
	Config     *config.Config
	Log        *zap.Logger
	DB         *gorm.DB
	Cache      *cache.Client
	Repos      *repository.Repositories
	Services   dispatch.Services
	Validate   *validator.Validate
	Dispatcher *dispatch.Dispatcher
}

// Open connects the store, applies migrations and registers every channel.
func Open(cfg *config.Config, log *zap.Logger) (*Catalog, error) {
	gormDB, err := db.NewSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gormDB, log); err != nil {
		_ = db.Close(gormDB)
		return nil, err
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if cacheClient.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warn("redis unreachable, continuing without cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
	}

	repos := repository.New(gormDB)
	svc := dispatch.Services{
		Users:      service.NewUserService(repos.Users, cacheClient),
		Categories: service.NewCategoryService(repos.Categories),
		Services:   service.NewServiceService(repos, cacheClient),
		Products:   service.NewProductService(repos, cacheClient),
		Tags:       service.NewTagService(repos),
		Plans:      service.NewPricingPlanService(repos.Plans),
		Options:    service.NewOptionService(repos.Options, repos.Products),
		Dashboard:  service.NewDashboardService(repos.Dashboard, cacheClient),
	}

	validate := validator.New()
	dispatcher := dispatch.New(validate, log)
	dispatch.RegisterCatalog(dispatcher, svc)

	return &Catalog{
		Config:     cfg,
		Log:        log,
		DB:         gormDB,
		Cache:      cacheClient,
		Repos:      repos,
		Services:   svc,
		Validate:   validate,
		Dispatcher: dispatcher,
	}, nil
}

// Seed inserts the starter catalog and drops cached figures when rows were added.
func (c *Catalog) Seed(ctx context.Context) (seed.Report, error) {
	report, err := seed.Run(ctx, c.Repos, c.Log)
	if err != nil {
		return report, err
	}
	if report.Total() > 0 {
		_ = c.Cache.Delete(ctx, cache.KeyDashboardStats)
	}
	return report, nil
}

// Close releases the store and the cache connection.
func (c *Catalog) Close() error {
	return errors.Join(c.Cache.Close(), db.Close(c.DB))
}

// Application is the catalog served over HTTP.
type Application struct {
	*Catalog
	Echo *echo.Echo
}

// New builds the HTTP application on top of an opened catalog.
func New(c *Catalog) *Application {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	jwtService := auth.NewJWTService(c.Config.JWT.Secret)
	tokenStore := auth.NewTokenStore(c.Cache)
	authService := service.NewAuthService(c.Services.Users, jwtService, tokenStore)

	router.Register(e, c.Config, c.Log, c.Validate,
		router.Guard{JWT: jwtService, Tokens: tokenStore},
		router.Handlers{
			Bridge:     handler.NewBridgeHandler(c.Dispatcher),
			Auth:       handler.NewAuthHandler(authService),
			Users:      handler.NewUserHandler(c.Dispatcher),
			Categories: handler.NewCategoryHandler(c.Dispatcher),
			Tags:       handler.NewTagHandler(c.Dispatcher),
			Services:   handler.NewServiceHandler(c.Dispatcher),
			Products:   handler.NewProductHandler(c.Dispatcher),
			Plans:      handler.NewPlanHandler(c.Dispatcher),
			Options:    handler.NewOptionHandler(c.Dispatcher),
			Dashboard:  handler.NewDashboardHandler(c.Dispatcher),
			Seed:       handler.NewSeedHandler(c.Repos, c.Cache, c.Log),
		},
	)

	return &Application{Catalog: c, Echo: e}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	addr := ":" + a.Config.Server.Port
	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server listening",
			zap.String("addr", addr),
			zap.String("swagger", swaggerURL(a.Config.Swagger.Host, a.Config.Server.Port)),
			zap.Bool("auth", a.Config.Auth.Enabled),
			zap.Bool("cache", a.Cache.Enabled()),
		)
		if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server start: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}

// swaggerURL accepts a host with or without scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case len(host) >= 7 && host[:7] == "http://", len(host) >= 8 && host[:8] == "https://":
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
