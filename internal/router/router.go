package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/dispatch"
	"backoffice/internal/handler"
)

// Handlers is the set of endpoint groups mounted under /api.
type Handlers struct {
	Bridge     *handler.BridgeHandler
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Tags       *handler.TagHandler
	Services   *handler.ServiceHandler
	Products   *handler.ProductHandler
	Plans      *handler.PlanHandler
	Options    *handler.OptionHandler
	Dashboard  *handler.DashboardHandler
	Seed       *handler.SeedHandler
}

// Guard authenticates bearer tokens on the secured routes.
type Guard struct {
	JWT    *auth.JWTService
	Tokens auth.TokenStoreInterface
}

// Register wires routes and middleware. The secured group requires a bearer
// token only when auth is enabled in cfg.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger, validate *validator.Validate, guard Guard, h Handlers) {
	e.HTTPErrorHandler = envelopeErrorHandler(log)
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/healthz", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	secured := api.Group("")
	if cfg.Auth.Enabled {
		secured.Use(jwtMiddleware(guard))
	}

	secured.GET("/channels", h.Bridge.Channels)
	secured.POST("/invoke/:channel", h.Bridge.Invoke)
	secured.POST("/seed", h.Seed.Seed)
	secured.GET("/dashboard/stats", h.Dashboard.Stats)

	// User routes
	secured.GET("/users", h.Users.ListUsers)
	secured.POST("/users", h.Users.CreateUser)
	secured.PUT("/users/:id", h.Users.UpdateUser)
	secured.DELETE("/users/:id", h.Users.DeleteUser)
	secured.PUT("/users/:id/password", h.Users.ChangePassword)

	// Category routes
	secured.GET("/categories", h.Categories.List)
	secured.POST("/categories", h.Categories.Create)
	secured.PUT("/categories/:id", h.Categories.Update)
	secured.DELETE("/categories/:id", h.Categories.Delete)

	// Tag routes
	secured.GET("/tags", h.Tags.List)
	secured.POST("/tags", h.Tags.Create)
	secured.PUT("/tags/:id", h.Tags.Update)
	secured.DELETE("/tags/:id", h.Tags.Delete)

	// Service routes
	secured.GET("/services", h.Services.List)
	secured.POST("/services", h.Services.Create)
	secured.POST("/services/save", h.Services.Save)
	secured.GET("/services/:id", h.Services.Get)
	secured.PUT("/services/:id", h.Services.Update)
	secured.DELETE("/services/:id", h.Services.Delete)
	secured.GET("/services/:id/tags", h.Tags.ServiceTags)
	secured.POST("/services/:id/tags", h.Tags.AddServiceTag)
	secured.PUT("/services/:id/tags", h.Tags.SyncServiceTags)
	secured.DELETE("/services/:id/tags/:tagId", h.Tags.RemoveServiceTag)

	// Product routes
	secured.GET("/showcase", h.Products.Showcase)
	secured.GET("/products", h.Products.List)
	secured.POST("/products", h.Products.Create)
	secured.POST("/products/save", h.Products.Save)
	secured.GET("/products/:id", h.Products.Get)
	secured.PUT("/products/:id", h.Products.Update)
	secured.DELETE("/products/:id", h.Products.Delete)
	secured.POST("/products/:id/toggle-top", h.Products.ToggleTop)
	secured.POST("/products/:id/toggle-carousel", h.Products.ToggleCarousel)
	secured.GET("/products/:id/services", h.Products.Services)
	secured.POST("/products/:id/services", h.Products.AddService)
	secured.PUT("/products/:id/services", h.Products.SyncServices)
	secured.DELETE("/products/:id/services/:serviceId", h.Products.RemoveService)
	secured.GET("/products/:id/tags", h.Tags.ProductTags)
	secured.POST("/products/:id/tags", h.Tags.AddProductTag)
	secured.PUT("/products/:id/tags", h.Tags.SyncProductTags)
	secured.DELETE("/products/:id/tags/:tagId", h.Tags.RemoveProductTag)
	secured.GET("/products/:id/options", h.Options.ProductOptions)
	secured.POST("/products/:id/options", h.Options.AddProductOption)
	secured.DELETE("/products/:id/options/:optionId", h.Options.RemoveProductOption)

	// Pricing plan routes
	secured.GET("/products/:id/plans", h.Plans.List)
	secured.POST("/products/:id/plans", h.Plans.Create)
	secured.PUT("/plans/:id", h.Plans.Update)
	secured.DELETE("/plans/:id", h.Plans.Delete)

	// Option routes
	secured.GET("/options", h.Options.List)
	secured.POST("/options", h.Options.Create)
	secured.PUT("/options/:id", h.Options.Update)
	secured.DELETE("/options/:id", h.Options.Delete)
}

// jwtMiddleware validates the bearer token with the service's claims and
// rejects tokens revoked on logout.
func jwtMiddleware(guard Guard) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := guard.JWT.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			if claims.ID != "" {
				revoked, err := guard.Tokens.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					return nil, err
				}
				if revoked {
					return nil, errors.New("token revoked")
				}
			}
			return claims, nil
		},
	})
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	log = log.Named("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// envelopeErrorHandler renders errors that never reached a handler (unknown
// route, JWT failure, panic) in the same envelope the handlers use.
func envelopeErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}
		if code >= http.StatusInternalServerError {
			log.Error("unhandled error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		}

		env := dispatch.Envelope{Success: false, Code: code, Error: msg}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, env)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
