package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backoffice/internal/app"
	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/handler"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *app.Application {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "catalog.db")},
		JWT:      config.JWTConfig{Secret: "test-secret"},
	}
	catalog, err := app.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return app.New(catalog)
}

// call runs h against a request built from method, target and body, with the
// given path params.
func call(t *testing.T, a *app.Application, h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestCategoryHandler_CreateAndList(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewCategoryHandler(a.Dispatcher)

	rec, env := call(t, a, h.Create, http.MethodPost, "/api/categories", `{"name":"Support","description":"Help desk"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	var created model.Category
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)

	rec, env = call(t, a, h.List, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []model.Category
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Support", list[0].Name)
}

func TestCategoryHandler_Failures(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewCategoryHandler(a.Dispatcher)

	tests := []struct {
		name   string
		fn     echo.HandlerFunc
		method string
		body   string
		params []string
		code   int
	}{
		{"blank name", h.Create, http.MethodPost, `{"name":"  "}`, nil, http.StatusBadRequest},
		{"malformed body", h.Create, http.MethodPost, `{"name":`, nil, http.StatusBadRequest},
		{"non numeric id", h.Update, http.MethodPut, `{"name":"x"}`, []string{"id", "abc"}, http.StatusBadRequest},
		{"zero id", h.Delete, http.MethodDelete, "", []string{"id", "0"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := call(t, a, tt.fn, tt.method, "/api/categories", tt.body, tt.params...)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.code, env.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestCategoryHandler_DeleteMissingIsNoop(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewCategoryHandler(a.Dispatcher)

	rec, env := call(t, a, h.Delete, http.MethodDelete, "/api/categories/42", "", "id", "42")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changes":0}`, string(env.Data))
}

func TestProductHandler_ListBindsQuery(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewProductHandler(a.Dispatcher)

	for _, name := range []string{"Starter Pack", "Pro Pack", "Enterprise Suite"} {
		rec, _ := call(t, a, h.Create, http.MethodPost, "/api/products", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := call(t, a, h.List, http.MethodGet, "/api/products?search=PACK&sort_by=name&desc=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.ProductDetail
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Starter Pack", list[0].Name)
	assert.Equal(t, "Pro Pack", list[1].Name)

	rec, env = call(t, a, h.List, http.MethodGet, "/api/products?sort_by=colour", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestProductHandler_ServiceBundle(t *testing.T) {
	a := newTestApp(t)
	products := handler.NewProductHandler(a.Dispatcher)
	services := handler.NewServiceHandler(a.Dispatcher)

	_, env := call(t, a, services.Create, http.MethodPost, "/api/services", `{"name":"Level 1 Support"}`)
	var svc model.ServiceRow
	require.NoError(t, json.Unmarshal(env.Data, &svc))
	_, env = call(t, a, products.Create, http.MethodPost, "/api/products", `{"name":"Audit Pack"}`)
	var product model.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))

	pid := itoa(product.ID)
	rec, env := call(t, a, products.AddService, http.MethodPost, "/api/products/"+pid+"/services",
		`{"service_id":`+itoa(svc.ID)+`,"quantity":0}`, "id", pid)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	assert.True(t, env.Success)

	rec, env = call(t, a, products.Services, http.MethodGet, "/api/products/"+pid+"/services", "", "id", pid)
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []model.ProductServiceLine
	require.NoError(t, json.Unmarshal(env.Data, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	rec, _ = call(t, a, products.AddService, http.MethodPost, "/api/products/"+pid+"/services",
		`{"service_id":`+itoa(svc.ID)+`,"quantity":-2}`, "id", pid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = call(t, a, products.RemoveService, http.MethodDelete, "/", "", "id", pid, "serviceId", itoa(svc.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changes":1}`, string(env.Data))
}

func TestBridgeHandler(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewBridgeHandler(a.Dispatcher)

	t.Run("create through channel", func(t *testing.T) {
		rec, env := call(t, a, h.Invoke, http.MethodPost, "/api/invoke/tags:create", `{"name":"SME"}`, "channel", "tags:create")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("unknown channel", func(t *testing.T) {
		rec, env := call(t, a, h.Invoke, http.MethodPost, "/api/invoke/tags:explode", `{}`, "channel", "tags:explode")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, env.Error, "tags:explode")
	})

	t.Run("channel list", func(t *testing.T) {
		rec, env := call(t, a, h.Channels, http.MethodGet, "/api/channels", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var channels []string
		require.NoError(t, json.Unmarshal(env.Data, &channels))
		assert.Equal(t, a.Dispatcher.Channels(), channels)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Seed(t.Context())
	require.NoError(t, err)
	h := handler.NewAuthHandler(authService(a))

	tests := []struct {
		name string
		body string
		code int
	}{
		{"valid credentials", `{"username":"admin","password":"admin123"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"missing username", `{"password":"admin123"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := call(t, a, h.Login, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				assert.False(t, env.Success)
				return
			}
			var resp handler.AuthResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			require.NotNil(t, resp.User)
			assert.Equal(t, "admin", resp.User.Username)
		})
	}
}

func TestAuthHandler_RefreshWithoutStoreIsRejected(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Seed(t.Context())
	require.NoError(t, err)
	h := handler.NewAuthHandler(authService(a))

	_, env := call(t, a, h.Login, http.MethodPost, "/api/auth/login", `{"username":"user","password":"user123"}`)
	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))

	rec, env := call(t, a, h.Refresh, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"`+resp.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestSeedHandler_ReportsCreatedRows(t *testing.T) {
	a := newTestApp(t)
	h := handler.NewSeedHandler(a.Repos, a.Cache, zap.NewNop())

	rec, env := call(t, a, h.Seed, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":2,"categories":3,"tags":3,"services":3,"products":3}`, string(env.Data))

	_, env = call(t, a, h.Seed, http.MethodPost, "/api/seed", "")
	assert.JSONEq(t, `{"users":0,"categories":0,"tags":0,"services":0,"products":0}`, string(env.Data))
}

func TestDashboardHandler_Stats(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Seed(t.Context())
	require.NoError(t, err)
	h := handler.NewDashboardHandler(a.Dispatcher)

	rec, env := call(t, a, h.Stats, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.DashboardStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.EqualValues(t, 3, stats.TotalProducts)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.Len(t, stats.RecentProducts, 3)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)
	require.NoError(t, handler.Health(c))
	assert.Equal(t, "ok", rec.Body.String())
}

func authService(a *app.Application) service.AuthService {
	return service.NewAuthService(a.Services.Users, auth.NewJWTService("test-secret"), auth.NewTokenStore(a.Cache))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
