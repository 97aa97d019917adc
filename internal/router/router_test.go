package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backoffice/internal/app"
	"backoffice/internal/config"
	"backoffice/internal/dispatch"
)

func newServer(t *testing.T, authEnabled bool) *app.Application {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "catalog.db")},
		JWT:      config.JWTConfig{Secret: "router-secret"},
		Auth:     config.AuthConfig{Enabled: authEnabled},
	}
	catalog, err := app.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	_, err = catalog.Seed(t.Context())
	require.NoError(t, err)
	return app.New(catalog)
}

func serve(a *app.Application, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dispatch.Envelope {
	t.Helper()
	var env dispatch.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRouter_OpenAccess(t *testing.T) {
	a := newServer(t, false)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		code   int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"products", http.MethodGet, "/api/products", "", http.StatusOK},
		{"showcase", http.MethodGet, "/api/showcase?search=pack", "", http.StatusOK},
		{"bridge", http.MethodPost, "/api/invoke/categories:get-all", "", http.StatusOK},
		{"create tag", http.MethodPost, "/api/tags", `{"name":"Enterprise"}`, http.StatusCreated},
		{"duplicate tag", http.MethodPost, "/api/tags", `{"name":"SME"}`, http.StatusInternalServerError},
		{"plans of product", http.MethodGet, "/api/products/1/plans", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(a, tt.method, tt.target, tt.body, "")
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestRouter_UnknownRouteIsEnvelope(t *testing.T) {
	a := newServer(t, false)

	rec := serve(a, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.NotEmpty(t, env.Error)
}

func TestRouter_AuthGuard(t *testing.T) {
	a := newServer(t, true)

	rec := serve(a, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decode(t, rec).Success)

	rec = serve(a, http.MethodGet, "/api/products", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(a, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)

	rec = serve(a, http.MethodGet, "/api/products", "", body.Data.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Len(t, env.Data, 3)

	rec = serve(a, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
