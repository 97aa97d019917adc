package dispatch

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backoffice/internal/db"
	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/service"
)

// MockDashboardService is a mock implementation of DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		env      Envelope
		expected Envelope
	}{
		{"success", Wrap([]int{1}, nil), Envelope{Success: true, Code: http.StatusOK, Data: []int{1}}},
		{"created", WrapCreated("x", nil), Envelope{Success: true, Code: http.StatusCreated, Data: "x"}},
		{"business", Wrap(nil, errors.Validation("tag name is required")), Envelope{Code: http.StatusBadRequest, Error: "tag name is required"}},
		{"generic", Wrap(nil, stderrors.New("UNIQUE constraint failed: tags.name")), Envelope{Code: http.StatusInternalServerError, Error: "UNIQUE constraint failed: tags.name"}},
		{"create failure keeps status", WrapCreated(nil, errors.ErrCarouselLimit), Envelope{Code: http.StatusBadRequest, Error: errors.ErrCarouselLimit.Error()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.env)
		})
	}
}

func TestEnvelope_JSONOmitsEmpty(t *testing.T) {
	out, err := json.Marshal(Wrap(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"code":200}`, string(out))
}

type echoParams struct {
	Name string `json:"name" validate:"required"`
}

func TestDispatcher_Invoke(t *testing.T) {
	d := New(nil, zap.NewNop())
	Handle(d, "test:echo", func(_ context.Context, p echoParams) (any, error) {
		return p.Name, nil
	})
	Handle(d, "test:panic", func(_ context.Context, _ none) (any, error) {
		panic("boom")
	})

	env := d.Invoke(context.Background(), "test:echo", json.RawMessage(`{"name":"hi"}`))
	assert.Equal(t, Envelope{Success: true, Code: http.StatusOK, Data: "hi"}, env)

	env = d.Invoke(context.Background(), "test:echo", json.RawMessage(`{}`))
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusBadRequest, env.Code)

	env = d.Invoke(context.Background(), "test:echo", json.RawMessage(`{"name":`))
	assert.Equal(t, http.StatusBadRequest, env.Code)

	env = d.Invoke(context.Background(), "test:missing", nil)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.Contains(t, env.Error, "test:missing")

	env = d.Invoke(context.Background(), "test:panic", nil)
	assert.Equal(t, http.StatusInternalServerError, env.Code)
	assert.Contains(t, env.Error, "boom")
}

func TestDispatcher_DuplicateChannelPanics(t *testing.T) {
	d := New(nil, zap.NewNop())
	Handle(d, "x", func(context.Context, none) (any, error) { return nil, nil })
	assert.Panics(t, func() {
		Handle(d, "x", func(context.Context, none) (any, error) { return nil, nil })
	})
}

func TestDispatcher_DashboardStatsWithMock(t *testing.T) {
	dashboard := new(MockDashboardService)
	dashboard.On("Stats", mock.Anything).Return(&model.DashboardStats{TotalProducts: 3}, nil).Once()
	dashboard.On("Stats", mock.Anything).Return(nil, stderrors.New("database is locked")).Once()

	d := New(nil, zap.NewNop())
	Handle(d, "dashboard:stats", func(ctx context.Context, _ none) (any, error) {
		return dashboard.Stats(ctx)
	})

	env := d.Invoke(context.Background(), "dashboard:stats", nil)
	require.True(t, env.Success)
	assert.Equal(t, int64(3), env.Data.(*model.DashboardStats).TotalProducts)

	env = d.Invoke(context.Background(), "dashboard:stats", nil)
	assert.Equal(t, Envelope{Code: http.StatusInternalServerError, Error: "database is locked"}, env)
	dashboard.AssertExpectations(t)
}

func newCatalogDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gormDB) })
	require.NoError(t, db.Migrate(gormDB, zap.NewNop()))
	repos := repository.New(gormDB)

	d := New(nil, zap.NewNop())
	RegisterCatalog(d, Services{
		Users:      service.NewUserService(repos.Users, nil),
		Categories: service.NewCategoryService(repos.Categories),
		Services:   service.NewServiceService(repos, nil),
		Products:   service.NewProductService(repos, nil),
		Tags:       service.NewTagService(repos),
		Plans:      service.NewPricingPlanService(repos.Plans),
		Options:    service.NewOptionService(repos.Options, repos.Products),
		Dashboard:  service.NewDashboardService(repos.Dashboard, nil),
	})
	return d
}

// invoke runs a channel and decodes the envelope data into dst when given.
func invoke(t *testing.T, d *Dispatcher, channel, params string, dst any) Envelope {
	t.Helper()
	env := d.Invoke(context.Background(), channel, json.RawMessage(params))
	if dst != nil && env.Data != nil {
		raw, err := json.Marshal(env.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, dst))
	}
	return env
}

func TestRegisterCatalog_Channels(t *testing.T) {
	d := newCatalogDispatcher(t)
	channels := d.Channels()
	for _, ch := range []string{
		"users:get-all", "users:change-password",
		"services:save", "products:save", "products:toggle-carousel", "products:sync-services",
		"tags:sync-product", "tags:get-for-service", "categories:delete",
		"pricing-plans:get-for-product", "options:add-to-product", "dashboard:stats",
	} {
		assert.Contains(t, channels, ch)
	}
}

func TestRegisterCatalog_AuditPackScenario(t *testing.T) {
	d := newCatalogDispatcher(t)

	var category model.Category
	env := invoke(t, d, "categories:create", `{"name":"Security"}`, &category)
	require.True(t, env.Success, env.Error)
	assert.Equal(t, http.StatusCreated, env.Code)

	var svc model.ServiceRow
	env = invoke(t, d, "services:create", `{"name":"Audit","unit":"Day","category_id":`+itoa(category.ID)+`}`, &svc)
	require.True(t, env.Success, env.Error)

	var product model.Product
	env = invoke(t, d, "products:create", `{"name":"Audit Pack"}`, &product)
	require.True(t, env.Success, env.Error)

	env = invoke(t, d, "products:add-service", `{"product_id":`+itoa(product.ID)+`,"service_id":`+itoa(svc.ID)+`,"quantity":5}`, nil)
	require.True(t, env.Success, env.Error)

	var tag model.Tag
	env = invoke(t, d, "tags:create", `{"name":"Compliance"}`, &tag)
	require.True(t, env.Success, env.Error)
	env = invoke(t, d, "tags:add-to-product", `{"product_id":`+itoa(product.ID)+`,"tag_id":`+itoa(tag.ID)+`}`, nil)
	require.True(t, env.Success, env.Error)

	var detail model.ProductDetail
	env = invoke(t, d, "products:get-by-id", `{"id":`+itoa(product.ID)+`}`, &detail)
	require.True(t, env.Success, env.Error)
	require.Len(t, detail.Services, 1)
	assert.Equal(t, 5, detail.Services[0].Quantity)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "Compliance", detail.Tags[0].Name)
}

func TestRegisterCatalog_BusinessAndEngineErrors(t *testing.T) {
	d := newCatalogDispatcher(t)

	env := invoke(t, d, "tags:create", `{"name":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, env.Code)

	require.True(t, invoke(t, d, "tags:create", `{"name":"SME"}`, nil).Success)
	env = invoke(t, d, "tags:create", `{"name":"SME"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, env.Code)
	assert.Contains(t, env.Error, "UNIQUE")

	var res Changes
	env = invoke(t, d, "categories:delete", `{"id":999}`, &res)
	require.True(t, env.Success)
	assert.Zero(t, res.Changes)

	env = invoke(t, d, "products:add-service", `{"product_id":1,"service_id":1,"quantity":-2}`, nil)
	assert.Equal(t, http.StatusBadRequest, env.Code)
}

func TestRegisterCatalog_BlankNamesFailInStore(t *testing.T) {
	d := newCatalogDispatcher(t)

	for _, tc := range []struct{ channel, params string }{
		{"products:create", `{}`},
		{"services:create", `{}`},
		{"options:create", `{}`},
		{"options:create", `{"name":"Extra day"}`},
		{"products:save", `{"services":[]}`},
		{"services:save", `{"tag_ids":[]}`},
	} {
		env := invoke(t, d, tc.channel, tc.params, nil)
		assert.Equal(t, http.StatusInternalServerError, env.Code, tc.channel+" "+tc.params)
		assert.Contains(t, env.Error, "NOT NULL", tc.channel)
	}

	var list []json.RawMessage
	require.True(t, invoke(t, d, "products:get-all", ``, &list).Success)
	assert.Empty(t, list)
}

func itoa(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
