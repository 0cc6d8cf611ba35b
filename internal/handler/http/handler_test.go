package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{StaticDir: "frontend", RequestTimeout: 5}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "frontend", h.staticDir)
	assert.EqualValues(t, 5, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAPIRoutes(t *testing.T) {
	router := newTestRouterWith(newTestServices(nil, nil), config.Server{}).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/api/users/Alice"},
		{http.MethodPut, "/api/users/Alice"},
		{http.MethodDelete, "/api/users/Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.True(t, router.Match(newRouteContext(), tt.method, tt.path))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouterWith(newTestServices(nil, nil), config.Server{}).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestRouterWith(newTestServices(nil, nil), config.Server{}).Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodDelete, "/api/version", nil),
		httptest.NewRequest(http.MethodPatch, "/api/users/Alice", nil),
		httptest.NewRequest(http.MethodPut, "/api/todos", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouterWith(newTestServices(nil, nil), config.Server{}).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
